package model

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// BlockWithTransactions is the response of bulk_getBlockByNumber. Field order
// and JSON names are part of the wire contract.
type BlockWithTransactions struct {
	Hash       *common.Hash   `json:"hash"`
	ParentHash common.Hash    `json:"parentHash"`
	UnclesHash common.Hash    `json:"sha3Uncles"`
	Author     common.Address `json:"author"`
	// Miner duplicates Author for older clients.
	Miner            common.Address           `json:"miner"`
	StateRoot        common.Hash              `json:"stateRoot"`
	TransactionsRoot common.Hash              `json:"transactionsRoot"`
	ReceiptsRoot     common.Hash              `json:"receiptsRoot"`
	Number           *hexutil.Uint64          `json:"number"`
	GasUsed          hexutil.Uint64           `json:"gasUsed"`
	GasLimit         hexutil.Uint64           `json:"gasLimit"`
	ExtraData        hexutil.Bytes            `json:"extraData"`
	LogsBloom        types.Bloom              `json:"logsBloom"`
	Timestamp        hexutil.Uint64           `json:"timestamp"`
	Difficulty       *hexutil.Big             `json:"difficulty"`
	TotalDifficulty  *hexutil.Big             `json:"totalDifficulty"`
	SealFields       []hexutil.Bytes          `json:"sealFields"`
	Uncles           []common.Hash            `json:"uncles"`
	Transactions     []TransactionWithReceipt `json:"transactions"`
	Size             *hexutil.Uint64          `json:"size"`
}

// TransactionWithReceipt groups a transaction with its receipt and traces.
type TransactionWithReceipt struct {
	Transaction Transaction      `json:"transaction"`
	Receipt     Receipt          `json:"receipt"`
	Traces      []LocalizedTrace `json:"traces"`
}
