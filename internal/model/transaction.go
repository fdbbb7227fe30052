package model

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// Transaction is the wire form of a mined transaction.
type Transaction struct {
	Hash             common.Hash     `json:"hash"`
	Nonce            hexutil.Uint64  `json:"nonce"`
	BlockHash        *common.Hash    `json:"blockHash"`
	BlockNumber      *hexutil.Uint64 `json:"blockNumber"`
	TransactionIndex *hexutil.Uint64 `json:"transactionIndex"`
	From             common.Address  `json:"from"`
	To               *common.Address `json:"to"`
	Value            *hexutil.Big    `json:"value"`
	GasPrice         *hexutil.Big    `json:"gasPrice"`
	Gas              hexutil.Uint64  `json:"gas"`
	Input            hexutil.Bytes   `json:"input"`
	Creates          *common.Address `json:"creates"`
	Raw              hexutil.Bytes   `json:"raw"`
	ChainID          *hexutil.Big    `json:"chainId"`
	StandardV        *hexutil.Big    `json:"standardV"`
	V                *hexutil.Big    `json:"v"`
	R                *hexutil.Big    `json:"r"`
	S                *hexutil.Big    `json:"s"`
}

// Receipt is the wire form of a transaction receipt.
type Receipt struct {
	TransactionHash   common.Hash     `json:"transactionHash"`
	TransactionIndex  hexutil.Uint64  `json:"transactionIndex"`
	BlockHash         common.Hash     `json:"blockHash"`
	BlockNumber       hexutil.Uint64  `json:"blockNumber"`
	CumulativeGasUsed hexutil.Uint64  `json:"cumulativeGasUsed"`
	GasUsed           hexutil.Uint64  `json:"gasUsed"`
	ContractAddress   *common.Address `json:"contractAddress"`
	Logs              []Log           `json:"logs"`
	LogsBloom         types.Bloom     `json:"logsBloom"`
	Root              *common.Hash    `json:"root,omitempty"`
	Status            *hexutil.Uint64 `json:"status,omitempty"`
}

// LogTypeMined marks logs taken from sealed blocks.
const LogTypeMined = "mined"

// Log is the wire form of a receipt log.
type Log struct {
	Address             common.Address `json:"address"`
	Topics              []common.Hash  `json:"topics"`
	Data                hexutil.Bytes  `json:"data"`
	BlockHash           common.Hash    `json:"blockHash"`
	BlockNumber         hexutil.Uint64 `json:"blockNumber"`
	TransactionHash     common.Hash    `json:"transactionHash"`
	TransactionIndex    hexutil.Uint64 `json:"transactionIndex"`
	LogIndex            hexutil.Uint64 `json:"logIndex"`
	TransactionLogIndex hexutil.Uint64 `json:"transactionLogIndex"`
	Type                string         `json:"type"`
	Removed             bool           `json:"removed"`
}

// LocalizedTrace is a trace entry annotated with its transaction and block.
type LocalizedTrace struct {
	Action              json.RawMessage `json:"action"`
	Result              json.RawMessage `json:"result"`
	Error               string          `json:"error,omitempty"`
	TraceAddress        []uint64        `json:"traceAddress"`
	Subtraces           uint64          `json:"subtraces"`
	TransactionPosition hexutil.Uint64  `json:"transactionPosition"`
	TransactionHash     common.Hash     `json:"transactionHash"`
	BlockNumber         hexutil.Uint64  `json:"blockNumber"`
	BlockHash           common.Hash     `json:"blockHash"`
	Type                string          `json:"type"`
}
