package model

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainBlock is a header/body bundle as read from a data provider. Hash and
// Number are nil for blocks without a canonical height, such as pending ones.
type ChainBlock struct {
	Hash             *common.Hash
	Number           *uint64
	ParentHash       common.Hash
	UncleHash        common.Hash
	Author           common.Address
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	ReceiptsRoot     common.Hash
	LogsBloom        types.Bloom
	GasUsed          uint64
	GasLimit         uint64
	Timestamp        uint64
	Difficulty       *big.Int
	ExtraData        []byte
	SealFields       [][]byte
	Uncles           []common.Hash
	// Size is the raw encoded block length reported by the provider.
	Size         *uint64
	Transactions []ChainTransaction
}

// ChainTransaction is a transaction embedded in a ChainBlock.
type ChainTransaction struct {
	Hash             common.Hash
	Nonce            uint64
	BlockHash        *common.Hash
	BlockNumber      *uint64
	TransactionIndex *uint64
	From             common.Address
	To               *common.Address
	Value            *big.Int
	GasPrice         *big.Int
	Gas              uint64
	Input            []byte
	Raw              []byte
	// ChainID is nil for transactions without replay protection.
	ChainID *big.Int
	V       *big.Int
	R       *big.Int
	S       *big.Int
}

// ChainReceipt is the recorded execution outcome of one transaction.
type ChainReceipt struct {
	TransactionHash   common.Hash
	TransactionIndex  uint64
	BlockHash         common.Hash
	BlockNumber       uint64
	CumulativeGasUsed uint64
	GasUsed           uint64
	ContractAddress   *common.Address
	Logs              []ChainLog
	LogsBloom         types.Bloom
	// Root is set for pre-Byzantium receipts, Status afterwards.
	Root   *common.Hash
	Status *uint64
}

// ChainLog is a log entry emitted while executing a transaction.
type ChainLog struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
	// Index is the position of the log within the block.
	Index uint64
}

// ChainTrace is one step of a transaction's execution trace. Action and
// Result are kept as the provider encoded them.
type ChainTrace struct {
	Type         string
	Action       json.RawMessage
	Result       json.RawMessage
	Error        string
	TraceAddress []uint64
	Subtraces    uint64
}
