package node

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// rpcBlock is a block as returned by eth_getBlockByNumber with full
// transactions. Pointer fields are null for pending blocks on most nodes.
type rpcBlock struct {
	Hash             *common.Hash      `json:"hash"`
	Number           *hexutil.Uint64   `json:"number"`
	ParentHash       common.Hash       `json:"parentHash"`
	UncleHash        common.Hash       `json:"sha3Uncles"`
	Author           *common.Address   `json:"author"`
	Miner            *common.Address   `json:"miner"`
	StateRoot        common.Hash       `json:"stateRoot"`
	TransactionsRoot common.Hash       `json:"transactionsRoot"`
	ReceiptsRoot     common.Hash       `json:"receiptsRoot"`
	LogsBloom        types.Bloom       `json:"logsBloom"`
	GasUsed          hexutil.Uint64    `json:"gasUsed"`
	GasLimit         hexutil.Uint64    `json:"gasLimit"`
	Timestamp        hexutil.Uint64    `json:"timestamp"`
	Difficulty       *hexutil.Big      `json:"difficulty"`
	ExtraData        hexutil.Bytes     `json:"extraData"`
	MixHash          *common.Hash      `json:"mixHash"`
	Nonce            *types.BlockNonce `json:"nonce"`
	SealFields       []hexutil.Bytes   `json:"sealFields"`
	Uncles           []common.Hash     `json:"uncles"`
	Size             *hexutil.Uint64   `json:"size"`
	Transactions     []rpcTransaction  `json:"transactions"`
}

type rpcTransaction struct {
	tx *types.Transaction
	txExtraInfo
}

type txExtraInfo struct {
	BlockNumber      *hexutil.Uint64 `json:"blockNumber,omitempty"`
	BlockHash        *common.Hash    `json:"blockHash,omitempty"`
	TransactionIndex *hexutil.Uint64 `json:"transactionIndex,omitempty"`
	From             *common.Address `json:"from,omitempty"`
	// GasPrice is the effective price for mined dynamic fee transactions.
	GasPrice *hexutil.Big `json:"gasPrice,omitempty"`
}

func (tx *rpcTransaction) UnmarshalJSON(msg []byte) error {
	if err := json.Unmarshal(msg, &tx.tx); err != nil {
		return err
	}
	return json.Unmarshal(msg, &tx.txExtraInfo)
}

// rpcHeaderTotalDifficulty reads only the total difficulty of a block.
type rpcHeaderTotalDifficulty struct {
	TotalDifficulty *hexutil.Big `json:"totalDifficulty"`
}

// rpcTrace is one entry of a trace_transaction response.
type rpcTrace struct {
	Type         string          `json:"type"`
	Action       json.RawMessage `json:"action"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	TraceAddress []uint64        `json:"traceAddress"`
	Subtraces    uint64          `json:"subtraces"`
}
