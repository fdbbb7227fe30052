package node

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/pkg/batcher"
)

const (
	methodBlockByNumber      = "eth_getBlockByNumber"
	methodTransactionReceipt = "eth_getTransactionReceipt"
	methodTraceTransaction   = "trace_transaction"
	methodBlockNumber        = "eth_blockNumber"
)

// Config controls how the provider talks to the node.
type Config struct {
	// TransitionHeight is the height from which contract addresses are
	// derived from the init code hash.
	TransitionHeight uint64
	// ReceiptBatchSize above one coalesces concurrent receipt lookups into
	// JSON-RPC batches of at most this size.
	ReceiptBatchSize     int
	ReceiptBatchInterval time.Duration
}

// Provider implements service.ChainDataProvider on top of a JSON-RPC node.
type Provider struct {
	client           RPCClient
	transitionHeight uint64
	receipts         *batcher.Batcher[common.Hash, *model.ChainReceipt]
	logger           *zap.Logger
}

// NewProvider constructs a Provider. When receipt batching is enabled the
// batch loop runs until ctx is done or Close is called.
func NewProvider(ctx context.Context, client RPCClient, cfg Config, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provider{
		client:           client,
		transitionHeight: cfg.TransitionHeight,
		logger:           logger,
	}
	if cfg.ReceiptBatchSize > 1 {
		interval := cfg.ReceiptBatchInterval
		if interval <= 0 {
			interval = 5 * time.Millisecond
		}
		p.receipts = batcher.New(logger, p.fetchReceipts, cfg.ReceiptBatchSize, interval, 0)
		p.receipts.Start(ctx)
	}
	return p
}

// Close stops receipt batching, if enabled.
func (p *Provider) Close() {
	if p.receipts != nil {
		p.receipts.Stop()
	}
}

// TransitionHeight returns the configured code-hash address transition height.
func (p *Provider) TransitionHeight() uint64 {
	return p.transitionHeight
}

// Block fetches the block with full transactions. A null response yields nil.
func (p *Provider) Block(ctx context.Context, id model.BlockIdentifier) (*model.ChainBlock, error) {
	arg := blockNumberArg(id)

	var block *rpcBlock
	if err := p.client.CallContext(ctx, &block, methodBlockByNumber, arg, true); err != nil {
		return nil, fmt.Errorf("%s %s: %w", methodBlockByNumber, arg, err)
	}
	if block == nil {
		return nil, nil
	}

	out, err := convertBlock(block, id.Tag() == model.TagPending)
	if err != nil {
		return nil, fmt.Errorf("convert block %s: %w", arg, err)
	}
	return out, nil
}

// TotalDifficulty reads the totalDifficulty field of the block header. Nodes
// that no longer report it yield nil.
func (p *Provider) TotalDifficulty(ctx context.Context, id model.BlockIdentifier) (*big.Int, error) {
	arg := blockNumberArg(id)

	var head *rpcHeaderTotalDifficulty
	if err := p.client.CallContext(ctx, &head, methodBlockByNumber, arg, false); err != nil {
		return nil, fmt.Errorf("%s %s: %w", methodBlockByNumber, arg, err)
	}
	if head == nil || head.TotalDifficulty == nil {
		return nil, nil
	}
	return head.TotalDifficulty.ToInt(), nil
}

// Receipt fetches the receipt of txHash, or nil when the node has none.
func (p *Provider) Receipt(ctx context.Context, txHash common.Hash) (*model.ChainReceipt, error) {
	if p.receipts != nil {
		return p.receipts.Do(ctx, txHash)
	}

	var receipt *types.Receipt
	if err := p.client.CallContext(ctx, &receipt, methodTransactionReceipt, txHash); err != nil {
		return nil, fmt.Errorf("%s %s: %w", methodTransactionReceipt, txHash, err)
	}
	if receipt == nil {
		return nil, nil
	}
	return convertReceipt(receipt), nil
}

func (p *Provider) fetchReceipts(ctx context.Context, hashes []common.Hash) ([]batcher.Result[*model.ChainReceipt], error) {
	receipts := make([]*types.Receipt, len(hashes))
	elems := make([]rpc.BatchElem, len(hashes))
	for i, hash := range hashes {
		elems[i] = rpc.BatchElem{
			Method: methodTransactionReceipt,
			Args:   []interface{}{hash},
			Result: &receipts[i],
		}
	}
	if err := p.client.BatchCallContext(ctx, elems); err != nil {
		return nil, fmt.Errorf("%s batch of %d: %w", methodTransactionReceipt, len(hashes), err)
	}

	out := make([]batcher.Result[*model.ChainReceipt], len(hashes))
	for i := range elems {
		if elems[i].Error != nil {
			out[i].Err = fmt.Errorf("%s %s: %w", methodTransactionReceipt, hashes[i], elems[i].Error)
			continue
		}
		if receipts[i] != nil {
			out[i].Value = convertReceipt(receipts[i])
		}
	}
	return out, nil
}

// Traces fetches the execution trace of txHash. Nodes answer null for
// transactions without traces; that is returned as an empty slice.
func (p *Provider) Traces(ctx context.Context, txHash common.Hash) ([]model.ChainTrace, error) {
	var traces []rpcTrace
	if err := p.client.CallContext(ctx, &traces, methodTraceTransaction, txHash); err != nil {
		return nil, fmt.Errorf("%s %s: %w", methodTraceTransaction, txHash, err)
	}
	return convertTraces(traces), nil
}

// Ping checks that the node answers.
func (p *Provider) Ping(ctx context.Context) error {
	var head hexutil.Uint64
	if err := p.client.CallContext(ctx, &head, methodBlockNumber); err != nil {
		return fmt.Errorf("%s: %w", methodBlockNumber, err)
	}
	p.logger.Debug("node reachable", zap.Uint64("head", uint64(head)))
	return nil
}
