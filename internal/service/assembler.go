package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/pkg/workerpool"
)

// BlockAssembler builds fully populated blocks from a ChainDataProvider.
type BlockAssembler struct {
	provider  ChainDataProvider
	projector *TransactionProjector
	cfg       AssemblerConfig
	metrics   AssemblerMetrics
	logger    *zap.Logger
}

// NewBlockAssembler wires an assembler. The projector is built from the
// provider's transition height, read once here.
func NewBlockAssembler(
	provider ChainDataProvider,
	cfg AssemblerConfig,
	metrics AssemblerMetrics,
	logger *zap.Logger,
) *BlockAssembler {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlockAssembler{
		provider:  provider,
		projector: NewTransactionProjector(provider.TransitionHeight()),
		cfg:       cfg,
		metrics:   metrics,
		logger:    logger,
	}
}

// Assemble returns the block for id, or nil when the provider has no such
// block. A missing total difficulty leaves the field empty; a missing receipt
// fails the whole request.
func (a *BlockAssembler) Assemble(ctx context.Context, id model.BlockIdentifier) (block *model.BlockWithTransactions, err error) {
	started := time.Now()
	defer func() {
		a.observe(err, block, started)
	}()

	var (
		chainBlock *model.ChainBlock
		td         *big.Int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := a.provider.Block(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch block %s: %w", id, err)
		}
		chainBlock = b
		return nil
	})
	g.Go(func() error {
		v, err := a.provider.TotalDifficulty(gctx, id)
		if err != nil {
			a.logger.Warn("total difficulty lookup failed", zap.Stringer("block", id), zap.Error(err))
			return nil
		}
		td = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if chainBlock == nil {
		return nil, nil
	}
	if td == nil && a.metrics != nil {
		a.metrics.ObserveTotalDifficultyMissing()
	}

	txs, err := workerpool.Map(ctx, a.cfg.Workers, chainBlock.Transactions, a.collectTransaction)
	if err != nil {
		return nil, err
	}

	return buildBlock(chainBlock, td, txs), nil
}

func (a *BlockAssembler) collectTransaction(ctx context.Context, tx model.ChainTransaction) (model.TransactionWithReceipt, error) {
	receipt, err := a.provider.Receipt(ctx, tx.Hash)
	if err != nil {
		return model.TransactionWithReceipt{}, fmt.Errorf("fetch receipt %s: %w", tx.Hash, err)
	}

	var traces []model.ChainTrace
	if a.cfg.IncludeTraces && receipt != nil {
		traces, err = a.provider.Traces(ctx, tx.Hash)
		if err != nil {
			return model.TransactionWithReceipt{}, fmt.Errorf("fetch traces %s: %w", tx.Hash, err)
		}
	}

	return a.projector.Project(tx, receipt, traces)
}

func (a *BlockAssembler) observe(err error, block *model.BlockWithTransactions, started time.Time) {
	if a.metrics == nil {
		return
	}
	transactions := 0
	if block != nil {
		transactions = len(block.Transactions)
	}
	a.metrics.ObserveAssemble(err, block != nil, transactions, started)
}

func buildBlock(b *model.ChainBlock, td *big.Int, txs []model.TransactionWithReceipt) *model.BlockWithTransactions {
	out := &model.BlockWithTransactions{
		ParentHash:       b.ParentHash,
		UnclesHash:       b.UncleHash,
		Author:           b.Author,
		Miner:            b.Author,
		StateRoot:        b.StateRoot,
		TransactionsRoot: b.TransactionsRoot,
		ReceiptsRoot:     b.ReceiptsRoot,
		GasUsed:          hexutil.Uint64(b.GasUsed),
		GasLimit:         hexutil.Uint64(b.GasLimit),
		ExtraData:        b.ExtraData,
		LogsBloom:        b.LogsBloom,
		Timestamp:        hexutil.Uint64(b.Timestamp),
		Difficulty:       (*hexutil.Big)(b.Difficulty),
		TotalDifficulty:  (*hexutil.Big)(td),
		SealFields:       make([]hexutil.Bytes, 0, len(b.SealFields)),
		Uncles:           make([]common.Hash, len(b.Uncles)),
		Transactions:     txs,
	}
	// Hash and number describe the canonical position and travel together.
	if b.Hash != nil && b.Number != nil {
		hash := *b.Hash
		number := hexutil.Uint64(*b.Number)
		out.Hash = &hash
		out.Number = &number
	}
	for _, field := range b.SealFields {
		out.SealFields = append(out.SealFields, field)
	}
	copy(out.Uncles, b.Uncles)
	if b.Size != nil {
		size := hexutil.Uint64(*b.Size)
		out.Size = &size
	}
	if out.Transactions == nil {
		out.Transactions = []model.TransactionWithReceipt{}
	}
	return out
}
