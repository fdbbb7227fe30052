package transport

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/service"
)

// BulkNamespace is the JSON-RPC namespace the bulk API is served under.
const BulkNamespace = "bulk"

const methodGetBlockByNumber = "getBlockByNumber"

// BulkAPI serves the bulk_* JSON-RPC methods. Every exported method becomes an
// RPC method once registered.
type BulkAPI struct {
	assembler BlockAssembler
	metrics   BulkMetrics
	logger    *zap.Logger
}

// NewBulkAPI returns a BulkAPI instance.
func NewBulkAPI(assembler BlockAssembler, metrics BulkMetrics, logger *zap.Logger) *BulkAPI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BulkAPI{
		assembler: assembler,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetBlockByNumber returns the block with its transactions, receipts and
// traces, or nil when the block does not exist.
func (h *BulkAPI) GetBlockByNumber(ctx context.Context, ref model.BlockReference) (block *model.BlockWithTransactions, err error) {
	started := time.Now()
	defer func() {
		if h.metrics != nil {
			h.metrics.ObserveRequest(methodGetBlockByNumber, err, started)
		}
	}()

	id := service.Resolve(ref)
	block, err = h.assembler.Assemble(ctx, id)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("bulk block served",
		zap.Stringer("block", id),
		zap.Bool("found", block != nil),
		zap.Duration("elapsed", time.Since(started)),
	)
	return block, nil
}

// NewRPCServer registers api under the bulk namespace of a fresh go-ethereum
// RPC server.
func NewRPCServer(api *BulkAPI) (*rpc.Server, error) {
	server := rpc.NewServer()
	if err := server.RegisterName(BulkNamespace, api); err != nil {
		server.Stop()
		return nil, err
	}
	return server, nil
}
