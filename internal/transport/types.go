// Package transport exposes the JSON-RPC and gRPC handlers.
package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
)

type (
	// BlockAssembler produces fully populated blocks.
	BlockAssembler interface {
		Assemble(ctx context.Context, id model.BlockIdentifier) (*model.BlockWithTransactions, error)
	}

	BulkMetrics interface {
		ObserveRequest(method string, err error, started time.Time)
	}

	// ReadinessProbe reports whether the block data source is reachable.
	ReadinessProbe interface {
		Ping(ctx context.Context) error
	}
)
