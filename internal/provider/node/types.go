// Package node reads block data from an Ethereum-compatible JSON-RPC node.
package node

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

type (
	// RPCClient is the subset of *rpc.Client used by the provider.
	RPCClient interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
		BatchCallContext(ctx context.Context, b []rpc.BatchElem) error
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
