package node

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/ratelimit"
)

const batchOperation = "batch"

// ObservedClient wraps an RPC client with rate limiting and metrics
// instrumentation. Every call or batch takes one rate limit slot.
type ObservedClient struct {
	client     RPCClient
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented RPC client. rps of zero or
// less disables rate limiting.
func NewObservedClient(client RPCClient, rps int, rpcMetrics RPCMetrics) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

// CallContext performs a single JSON-RPC call. The method name is the metrics
// operation label.
func (c *ObservedClient) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.limiter.Take()

	started := time.Now()
	defer func() {
		c.observe(method, err, started)
	}()
	return c.client.CallContext(ctx, result, method, args...)
}

// BatchCallContext sends all elements in one JSON-RPC batch. Transport
// failures are returned; per-element failures are left in each element's
// Error field.
func (c *ObservedClient) BatchCallContext(ctx context.Context, b []rpc.BatchElem) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.limiter.Take()

	started := time.Now()
	defer func() {
		c.observe(batchOperation, err, started)
	}()
	return c.client.BatchCallContext(ctx, b)
}

func (c *ObservedClient) observe(operation string, err error, started time.Time) {
	if c.rpcMetrics == nil {
		return
	}
	c.rpcMetrics.Observe(operation, err, started)
}
