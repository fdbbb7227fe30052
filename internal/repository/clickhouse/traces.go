package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/service"
)

const tracesQuery = `
SELECT
	type,
	action,
	result,
	error,
	trace_address,
	subtraces
FROM eth_traces FINAL
WHERE network = ? AND transaction_hash = ?
ORDER BY position ASC`

// Traces returns the archived execution trace of txHash in execution order.
func (r *Repository) Traces(ctx context.Context, txHash common.Hash) (traces []model.ChainTrace, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("traces", r.network, err, start)
	}()

	rows, err := r.conn.Query(ctx, tracesQuery, r.network, txHash.Hex())
	if err != nil {
		return nil, fmt.Errorf("query traces %s: %w", txHash, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	traces = []model.ChainTrace{}
	for rows.Next() {
		var (
			trace  model.ChainTrace
			action string
			result *string
		)
		if err = rows.Scan(
			&trace.Type,
			&action,
			&result,
			&trace.Error,
			&trace.TraceAddress,
			&trace.Subtraces,
		); err != nil {
			return nil, fmt.Errorf("scan trace %s: %w", txHash, err)
		}

		if !json.Valid([]byte(action)) {
			return nil, fmt.Errorf("trace %s has malformed action: %w", txHash, service.ErrDataConsistency)
		}
		trace.Action = json.RawMessage(action)
		if result != nil {
			if !json.Valid([]byte(*result)) {
				return nil, fmt.Errorf("trace %s has malformed result: %w", txHash, service.ErrDataConsistency)
			}
			trace.Result = json.RawMessage(*result)
		}
		traces = append(traces, trace)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate traces %s: %w", txHash, err)
	}
	return traces, nil
}
