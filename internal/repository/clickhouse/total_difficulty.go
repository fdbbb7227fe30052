package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
)

const totalDifficultyQuery = `
SELECT total_difficulty
FROM eth_total_difficulty FINAL
WHERE network = ? AND number = ?
LIMIT 1`

// TotalDifficulty returns the archived cumulative difficulty for id, or nil
// when none was recorded.
func (r *Repository) TotalDifficulty(ctx context.Context, id model.BlockIdentifier) (td *big.Int, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("total_difficulty", r.network, err, start)
	}()

	height, ok, err := r.blockHeight(ctx, id)
	if err != nil || !ok {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, totalDifficultyQuery, r.network, height)
	if err != nil {
		return nil, fmt.Errorf("query total difficulty %d: %w", height, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate total difficulty %d: %w", height, err)
		}
		return nil, nil
	}

	td = new(big.Int)
	if err = rows.Scan(td); err != nil {
		return nil, fmt.Errorf("scan total difficulty %d: %w", height, err)
	}
	return td, nil
}
