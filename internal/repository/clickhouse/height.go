package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-bulk-rpc/internal/model"
)

const (
	latestHeightQuery = `
SELECT number
FROM eth_blocks FINAL
WHERE network = ?
ORDER BY number DESC
LIMIT 1`

	earliestHeightQuery = `
SELECT number
FROM eth_blocks FINAL
WHERE network = ?
ORDER BY number ASC
LIMIT 1`
)

// blockHeight resolves id to an archived height. ok is false for pending
// blocks, which are never archived, and for tags on an empty archive.
func (r *Repository) blockHeight(ctx context.Context, id model.BlockIdentifier) (height uint64, ok bool, err error) {
	var query string
	switch id.Tag() {
	case model.TagNumber:
		height, _ = id.Number()
		return height, true, nil
	case model.TagLatest:
		query = latestHeightQuery
	case model.TagEarliest:
		query = earliestHeightQuery
	default:
		return 0, false, nil
	}

	rows, err := r.conn.Query(ctx, query, r.network)
	if err != nil {
		return 0, false, fmt.Errorf("query %s height: %w", id.Tag(), err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate %s height: %w", id.Tag(), err)
		}
		return 0, false, nil
	}
	if err = rows.Scan(&height); err != nil {
		return 0, false, fmt.Errorf("scan %s height: %w", id.Tag(), err)
	}
	return height, true, nil
}
