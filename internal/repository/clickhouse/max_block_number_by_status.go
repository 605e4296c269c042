package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// MaxBlockNumberByStatus returns the highest block number stored with the
// given status, or zero if no such block exists.
func (r *Repository) MaxBlockNumberByStatus(ctx context.Context, status model.BlockStatus) (uint32, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_number_by_status", r.network, err, start)
	}()

	const query = `
SELECT coalesce(max(number), toUInt32(0)) AS max_number
FROM rollup_blocks FINAL
WHERE network = ? AND status = ?`

	rows, err := r.conn.Query(ctx, query, string(r.network), string(status))
	if err != nil {
		return 0, fmt.Errorf("query max block number: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var number uint32
	if !rows.Next() {
		return 0, fmt.Errorf("max block number not found")
	}

	if err = rows.Scan(&number); err != nil {
		return 0, fmt.Errorf("scan max block number: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block number: %w", err)
	}

	return number, nil
}
