package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// InsertPendingBalances stores withdrawable balance rows in ClickHouse. The
// table is a ReplacingMergeTree keyed by (network, owner, token_id); the
// latest row wins.
func (r *Repository) InsertPendingBalances(ctx context.Context, balances []model.PendingBalance) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_pending_balances", r.network, err, start)
	}()

	if len(balances) == 0 {
		return nil
	}

	const query = `
INSERT INTO rollup_pending_balances (
	network,
	owner,
	token_id,
	amount,
	updated_at_block
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare pending balances batch: %w", err)
	}

	for _, balance := range balances {
		amount := balance.Amount
		if amount == nil {
			amount = new(big.Int)
		}
		if err = batch.Append(
			string(r.network),
			balance.Owner.Hex(),
			balance.TokenID,
			amount,
			balance.UpdatedAtBlock,
		); err != nil {
			return fmt.Errorf("append pending balance: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert pending balances: %w", err)
	}
	return nil
}
