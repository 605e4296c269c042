package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// InsertEvents stores journal event rows in ClickHouse.
func (r *Repository) InsertEvents(ctx context.Context, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", r.network, err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO rollup_events (
	network,
	type,
	serial_id,
	op_type,
	pub_data,
	fee,
	expiration_block,
	block_number,
	total_blocks_committed,
	total_blocks_verified
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, event := range events {
		fee := event.Fee
		if fee == nil {
			fee = new(big.Int)
		}
		if err = batch.Append(
			string(r.network),
			string(event.Type),
			event.SerialID,
			uint8(event.OpType),
			hexutil.Encode(event.PubData),
			fee,
			event.ExpirationBlock,
			event.BlockNumber,
			event.TotalBlocksCommitted,
			event.TotalBlocksVerified,
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
