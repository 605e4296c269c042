package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// InsertPriorityRequests stores priority request rows in ClickHouse.
func (r *Repository) InsertPriorityRequests(ctx context.Context, requests []model.PriorityRequest) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_priority_requests", r.network, err, start)
	}()

	if len(requests) == 0 {
		return nil
	}

	const query = `
INSERT INTO rollup_priority_requests (
	network,
	serial_id,
	op_type,
	pub_data,
	fee,
	expiration_block
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare priority requests batch: %w", err)
	}

	for _, request := range requests {
		fee := request.Fee
		if fee == nil {
			fee = new(big.Int)
		}
		if err = batch.Append(
			string(r.network),
			request.SerialID,
			uint8(request.Type),
			hexutil.Encode(request.PubData),
			fee,
			request.ExpirationBlock,
		); err != nil {
			return fmt.Errorf("append priority request: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert priority requests: %w", err)
	}
	return nil
}
