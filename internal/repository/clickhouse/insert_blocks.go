package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// InsertBlocks stores block rows in ClickHouse. The blocks table is a
// ReplacingMergeTree keyed by (network, number), so re-inserting a block
// after verification supersedes the committed row.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", r.network, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO rollup_blocks (
	network,
	number,
	fee_account,
	state_root,
	commitment,
	onchain_ops_hash,
	priority_operations,
	public_data,
	committed_at_eth_block,
	validator,
	status
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			string(r.network),
			block.Number,
			block.FeeAccount,
			block.StateRoot.Hex(),
			block.Commitment.Hex(),
			block.OnchainOpsHash.Hex(),
			block.PriorityOperations,
			hexutil.Encode(block.PublicData),
			block.CommittedAtEthBlock,
			block.Validator.Hex(),
			string(block.Status),
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
