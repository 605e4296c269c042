package operator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zkmesh/rollupcore-backend/internal/clock"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/state"
)

// VerifierService fetches proofs for committed blocks and applies them in
// strict block-number order. A verified block unlocks the withdrawable
// balances of its withdraw and full-exit operations.
type VerifierService struct {
	state   *state.State
	proofs  ProofSource
	chain   ChainHeight
	repo    Repository
	events  EventSink
	logger  *zap.Logger
	metrics VerifierMetrics
	network model.Network

	pollInterval time.Duration
	idleInterval time.Duration
}

// NewVerifierService builds the verifier with the provided dependencies.
func NewVerifierService(
	st *state.State,
	proofs ProofSource,
	chain ChainHeight,
	repo Repository,
	events EventSink,
	network model.Network,
	logger *zap.Logger,
	metrics VerifierMetrics,
) (*VerifierService, error) {
	if st == nil || proofs == nil || chain == nil || repo == nil || events == nil {
		return nil, errors.New("verifier: nil dependency")
	}
	return &VerifierService{
		state:        st,
		proofs:       proofs,
		chain:        chain,
		repo:         repo,
		events:       events,
		logger:       logger,
		metrics:      metrics,
		network:      network,
		pollInterval: defaultPollInterval,
		idleInterval: idleSleepDuration,
	}, nil
}

// Run polls for proofs until the context is canceled.
func (s *VerifierService) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		verified, err := s.runOnce(ctx)
		if err != nil {
			return err
		}

		sleep := s.pollInterval
		if !verified {
			sleep = s.idleInterval
		}
		if err := clock.SleepWithContext(ctx, sleep); err != nil {
			return err
		}
	}
}

func (s *VerifierService) runOnce(ctx context.Context) (bool, error) {
	next := s.state.TotalBlocksVerified() + 1
	if next > s.state.TotalBlocksCommitted() {
		return false, nil
	}

	block, ok := s.state.BlockByNumber(next)
	if !ok {
		return false, fmt.Errorf("committed block %d not found", next)
	}

	started := time.Now()
	proof, err := s.proofs.FetchProof(ctx, next, block.Commitment)
	s.metrics.ObserveFetchProof(err, started)
	if err != nil {
		return false, fmt.Errorf("fetch proof %d: %w", next, err)
	}
	if proof == nil {
		return false, nil
	}

	height, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return false, fmt.Errorf("chain height: %w", err)
	}

	started = time.Now()
	events, err := s.state.VerifyBlock(next, proof, height)
	s.metrics.ObserveVerify(err, started)
	s.emitEvents(ctx, events)
	if err != nil {
		return false, fmt.Errorf("verify block %d: %w", next, err)
	}

	if err := s.persistVerified(ctx, next); err != nil {
		return false, err
	}

	s.logger.Info("verified block",
		zap.String("network", string(s.network)),
		zap.Uint32("number", next))

	return true, nil
}

// persistVerified re-inserts the block row with its verified status and
// records the withdrawable balances the block unlocked. The blocks table is
// a ReplacingMergeTree keyed by block number, so the new row supersedes the
// committed one.
func (s *VerifierService) persistVerified(ctx context.Context, number uint32) error {
	block, ok := s.state.BlockByNumber(number)
	if !ok {
		return fmt.Errorf("verified block %d not found", number)
	}

	if err := s.repo.InsertBlocks(ctx, []model.Block{block}); err != nil {
		return fmt.Errorf("persist verified block %d: %w", number, err)
	}

	balances := s.unlockedBalances(block)
	if len(balances) == 0 {
		return nil
	}
	if err := s.repo.InsertPendingBalances(ctx, balances); err != nil {
		return fmt.Errorf("persist pending balances for block %d: %w", number, err)
	}
	return nil
}

// unlockedBalances reads the current withdrawable balance for every
// (owner, token) pair the block credited, deduplicated.
func (s *VerifierService) unlockedBalances(block model.Block) []model.PendingBalance {
	type key struct {
		owner [20]byte
		token uint16
	}
	seen := make(map[key]struct{})
	balances := make([]model.PendingBalance, 0, len(block.Operations))

	for _, operation := range block.Operations {
		var k key
		switch op := operation.(type) {
		case model.Withdraw:
			k = key{owner: op.Owner, token: op.TokenID}
		case model.FullExit:
			k = key{owner: op.Owner, token: op.TokenID}
		default:
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		balances = append(balances, model.PendingBalance{
			Owner:          k.owner,
			TokenID:        k.token,
			Amount:         s.state.BalanceToWithdraw(k.owner, k.token),
			UpdatedAtBlock: block.Number,
		})
	}
	return balances
}

func (s *VerifierService) emitEvents(ctx context.Context, events []model.Event) {
	for _, event := range events {
		if err := s.events.Add(ctx, event); err != nil {
			s.logger.Error("event not journaled",
				zap.String("type", string(event.Type)),
				zap.Error(err))
		}
	}
}
