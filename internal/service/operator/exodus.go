package operator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zkmesh/rollupcore-backend/internal/clock"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/codec"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/state"
)

// ExodusService watches for the exodus trigger conditions and, once the
// state enters exodus mode, drains the open deposit queue in batches so
// depositors recover their funds as withdrawable balances.
type ExodusService struct {
	state   *state.State
	chain   ChainHeight
	repo    Repository
	events  EventSink
	logger  *zap.Logger
	metrics ExodusMetrics
	network model.Network

	cancelBatchSize uint64
	pollInterval    time.Duration
}

// NewExodusService builds the exodus watcher with the provided dependencies.
func NewExodusService(
	st *state.State,
	chain ChainHeight,
	repo Repository,
	events EventSink,
	network model.Network,
	logger *zap.Logger,
	metrics ExodusMetrics,
) (*ExodusService, error) {
	if st == nil || chain == nil || repo == nil || events == nil {
		return nil, errors.New("exodus: nil dependency")
	}
	return &ExodusService{
		state:           st,
		chain:           chain,
		repo:            repo,
		events:          events,
		logger:          logger,
		metrics:         metrics,
		network:         network,
		cancelBatchSize: defaultCancelBatchSize,
		pollInterval:    defaultPollInterval,
	}, nil
}

// Run polls the trigger conditions until the context is canceled.
func (s *ExodusService) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.runOnce(ctx); err != nil {
			return err
		}

		if err := clock.SleepWithContext(ctx, s.pollInterval); err != nil {
			return err
		}
	}
}

func (s *ExodusService) runOnce(ctx context.Context) error {
	height, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("chain height: %w", err)
	}

	started := time.Now()
	events, exodus := s.state.CheckExodus(height)
	s.metrics.ObserveCheck(exodus, started)
	s.emitEvents(ctx, events)

	if len(events) > 0 {
		s.logger.Warn("exodus mode entered",
			zap.String("network", string(s.network)),
			zap.Uint64("eth_block", height))
	}
	if !exodus {
		return nil
	}

	return s.drainDeposits(ctx)
}

// drainDeposits cancels open requests batch by batch until the queue is
// empty. Refunded deposit balances are persisted per batch.
func (s *ExodusService) drainDeposits(ctx context.Context) error {
	for s.state.TotalOpenPriorityRequests() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		pending := s.state.OpenPriorityRequests(s.cancelBatchSize)

		started := time.Now()
		processed, events, err := s.state.CancelOutstandingDeposits(s.cancelBatchSize)
		s.metrics.ObserveCancelBatch(err, int(processed), started)
		s.emitEvents(ctx, events)
		if err != nil {
			return fmt.Errorf("cancel outstanding deposits: %w", err)
		}
		if processed == 0 {
			return nil
		}

		if err := s.persistRefunds(ctx, pending[:processed]); err != nil {
			return err
		}

		s.logger.Info("canceled outstanding deposits",
			zap.String("network", string(s.network)),
			zap.Uint64("processed", processed),
			zap.Uint64("remaining", s.state.TotalOpenPriorityRequests()))
	}
	return nil
}

// persistRefunds records the post-refund withdrawable balance of every
// deposit in the canceled batch. Full exits carry no funds to refund.
func (s *ExodusService) persistRefunds(ctx context.Context, canceled []model.PriorityRequest) error {
	balances := make([]model.PendingBalance, 0, len(canceled))
	for _, request := range canceled {
		if request.Type != model.OpDeposit {
			continue
		}
		tokenID, _, owner, err := codec.DecodeDepositRequest(request.PubData)
		if err != nil {
			return fmt.Errorf("decode canceled deposit %d: %w", request.SerialID, err)
		}
		balances = append(balances, model.PendingBalance{
			Owner:          owner,
			TokenID:        tokenID,
			Amount:         s.state.BalanceToWithdraw(owner, tokenID),
			UpdatedAtBlock: s.state.TotalBlocksVerified(),
		})
	}
	if len(balances) == 0 {
		return nil
	}
	if err := s.repo.InsertPendingBalances(ctx, balances); err != nil {
		return fmt.Errorf("persist refunded balances: %w", err)
	}
	return nil
}

func (s *ExodusService) emitEvents(ctx context.Context, events []model.Event) {
	for _, event := range events {
		if err := s.events.Add(ctx, event); err != nil {
			s.logger.Error("event not journaled",
				zap.String("type", string(event.Type)),
				zap.Error(err))
		}
	}
}
