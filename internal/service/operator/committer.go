package operator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/zkmesh/rollupcore-backend/internal/clock"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/state"
	"github.com/zkmesh/rollupcore-backend/pkg/workerpool"
)

// CommitterService pulls pending block proposals and commits them to the
// rollup state in strict block-number order, persisting every committed
// block through the repository.
type CommitterService struct {
	state     *state.State
	proposals ProposalSource
	chain     ChainHeight
	repo      Repository
	events    EventSink
	logger    *zap.Logger
	metrics   CommitterMetrics
	network   model.Network
	validator common.Address

	proposalWindow int
	workerCount    int
	pollInterval   time.Duration
	idleInterval   time.Duration
}

// NewCommitterService builds the committer with the provided dependencies.
func NewCommitterService(
	st *state.State,
	proposals ProposalSource,
	chain ChainHeight,
	repo Repository,
	events EventSink,
	network model.Network,
	validator common.Address,
	logger *zap.Logger,
	metrics CommitterMetrics,
) (*CommitterService, error) {
	if st == nil || proposals == nil || chain == nil || repo == nil || events == nil {
		return nil, errors.New("committer: nil dependency")
	}
	return &CommitterService{
		state:          st,
		proposals:      proposals,
		chain:          chain,
		repo:           repo,
		events:         events,
		logger:         logger,
		metrics:        metrics,
		network:        network,
		validator:      validator,
		proposalWindow: defaultProposalWindow,
		workerCount:    defaultWorkerCount,
		pollInterval:   defaultPollInterval,
		idleInterval:   idleSleepDuration,
	}, nil
}

// Run polls for proposals until the context is canceled.
func (s *CommitterService) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		committed, err := s.runOnce(ctx)
		if err != nil {
			return err
		}

		sleep := s.pollInterval
		if committed == 0 {
			sleep = s.idleInterval
		}
		if err := clock.SleepWithContext(ctx, sleep); err != nil {
			return err
		}
	}
}

// runOnce fetches a window of proposals and commits the contiguous prefix
// starting at the next expected block number.
func (s *CommitterService) runOnce(ctx context.Context) (int, error) {
	height, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("chain height: %w", err)
	}

	next := s.state.TotalBlocksCommitted() + 1
	window, err := s.fetchWindow(ctx, next)
	if err != nil {
		return 0, err
	}

	committed := 0
	for _, proposal := range window {
		if proposal == nil {
			break
		}
		if err := s.commitProposal(ctx, proposal, height); err != nil {
			return committed, err
		}
		committed++
	}

	return committed, nil
}

func (s *CommitterService) fetchWindow(ctx context.Context, from uint32) ([]*BlockProposal, error) {
	started := time.Now()
	window := make([]*BlockProposal, s.proposalWindow)
	var mu sync.Mutex

	indices := make([]int, s.proposalWindow)
	for i := range indices {
		indices[i] = i
	}

	err := workerpool.Process(ctx, s.workerCount, indices, func(ctx context.Context, i int) error {
		proposal, err := s.proposals.FetchProposal(ctx, from+uint32(i))
		if err != nil {
			return fmt.Errorf("fetch proposal %d: %w", from+uint32(i), err)
		}
		mu.Lock()
		window[i] = proposal
		mu.Unlock()
		return nil
	}, nil)
	s.metrics.ObserveFetchProposals(err, started)
	if err != nil {
		return nil, err
	}
	return window, nil
}

func (s *CommitterService) commitProposal(ctx context.Context, proposal *BlockProposal, height uint64) error {
	started := time.Now()
	events, err := s.state.CommitBlock(
		proposal.Number,
		proposal.FeeAccount,
		proposal.NewStateRoot,
		proposal.PublicData,
		s.validator,
		height,
	)
	s.emitEvents(ctx, events)

	block, ok := s.state.BlockByNumber(proposal.Number)
	s.metrics.ObserveCommit(err, len(block.Operations), started)
	if err != nil {
		return fmt.Errorf("commit block %d: %w", proposal.Number, err)
	}
	if !ok {
		return fmt.Errorf("committed block %d not found", proposal.Number)
	}

	if err := s.repo.InsertBlocks(ctx, []model.Block{block}); err != nil {
		return fmt.Errorf("persist block %d: %w", proposal.Number, err)
	}

	s.logger.Info("committed block",
		zap.String("network", string(s.network)),
		zap.Uint32("number", block.Number),
		zap.Int("operations", len(block.Operations)),
		zap.Uint64("priority_operations", block.PriorityOperations))

	return nil
}

func (s *CommitterService) emitEvents(ctx context.Context, events []model.Event) {
	for _, event := range events {
		if err := s.events.Add(ctx, event); err != nil {
			s.logger.Error("event not journaled",
				zap.String("type", string(event.Type)),
				zap.Error(err))
		}
	}
}
