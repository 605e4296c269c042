package operator

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ProposalSource yields pending block proposals produced off-chain.
	// Returns (nil, nil) when no proposal exists for the height yet.
	ProposalSource interface {
		FetchProposal(ctx context.Context, blockNumber uint32) (*BlockProposal, error)
	}

	// ProofSource yields proofs for committed blocks. Returns (nil, nil)
	// when the proof is not ready yet.
	ProofSource interface {
		FetchProof(ctx context.Context, blockNumber uint32, commitment common.Hash) ([]byte, error)
	}

	// ChainHeight reports the current L1 block number used for expiration
	// accounting.
	ChainHeight interface {
		BlockNumber(ctx context.Context) (uint64, error)
	}

	// Repository persists rollup records for indexing and restarts.
	Repository interface {
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		InsertPriorityRequests(ctx context.Context, requests []model.PriorityRequest) error
		InsertPendingBalances(ctx context.Context, balances []model.PendingBalance) error
	}

	// EventSink journals state events, typically into a rate-limited batcher.
	EventSink interface {
		Add(ctx context.Context, event model.Event) error
	}

	CommitterMetrics interface {
		ObserveFetchProposals(err error, started time.Time)
		ObserveCommit(err error, operations int, started time.Time)
	}

	VerifierMetrics interface {
		ObserveFetchProof(err error, started time.Time)
		ObserveVerify(err error, started time.Time)
	}

	ExodusMetrics interface {
		ObserveCheck(exodus bool, started time.Time)
		ObserveCancelBatch(err error, processed int, started time.Time)
	}
)

// BlockProposal is an off-chain block proposal awaiting commitment.
type BlockProposal struct {
	Number       uint32
	FeeAccount   uint32
	NewStateRoot common.Hash
	PublicData   []byte
}
