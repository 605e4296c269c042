package transport

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/state"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/verifier"
)

var testOwner = common.HexToAddress("0x8ba1f109551bd432803012645ac136ddd64dba72")

func newTestState() *state.State {
	params := state.DefaultParams()
	params.PriorityExpiration = 100
	params.ExpectVerificationIn = 50
	return state.New(params, verifier.AcceptAll{})
}

// fixedHeight is a ChainHeight stub pinned to one L1 block.
type fixedHeight uint64

func (h fixedHeight) BlockNumber(context.Context) (uint64, error) {
	return uint64(h), nil
}

// recordingRepo captures persisted rows for assertions.
type recordingRepo struct {
	blocks   []model.Block
	requests []model.PriorityRequest
	balances []model.PendingBalance
}

func (r *recordingRepo) InsertBlocks(_ context.Context, blocks []model.Block) error {
	r.blocks = append(r.blocks, blocks...)
	return nil
}

func (r *recordingRepo) InsertPriorityRequests(_ context.Context, requests []model.PriorityRequest) error {
	r.requests = append(r.requests, requests...)
	return nil
}

func (r *recordingRepo) InsertPendingBalances(_ context.Context, balances []model.PendingBalance) error {
	r.balances = append(r.balances, balances...)
	return nil
}

// recordingSink captures journaled events.
type recordingSink struct {
	events []model.Event
}

func (s *recordingSink) Add(_ context.Context, event model.Event) error {
	s.events = append(s.events, event)
	return nil
}

func mustBig(t *testing.T, raw string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		t.Fatalf("bad big int fixture %q", raw)
	}
	return v
}
