// Package state implements the rollup state-transition core: the priority
// request queue, the withdrawable balance ledger, the block commit/verify
// lifecycle and the exodus escape hatch. The on-chain contract and the
// operator node must agree on this logic bit-for-bit.
//
// Every entry point is atomic: it runs under the state lock inside an
// explicit transaction boundary, so a failed call leaves no partial mutation
// behind, mirroring whole-call-revert semantics of the contract runtime.
package state

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/verifier"
)

// BalanceKey addresses one withdrawable balance entry.
type BalanceKey struct {
	Owner   common.Address
	TokenID uint16
}

// State holds all mutable rollup state. Construct with New; mutate only
// through the exported entry points.
type State struct {
	mu       sync.RWMutex
	params   Params
	verifier verifier.ProofVerifier

	totalBlocksCommitted uint32
	totalBlocksVerified  uint32
	blocks               map[uint32]*model.Block

	firstPriorityRequestID         uint64
	totalOpenPriorityRequests      uint64
	totalCommittedPriorityRequests uint64
	requests                       map[uint64]model.PriorityRequest

	balances map[BalanceKey]*big.Int

	exodus bool
}

// New builds an empty state with the given protocol params and proof oracle.
func New(params Params, v verifier.ProofVerifier) *State {
	return &State{
		params:   params,
		verifier: v,
		blocks:   make(map[uint32]*model.Block),
		requests: make(map[uint64]model.PriorityRequest),
		balances: make(map[BalanceKey]*big.Int),
	}
}

type snapshot struct {
	totalBlocksCommitted uint32
	totalBlocksVerified  uint32
	blocks               map[uint32]*model.Block

	firstPriorityRequestID         uint64
	totalOpenPriorityRequests      uint64
	totalCommittedPriorityRequests uint64
	requests                       map[uint64]model.PriorityRequest

	balances map[BalanceKey]*big.Int

	exodus bool
}

func (s *State) snapshotLocked() snapshot {
	blocks := make(map[uint32]*model.Block, len(s.blocks))
	for k, v := range s.blocks {
		b := *v
		blocks[k] = &b
	}
	requests := make(map[uint64]model.PriorityRequest, len(s.requests))
	for k, v := range s.requests {
		requests[k] = v
	}
	balances := make(map[BalanceKey]*big.Int, len(s.balances))
	for k, v := range s.balances {
		balances[k] = new(big.Int).Set(v)
	}
	return snapshot{
		totalBlocksCommitted:           s.totalBlocksCommitted,
		totalBlocksVerified:            s.totalBlocksVerified,
		blocks:                         blocks,
		firstPriorityRequestID:         s.firstPriorityRequestID,
		totalOpenPriorityRequests:      s.totalOpenPriorityRequests,
		totalCommittedPriorityRequests: s.totalCommittedPriorityRequests,
		requests:                       requests,
		balances:                       balances,
		exodus:                         s.exodus,
	}
}

func (s *State) restoreLocked(snap snapshot) {
	s.totalBlocksCommitted = snap.totalBlocksCommitted
	s.totalBlocksVerified = snap.totalBlocksVerified
	s.blocks = snap.blocks
	s.firstPriorityRequestID = snap.firstPriorityRequestID
	s.totalOpenPriorityRequests = snap.totalOpenPriorityRequests
	s.totalCommittedPriorityRequests = snap.totalCommittedPriorityRequests
	s.requests = snap.requests
	s.balances = snap.balances
	s.exodus = snap.exodus
}

// runTx executes fn inside a transaction boundary: on error the state is
// rolled back to the snapshot taken before fn ran.
func (s *State) runTx(fn func() ([]model.Event, error)) ([]model.Event, error) {
	snap := s.snapshotLocked()
	events, err := fn()
	if err != nil {
		s.restoreLocked(snap)
		return nil, err
	}
	return events, nil
}

// TotalBlocksCommitted returns the number of the highest committed block.
func (s *State) TotalBlocksCommitted() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalBlocksCommitted
}

// TotalBlocksVerified returns the number of the highest verified block.
func (s *State) TotalBlocksVerified() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalBlocksVerified
}

// TotalOpenPriorityRequests returns the count of queued, unverified requests.
func (s *State) TotalOpenPriorityRequests() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalOpenPriorityRequests
}

// FirstPriorityRequestID returns the serial id at the queue head.
func (s *State) FirstPriorityRequestID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firstPriorityRequestID
}

// ExodusMode reports whether the irreversible exodus flag is set.
func (s *State) ExodusMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exodus
}

// BlockByNumber returns a copy of the block record, if committed.
func (s *State) BlockByNumber(number uint32) (model.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[number]
	if !ok {
		return model.Block{}, false
	}
	return *b, true
}

// BalanceToWithdraw returns the current withdrawable balance for the owner
// and token.
func (s *State) BalanceToWithdraw(owner common.Address, tokenID uint16) *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.balances[BalanceKey{Owner: owner, TokenID: tokenID}]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}
