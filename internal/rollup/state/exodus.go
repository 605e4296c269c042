package state

import (
	"github.com/zkmesh/rollupcore-backend/internal/rollup/codec"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// TriggerExodus sets the irreversible exodus flag. Idempotent: the event is
// emitted only on the first call. Once set, commit and verify are permanently
// disabled and users reclaim funds through the cancellation and withdrawal
// paths.
func (s *State) TriggerExodus() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggerExodusLocked()
}

func (s *State) triggerExodusLocked() []model.Event {
	if s.exodus {
		return nil
	}
	s.exodus = true
	return []model.Event{{Type: model.EventExodusMode}}
}

// CheckExodus runs the lazy expiration evaluation against the current L1
// block and reports whether the system is (now) in exodus. Callers poll this
// instead of relying on a background timer.
func (s *State) CheckExodus(currentEthBlock uint64) ([]model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.triggerExodusIfExpiredLocked(currentEthBlock)
	return events, s.exodus
}

// triggerExodusIfExpiredLocked flips exodus when the oldest unverified
// committed block has outlived ExpectVerificationIn, or the oldest open
// priority request has expired. The flip survives even when the enclosing
// entry point then fails: exodus is not part of the call's transaction.
func (s *State) triggerExodusIfExpiredLocked(currentEthBlock uint64) []model.Event {
	if s.exodus {
		return nil
	}
	if s.totalBlocksCommitted > s.totalBlocksVerified {
		oldest := s.blocks[s.totalBlocksVerified+1]
		if currentEthBlock >= oldest.CommittedAtEthBlock+s.params.ExpectVerificationIn {
			return s.triggerExodusLocked()
		}
	}
	if s.expiredRequestCountLocked(currentEthBlock) > 0 {
		return s.triggerExodusLocked()
	}
	return nil
}

// CancelOutstandingDeposits refunds up to maxRequests open priority requests
// starting at the queue head: deposit requests credit the original depositor
// with the deposited amount, full-exit requests are skipped (there is nothing
// to refund) but still advance the head. Returns the number of requests
// processed; only callable in exodus.
func (s *State) CancelOutstandingDeposits(maxRequests uint64) (uint64, []model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exodus {
		return 0, nil, ErrNotInExodus
	}

	var processed uint64
	events, err := s.runTx(func() ([]model.Event, error) {
		count := maxRequests
		if count > s.totalOpenPriorityRequests {
			count = s.totalOpenPriorityRequests
		}
		for i := uint64(0); i < count; i++ {
			request := s.requests[s.firstPriorityRequestID]
			if request.Type == model.OpDeposit {
				tokenID, amount, owner, err := codec.DecodeDepositRequest(request.PubData)
				if err != nil {
					return nil, err
				}
				s.creditLocked(owner, tokenID, amount)
			}
			if err := s.popRequestsLocked(1); err != nil {
				return nil, err
			}
			processed++
		}
		// any matched-but-unverified count is meaningless once requests are
		// cancelled out from under the reverted commitments
		if s.totalCommittedPriorityRequests > s.totalOpenPriorityRequests {
			s.totalCommittedPriorityRequests = s.totalOpenPriorityRequests
		}
		return nil, nil
	})
	if err != nil {
		return 0, nil, err
	}
	return processed, events, nil
}
