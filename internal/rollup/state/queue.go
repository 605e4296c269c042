package state

import (
	"math/big"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/codec"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// AddPriorityRequest appends a user-initiated deposit or full-exit request to
// the queue and returns its serial id. Serial ids are assigned strictly
// monotonically starting at zero; requests expire PriorityExpiration L1
// blocks after submission.
func (s *State) AddPriorityRequest(opType model.OpType, pubData []byte, fee *big.Int, currentEthBlock uint64) (uint64, []model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exodusEvents := s.triggerExodusIfExpiredLocked(currentEthBlock)
	if s.exodus {
		return 0, exodusEvents, ErrExodusActive
	}

	if !opType.Priority() {
		return 0, nil, ErrPriorityRequestMismatch
	}
	wantLen := codec.DepositRequestLen
	if opType == model.OpFullExit {
		wantLen = codec.FullExitRequestLen
	}
	if len(pubData) != wantLen {
		return 0, nil, codec.ErrBufferUnderrun
	}

	if fee == nil {
		fee = new(big.Int)
	}
	serialID := s.firstPriorityRequestID + s.totalOpenPriorityRequests
	request := model.PriorityRequest{
		SerialID:        serialID,
		Type:            opType,
		PubData:         append([]byte(nil), pubData...),
		Fee:             new(big.Int).Set(fee),
		ExpirationBlock: currentEthBlock + s.params.PriorityExpiration,
	}
	s.requests[serialID] = request
	s.totalOpenPriorityRequests++

	event := model.Event{
		Type:            model.EventNewPriorityRequest,
		SerialID:        serialID,
		OpType:          opType,
		PubData:         request.PubData,
		Fee:             request.Fee,
		ExpirationBlock: request.ExpirationBlock,
	}
	return serialID, []model.Event{event}, nil
}

// popRequestsLocked advances the queue head past n requests. The requests
// stay in the map; only the head pointer moves.
func (s *State) popRequestsLocked(n uint64) error {
	if n > s.totalOpenPriorityRequests {
		return ErrInsufficientOpenRequests
	}
	s.firstPriorityRequestID += n
	s.totalOpenPriorityRequests -= n
	return nil
}

// OpenPriorityRequests returns up to limit open requests starting at the
// queue head, in serial id order. limit == 0 returns all open requests.
func (s *State) OpenPriorityRequests(limit uint64) []model.PriorityRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.totalOpenPriorityRequests
	if limit > 0 && limit < n {
		n = limit
	}
	requests := make([]model.PriorityRequest, 0, n)
	for i := uint64(0); i < n; i++ {
		request, ok := s.requests[s.firstPriorityRequestID+i]
		if !ok {
			break
		}
		request.PubData = append([]byte(nil), request.PubData...)
		request.Fee = new(big.Int).Set(request.Fee)
		requests = append(requests, request)
	}
	return requests
}

// ExpiredRequestCount returns how many open requests, scanning from the
// head, have expired as of currentEthBlock.
func (s *State) ExpiredRequestCount(currentEthBlock uint64) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiredRequestCountLocked(currentEthBlock)
}

func (s *State) expiredRequestCountLocked(currentEthBlock uint64) uint64 {
	var count uint64
	for i := uint64(0); i < s.totalOpenPriorityRequests; i++ {
		request, ok := s.requests[s.firstPriorityRequestID+i]
		if !ok || request.ExpirationBlock >= currentEthBlock {
			break
		}
		count++
	}
	return count
}
