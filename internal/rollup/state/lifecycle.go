package state

import (
	"bytes"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/codec"
	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// CommitBlock appends the next rollup block. The public data is decoded into
// operations, priority operations are matched byte-for-byte against the
// queue, and the block commitment is computed over the header fields and the
// raw public data. Blocks must be committed strictly in order.
func (s *State) CommitBlock(expectedNumber, feeAccount uint32, newStateRoot common.Hash, publicData []byte, validator common.Address, currentEthBlock uint64) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exodusEvents := s.triggerExodusIfExpiredLocked(currentEthBlock)
	if s.exodus {
		return exodusEvents, ErrExodusActive
	}

	return s.runTx(func() ([]model.Event, error) {
		if expectedNumber != s.totalBlocksCommitted+1 {
			return nil, ErrWrongCommitNumber
		}

		operations, err := codec.DecodeBlock(publicData)
		if err != nil {
			return nil, err
		}

		priorityCount, err := s.matchPriorityOperationsLocked(operations)
		if err != nil {
			return nil, err
		}

		block := &model.Block{
			Number:              expectedNumber,
			FeeAccount:          feeAccount,
			StateRoot:           newStateRoot,
			Commitment:          s.blockCommitmentLocked(expectedNumber, feeAccount, newStateRoot, publicData),
			OnchainOpsHash:      onchainOpsHash(operations),
			PriorityOperations:  priorityCount,
			Operations:          operations,
			PublicData:          append([]byte(nil), publicData...),
			CommittedAtEthBlock: currentEthBlock,
			Validator:           validator,
			Status:              model.BlockCommitted,
		}
		s.blocks[expectedNumber] = block
		s.totalBlocksCommitted = expectedNumber
		s.totalCommittedPriorityRequests += priorityCount

		return []model.Event{{Type: model.EventBlockCommitted, BlockNumber: expectedNumber}}, nil
	})
}

// matchPriorityOperationsLocked checks each deposit/full-exit operation, in
// block order, against the next unmatched queued request. A single mismatch
// fails the whole commit: the operator cannot alter user-submitted requests.
func (s *State) matchPriorityOperationsLocked(operations []model.Operation) (uint64, error) {
	var matched uint64
	for _, op := range operations {
		if !op.OpType().Priority() {
			continue
		}
		offset := s.totalCommittedPriorityRequests + matched
		if offset >= s.totalOpenPriorityRequests {
			return 0, ErrInsufficientOpenRequests
		}
		request := s.requests[s.firstPriorityRequestID+offset]
		if request.Type != op.OpType() {
			return 0, ErrPriorityRequestMismatch
		}
		requestData, err := codec.RequestPubData(op)
		if err != nil {
			return 0, err
		}
		if !bytes.Equal(requestData, request.PubData) {
			return 0, ErrPriorityRequestMismatch
		}
		matched++
	}
	return matched, nil
}

// VerifyBlock accepts a proof for the next unverified block, applies the
// on-chain effects of its operations to the balance ledger, and advances the
// priority queue head past the block's matched requests.
func (s *State) VerifyBlock(blockNumber uint32, proof []byte, currentEthBlock uint64) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exodusEvents := s.triggerExodusIfExpiredLocked(currentEthBlock)
	if s.exodus {
		return exodusEvents, ErrExodusActive
	}

	return s.runTx(func() ([]model.Event, error) {
		if blockNumber != s.totalBlocksVerified+1 || blockNumber > s.totalBlocksCommitted {
			return nil, ErrWrongVerifyNumber
		}
		block := s.blocks[blockNumber]
		if !s.verifier.Verify(block.Commitment, proof) {
			return nil, ErrProofRejected
		}

		for _, op := range block.Operations {
			switch v := op.(type) {
			case model.Withdraw:
				s.creditLocked(v.Owner, v.TokenID, v.Amount)
			case model.FullExit:
				s.creditLocked(v.Owner, v.TokenID, v.Amount)
			}
		}

		if err := s.popRequestsLocked(block.PriorityOperations); err != nil {
			return nil, err
		}
		s.totalCommittedPriorityRequests -= block.PriorityOperations

		block.Status = model.BlockVerified
		s.totalBlocksVerified = blockNumber

		return []model.Event{{Type: model.EventBlockVerified, BlockNumber: blockNumber}}, nil
	})
}

// RevertBlocks destroys up to maxBlocks committed-but-unverified blocks from
// the tail and refunds their matched priority request count. Permitted in
// exodus; this is how stale commitments are wiped after the system stalls.
func (s *State) RevertBlocks(maxBlocks uint32) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runTx(func() ([]model.Event, error) {
		if s.totalBlocksCommitted <= s.totalBlocksVerified {
			return nil, ErrRevertNotAllowed
		}

		revertable := s.totalBlocksCommitted - s.totalBlocksVerified
		if maxBlocks < revertable {
			revertable = maxBlocks
		}
		for i := uint32(0); i < revertable; i++ {
			number := s.totalBlocksCommitted
			s.totalCommittedPriorityRequests -= s.blocks[number].PriorityOperations
			delete(s.blocks, number)
			s.totalBlocksCommitted--
		}

		return []model.Event{{
			Type:                 model.EventBlocksReverted,
			TotalBlocksVerified:  s.totalBlocksVerified,
			TotalBlocksCommitted: s.totalBlocksCommitted,
		}}, nil
	})
}

// blockCommitmentLocked computes the deterministic commitment used as the
// public input to proof verification:
//
//	keccak256(blockNumber(4) ‖ feeAccount(4) ‖ oldStateRoot(32) ‖ newStateRoot(32) ‖ publicData)
func (s *State) blockCommitmentLocked(number, feeAccount uint32, newStateRoot common.Hash, publicData []byte) common.Hash {
	oldRoot := s.params.GenesisRoot
	if number > 1 {
		oldRoot = s.blocks[number-1].StateRoot
	}

	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], number)
	binary.BigEndian.PutUint32(header[4:], feeAccount)
	return crypto.Keccak256Hash(header[:], oldRoot.Bytes(), newStateRoot.Bytes(), publicData)
}

// onchainOpsHash chains the encodings of operations that require on-chain
// execution after verification.
func onchainOpsHash(operations []model.Operation) common.Hash {
	var h common.Hash
	for _, op := range operations {
		switch op.OpType() {
		case model.OpWithdraw, model.OpFullExit:
			data, err := codec.EncodeOperation(op)
			if err != nil {
				continue
			}
			h = crypto.Keccak256Hash(h.Bytes(), data)
		}
	}
	return h
}
