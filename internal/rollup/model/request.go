package model

import "math/big"

// PriorityRequest is a user-initiated operation queued on-chain, guaranteed to
// be included in a block or refunded. Requests are never physically deleted;
// the queue advances its head past them.
type PriorityRequest struct {
	SerialID        uint64
	Type            OpType
	PubData         []byte
	Fee             *big.Int
	ExpirationBlock uint64
}
