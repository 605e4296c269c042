package model

import "math/big"

// EventType tags journal events produced by state entry points.
type EventType string

var (
	EventNewPriorityRequest EventType = "new_priority_request"
	EventBlockCommitted     EventType = "block_committed"
	EventBlockVerified      EventType = "block_verified"
	EventBlocksReverted     EventType = "blocks_reverted"
	EventExodusMode         EventType = "exodus_mode"
)

// Event is a journal record emitted by a state entry point. Only the fields
// relevant to the event type are populated.
type Event struct {
	Type EventType

	// EventNewPriorityRequest
	SerialID        uint64
	OpType          OpType
	PubData         []byte
	Fee             *big.Int
	ExpirationBlock uint64

	// EventBlockCommitted / EventBlockVerified
	BlockNumber uint32

	// EventBlocksReverted
	TotalBlocksVerified  uint32
	TotalBlocksCommitted uint32
}
