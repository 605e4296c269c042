// Package model defines domain models for the rollup state-transition core.
package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// OpType is the one-byte opcode tag carried in the first chunk of every
// public-data operation.
type OpType uint8

const (
	OpNoop         OpType = 0x00
	OpDeposit      OpType = 0x01
	OpWithdraw     OpType = 0x03
	OpFullExit     OpType = 0x06
	OpChangePubKey OpType = 0x07
)

// Chunks returns the fixed number of 8-byte chunks the operation occupies in
// block public data. Zero means the opcode is unknown.
func (t OpType) Chunks() int {
	switch t {
	case OpNoop:
		return 1
	case OpDeposit, OpWithdraw, OpFullExit, OpChangePubKey:
		return 6
	default:
		return 0
	}
}

// Priority reports whether operations of this type must be matched against the
// priority request queue during block commit.
func (t OpType) Priority() bool {
	return t == OpDeposit || t == OpFullExit
}

func (t OpType) String() string {
	switch t {
	case OpNoop:
		return "noop"
	case OpDeposit:
		return "deposit"
	case OpWithdraw:
		return "withdraw"
	case OpFullExit:
		return "full_exit"
	case OpChangePubKey:
		return "change_pubkey"
	default:
		return "unknown"
	}
}

// Operation is a decoded public-data record. Exactly one variant type
// implements it per opcode.
type Operation interface {
	OpType() OpType
}

// Noop fills the tail of a block's public data up to the circuit capacity.
type Noop struct{}

func (Noop) OpType() OpType { return OpNoop }

// Deposit moves funds from an L1 account into the target rollup account.
// Entered via the priority queue.
type Deposit struct {
	AccountID uint32
	TokenID   uint16
	Amount    *big.Int
	Owner     common.Address
}

func (Deposit) OpType() OpType { return OpDeposit }

// Withdraw (partial exit) moves funds from a rollup account back to an L1
// address. The fee is burned on the rollup side and travels packed.
type Withdraw struct {
	AccountID uint32
	TokenID   uint16
	Amount    *big.Int
	Fee       *big.Int
	Owner     common.Address
}

func (Withdraw) OpType() OpType { return OpWithdraw }

// FullExit withdraws the entire balance of one token for an account.
// Entered via the priority queue; the amount is filled in by the operator
// when the block is formed.
type FullExit struct {
	AccountID uint32
	Owner     common.Address
	TokenID   uint16
	Amount    *big.Int
}

func (FullExit) OpType() OpType { return OpFullExit }

// ChangePubKey rotates the signing key of a rollup account.
type ChangePubKey struct {
	AccountID  uint32
	PubKeyHash [20]byte
	Owner      common.Address
	Nonce      uint32
}

func (ChangePubKey) OpType() OpType { return OpChangePubKey }
