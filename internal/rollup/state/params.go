package state

import "github.com/ethereum/go-ethereum/common"

// Params fixes the protocol constants the state machine is instantiated with.
type Params struct {
	// PriorityExpiration is the number of L1 blocks a priority request may
	// stay open before the system must enter exodus.
	PriorityExpiration uint64
	// ExpectVerificationIn is the number of L1 blocks a committed block may
	// stay unverified before the system must enter exodus.
	ExpectVerificationIn uint64
	// GenesisRoot is the state root the first committed block builds on.
	GenesisRoot common.Hash
}

// DefaultParams mirrors the production contract constants, assuming 15-second
// L1 blocks: requests expire after 3 days, verification is expected within 8
// hours.
func DefaultParams() Params {
	return Params{
		PriorityExpiration:   3 * 24 * 60 * 60 / 15,
		ExpectVerificationIn: 8 * 60 * 60 / 15,
	}
}
