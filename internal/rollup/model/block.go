package model

import "github.com/ethereum/go-ethereum/common"

// Network identifies the chain the operator is wired to.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// BlockStatus describes the lifecycle stage of a rollup block.
type BlockStatus string

var (
	// BlockCommitted marks a block appended on-chain but not yet proven.
	BlockCommitted BlockStatus = "committed"
	// BlockVerified marks a block whose proof has been accepted.
	BlockVerified BlockStatus = "verified"
)

// Block is a rollup block tracked by the lifecycle state machine.
// Immutable once committed; only a revert removes it.
type Block struct {
	Number             uint32
	FeeAccount         uint32
	StateRoot          common.Hash
	Commitment         common.Hash
	OnchainOpsHash     common.Hash
	PriorityOperations uint64
	Operations         []Operation
	PublicData         []byte
	CommittedAtEthBlock uint64
	Validator          common.Address
	Status             BlockStatus
}
