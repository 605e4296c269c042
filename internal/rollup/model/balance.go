package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PendingBalance is a withdrawable balance row produced when a verified
// block credits an owner, or when a deposit is refunded in exodus mode.
type PendingBalance struct {
	Owner          common.Address
	TokenID        uint16
	Amount         *big.Int
	UpdatedAtBlock uint32
}
