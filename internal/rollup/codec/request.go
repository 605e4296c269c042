package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// Priority request pubData layouts. A queued request stores only the fields
// the user committed to on-chain; operator-assigned fields (the rollup account
// id of a deposit, the settled amount of a full exit) are excluded so that a
// block-decoded operation can be matched byte-for-byte against the original
// request.
//
//	+----------+-----------------------------------------+
//	| Deposit  | tokenId(2) ‖ amount(16) ‖ owner(20)     |
//	| FullExit | accountId(3) ‖ owner(20) ‖ tokenId(2)   |
//	+----------+-----------------------------------------+

// DepositRequestLen is the byte length of a deposit request's pubData.
const DepositRequestLen = tokenIDLen + amountLen + addressLen

// FullExitRequestLen is the byte length of a full-exit request's pubData.
const FullExitRequestLen = accountIDLen + addressLen + tokenIDLen

// DepositRequestPubData builds the canonical pubData for a deposit priority
// request.
func DepositRequestPubData(tokenID uint16, amount *big.Int, owner common.Address) ([]byte, error) {
	out := make([]byte, DepositRequestLen)
	binary.BigEndian.PutUint16(out[:2], tokenID)
	if err := putAmount(out[2:18], amount); err != nil {
		return nil, err
	}
	copy(out[18:38], owner.Bytes())
	return out, nil
}

// FullExitRequestPubData builds the canonical pubData for a full-exit priority
// request.
func FullExitRequestPubData(accountID uint32, owner common.Address, tokenID uint16) ([]byte, error) {
	out := make([]byte, FullExitRequestLen)
	if err := putAccountID(out[:3], accountID); err != nil {
		return nil, err
	}
	copy(out[3:23], owner.Bytes())
	binary.BigEndian.PutUint16(out[23:25], tokenID)
	return out, nil
}

// DecodeDepositRequest parses a deposit request's pubData. Used by the exodus
// path to refund outstanding depositors.
func DecodeDepositRequest(pubData []byte) (tokenID uint16, amount *big.Int, owner common.Address, err error) {
	if len(pubData) != DepositRequestLen {
		return 0, nil, common.Address{}, ErrBufferUnderrun
	}
	tokenID = binary.BigEndian.Uint16(pubData[:2])
	amount = new(big.Int).SetBytes(pubData[2:18])
	owner = common.BytesToAddress(pubData[18:38])
	return tokenID, amount, owner, nil
}

// RequestPubData projects a block-decoded operation onto the pubData of the
// priority request that must have authorized it. Returns ErrUnknownOperation
// for non-priority operations.
func RequestPubData(op model.Operation) ([]byte, error) {
	switch v := op.(type) {
	case model.Deposit:
		return DepositRequestPubData(v.TokenID, v.Amount, v.Owner)
	case model.FullExit:
		return FullExitRequestPubData(v.AccountID, v.Owner, v.TokenID)
	default:
		return nil, ErrUnknownOperation
	}
}
