package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// creditLocked adds amount to the owner's withdrawable balance for the token.
// Saturates at the 256-bit ceiling the contract storage imposes. Zero credits
// do not materialize an entry.
func (s *State) creditLocked(owner common.Address, tokenID uint16, amount *big.Int) {
	if amount == nil || amount.Sign() == 0 {
		return
	}
	key := BalanceKey{Owner: owner, TokenID: tokenID}
	balance, ok := s.balances[key]
	if !ok {
		balance = new(big.Int)
		s.balances[key] = balance
	}
	balance.Add(balance, amount)
	if balance.Cmp(math.MaxBig256) > 0 {
		balance.Set(math.MaxBig256)
	}
}

// debitLocked atomically checks and subtracts amount from the balance.
func (s *State) debitLocked(owner common.Address, tokenID uint16, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrInsufficientBalance
	}
	key := BalanceKey{Owner: owner, TokenID: tokenID}
	balance, ok := s.balances[key]
	if !ok || balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	balance.Sub(balance, amount)
	return nil
}

// Withdraw debits the caller's withdrawable balance. This is the single debit
// path: the normal withdrawal entry point and exodus self-service withdrawal
// both land here.
func (s *State) Withdraw(owner common.Address, tokenID uint16, amount *big.Int) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runTx(func() ([]model.Event, error) {
		if err := s.debitLocked(owner, tokenID, amount); err != nil {
			return nil, err
		}
		return nil, nil
	})
}
