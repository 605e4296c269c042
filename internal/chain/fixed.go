package chain

import (
	"context"
	"sync/atomic"
)

// Fixed is a ChainHeight source backed by a local counter instead of an L1
// node. Used on devnet where no RPC endpoint is configured; Advance simulates
// block production.
type Fixed struct {
	height atomic.Uint64
}

// NewFixed returns a Fixed source starting at height.
func NewFixed(height uint64) *Fixed {
	f := &Fixed{}
	f.height.Store(height)
	return f
}

// BlockNumber returns the current simulated height.
func (f *Fixed) BlockNumber(context.Context) (uint64, error) {
	return f.height.Load(), nil
}

// Advance moves the simulated height forward by delta blocks.
func (f *Fixed) Advance(delta uint64) {
	f.height.Add(delta)
}
