// Package verifier defines the proof-verification oracle consumed by the
// block lifecycle. Proof system internals are out of scope: the state machine
// only needs a deterministic boolean answer.
package verifier

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
)

// ProofVerifier checks a proof against a block commitment.
type ProofVerifier interface {
	Verify(commitment common.Hash, proof []byte) bool
}

// AcceptAll accepts every proof. Used on dev networks and in tests.
type AcceptAll struct{}

func (AcceptAll) Verify(common.Hash, []byte) bool { return true }

// CommitmentBinding accepts a proof only if it opens with the 32-byte
// commitment it claims to prove. A stand-in with the same call shape as a real
// SNARK verifier: wrong-block proofs are rejected deterministically.
type CommitmentBinding struct{}

func (CommitmentBinding) Verify(commitment common.Hash, proof []byte) bool {
	return len(proof) >= common.HashLength && bytes.Equal(proof[:common.HashLength], commitment.Bytes())
}
