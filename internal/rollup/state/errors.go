package state

import "fmt"

// Error is a failed entry-point call with the short machine-readable reason
// code shared with the on-chain contract. Every error aborts the whole call;
// the transaction boundary guarantees no partial state survives.
type Error struct {
	Code string
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.msg)
}

var (
	// ErrWrongCommitNumber — commitBlock called out of sequence.
	ErrWrongCommitNumber = &Error{Code: "fck11", msg: "wrong block number for commit"}
	// ErrWrongVerifyNumber — verifyBlock called out of sequence.
	ErrWrongVerifyNumber = &Error{Code: "fvk11", msg: "wrong block number for verify"}
	// ErrProofRejected — the proof oracle rejected the proof.
	ErrProofRejected = &Error{Code: "fvk12", msg: "proof rejected"}
	// ErrRevertNotAllowed — revert requested with no unverified commits.
	ErrRevertNotAllowed = &Error{Code: "frk11", msg: "no unverified blocks to revert"}
	// ErrPriorityRequestMismatch — a block operation does not match the queued
	// priority request bytes.
	ErrPriorityRequestMismatch = &Error{Code: "fvs11", msg: "priority request mismatch"}
	// ErrInsufficientOpenRequests — queue head advance beyond the open count.
	ErrInsufficientOpenRequests = &Error{Code: "fvs12", msg: "insufficient open priority requests"}
	// ErrInsufficientBalance — ledger debit exceeding the stored balance.
	ErrInsufficientBalance = &Error{Code: "frw11", msg: "insufficient balance to withdraw"}
	// ErrExodusActive — normal-path entry point called in exodus mode.
	ErrExodusActive = &Error{Code: "fre11", msg: "exodus mode active"}
	// ErrNotInExodus — exodus-only entry point called in normal operation.
	ErrNotInExodus = &Error{Code: "fre12", msg: "not in exodus mode"}
)
