package codec

import "fmt"

// Error is a decode/encode failure with the short machine-readable reason code
// shared with the on-chain contract.
type Error struct {
	Code string
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.msg)
}

var (
	// ErrBufferUnderrun signals a read past the end of the public-data buffer
	// or a buffer whose length is not an exact multiple of operation chunks.
	ErrBufferUnderrun = &Error{Code: "bse11", msg: "public data buffer underrun"}
	// ErrTrailingBytes signals leftover bytes after the last decoded operation.
	ErrTrailingBytes = &Error{Code: "bse11", msg: "trailing bytes after last operation"}
	// ErrUnknownOperation signals an opcode tag outside the known set.
	ErrUnknownOperation = &Error{Code: "fpp14", msg: "unknown operation type"}
	// ErrNotPackable signals an amount that cannot be represented exactly in
	// the packed mantissa+exponent form.
	ErrNotPackable = &Error{Code: "bse12", msg: "amount not exactly packable"}
	// ErrFieldRange signals a field value outside its fixed wire width.
	ErrFieldRange = &Error{Code: "bse13", msg: "field value out of range"}
)
