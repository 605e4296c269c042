// Package safe provides checked conversions to unsigned integer types.
package safe

import (
	"fmt"
	"math"
)

// Integer covers the integer kinds the conversions accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, failing when v is negative or exceeds
// math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64, failing when v is negative.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
