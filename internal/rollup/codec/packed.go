// Package codec implements the binary public-data format shared bit-for-bit
// between the on-chain contract and the operator node.
package codec

import (
	"encoding/binary"
	"math/big"
)

// Packed decimal amounts travel as a base-10 float: a fixed-width mantissa and
// exponent packed into a big-endian integer, decoded as mantissa * 10^exponent.
// Packing always picks the smallest exponent that represents the value exactly
// and fails instead of rounding.
//
// Two profiles are used on the wire:
//
//	fee:    2 bytes, 5-bit exponent, 11-bit mantissa
//	amount: 5 bytes, 5-bit exponent, 35-bit mantissa
const (
	FeeByteLen    = 2
	AmountByteLen = 5

	feeExponentBits    = 5
	feeMantissaBits    = 11
	amountExponentBits = 5
	amountMantissaBits = 35
)

var bigTen = big.NewInt(10)

// PackFee encodes a fee value into the 2-byte packed representation.
func PackFee(v *big.Int) ([]byte, error) {
	return packDecimal(v, feeExponentBits, feeMantissaBits, FeeByteLen)
}

// UnpackFee decodes a 2-byte packed fee.
func UnpackFee(b []byte) (*big.Int, error) {
	return unpackDecimal(b, feeExponentBits, FeeByteLen)
}

// PackAmount encodes a token amount into the 5-byte packed representation.
func PackAmount(v *big.Int) ([]byte, error) {
	return packDecimal(v, amountExponentBits, amountMantissaBits, AmountByteLen)
}

// UnpackAmount decodes a 5-byte packed token amount.
func UnpackAmount(b []byte) (*big.Int, error) {
	return unpackDecimal(b, amountExponentBits, AmountByteLen)
}

// Packable reports whether v survives a pack/unpack round trip under the
// amount profile.
func Packable(v *big.Int) bool {
	_, err := PackAmount(v)
	return err == nil
}

func packDecimal(v *big.Int, exponentBits, mantissaBits, byteLen int) ([]byte, error) {
	if v == nil || v.Sign() < 0 {
		return nil, ErrNotPackable
	}

	maxMantissa := new(big.Int).Lsh(big.NewInt(1), uint(mantissaBits))
	maxMantissa.Sub(maxMantissa, big.NewInt(1))
	maxExponent := int64(1)<<uint(exponentBits) - 1

	mantissa := new(big.Int).Set(v)
	exponent := int64(0)
	rem := new(big.Int)
	for mantissa.Cmp(maxMantissa) > 0 {
		mantissa.QuoRem(mantissa, bigTen, rem)
		if rem.Sign() != 0 {
			return nil, ErrNotPackable
		}
		exponent++
		if exponent > maxExponent {
			return nil, ErrNotPackable
		}
	}

	enc := new(big.Int).Lsh(mantissa, uint(exponentBits))
	enc.Or(enc, big.NewInt(exponent))

	out := make([]byte, byteLen)
	enc.FillBytes(out)
	return out, nil
}

func unpackDecimal(b []byte, exponentBits, byteLen int) (*big.Int, error) {
	if len(b) != byteLen {
		return nil, ErrBufferUnderrun
	}

	var raw [8]byte
	copy(raw[8-byteLen:], b)
	enc := binary.BigEndian.Uint64(raw[:])

	exponent := enc & (1<<uint(exponentBits) - 1)
	mantissa := new(big.Int).SetUint64(enc >> uint(exponentBits))

	scale := new(big.Int).Exp(bigTen, new(big.Int).SetUint64(exponent), nil)
	return mantissa.Mul(mantissa, scale), nil
}
