package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/zkmesh/rollupcore-backend/internal/rollup/model"
)

// ChunkSize is the fixed unit of public-data length accounting. Every
// operation occupies an exact number of chunks; a block's public data must be
// an exact concatenation of operation chunks.
const ChunkSize = 8

const (
	accountIDLen = 3
	tokenIDLen   = 2
	amountLen    = 16
	addressLen   = 20
	pubKeyHashLen = 20
	nonceLen     = 4

	maxAccountID = 1<<24 - 1
)

// Operation wire layouts, all fields big-endian, zero-padded to the chunk
// boundary:
//
//	+--------------+----------------------------------------------------------+
//	| Noop         | op(1) ‖ pad(7)                                           |
//	| Deposit      | op(1) ‖ accountId(3) ‖ tokenId(2) ‖ amount(16) ‖ owner(20) ‖ pad(6)  |
//	| Withdraw     | op(1) ‖ accountId(3) ‖ tokenId(2) ‖ amount(16) ‖ fee(2) ‖ owner(20) ‖ pad(4) |
//	| FullExit     | op(1) ‖ accountId(3) ‖ owner(20) ‖ tokenId(2) ‖ amount(16) ‖ pad(6)  |
//	| ChangePubKey | op(1) ‖ accountId(3) ‖ pubKeyHash(20) ‖ owner(20) ‖ nonce(4)         |
//	+--------------+----------------------------------------------------------+

// EncodeOperation serializes one operation into its fixed chunked width.
func EncodeOperation(op model.Operation) ([]byte, error) {
	out := make([]byte, op.OpType().Chunks()*ChunkSize)
	out[0] = byte(op.OpType())
	w := out[1:]

	switch v := op.(type) {
	case model.Noop:
		// opcode only, rest is padding
	case model.Deposit:
		if err := putAccountID(w[:accountIDLen], v.AccountID); err != nil {
			return nil, err
		}
		binary.BigEndian.PutUint16(w[3:5], v.TokenID)
		if err := putAmount(w[5:21], v.Amount); err != nil {
			return nil, err
		}
		copy(w[21:41], v.Owner.Bytes())
	case model.Withdraw:
		if err := putAccountID(w[:accountIDLen], v.AccountID); err != nil {
			return nil, err
		}
		binary.BigEndian.PutUint16(w[3:5], v.TokenID)
		if err := putAmount(w[5:21], v.Amount); err != nil {
			return nil, err
		}
		fee, err := PackFee(v.Fee)
		if err != nil {
			return nil, err
		}
		copy(w[21:23], fee)
		copy(w[23:43], v.Owner.Bytes())
	case model.FullExit:
		if err := putAccountID(w[:accountIDLen], v.AccountID); err != nil {
			return nil, err
		}
		copy(w[3:23], v.Owner.Bytes())
		binary.BigEndian.PutUint16(w[23:25], v.TokenID)
		if err := putAmount(w[25:41], v.Amount); err != nil {
			return nil, err
		}
	case model.ChangePubKey:
		if err := putAccountID(w[:accountIDLen], v.AccountID); err != nil {
			return nil, err
		}
		copy(w[3:23], v.PubKeyHash[:])
		copy(w[23:43], v.Owner.Bytes())
		binary.BigEndian.PutUint32(w[43:47], v.Nonce)
	default:
		return nil, ErrUnknownOperation
	}
	return out, nil
}

// DecodeOperation reads one operation starting at the beginning of buf and
// returns it together with the number of bytes consumed. Decoding is the
// strict inverse of EncodeOperation: padding bytes must be zero.
func DecodeOperation(buf []byte) (model.Operation, int, error) {
	if len(buf) == 0 {
		return nil, 0, ErrBufferUnderrun
	}

	opType := model.OpType(buf[0])
	chunks := opType.Chunks()
	if chunks == 0 {
		return nil, 0, ErrUnknownOperation
	}
	size := chunks * ChunkSize
	if len(buf) < size {
		return nil, 0, ErrBufferUnderrun
	}

	body := buf[1:size]
	var (
		op      model.Operation
		dataLen int
	)
	switch opType {
	case model.OpNoop:
		op, dataLen = model.Noop{}, 0
	case model.OpDeposit:
		op = model.Deposit{
			AccountID: readAccountID(body[:3]),
			TokenID:   binary.BigEndian.Uint16(body[3:5]),
			Amount:    new(big.Int).SetBytes(body[5:21]),
			Owner:     common.BytesToAddress(body[21:41]),
		}
		dataLen = 41
	case model.OpWithdraw:
		fee, err := UnpackFee(body[21:23])
		if err != nil {
			return nil, 0, err
		}
		op = model.Withdraw{
			AccountID: readAccountID(body[:3]),
			TokenID:   binary.BigEndian.Uint16(body[3:5]),
			Amount:    new(big.Int).SetBytes(body[5:21]),
			Fee:       fee,
			Owner:     common.BytesToAddress(body[23:43]),
		}
		dataLen = 43
	case model.OpFullExit:
		op = model.FullExit{
			AccountID: readAccountID(body[:3]),
			Owner:     common.BytesToAddress(body[3:23]),
			TokenID:   binary.BigEndian.Uint16(body[23:25]),
			Amount:    new(big.Int).SetBytes(body[25:41]),
		}
		dataLen = 41
	case model.OpChangePubKey:
		var cpk model.ChangePubKey
		cpk.AccountID = readAccountID(body[:3])
		copy(cpk.PubKeyHash[:], body[3:23])
		cpk.Owner = common.BytesToAddress(body[23:43])
		cpk.Nonce = binary.BigEndian.Uint32(body[43:47])
		op, dataLen = cpk, 47
	default:
		return nil, 0, ErrUnknownOperation
	}

	for _, b := range body[dataLen:] {
		if b != 0 {
			return nil, 0, ErrTrailingBytes
		}
	}
	return op, size, nil
}

// EncodeBlock concatenates the chunked encodings of ops.
func EncodeBlock(ops []model.Operation) ([]byte, error) {
	var out []byte
	for _, op := range ops {
		data, err := EncodeOperation(op)
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}
	return out, nil
}

// DecodeBlock decodes a whole public-data buffer into operations. The buffer
// length must equal the sum of the decoded operations' chunk sizes exactly;
// any remainder fails with a structure error.
func DecodeBlock(pubData []byte) ([]model.Operation, error) {
	if len(pubData)%ChunkSize != 0 {
		return nil, ErrBufferUnderrun
	}

	var ops []model.Operation
	for off := 0; off < len(pubData); {
		op, n, err := DecodeOperation(pubData[off:])
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		off += n
	}
	return ops, nil
}

func putAccountID(dst []byte, id uint32) error {
	if id > maxAccountID {
		return ErrFieldRange
	}
	dst[0] = byte(id >> 16)
	dst[1] = byte(id >> 8)
	dst[2] = byte(id)
	return nil
}

func readAccountID(src []byte) uint32 {
	return uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
}

func putAmount(dst []byte, v *big.Int) error {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 || v.BitLen() > amountLen*8 {
		return ErrFieldRange
	}
	v.FillBytes(dst)
	return nil
}
