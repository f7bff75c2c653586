// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"encoding/binary"
	"io"
	"math"
	"math/big"

	"github.com/itsmanjeet/xrand/decimal"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/xerrors"
)

// Element is the closed set of types a Generator can produce.
type Element interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64 | *decimal.Big | Value
}

// Bounded is the subset of Element that supports [0, n) and [min, min+n)
// draws.
type Bounded interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64 | *decimal.Big
}

// maxStateScale is the largest scale a decimal decoded from state bytes
// can carry.
const maxStateScale = 28

// decimalStateSize is the number of state bytes behind one decimal: a
// 96-bit little-endian mantissa, a scale byte, two unused bytes and a
// byte whose top bit is the sign.
const decimalStateSize = 16

// CreateState fills target with initial state derived from seed and bytes
// drawn from src. Equal seeds over equal sources produce equal state.
//
// src, seed and target must all be non-nil. To draw state from src alone,
// use CreateStateAny with a nil seed.
func CreateState[T Element](src Source, seed []byte, target []T) error {
	if seed == nil {
		return argError("CreateState", "seed")
	}
	if target == nil {
		return argError("CreateState", "target")
	}
	return createState("CreateState", src, seed, target)
}

// CreateStateAny is like CreateState but accepts the target as an
// interface value and permits a nil seed, in which case the state is read
// straight from src. A target that is not a slice of an Element type
// fails with ErrUnsupportedType.
func CreateStateAny(src Source, seed []byte, target interface{}) error {
	return createState("CreateStateAny", src, seed, target)
}

func createState(op string, src Source, seed []byte, target interface{}) error {
	if src == nil {
		return argError(op, "source")
	}
	if target == nil {
		return argError(op, "target")
	}
	le := binary.LittleEndian
	switch t := target.(type) {
	case []uint8:
		return fillState(op, src, seed, t, 1, func(b []byte) uint8 { return b[0] })
	case []uint16:
		return fillState(op, src, seed, t, 2, le.Uint16)
	case []uint32:
		return fillState(op, src, seed, t, 4, le.Uint32)
	case []uint64:
		return fillState(op, src, seed, t, 8, le.Uint64)
	case []int8:
		return fillState(op, src, seed, t, 1, func(b []byte) int8 { return int8(b[0]) })
	case []int16:
		return fillState(op, src, seed, t, 2, func(b []byte) int16 { return int16(le.Uint16(b)) })
	case []int32:
		return fillState(op, src, seed, t, 4, func(b []byte) int32 { return int32(le.Uint32(b)) })
	case []int64:
		return fillState(op, src, seed, t, 8, func(b []byte) int64 { return int64(le.Uint64(b)) })
	case []float32:
		return fillState(op, src, seed, t, 4, func(b []byte) float32 { return math.Float32frombits(le.Uint32(b)) })
	case []float64:
		return fillState(op, src, seed, t, 8, func(b []byte) float64 { return math.Float64frombits(le.Uint64(b)) })
	case []*decimal.Big:
		return fillState(op, src, seed, t, decimalStateSize, decodeDecimal)
	case []Value:
		return fillState(op, src, seed, t, 8, func(b []byte) Value { return ValueOf(le.Uint64(b)) })
	default:
		return xerrors.Errorf("rand: %s: target %T: %w", op, target, ErrUnsupportedType)
	}
}

func fillState[T any](op string, src Source, seed []byte, dst []T, size int, decode func([]byte) T) error {
	if dst == nil {
		return argError(op, "target")
	}
	b, err := deriveState(src, seed, len(dst)*size)
	if err != nil {
		return xerrors.Errorf("rand: %s: %w", op, err)
	}
	for i := range dst {
		dst[i] = decode(b[i*size : (i+1)*size])
	}
	return nil
}

// deriveState returns n state bytes. Without a seed they come straight
// from src. With one, n bytes from src are absorbed after the
// length-prefixed seed into a Blake2b XOF, and n bytes are squeezed out.
func deriveState(src Source, seed []byte, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		out[i] = src.NextByte()
	}
	if seed == nil {
		return out, nil
	}

	h, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, err
	}
	var hdr [binary.MaxVarintLen64]byte
	h.Write(hdr[:binary.PutUvarint(hdr[:], uint64(len(seed)))])
	h.Write(seed)
	h.Write(out)
	if _, err := io.ReadFull(h, out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeDecimal builds ±mantissa × 10^-scale from a 16-byte state record.
func decodeDecimal(b []byte) *decimal.Big {
	var be [12]byte
	for i := range be {
		be[i] = b[11-i]
	}
	m := new(big.Int).SetBytes(be[:])
	if b[15]&0x80 != 0 {
		m.Neg(m)
	}
	scale := int32(b[12] % (maxStateScale + 1))
	return new(decimal.Big).SetBigMantScale(m, scale)
}
