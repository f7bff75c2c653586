// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"github.com/itsmanjeet/xrand/decimal"
	"golang.org/x/xerrors"
)

// The Fill functions validate every argument before drawing anything: a
// call that returns an error has consumed no randomness and written
// nothing. A nil generator or buffer fails with ErrInvalidArgument, a
// span outside the buffer with ErrIndexOutOfRange, and a bad bound with
// ErrInvalidRange. A count of zero writes nothing.

// Fill sets every element of buf to an unbounded draw, as Next does.
func Fill[T Element](g *Generator, buf []T) error {
	return fillSpan("Fill", g, buf, 0, len(buf))
}

// FillSpan is Fill restricted to buf[offset:offset+count].
func FillSpan[T Element](g *Generator, buf []T, offset, count int) error {
	return fillSpan("FillSpan", g, buf, offset, count)
}

// FillN sets every element of buf to a draw in [0, n).
func FillN[T Bounded](g *Generator, n T, buf []T) error {
	return fillNSpan("FillN", g, n, buf, 0, len(buf))
}

// FillNSpan is FillN restricted to buf[offset:offset+count].
func FillNSpan[T Bounded](g *Generator, n T, buf []T, offset, count int) error {
	return fillNSpan("FillNSpan", g, n, buf, offset, count)
}

// FillRange sets every element of buf to a draw in [min, min+n).
func FillRange[T Bounded](g *Generator, min, n T, buf []T) error {
	return fillRangeSpan("FillRange", g, min, n, buf, 0, len(buf))
}

// FillRangeSpan is FillRange restricted to buf[offset:offset+count].
func FillRangeSpan[T Bounded](g *Generator, min, n T, buf []T, offset, count int) error {
	return fillRangeSpan("FillRangeSpan", g, min, n, buf, offset, count)
}

// FillAny is Fill for a buffer held in an interface value. A buffer that
// is not a slice of an Element type fails with ErrUnsupportedType.
func FillAny(g *Generator, buf interface{}) error {
	const op = "FillAny"
	if buf == nil {
		return argError(op, "buffer")
	}
	switch b := buf.(type) {
	case []uint8:
		return fillSpan(op, g, b, 0, len(b))
	case []uint16:
		return fillSpan(op, g, b, 0, len(b))
	case []uint32:
		return fillSpan(op, g, b, 0, len(b))
	case []uint64:
		return fillSpan(op, g, b, 0, len(b))
	case []int8:
		return fillSpan(op, g, b, 0, len(b))
	case []int16:
		return fillSpan(op, g, b, 0, len(b))
	case []int32:
		return fillSpan(op, g, b, 0, len(b))
	case []int64:
		return fillSpan(op, g, b, 0, len(b))
	case []float32:
		return fillSpan(op, g, b, 0, len(b))
	case []float64:
		return fillSpan(op, g, b, 0, len(b))
	case []*decimal.Big:
		return fillSpan(op, g, b, 0, len(b))
	case []Value:
		return fillSpan(op, g, b, 0, len(b))
	default:
		return xerrors.Errorf("rand: %s: buffer %T: %w", op, buf, ErrUnsupportedType)
	}
}

func checkSpan[T any](op string, g *Generator, buf []T, offset, count int) error {
	if g == nil {
		return argError(op, "generator")
	}
	if buf == nil {
		return argError(op, "buffer")
	}
	if offset < 0 || offset > len(buf) {
		return xerrors.Errorf("rand: %s: offset %d with length %d: %w", op, offset, len(buf), ErrIndexOutOfRange)
	}
	if count < 0 || count > len(buf)-offset {
		return xerrors.Errorf("rand: %s: count %d at offset %d with length %d: %w", op, count, offset, len(buf), ErrIndexOutOfRange)
	}
	return nil
}

func fillSpan[T Element](op string, g *Generator, buf []T, offset, count int) error {
	if err := checkSpan(op, g, buf, offset, count); err != nil {
		return err
	}
	fill(buf[offset:offset+count], sampler[T](g))
	return nil
}

func fillNSpan[T Bounded](op string, g *Generator, n T, buf []T, offset, count int) error {
	if err := checkSpan(op, g, buf, offset, count); err != nil {
		return err
	}
	f, err := samplerN(g, op, n)
	if err != nil {
		return err
	}
	fill(buf[offset:offset+count], f)
	return nil
}

func fillRangeSpan[T Bounded](op string, g *Generator, min, n T, buf []T, offset, count int) error {
	if err := checkSpan(op, g, buf, offset, count); err != nil {
		return err
	}
	f, err := samplerRange(g, op, min, n)
	if err != nil {
		return err
	}
	fill(buf[offset:offset+count], f)
	return nil
}

func fill[T any](dst []T, next func() T) {
	for i := range dst {
		dst[i] = next()
	}
}
