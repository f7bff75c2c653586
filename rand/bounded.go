// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "math"

type integer interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

// uint64n returns a uniform value in [0, n) for n > 0, drawing words of
// the narrowest width that covers n.
func (g *Generator) uint64n(n uint64) uint64 {
	switch {
	case n <= math.MaxUint8:
		return reject(n, math.MaxUint8, func() uint64 { return uint64(g.Uint8()) })
	case n <= math.MaxUint16:
		return reject(n, math.MaxUint16, func() uint64 { return uint64(g.Uint16()) })
	case n <= math.MaxUint32:
		return reject(n, math.MaxUint32, func() uint64 { return uint64(g.Uint32()) })
	default:
		return reject(n, math.MaxUint64, g.Uint64)
	}
}

// reject maps draws in [0, wordMax] onto [0, n) without bias: draws at or
// above the largest multiple of n not exceeding wordMax are thrown away.
func reject(n, wordMax uint64, draw func() uint64) uint64 {
	limit := wordMax / n * n
	for {
		if v := draw(); v < limit {
			return v % n
		}
	}
}

// checkRange validates [min, min+n) for an integer type.
func checkRange[T integer](op string, min, n T) error {
	if n <= 0 {
		return rangeError(op, min, n)
	}
	// Integer arithmetic wraps, so an overflowing upper end lands below min.
	if last := min + (n - 1); last < min {
		return rangeError(op, min, n)
	}
	return nil
}

func boundedRange[T integer](g *Generator, op string, min, n T) (T, error) {
	if err := checkRange(op, min, n); err != nil {
		return 0, err
	}
	return min + T(g.uint64n(uint64(n))), nil
}

// Uint8N returns a uniform value in [0, n). It fails with ErrInvalidRange
// if n is 0. The other N methods behave the same way for their types,
// failing for any n <= 0.
func (g *Generator) Uint8N(n uint8) (uint8, error)    { return boundedRange(g, "Uint8N", 0, n) }
func (g *Generator) Uint16N(n uint16) (uint16, error) { return boundedRange(g, "Uint16N", 0, n) }
func (g *Generator) Uint32N(n uint32) (uint32, error) { return boundedRange(g, "Uint32N", 0, n) }
func (g *Generator) Uint64N(n uint64) (uint64, error) { return boundedRange(g, "Uint64N", 0, n) }
func (g *Generator) Int8N(n int8) (int8, error)       { return boundedRange(g, "Int8N", 0, n) }
func (g *Generator) Int16N(n int16) (int16, error)    { return boundedRange(g, "Int16N", 0, n) }
func (g *Generator) Int32N(n int32) (int32, error)    { return boundedRange(g, "Int32N", 0, n) }
func (g *Generator) Int64N(n int64) (int64, error)    { return boundedRange(g, "Int64N", 0, n) }

// Uint8Range returns a uniform value in [min, min+n). It fails with
// ErrInvalidRange if n <= 0 or if min+n-1 overflows the type; the result
// never wraps. The other Range methods behave the same way.
func (g *Generator) Uint8Range(min, n uint8) (uint8, error) {
	return boundedRange(g, "Uint8Range", min, n)
}

func (g *Generator) Uint16Range(min, n uint16) (uint16, error) {
	return boundedRange(g, "Uint16Range", min, n)
}

func (g *Generator) Uint32Range(min, n uint32) (uint32, error) {
	return boundedRange(g, "Uint32Range", min, n)
}

func (g *Generator) Uint64Range(min, n uint64) (uint64, error) {
	return boundedRange(g, "Uint64Range", min, n)
}

func (g *Generator) Int8Range(min, n int8) (int8, error) {
	return boundedRange(g, "Int8Range", min, n)
}

func (g *Generator) Int16Range(min, n int16) (int16, error) {
	return boundedRange(g, "Int16Range", min, n)
}

func (g *Generator) Int32Range(min, n int32) (int32, error) {
	return boundedRange(g, "Int32Range", min, n)
}

func (g *Generator) Int64Range(min, n int64) (int64, error) {
	return boundedRange(g, "Int64Range", min, n)
}
