// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"encoding/binary"
	"math"
)

// Uint8 returns a uniform 8-bit word.
func (g *Generator) Uint8() uint8 { return g.next(1)[0] }

// Uint16 returns a uniform 16-bit word.
func (g *Generator) Uint16() uint16 { return binary.LittleEndian.Uint16(g.next(2)) }

// Uint32 returns a uniform 32-bit word.
func (g *Generator) Uint32() uint32 { return binary.LittleEndian.Uint32(g.next(4)) }

// Uint64 returns a uniform 64-bit word.
func (g *Generator) Uint64() uint64 { return binary.LittleEndian.Uint64(g.next(8)) }

// The signed variants reinterpret a word of the same width as two's
// complement, so they cover the full range including negative values.

func (g *Generator) Int8() int8   { return int8(g.Uint8()) }
func (g *Generator) Int16() int16 { return int16(g.Uint16()) }
func (g *Generator) Int32() int32 { return int32(g.Uint32()) }
func (g *Generator) Int64() int64 { return int64(g.Uint64()) }

// The NonNegative variants clear the sign bit of a signed draw. This is a
// mask, not a redraw over [0, Max]: callers rely on the exact mapping from
// word to value, so it must stay a mask.

func (g *Generator) NonNegativeInt8() int8   { return int8(g.Uint8() & math.MaxInt8) }
func (g *Generator) NonNegativeInt16() int16 { return int16(g.Uint16() & math.MaxInt16) }
func (g *Generator) NonNegativeInt32() int32 { return int32(g.Uint32() & math.MaxInt32) }
func (g *Generator) NonNegativeInt64() int64 { return int64(g.Uint64() & math.MaxInt64) }

// Value returns a uniform 64-bit Value.
func (g *Generator) Value() Value { return ValueOf(g.Uint64()) }
