// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"math"

	"github.com/itsmanjeet/xrand/decimal"
)

// A Value is a 64-bit pattern that can be read back as any supported
// numeric type without drawing again. Narrower integer views take the low
// bits; Float32 reads the low 32 bits as an IEEE 754 single.
type Value struct {
	bits uint64
}

// ValueOf returns the Value holding bits.
func ValueOf(bits uint64) Value { return Value{bits: bits} }

// Bits returns the raw pattern.
func (v Value) Bits() uint64 { return v.bits }

func (v Value) Uint8() uint8   { return uint8(v.bits) }
func (v Value) Uint16() uint16 { return uint16(v.bits) }
func (v Value) Uint32() uint32 { return uint32(v.bits) }
func (v Value) Uint64() uint64 { return v.bits }
func (v Value) Int8() int8     { return int8(v.bits) }
func (v Value) Int16() int16   { return int16(v.bits) }
func (v Value) Int32() int32   { return int32(v.bits) }
func (v Value) Int64() int64   { return int64(v.bits) }

// Float32 reinterprets the low 32 bits. The result may be NaN or ±Inf.
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.bits)) }

// Float64 reinterprets all 64 bits. The result may be NaN or ±Inf.
func (v Value) Float64() float64 { return math.Float64frombits(v.bits) }

// Decimal returns the pattern as a signed integer decimal with scale 0.
func (v Value) Decimal() *decimal.Big { return decimal.New(int64(v.bits), 0) }
