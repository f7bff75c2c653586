// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "math"

type float interface {
	float32 | float64
}

// Float32 returns a uniform float32 in [0, 1) with 24 bits of precision.
func (g *Generator) Float32() float32 {
	return float32(g.Uint32()>>8) / (1 << 24)
}

// Float64 returns a uniform float64 in [0, 1) with 53 bits of precision.
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// checkFloatRange validates [min, min+n): n must be positive, and min+n
// must be finite and distinct from min.
func checkFloatRange[F float](op string, min, n F) error {
	if !(n > 0) || math.IsNaN(float64(min)) || math.IsInf(float64(min), 0) {
		return rangeError(op, min, n)
	}
	if hi := min + n; math.IsInf(float64(hi), 0) || !(hi > min) {
		return rangeError(op, min, n)
	}
	return nil
}

// scale returns min + unit()*n, drawing again whenever rounding lands
// on min+n.
func scale[F float](min, n F, unit func() F) F {
	hi := min + n
	for {
		if v := min + F(unit()*n); v < hi {
			return v
		}
	}
}

func floatRange[F float](g *Generator, op string, min, n F, unit func() F) (F, error) {
	if err := checkFloatRange(op, min, n); err != nil {
		return 0, err
	}
	return scale(min, n, unit), nil
}

// Float32N returns a uniform float32 in [0, n). It fails with
// ErrInvalidRange if n is not a positive finite number.
func (g *Generator) Float32N(n float32) (float32, error) {
	return floatRange(g, "Float32N", 0, n, g.Float32)
}

// Float64N returns a uniform float64 in [0, n). It fails with
// ErrInvalidRange if n is not a positive finite number.
func (g *Generator) Float64N(n float64) (float64, error) {
	return floatRange(g, "Float64N", 0, n, g.Float64)
}

// Float32Range returns a uniform float32 in [min, min+n). It fails with
// ErrInvalidRange if n <= 0, if either bound is not finite, or if n is
// too small to move min.
func (g *Generator) Float32Range(min, n float32) (float32, error) {
	return floatRange(g, "Float32Range", min, n, g.Float32)
}

// Float64Range is Float32Range for float64.
func (g *Generator) Float64Range(min, n float64) (float64, error) {
	return floatRange(g, "Float64Range", min, n, g.Float64)
}
