// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "github.com/itsmanjeet/xrand/decimal"

// Next returns one unbounded draw of type T: a full-width word for the
// integer kinds and Value, or a value in [0, 1) for float32, float64 and
// *decimal.Big. Like the Generator methods, it requires a non-nil g.
func Next[T Element](g *Generator) T {
	return sampler[T](g)()
}

// NextN returns a draw of type T in [0, n).
func NextN[T Bounded](g *Generator, n T) (T, error) {
	f, err := samplerN(g, "NextN", n)
	if err != nil {
		var zero T
		return zero, err
	}
	return f(), nil
}

// NextRange returns a draw of type T in [min, min+n).
func NextRange[T Bounded](g *Generator, min, n T) (T, error) {
	f, err := samplerRange(g, "NextRange", min, n)
	if err != nil {
		var zero T
		return zero, err
	}
	return f(), nil
}

// sampler resolves the unbounded draw for T once, so bulk callers do not
// dispatch per element.
func sampler[T Element](g *Generator) func() T {
	var f interface{}
	var zero T
	switch interface{}(zero).(type) {
	case uint8:
		f = g.Uint8
	case uint16:
		f = g.Uint16
	case uint32:
		f = g.Uint32
	case uint64:
		f = g.Uint64
	case int8:
		f = g.Int8
	case int16:
		f = g.Int16
	case int32:
		f = g.Int32
	case int64:
		f = g.Int64
	case float32:
		f = g.Float32
	case float64:
		f = g.Float64
	case *decimal.Big:
		f = g.Decimal
	case Value:
		f = g.Value
	}
	return f.(func() T)
}

// samplerN validates n and resolves the [0, n) draw for T.
func samplerN[T Bounded](g *Generator, op string, n T) (func() T, error) {
	var min T
	if _, ok := interface{}(n).(*decimal.Big); ok {
		min = interface{}(new(decimal.Big)).(T)
	}
	return samplerRange(g, op, min, n)
}

// samplerRange validates min and n and resolves the [min, min+n) draw
// for T. No randomness is consumed until the returned function is called.
func samplerRange[T Bounded](g *Generator, op string, min, n T) (func() T, error) {
	var (
		f   interface{}
		err error
	)
	switch n := interface{}(n).(type) {
	case uint8:
		f, err = intSampler(g, op, interface{}(min).(uint8), n)
	case uint16:
		f, err = intSampler(g, op, interface{}(min).(uint16), n)
	case uint32:
		f, err = intSampler(g, op, interface{}(min).(uint32), n)
	case uint64:
		f, err = intSampler(g, op, interface{}(min).(uint64), n)
	case int8:
		f, err = intSampler(g, op, interface{}(min).(int8), n)
	case int16:
		f, err = intSampler(g, op, interface{}(min).(int16), n)
	case int32:
		f, err = intSampler(g, op, interface{}(min).(int32), n)
	case int64:
		f, err = intSampler(g, op, interface{}(min).(int64), n)
	case float32:
		f, err = floatSampler(op, interface{}(min).(float32), n, g.Float32)
	case float64:
		f, err = floatSampler(op, interface{}(min).(float64), n, g.Float64)
	case *decimal.Big:
		f, err = decimalSampler(g, op, interface{}(min).(*decimal.Big), n)
	}
	if err != nil {
		return nil, err
	}
	return f.(func() T), nil
}

func intSampler[I integer](g *Generator, op string, min, n I) (func() I, error) {
	if err := checkRange(op, min, n); err != nil {
		return nil, err
	}
	return func() I { return min + I(g.uint64n(uint64(n))) }, nil
}

func floatSampler[F float](op string, min, n F, unit func() F) (func() F, error) {
	if err := checkFloatRange(op, min, n); err != nil {
		return nil, err
	}
	return func() F { return scale(min, n, unit) }, nil
}

func decimalSampler(g *Generator, op string, min, n *decimal.Big) (func() *decimal.Big, error) {
	if err := checkDecimalRange(op, min, n); err != nil {
		return nil, err
	}
	// The bounds are captured for the life of a Cursor; keep private copies.
	min, n = new(decimal.Big).Set(min), new(decimal.Big).Set(n)
	return func() *decimal.Big { return g.scaleDecimal(min, n) }, nil
}
