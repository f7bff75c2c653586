// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/itsmanjeet/xrand/decimal"
	"github.com/itsmanjeet/xrand/rand"
)

// A kind opens a stream of one element type. The returned function pulls
// k values and converts them for output.
type kind func(g *rand.Generator, min, n string) (func(k int) []interface{}, error)

var kinds = map[string]kind{
	"uint8":   bounded(parseUint[uint8](8), identity[uint8]),
	"uint16":  bounded(parseUint[uint16](16), identity[uint16]),
	"uint32":  bounded(parseUint[uint32](32), identity[uint32]),
	"uint64":  bounded(parseUint[uint64](64), identity[uint64]),
	"int8":    bounded(parseInt[int8](8), identity[int8]),
	"int16":   bounded(parseInt[int16](16), identity[int16]),
	"int32":   bounded(parseInt[int32](32), identity[int32]),
	"int64":   bounded(parseInt[int64](64), identity[int64]),
	"float32": bounded(parseFloat[float32](32), identity[float32]),
	"float64": bounded(parseFloat[float64](64), identity[float64]),
	"decimal": bounded(parseDecimal, identity[*decimal.Big]),
	"value":   unbounded(func(v rand.Value) interface{} { return v.Bits() }),
}

func kindList() string {
	names := lo.Keys(kinds)
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func identity[T any](v T) interface{} { return v }

func take[T rand.Element](c *rand.Cursor[T], conv func(T) interface{}) func(int) []interface{} {
	return func(k int) []interface{} {
		return lo.Map(c.Take(k), func(v T, _ int) interface{} { return conv(v) })
	}
}

func bounded[T rand.Bounded](parse func(string) (T, error), conv func(T) interface{}) kind {
	return func(g *rand.Generator, min, n string) (func(int) []interface{}, error) {
		if n == "" {
			c, err := rand.Stream[T](g)
			if err != nil {
				return nil, err
			}
			return take(c, conv), nil
		}
		nv, err := parse(n)
		if err != nil {
			return nil, xerrors.Errorf("-n: %w", err)
		}
		if min == "" {
			c, err := rand.StreamN(g, nv)
			if err != nil {
				return nil, err
			}
			return take(c, conv), nil
		}
		mv, err := parse(min)
		if err != nil {
			return nil, xerrors.Errorf("-min: %w", err)
		}
		c, err := rand.StreamRange(g, mv, nv)
		if err != nil {
			return nil, err
		}
		return take(c, conv), nil
	}
}

func unbounded[T rand.Element](conv func(T) interface{}) kind {
	return func(g *rand.Generator, min, n string) (func(int) []interface{}, error) {
		if min != "" || n != "" {
			return nil, xerrors.Errorf("bounds given for an unbounded type: %w", rand.ErrUnsupportedType)
		}
		c, err := rand.Stream[T](g)
		if err != nil {
			return nil, err
		}
		return take(c, conv), nil
	}
}

func parseUint[T uint8 | uint16 | uint32 | uint64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bits)
		return T(v), err
	}
}

func parseInt[T int8 | int16 | int32 | int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		return T(v), err
	}
}

func parseFloat[T float32 | float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bits)
		return T(v), err
	}
}

func parseDecimal(s string) (*decimal.Big, error) {
	d := new(decimal.Big)
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return d, nil
}
