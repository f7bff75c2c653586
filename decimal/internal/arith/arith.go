// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arith provides integer helpers for the decimal package.
package arith

// Abs returns |x| as a uint64. It is defined for math.MinInt64.
func Abs(x int64) uint64 {
	m := x >> 63
	return uint64((x ^ m) - m)
}
