// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checked implements int64 arithmetic that reports overflow.
//
// A result equal to c.Inflated is reported as an overflow since that
// value is reserved by the decimal package.
package checked

import (
	"math/big"
	"math/bits"

	"github.com/itsmanjeet/xrand/decimal/internal/arith"
	"github.com/itsmanjeet/xrand/decimal/internal/c"
)

var pow10tab = [...]int64{
	1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// Add returns x + y and whether the sum fits.
func Add(x, y int64) (int64, bool) {
	sum := x + y
	// Overflow iff both operands share a sign the sum does not.
	if (sum^x)&(sum^y) < 0 || sum == c.Inflated {
		return 0, false
	}
	return sum, true
}

// Mul returns x * y and whether the product fits.
func Mul(x, y int64) (int64, bool) {
	if x == c.Inflated || y == c.Inflated {
		return 0, false
	}
	hi, lo := bits.Mul64(arith.Abs(x), arith.Abs(y))
	if hi != 0 || lo > 1<<63-1 {
		return 0, false
	}
	p := int64(lo)
	if (x < 0) != (y < 0) {
		p = -p
	}
	return p, true
}

// MulPow10 returns x * 10**n and whether the product fits.
func MulPow10(x int64, n int32) (int64, bool) {
	if n < 0 || n > c.BadScale {
		return 0, false
	}
	if x == 0 {
		return 0, true
	}
	return Mul(x, pow10tab[n])
}

// MulBigPow10 sets z to z * 10**n and returns z.
func MulBigPow10(z *big.Int, n int32) *big.Int {
	if n <= 0 {
		return z
	}
	return z.Mul(z, BigPow10(n))
}

// BigPow10 returns a new big.Int holding 10**n.
func BigPow10(n int32) *big.Int {
	if n >= 0 && n <= c.BadScale {
		return big.NewInt(pow10tab[n])
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
