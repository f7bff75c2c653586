// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"math/big"

	"github.com/itsmanjeet/xrand/decimal"
)

// DecimalDigits is the number of fractional digits in the values returned
// by Decimal.
const DecimalDigits = 28

var (
	// decimalModulus is 10^DecimalDigits.
	decimalModulus = new(big.Int).Exp(big.NewInt(10), big.NewInt(DecimalDigits), nil)

	// decimalLimit is the largest multiple of decimalModulus that does not
	// exceed 2^96-1; 96-bit draws at or above it are rejected.
	decimalLimit = func() *big.Int {
		max := new(big.Int).Lsh(big.NewInt(1), 96)
		max.Sub(max, big.NewInt(1))
		q := new(big.Int).Quo(max, decimalModulus)
		return q.Mul(q, decimalModulus)
	}()
)

// Decimal returns a uniform decimal in [0, 1) with DecimalDigits
// fractional digits. The mantissa is a 96-bit draw, composed of a 32-bit
// and a 64-bit word, reduced without bias into [0, 10^DecimalDigits).
func (g *Generator) Decimal() *decimal.Big {
	var m, lo big.Int
	for {
		m.SetUint64(uint64(g.Uint32()))
		m.Lsh(&m, 64)
		m.Or(&m, lo.SetUint64(g.Uint64()))
		if m.Cmp(decimalLimit) < 0 {
			break
		}
	}
	m.Rem(&m, decimalModulus)
	return new(decimal.Big).SetBigMantScale(&m, DecimalDigits)
}

func checkDecimalRange(op string, min, n *decimal.Big) error {
	if min == nil {
		return argError(op, "min")
	}
	if n == nil {
		return argError(op, "n")
	}
	if n.Sign() <= 0 {
		return rangeError(op, min, n)
	}
	return nil
}

// scaleDecimal returns min + Decimal()*n. The arithmetic is exact, so the
// result always lies in [min, min+n).
func (g *Generator) scaleDecimal(min, n *decimal.Big) *decimal.Big {
	z := new(decimal.Big).Mul(g.Decimal(), n)
	return z.Add(z, min)
}

// DecimalN returns a uniform decimal in [0, n). It fails with
// ErrInvalidArgument if n is nil and ErrInvalidRange if n <= 0.
func (g *Generator) DecimalN(n *decimal.Big) (*decimal.Big, error) {
	zero := new(decimal.Big)
	if err := checkDecimalRange("DecimalN", zero, n); err != nil {
		return nil, err
	}
	return g.scaleDecimal(zero, n), nil
}

// DecimalRange returns a uniform decimal in [min, min+n). It fails with
// ErrInvalidArgument if min or n is nil and ErrInvalidRange if n <= 0.
func (g *Generator) DecimalRange(min, n *decimal.Big) (*decimal.Big, error) {
	if err := checkDecimalRange("DecimalRange", min, n); err != nil {
		return nil, err
	}
	return g.scaleDecimal(min, n), nil
}
