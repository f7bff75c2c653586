// Package decimal provides an arbitrary precision, fixed-point decimal
// library.
//
// The following type is supported:
//
//	Big decimal numbers
//
// The zero value for a Big corresponds with 0. Its method naming is the same
// as math/big's, meaning:
//
//	func (z *T) SetV(v V) *T          // z = v
//	func (z *T) Unary(x *T) *T        // z = unary x
//	func (z *T) Binary(x, y *T) *T    // z = x binary y
//	func (x *T) Pred() P              // p = pred(x)
//
// In general, its conventions will mirror math/big's. Only the exact
// operations are provided: addition and multiplication never round.
package decimal

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/itsmanjeet/xrand/decimal/internal/arith/checked"
	"github.com/itsmanjeet/xrand/decimal/internal/c"
)

// Big is a fixed-point, arbitrary-precision decimal number.
//
// A Big decimal is a number and a scale, the latter representing the number
// of digits following the radix if the scale is >= 0. Otherwise, it's the
// number * 10 ^ -scale.
type Big struct {
	// compact is used if the value fits into an int64. The scale does not
	// affect whether this field is used; typically if a decimal has <= 18
	// digits this field will be used.
	compact int64

	// scale is the number of digits following the radix. If scale is negative
	// the * 10 and ^ -scale is implied--it does not inflate either the
	// compact or unscaled fields.
	scale int32

	form     form
	unscaled big.Int
}

func (x *Big) isCompact() bool {
	return x.compact != c.Inflated
}

func (x *Big) isInflated() bool {
	return x.compact == c.Inflated
}

// form indicates whether the Big decimal is zero or not.
type form byte

// Do not change these constants--their order is important.
const (
	zero form = iota
	finite
)

// New creates a new Big decimal with the given value and scale. For example:
//
//	New(1234, 3) // 1.234
//	New(42, 0)   // 42
//	New(4321, 5) // 0.04321
//	New(-1, 0)   // -1
//	New(3, -10)  // 30,000,000,000
func New(value int64, scale int32) *Big {
	return new(Big).SetMantScale(value, scale)
}

// norm restores the representation invariants after z's mantissa changed:
// mantissas that fit go back into compact, and form tracks zero.
func (z *Big) norm() *Big {
	if z.isInflated() && z.unscaled.IsInt64() {
		if v := z.unscaled.Int64(); v != c.Inflated {
			z.compact = v
			z.unscaled.SetInt64(0)
		}
	}
	if z.Sign() == 0 {
		z.form = zero
	} else {
		z.form = finite
	}
	return z
}

// mant returns x's mantissa as a new big.Int.
func (x *Big) mant() *big.Int {
	if x.isCompact() {
		return big.NewInt(x.compact)
	}
	return new(big.Int).Set(&x.unscaled)
}

// Add sets z to x + y and returns z.
func (z *Big) Add(x, y *Big) *Big {
	if x.isCompact() && y.isCompact() {
		if x.scale == y.scale {
			if sum, ok := checked.Add(x.compact, y.compact); ok {
				z.compact = sum
				z.scale = x.scale
				return z.norm()
			}
		} else {
			// Power of 10 we need to multiply our lo value by in order
			// to equalize the scales.
			hi, lo := x, y
			if hi.scale < lo.scale {
				hi, lo = lo, hi
			}
			if scaledLo, ok := checked.MulPow10(lo.compact, hi.scale-lo.scale); ok {
				if sum, ok := checked.Add(hi.compact, scaledLo); ok {
					z.compact = sum
					z.scale = hi.scale
					return z.norm()
				}
			}
		}
	}
	return z.addBig(x, y)
}

// addBig sets z to x + y using big.Int arithmetic and returns z.
func (z *Big) addBig(x, y *Big) *Big {
	hi, lo := x, y
	if hi.scale < lo.scale {
		hi, lo = lo, hi
	}
	scaled := checked.MulBigPow10(lo.mant(), hi.scale-lo.scale)
	z.unscaled.Add(hi.mant(), scaled)
	z.compact = c.Inflated
	z.scale = hi.scale
	return z.norm()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// It does not modify x or y.
func (x *Big) Cmp(y *Big) int {
	// Check for same pointers.
	if x == y {
		return 0
	}

	// Same scales means we can compare straight across.
	if x.scale == y.scale && x.isCompact() && y.isCompact() {
		switch {
		case x.compact > y.compact:
			return +1
		case x.compact < y.compact:
			return -1
		}
		return 0
	}

	// Different scales -- check signs and/or if they're
	// both zero.
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs > ys:
		return +1
	case xs < ys:
		return -1
	case xs == 0 && ys == 0:
		return 0
	}

	xm, ym := x.mant(), y.mant()
	if x.scale < y.scale {
		checked.MulBigPow10(xm, y.scale-x.scale)
	} else {
		checked.MulBigPow10(ym, x.scale-y.scale)
	}
	return xm.Cmp(ym)
}

// MarshalText implements encoding.TextMarshaler.
func (x *Big) MarshalText() ([]byte, error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// Mul sets z to x * y and returns z.
func (z *Big) Mul(x, y *Big) *Big {
	scale := x.scale + y.scale
	if x.isCompact() && y.isCompact() {
		if p, ok := checked.Mul(x.compact, y.compact); ok {
			z.compact = p
			z.scale = scale
			return z.norm()
		}
	}
	z.unscaled.Mul(x.mant(), y.mant())
	z.compact = c.Inflated
	z.scale = scale
	return z.norm()
}

// Scale returns x's scale.
func (x *Big) Scale() int32 {
	return x.scale
}

// Set sets z to x and returns z.
func (z *Big) Set(x *Big) *Big {
	if z == x {
		return z
	}
	z.compact = x.compact
	z.scale = x.scale
	z.form = x.form
	if x.isInflated() {
		z.unscaled.Set(&x.unscaled)
	}
	return z
}

// SetBigMantScale sets z to the given value and scale.
func (z *Big) SetBigMantScale(value *big.Int, scale int32) *Big {
	z.unscaled.Set(value)
	z.compact = c.Inflated
	z.scale = scale
	return z.norm()
}

// SetMantScale sets z to the given value and scale.
func (z *Big) SetMantScale(value int64, scale int32) *Big {
	if value == c.Inflated {
		return z.SetBigMantScale(big.NewInt(value), scale)
	}
	z.compact = value
	z.scale = scale
	return z.norm()
}

// SetString sets z to the value of s, returning z and a bool
// indicating success. s must be a string in one of the following
// formats:
//
//	1.234
//	1234
//	1.234e+5
//	1.234E-5
//	0.000001234
func (z *Big) SetString(s string) (*Big, bool) {
	var scale int32

	// Check for a scientific string.
	i := strings.LastIndexAny(s, "Ee")
	if i > 0 {
		eint, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return nil, false
		}
		s = s[:i]
		scale = -int32(eint)
	}

	switch strings.Count(s, ".") {
	case 0:
	case 1:
		i = strings.IndexByte(s, '.')
		s = s[:i] + s[i+1:]
		scale += int32(len(s) - i)
	default:
		return nil, false
	}

	var err error
	// Numbers == 19 can be out of range, but try the edge case anyway.
	if len(s) <= 19 {
		z.compact, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			nerr, ok := err.(*strconv.NumError)
			if !ok || nerr.Err == strconv.ErrSyntax {
				return nil, false
			}
			err = nerr.Err
		}
	}
	if (err == strconv.ErrRange && len(s) == 19) || len(s) > 19 {
		if _, ok := z.unscaled.SetString(s, 10); !ok {
			return nil, false
		}
		z.compact = c.Inflated
	} else if z.compact == c.Inflated {
		z.unscaled.SetInt64(c.Inflated)
	}
	z.scale = scale
	return z.norm(), true
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x is 0
//	+1 if x >  0
func (x *Big) Sign() int {
	if x.isInflated() {
		return x.unscaled.Sign()
	}
	switch {
	case x.compact > 0:
		return +1
	case x.compact < 0:
		return -1
	}
	return 0
}

// String returns the scientific string representation of x.
// Special cases are:
//
//	x == nil = "<nil>"
func (x *Big) String() string {
	return x.toString()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Big) UnmarshalText(data []byte) error {
	if _, ok := z.SetString(string(data)); !ok {
		return &strconv.NumError{Func: "decimal.UnmarshalText", Num: string(data), Err: strconv.ErrSyntax}
	}
	return nil
}

func (x *Big) toString() string {
	if x == nil {
		return "<nil>"
	}

	// Fast path: return our value as-is.
	if x.scale == 0 {
		if x.isInflated() {
			return x.unscaled.String()
		}
		return strconv.FormatInt(x.compact, 10)
	}

	// Keep from allocating a buffer if x is zero.
	if x.Sign() == 0 {
		return "0"
	}

	var (
		str string
		b   buffer // is bytes.Buffer
	)

	if x.isInflated() {
		str = x.unscaled.String()
	} else {
		str = strconv.FormatInt(x.compact, 10)
	}

	if str[0] == '-' {
		b.WriteByte('-')
		str = str[1:]
	}
	return x.toSciString(str, &b)
}

func (x *Big) toSciString(str string, b writer) string {
	// Following quotes are from:
	// http://speleotrove.com/decimal/daconvs.html#reftostr

	adj := -int(x.scale) + (len(str) - 1)
	pos := adj > 0

	// "If the exponent is less than or equal to zero and the
	// adjusted exponent is greater than or equal to -6..."
	if x.scale >= 0 && adj >= -6 {
		// "...the number will be converted to a character
		// form without using exponential notation."
		return x.normString(str, b)
	}

	b.WriteByte(str[0])
	if len(str) > 1 {
		b.WriteByte('.')
		b.WriteString(str[1:])
	}
	if adj != 0 {
		b.WriteByte('e')
		// If !pos the following strconv.Itoa call will add
		// the minus sign for us.
		if pos {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(adj))
	}
	return b.String()
}

// normString returns the plain string version of x. toSciString calls it
// when no exponent suffix is needed.
func (x *Big) normString(str string, b writer) string {
	switch pad := len(str) - int(x.scale); {

	// log10(unscaled) == scale, so immediately before str.
	case pad == 0:
		b.WriteString("0.")
		b.WriteString(str)

	// log10(unscaled) > scale, so somewhere inside str.
	case pad > 0:
		b.WriteString(str[:pad])
		b.WriteByte('.')
		b.WriteString(str[pad:])

	// log10(unscaled) < scale, so before p "0s" and before str.
	default:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -pad))
		b.WriteString(str)
	}
	return trimFraction(b.String())
}
