package wide

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Max is the fixed-point denominator: the value that represents 1.0.
const Max = math.MaxUint64

// U128 is an unsigned 128-bit integer.
// The zero value is 0 and U128 values are comparable with ==.
type U128 struct {
	Hi, Lo uint64
}

// From64 widens a uint64 to U128.
func From64(v uint64) U128 {
	return U128{Lo: v}
}

// Mul64x64 returns the full 128-bit product a*b.
func Mul64x64(a, b uint64) U128 {
	hi, lo := bits.Mul64(a, b)
	return U128{Hi: hi, Lo: lo}
}

// IsZero reports whether u == 0.
func (u U128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// IsUint64 reports whether u fits in 64 bits.
func (u U128) IsUint64() bool {
	return u.Hi == 0
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or
// greater than v.
func (u U128) Cmp(v U128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Less reports whether u < v.
func (u U128) Less(v U128) bool {
	return u.Cmp(v) < 0
}

// Add returns u + v. Overflow wraps.
func (u U128) Add(v U128) U128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return U128{Hi: hi, Lo: lo}
}

// Add64 returns u + v. Overflow wraps.
func (u U128) Add64(v uint64) U128 {
	lo, carry := bits.Add64(u.Lo, v, 0)
	return U128{Hi: u.Hi + carry, Lo: lo}
}

// Sub returns u - v. Underflow wraps.
func (u U128) Sub(v U128) U128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

// Sub64 returns u - v. Underflow wraps.
func (u U128) Sub64(v uint64) U128 {
	lo, borrow := bits.Sub64(u.Lo, v, 0)
	return U128{Hi: u.Hi - borrow, Lo: lo}
}

// Mul64 returns u * v. Bits above 128 are discarded.
func (u U128) Mul64(v uint64) U128 {
	hi, lo := bits.Mul64(u.Lo, v)
	return U128{Hi: hi + u.Hi*v, Lo: lo}
}

// Lsh returns u << n for n < 128.
func (u U128) Lsh(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n >= 64:
		return U128{Hi: u.Lo << (n - 64)}
	}
	return U128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
}

// Rsh returns u >> n for n < 128.
func (u U128) Rsh(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n >= 64:
		return U128{Lo: u.Hi >> (n - 64)}
	}
	return U128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
}

// QuoRem64 returns the quotient and remainder of u / d.
// It panics if d == 0.
func (u U128) QuoRem64(d uint64) (U128, uint64) {
	qHi := u.Hi / d
	qLo, r := bits.Div64(u.Hi%d, u.Lo, d)
	return U128{Hi: qHi, Lo: qLo}, r
}

// QuoRem returns the quotient and remainder of u / d.
// Divisors with the top bit set are not supported.
// It panics if d == 0.
func (u U128) QuoRem(d U128) (U128, U128) {
	if d.IsZero() {
		panic("wide: division by zero")
	}
	if d.Hi == 0 {
		q, r := u.QuoRem64(d.Lo)
		return q, From64(r)
	}
	if u.Less(d) {
		return U128{}, u
	}
	// The quotient fits in 64 bits once d.Hi != 0.
	var q uint64
	shift := uint(bits.LeadingZeros64(d.Hi) - bits.LeadingZeros64(u.Hi))
	r := u
	for i := int(shift); i >= 0; i-- {
		ds := d.Lsh(uint(i))
		if !r.Less(ds) {
			r = r.Sub(ds)
			q |= 1 << uint(i)
		}
	}
	return From64(q), r
}

// MulDivMax returns floor(a*b / Max).
func MulDivMax(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// a*b <= (2^64-1)^2 so hi < Max and the quotient fits.
	q, _ := bits.Div64(hi, lo, Max)
	return q
}

// MulDivMaxRound returns a*b / Max rounded to nearest. b must be below
// Max so that adding the half does not overflow.
func MulDivMaxRound(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	lo, carry := bits.Add64(lo, Max/2, 0)
	q, _ := bits.Div64(hi+carry, lo, Max)
	return q
}

// ScaleDiv returns floor(a*Max / d). It requires a <= d and d > 0, which
// keeps the quotient within 64 bits.
func ScaleDiv(a, d uint64) uint64 {
	hi, lo := bits.Mul64(a, Max)
	q, _ := bits.Div64(hi, lo, d)
	return q
}

// MulDivMax128 returns floor(u*Max / d) for 128-bit operands. The integer
// part of u/d must fit in 64 bits and d must be below 2^127.
func (u U128) MulDivMax128(d U128) U128 {
	if d.IsZero() {
		panic("wide: division by zero")
	}
	qi, r := u.QuoRem(d)
	// Long division for the fractional 64 bits of u*2^64 / d.
	var qf uint64
	for i := 63; i >= 0; i-- {
		r = r.Lsh(1)
		if !r.Less(d) {
			r = r.Sub(d)
			qf |= 1 << uint(i)
		}
	}
	q := U128{Hi: qi.Lo, Lo: qf}
	// u*Max = u*2^64 - u, so correct the quotient by ceil((u - r) / d).
	if !r.Less(u) {
		return q
	}
	k, rem := u.Sub(r).QuoRem(d)
	if !rem.IsZero() {
		k = k.Add64(1)
	}
	return q.Sub(k)
}

// AbsDiff returns |a - b| for any unsigned integer type.
func AbsDiff[N constraints.Unsigned](a, b N) N {
	if a > b {
		return a - b
	}
	return b - a
}

// AbsDiff128 returns |u - v|.
func (u U128) AbsDiff128(v U128) U128 {
	if u.Less(v) {
		return v.Sub(u)
	}
	return u.Sub(v)
}
