package hcv

import (
	"fmt"
	"math"

	"github.com/gogpu/hcv/internal/check"
	"github.com/gogpu/hcv/internal/wide"
)

// Sum is a fixed-point quantity in [0, 3]: the sum of up to three
// proportions. It shares Prop's denominator but is backed by a 128-bit
// integer so that sums and intermediate products do not overflow.
//
// Validity is a predicate, not a property of the type. Arithmetic that leaves
// [0, 3] is a programming error; callers check IsValid before using a Sum in
// hue geometry.
type Sum struct {
	v wide.U128
}

// Sum constants.
var (
	SumZero  = Sum{}
	SumOne   = Sum{wide.From64(wide.Max)}
	SumTwo   = Sum{wide.From64(wide.Max).Mul64(2)}
	SumThree = Sum{wide.From64(wide.Max).Mul64(3)}
)

// SumFromFloat64 converts f in [0, 3] to a Sum. Whole numbers convert exactly.
func SumFromFloat64(f float64) Sum {
	check.That(f >= 0 && f <= 3, "sum %v out of range", f)
	whole := math.Floor(f)
	frac := f - whole
	if whole >= 3 {
		return SumThree
	}
	return SumOne.MulN(uint64(whole)).AddProp(PropFromFloat64(frac))
}

// Float64 returns s as a float64.
func (s Sum) Float64() float64 {
	return (float64(s.v.Hi)*two64 + float64(s.v.Lo)) / float64(PropOne)
}

// IsValid reports whether s is within [0, 3].
func (s Sum) IsValid() bool {
	return !SumThree.v.Less(s.v)
}

// IsProp reports whether s is within [0, 1].
func (s Sum) IsProp() bool {
	return !SumOne.v.Less(s.v)
}

// Prop narrows s to a Prop. s must not exceed one.
func (s Sum) Prop() Prop {
	check.That(s.IsProp(), "Sum.Prop: %v exceeds one", s)
	return Prop(s.v.Lo)
}

// IsZero reports whether s is exactly zero.
func (s Sum) IsZero() bool { return s.v.IsZero() }

// Cmp returns -1, 0 or +1 depending on whether s is less than, equal to or
// greater than t.
func (s Sum) Cmp(t Sum) int { return s.v.Cmp(t.v) }

// Less reports whether s < t.
func (s Sum) Less(t Sum) bool { return s.v.Less(t.v) }

// Add returns s+t.
func (s Sum) Add(t Sum) Sum { return Sum{s.v.Add(t.v)} }

// AddProp returns s+p.
func (s Sum) AddProp(p Prop) Sum { return Sum{s.v.Add64(uint64(p))} }

// Sub returns s-t. t must not exceed s.
func (s Sum) Sub(t Sum) Sum {
	check.That(!s.Less(t), "Sum.Sub: %v < %v", s, t)
	return Sum{s.v.Sub(t.v)}
}

// SubProp returns s-p. p must not exceed s.
func (s Sum) SubProp(p Prop) Sum {
	return s.Sub(p.Sum())
}

// MulN returns s*n.
func (s Sum) MulN(n uint64) Sum { return Sum{s.v.Mul64(n)} }

// DivN returns s/n rounded down.
func (s Sum) DivN(n uint64) Sum {
	q, _ := s.v.QuoRem64(n)
	return Sum{q}
}

// ModN returns the remainder of s/n in units of the last place.
func (s Sum) ModN(n uint64) uint64 {
	_, r := s.v.QuoRem64(n)
	return r
}

// split returns the whole and fractional parts of s such that
// s = whole*SumOne + frac.
func (s Sum) split() (uint64, uint64) {
	q, r := s.v.QuoRem64(wide.Max)
	return q.Lo, r
}

// MulProp returns s*p rounded down.
func (s Sum) MulProp(p Prop) Sum {
	whole, frac := s.split()
	return Sum{wide.Mul64x64(whole, uint64(p)).Add64(wide.MulDivMax(frac, uint64(p)))}
}

// Mul returns s*t rounded down.
func (s Sum) Mul(t Sum) Sum {
	sw, sf := s.split()
	tw, tf := t.split()
	r := wide.From64(wide.Max).Mul64(sw * tw)
	r = r.Add(wide.Mul64x64(sw, tf)).Add(wide.Mul64x64(tw, sf))
	return Sum{r.Add64(wide.MulDivMax(sf, tf))}
}

// Div returns s/t rounded down. The quotient must not exceed three.
func (s Sum) Div(t Sum) Sum {
	q := Sum{s.v.MulDivMax128(t.v)}
	check.That(q.IsValid(), "Sum.Div: %v / %v out of range", s, t)
	return q
}

// Ratio returns s/t as a Prop. s must not exceed t.
func (s Sum) Ratio(t Sum) Prop {
	check.That(!t.Less(s), "Sum.Ratio: %v > %v", s, t)
	if t.v.IsUint64() {
		return Prop(wide.ScaleDiv(s.v.Lo, t.v.Lo))
	}
	return Prop(s.v.MulDivMax128(t.v).Lo)
}

// AbsDiff returns |s - t|.
func (s Sum) AbsDiff(t Sum) Sum {
	return Sum{s.v.AbsDiff128(t.v)}
}

// ApproxEqual reports whether s and t differ by at most maxDiff units.
func (s Sum) ApproxEqual(t Sum, maxDiff uint64) bool {
	d := s.AbsDiff(t).v
	return d.IsUint64() && d.Lo <= maxDiff
}

// String formats s as a decimal number.
func (s Sum) String() string {
	return fmt.Sprintf("%.6f", s.Float64())
}

func assertSum(s Sum) {
	check.That(s.IsValid(), "sum %v out of range", s)
}
