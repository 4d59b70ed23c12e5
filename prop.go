package hcv

import (
	"fmt"
	"math"

	"github.com/gogpu/hcv/internal/check"
	"github.com/gogpu/hcv/internal/wide"
)

// Prop is an exact fixed-point proportion in [0, 1].
//
// The value is stored unscaled with a denominator of math.MaxUint64, so
// PropOne has every bit set and both extremes are represented without error.
type Prop uint64

const (
	// PropZero is the proportion 0.0.
	PropZero Prop = 0
	// PropOne is the proportion 1.0.
	PropOne Prop = math.MaxUint64
	// PropHalf is the proportion nearest to 0.5 (rounded down).
	PropHalf Prop = math.MaxUint64 / 2
)

// two64 is 2^64 as a float64; the float image of PropOne.
const two64 = 18446744073709551616.0

// PropFromFloat64 converts f in [0, 1] to a Prop.
func PropFromFloat64(f float64) Prop {
	check.That(f >= 0 && f <= 1, "proportion %v out of range", f)
	v := f * two64
	if v >= two64 {
		return PropOne
	}
	if v <= 0 {
		return PropZero
	}
	return Prop(v)
}

// PropFromFloat32 converts f in [0, 1] to a Prop.
func PropFromFloat32(f float32) Prop {
	return PropFromFloat64(float64(f))
}

// Float64 returns p as a float64 in [0, 1].
func (p Prop) Float64() float64 {
	return float64(p) / float64(PropOne)
}

// Float32 returns p as a float32 in [0, 1].
func (p Prop) Float32() float32 {
	return float32(p.Float64())
}

// Multipliers that map an n-bit level onto the 64-bit scale exactly.
const (
	scale8  = math.MaxUint64 / math.MaxUint8
	scale16 = math.MaxUint64 / math.MaxUint16
	scale32 = math.MaxUint64 / math.MaxUint32
)

// PropFromUint8 maps the 8-bit level v (255 is 1.0) to a Prop.
func PropFromUint8(v uint8) Prop { return Prop(uint64(v) * scale8) }

// PropFromUint16 maps the 16-bit level v (65535 is 1.0) to a Prop.
func PropFromUint16(v uint16) Prop { return Prop(uint64(v) * scale16) }

// PropFromUint32 maps the 32-bit level v to a Prop.
func PropFromUint32(v uint32) Prop { return Prop(uint64(v) * scale32) }

// Uint8 returns p as an 8-bit level, rounding to nearest.
func (p Prop) Uint8() uint8 { return uint8(wide.MulDivMaxRound(uint64(p), math.MaxUint8)) }

// Uint16 returns p as a 16-bit level, rounding to nearest.
func (p Prop) Uint16() uint16 { return uint16(wide.MulDivMaxRound(uint64(p), math.MaxUint16)) }

// Uint32 returns p as a 32-bit level, rounding to nearest.
func (p Prop) Uint32() uint32 { return uint32(wide.MulDivMaxRound(uint64(p), math.MaxUint32)) }

// Mul returns p*q. The product is computed at double width and floored, so
// the error is below one unit in the last place.
func (p Prop) Mul(q Prop) Prop {
	return Prop(wide.MulDivMax(uint64(p), uint64(q)))
}

// Div returns p/q. The dividend must not exceed the divisor.
func (p Prop) Div(q Prop) Prop {
	check.That(p <= q, "Prop.Div: %#x > %#x", uint64(p), uint64(q))
	return Prop(wide.ScaleDiv(uint64(p), uint64(q)))
}

// Add returns p+q. The result may exceed one so it is a Sum.
func (p Prop) Add(q Prop) Sum {
	return Sum{wide.From64(uint64(p)).Add64(uint64(q))}
}

// Sub returns p-q. q must not exceed p.
func (p Prop) Sub(q Prop) Prop {
	check.That(q <= p, "Prop.Sub: %#x < %#x", uint64(p), uint64(q))
	return p - q
}

// Complement returns 1 - p.
func (p Prop) Complement() Prop {
	return PropOne - p
}

// Sum widens p to a Sum.
func (p Prop) Sum() Sum {
	return Sum{wide.From64(uint64(p))}
}

// MulN returns p*n as a Sum.
func (p Prop) MulN(n uint64) Sum {
	return Sum{wide.Mul64x64(uint64(p), n)}
}

// AbsDiff returns |p - q|.
func (p Prop) AbsDiff(q Prop) Prop {
	return wide.AbsDiff(p, q)
}

// ApproxEqual reports whether p and q differ by at most maxDiff units.
func (p Prop) ApproxEqual(q Prop, maxDiff uint64) bool {
	return uint64(p.AbsDiff(q)) <= maxDiff
}

// IsZero reports whether p is exactly zero.
func (p Prop) IsZero() bool { return p == PropZero }

// IsOne reports whether p is exactly one.
func (p Prop) IsOne() bool { return p == PropOne }

// String formats p as a decimal fraction.
func (p Prop) String() string {
	return fmt.Sprintf("%.6f", p.Float64())
}
