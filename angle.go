package hcv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Angle is a position on the hue circle in degrees, normalized to the
// interval (-180, 180]. Red is at 0, green at 120 and blue at -120.
//
// Angles are used for display and for mapping between hue wheels and Hue
// values; the conversion arithmetic itself never goes through Angle.
type Angle float64

// Angles of the primary and secondary hues.
const (
	AngleRed     Angle = 0
	AngleYellow  Angle = 60
	AngleGreen   Angle = 120
	AngleCyan    Angle = 180
	AngleBlue    Angle = -120
	AngleMagenta Angle = -60
)

// AngleFromDegrees returns the normalized angle for deg degrees.
func AngleFromDegrees(deg float64) Angle {
	d := math.Mod(deg, 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return Angle(d)
}

// AngleFromRadians returns the normalized angle for rad radians.
func AngleFromRadians(rad float64) Angle {
	return AngleFromDegrees(rad * 180 / math.Pi)
}

// AngleFromDMS returns the angle of deg degrees, minutes and seconds.
// The sign of deg applies to the whole angle.
func AngleFromDMS(deg, minutes, seconds int) Angle {
	v := float64(abs(deg)) + float64(minutes)/60 + float64(seconds)/3600
	if deg < 0 {
		v = -v
	}
	return AngleFromDegrees(v)
}

// Asin returns the angle whose sine is x, for x in [-1, 1].
func Asin(x float64) Angle {
	return AngleFromRadians(math.Asin(x))
}

// Degrees returns a in degrees.
func (a Angle) Degrees() float64 { return float64(a) }

// Radians returns a in radians.
func (a Angle) Radians() float64 { return float64(a) * math.Pi / 180 }

// Sin returns the sine of a.
func (a Angle) Sin() float64 { return math.Sin(a.Radians()) }

// Cos returns the cosine of a.
func (a Angle) Cos() float64 { return math.Cos(a.Radians()) }

// Add returns a+b normalized.
func (a Angle) Add(b Angle) Angle { return AngleFromDegrees(float64(a) + float64(b)) }

// Sub returns a-b normalized.
func (a Angle) Sub(b Angle) Angle { return AngleFromDegrees(float64(a) - float64(b)) }

// Neg returns -a normalized.
func (a Angle) Neg() Angle { return AngleFromDegrees(-float64(a)) }

// AbsDiff returns the magnitude of the shortest arc between a and b in
// degrees, in [0, 180].
func (a Angle) AbsDiff(b Angle) float64 {
	return math.Abs(float64(a.Sub(b)))
}

// ApproxEqual reports whether a and b are within the angle tolerance,
// measured along the shorter arc.
func (a Angle) ApproxEqual(b Angle, opts ...Option) bool {
	o := applyOptions(opts)
	// Unwrap b onto the side of the seam nearest a.
	x, y := float64(a), float64(b)
	switch {
	case y-x > 180:
		y -= 360
	case y-x < -180:
		y += 360
	}
	return scalar.EqualWithinAbs(x, y, o.angleTolerance)
}

// String formats a in degrees.
func (a Angle) String() string {
	return fmt.Sprintf("%.4f°", float64(a))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
