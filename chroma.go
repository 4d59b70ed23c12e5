package hcv

import "fmt"

// ChromaSide records on which side of its hue's maximum-chroma sum a colour
// lies.
type ChromaSide uint8

const (
	// Shade is a colour whose component sum is below the crossover sum.
	Shade ChromaSide = iota
	// Tint is a colour whose component sum is at or above the crossover sum.
	Tint
)

// String returns "shade" or "tint".
func (s ChromaSide) String() string {
	switch s {
	case Shade:
		return "shade"
	case Tint:
		return "tint"
	}
	return fmt.Sprintf("ChromaSide(%d)", uint8(s))
}

// Chroma is a colourfulness magnitude tagged with its ChromaSide.
//
// Two chromas with the same magnitude but different sides are distinct
// values; use SameMagnitude to compare magnitudes only.
type Chroma struct {
	side ChromaSide
	prop Prop
}

var (
	// ChromaZero is the chroma of a grey.
	ChromaZero = Chroma{Shade, PropZero}
	// ChromaOne is the chroma of a fully saturated colour.
	ChromaOne = Chroma{Tint, PropOne}
)

// ShadeChroma returns a Shade chroma of magnitude p.
func ShadeChroma(p Prop) Chroma { return Chroma{Shade, p} }

// TintChroma returns a Tint chroma of magnitude p.
func TintChroma(p Prop) Chroma { return Chroma{Tint, p} }

// ChromaFor tags the magnitude p for a colour of the given hue and component
// sum. Sums below the hue's crossover are Shade; the crossover itself and
// anything above it is Tint. Zero and one map to ChromaZero and ChromaOne.
func ChromaFor(p Prop, hue Hue, sum Sum) Chroma {
	switch {
	case p.IsZero():
		return ChromaZero
	case p.IsOne():
		return ChromaOne
	case sum.Less(hue.SumForMaxChroma()):
		return ShadeChroma(p)
	}
	return TintChroma(p)
}

// found returns c and true unless the magnitude of c has floored to zero.
func found(c Chroma) (Chroma, bool) {
	if c.IsZero() {
		return Chroma{}, false
	}
	return c, true
}

// Prop returns the magnitude of c.
func (c Chroma) Prop() Prop { return c.prop }

// Side returns the side of c.
func (c Chroma) Side() ChromaSide { return c.side }

// IsZero reports whether c has zero magnitude, whatever its side.
func (c Chroma) IsZero() bool { return c.prop.IsZero() }

// IsShade reports whether c is a Shade.
func (c Chroma) IsShade() bool { return c.side == Shade }

// IsTint reports whether c is a Tint.
func (c Chroma) IsTint() bool { return c.side == Tint }

// ApproxEqual reports whether c and other are on the same side and their
// magnitudes differ by at most maxDiff units.
func (c Chroma) ApproxEqual(other Chroma, maxDiff uint64) bool {
	return c.side == other.side && c.prop.ApproxEqual(other.prop, maxDiff)
}

// SameMagnitude reports whether the magnitudes of c and other differ by at
// most maxDiff units, ignoring side.
func (c Chroma) SameMagnitude(other Chroma, maxDiff uint64) bool {
	return c.prop.ApproxEqual(other.prop, maxDiff)
}

// String formats c as e.g. "Shade(0.500000)".
func (c Chroma) String() string {
	switch c.side {
	case Tint:
		return fmt.Sprintf("Tint(%v)", c.prop)
	}
	return fmt.Sprintf("Shade(%v)", c.prop)
}
