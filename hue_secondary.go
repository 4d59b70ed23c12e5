package hcv

import "fmt"

// CMYHue is one of the three secondary hues.
type CMYHue uint8

// Secondary hues.
const (
	SecondaryCyan CMYHue = iota
	SecondaryMagenta
	SecondaryYellow
)

// String returns the hue name.
func (h CMYHue) String() string {
	switch h {
	case SecondaryCyan:
		return "Cyan"
	case SecondaryMagenta:
		return "Magenta"
	case SecondaryYellow:
		return "Yellow"
	}
	return fmt.Sprintf("CMYHue(%d)", uint8(h))
}

// makeRGB places other in the channel absent from h and first in the two
// channels that make it up.
func (h CMYHue) makeRGB(first, other Prop) RGB[Prop] {
	switch h {
	case SecondaryMagenta:
		return propRGB(first, other, first)
	case SecondaryYellow:
		return propRGB(first, first, other)
	}
	return propRGB(other, first, first)
}

// Angle returns 180, -60 or 60 degrees.
func (h CMYHue) Angle() Angle {
	switch h {
	case SecondaryMagenta:
		return AngleMagenta
	case SecondaryYellow:
		return AngleYellow
	}
	return AngleCyan
}

// SumRangeForChromaProp returns the sums at which h shows chroma p.
func (h CMYHue) SumRangeForChromaProp(p Prop) (SumRange, bool) {
	switch {
	case p.IsZero():
		return SumRange{}, false
	case p.IsOne():
		return newSumRange(SumTwo, SumTwo, SumTwo), true
	}
	return newSumRange(p.MulN(2), SumTwo, SumThree.SubProp(p)), true
}

// SumForMaxChroma returns two.
func (h CMYHue) SumForMaxChroma() Sum { return SumTwo }

// MaxChromaForSum returns the largest chroma h can show at sum, or false
// where it floors to zero.
func (h CMYHue) MaxChromaForSum(sum Sum) (Chroma, bool) {
	assertSum(sum)
	if sum.IsZero() || sum == SumThree {
		return Chroma{}, false
	}
	switch sum.Cmp(SumTwo) {
	case -1:
		return found(ShadeChroma(sum.DivN(2).Prop()))
	case 1:
		return TintChroma(SumThree.Sub(sum).Prop()), true
	}
	return ChromaOne, true
}

// WarmthForChroma returns the warmth of h at chroma c.
func (h CMYHue) WarmthForChroma(c Chroma) Prop {
	if h == SecondaryCyan {
		return SumOne.SubProp(c.Prop()).DivN(2).Prop()
	}
	return SumTwo.AddProp(c.Prop()).DivN(4).Prop()
}

// MaxChromaRGB returns pure cyan, magenta or yellow.
func (h CMYHue) MaxChromaRGB() RGB[Prop] {
	return h.makeRGB(PropOne, PropZero)
}

// MaxChromaRGBForSum returns the most colourful RGB with hue h and the
// given sum.
func (h CMYHue) MaxChromaRGBForSum(sum Sum) (RGB[Prop], bool) {
	assertSum(sum)
	if sum.IsZero() || sum == SumThree {
		return RGB[Prop]{}, false
	}
	switch sum.Cmp(SumTwo) {
	case -1:
		return h.makeRGB(sum.DivN(2).Prop(), PropZero), true
	case 1:
		return h.makeRGB(PropOne, sum.Sub(SumTwo).Prop()), true
	}
	return h.MaxChromaRGB(), true
}

// MinSumRGBForChroma returns the darkest RGB with hue h and chroma c.
func (h CMYHue) MinSumRGBForChroma(c Chroma) RGB[Prop] {
	switch p := c.Prop(); {
	case p.IsZero():
		return Black[Prop]()
	case p.IsOne():
		return h.MaxChromaRGB()
	default:
		return h.makeRGB(p, PropZero)
	}
}

// MaxSumRGBForChroma returns the lightest RGB with hue h and chroma c.
func (h CMYHue) MaxSumRGBForChroma(c Chroma) RGB[Prop] {
	switch p := c.Prop(); {
	case p.IsZero():
		return White[Prop]()
	case p.IsOne():
		return h.MaxChromaRGB()
	default:
		return h.makeRGB(PropOne, p.Complement())
	}
}

// RGBForSumAndChroma returns the RGB with hue h, component sum sum and
// chroma c, or false if sum is outside the range for c. The two paired
// channels take (sum+c)/3 and the third takes (sum-2c)/3.
func (h CMYHue) RGBForSumAndChroma(sum Sum, c Chroma) (RGB[Prop], bool) {
	assertSum(sum)
	cp := c.Prop()
	r, ok := h.SumRangeForChromaProp(cp)
	if !ok || r.CompareSum(sum).IsFailure() {
		return RGB[Prop]{}, false
	}
	twoC := cp.MulN(2)
	first := sum.AddProp(cp).DivN(3)
	if SumOne.Less(first) {
		return RGB[Prop]{}, false
	}
	other := sum.Sub(twoC).DivN(3)
	return h.makeRGB(first.Prop(), other.Prop()), true
}
