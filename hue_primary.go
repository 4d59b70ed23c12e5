package hcv

import "fmt"

// RGBHue is one of the three primary hues.
type RGBHue uint8

// Primary hues. The zero value is red.
const (
	PrimaryRed RGBHue = iota
	PrimaryGreen
	PrimaryBlue
)

// String returns the hue name.
func (h RGBHue) String() string {
	switch h {
	case PrimaryRed:
		return "Red"
	case PrimaryGreen:
		return "Green"
	case PrimaryBlue:
		return "Blue"
	}
	return fmt.Sprintf("RGBHue(%d)", uint8(h))
}

// makeRGB places first in the hue's own channel and other in both of the
// remaining channels.
func (h RGBHue) makeRGB(first, other Prop) RGB[Prop] {
	switch h {
	case PrimaryGreen:
		return propRGB(other, first, other)
	case PrimaryBlue:
		return propRGB(other, other, first)
	}
	return propRGB(first, other, other)
}

// Angle returns 0, 120 or -120 degrees.
func (h RGBHue) Angle() Angle {
	switch h {
	case PrimaryGreen:
		return AngleGreen
	case PrimaryBlue:
		return AngleBlue
	}
	return AngleRed
}

// SumRangeForChromaProp returns the sums at which h shows chroma p.
func (h RGBHue) SumRangeForChromaProp(p Prop) (SumRange, bool) {
	switch {
	case p.IsZero():
		return SumRange{}, false
	case p.IsOne():
		return newSumRange(SumOne, SumOne, SumOne), true
	}
	return newSumRange(p.Sum(), SumOne, SumThree.Sub(p.MulN(2))), true
}

// SumForMaxChroma returns one.
func (h RGBHue) SumForMaxChroma() Sum { return SumOne }

// MaxChromaForSum returns the largest chroma h can show at sum. Sums so
// close to black or white that the chroma floors to zero report false.
func (h RGBHue) MaxChromaForSum(sum Sum) (Chroma, bool) {
	assertSum(sum)
	switch sum.Cmp(SumOne) {
	case -1:
		if sum.IsZero() {
			return Chroma{}, false
		}
		return ShadeChroma(sum.Prop()), true
	case 1:
		if sum == SumThree {
			return Chroma{}, false
		}
		return found(TintChroma(SumThree.Sub(sum).DivN(2).Prop()))
	}
	return ChromaOne, true
}

// WarmthForChroma returns the warmth of h at chroma c.
func (h RGBHue) WarmthForChroma(c Chroma) Prop {
	if h == PrimaryRed {
		return SumOne.AddProp(c.Prop()).DivN(2).Prop()
	}
	return SumTwo.SubProp(c.Prop()).DivN(4).Prop()
}

// MaxChromaRGB returns pure red, green or blue.
func (h RGBHue) MaxChromaRGB() RGB[Prop] {
	return h.makeRGB(PropOne, PropZero)
}

// MaxChromaRGBForSum returns the most colourful RGB with hue h and the
// given sum.
func (h RGBHue) MaxChromaRGBForSum(sum Sum) (RGB[Prop], bool) {
	assertSum(sum)
	if sum.IsZero() || sum == SumThree {
		return RGB[Prop]{}, false
	}
	if !SumOne.Less(sum) {
		return h.makeRGB(sum.Prop(), PropZero), true
	}
	return h.makeRGB(PropOne, sum.Sub(SumOne).DivN(2).Prop()), true
}

// MinSumRGBForChroma returns the darkest RGB with hue h and chroma c.
func (h RGBHue) MinSumRGBForChroma(c Chroma) RGB[Prop] {
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
func (h RGBHue) MaxSumRGBForChroma(c Chroma) RGB[Prop] {
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
// chroma c, or false if sum is outside the range for c. Chroma is exact;
// the sum may be short by up to two units.
func (h RGBHue) RGBForSumAndChroma(sum Sum, c Chroma) (RGB[Prop], bool) {
	assertSum(sum)
	cp := c.Prop()
	r, ok := h.SumRangeForChromaProp(cp)
	if !ok || r.CompareSum(sum).IsFailure() {
		return RGB[Prop]{}, false
	}
	if sum == cp.Sum() {
		return h.makeRGB(cp, PropZero), true
	}
	other := sum.SubProp(cp).DivN(3)
	first := other.AddProp(cp)
	if SumOne.Less(first) {
		return RGB[Prop]{}, false
	}
	return h.makeRGB(first.Prop(), other.Prop()), true
}
