package hcv

import (
	"fmt"
	"math"

	"github.com/gogpu/hcv/internal/check"
)

// Sextant names one of the six 60 degree wedges between a primary and a
// secondary hue. The first colour in the name is the primary, which is the
// largest component of every colour in the wedge.
type Sextant uint8

// Sextants in order of their primary.
const (
	RedMagenta Sextant = iota
	RedYellow
	GreenYellow
	GreenCyan
	BlueCyan
	BlueMagenta
)

var sextantNames = [...]string{
	RedMagenta:  "RedMagenta",
	RedYellow:   "RedYellow",
	GreenYellow: "GreenYellow",
	GreenCyan:   "GreenCyan",
	BlueCyan:    "BlueCyan",
	BlueMagenta: "BlueMagenta",
}

// String returns the wedge name.
func (s Sextant) String() string {
	if int(s) < len(sextantNames) {
		return sextantNames[s]
	}
	return fmt.Sprintf("Sextant(%d)", uint8(s))
}

// Sextants lists every wedge.
func Sextants() []Sextant {
	return []Sextant{RedMagenta, RedYellow, GreenYellow, GreenCyan, BlueCyan, BlueMagenta}
}

// ParseSextant returns the sextant with the given name.
func ParseSextant(name string) (Sextant, bool) {
	for i, n := range sextantNames {
		if n == name {
			return Sextant(i), true
		}
	}
	return 0, false
}

// SextantHue is a hue strictly inside a sextant. Second is the middle
// component over the largest once the smallest has been removed, which is
// always strictly between zero and one.
type SextantHue struct {
	sextant Sextant
	second  Prop
}

func newSextantHue(s Sextant, second Prop) SextantHue {
	check.That(second > PropZero && second < PropOne, "sextant %v second %v", s, second)
	return SextantHue{sextant: s, second: second}
}

// Sextant returns the wedge of h.
func (h SextantHue) Sextant() Sextant { return h.sextant }

// Second returns the position of h inside its wedge.
func (h SextantHue) Second() Prop { return h.second }

// String formats h as e.g. "RedYellow(0.500000)".
func (h SextantHue) String() string {
	return fmt.Sprintf("%v(%v)", h.sextant, h.second)
}

// AbsDiff returns the difference of the wedge positions, or one if the
// wedges differ.
func (h SextantHue) AbsDiff(other SextantHue) Prop {
	if h.sextant != other.sextant {
		return PropOne
	}
	return h.second.AbsDiff(other.second)
}

func (h SextantHue) makeRGB(first, second, third Prop) RGB[Prop] {
	switch h.sextant {
	case RedMagenta:
		return propRGB(first, third, second)
	case RedYellow:
		return propRGB(first, second, third)
	case GreenYellow:
		return propRGB(second, first, third)
	case GreenCyan:
		return propRGB(third, first, second)
	case BlueCyan:
		return propRGB(third, second, first)
	}
	return propRGB(second, third, first)
}

// sextantOf extracts the wedge position of rgb, whose components are
// ordered as the wedge requires.
func sextantOf(s Sextant, rgb [3]Prop) SextantHue {
	r, g, b := rgb[0], rgb[1], rgb[2]
	var second Prop
	switch s {
	case RedMagenta:
		second = b.Sub(g).Div(r.Sub(g))
	case RedYellow:
		second = g.Sub(b).Div(r.Sub(b))
	case GreenYellow:
		second = r.Sub(b).Div(g.Sub(b))
	case GreenCyan:
		second = b.Sub(r).Div(g.Sub(r))
	case BlueCyan:
		second = g.Sub(r).Div(b.Sub(r))
	default:
		second = r.Sub(g).Div(b.Sub(g))
	}
	return newSextantHue(s, second)
}

// Angle returns the angle of h on the hue circle.
func (h SextantHue) Angle() Angle {
	k := h.second.Float64()
	sin := math.Sqrt(3) * k / 2 / math.Sqrt(1-k+k*k)
	theta := Asin(min(sin, 1))
	switch h.sextant {
	case RedMagenta:
		return theta.Neg()
	case RedYellow:
		return theta
	case GreenYellow:
		return AngleGreen.Sub(theta)
	case GreenCyan:
		return AngleGreen.Add(theta)
	case BlueCyan:
		return AngleBlue.Sub(theta)
	}
	return AngleBlue.Add(theta)
}

// SumForMaxChroma returns 1 + second.
func (h SextantHue) SumForMaxChroma() Sum {
	return PropOne.Add(h.second)
}

// SumRangeForChromaProp returns the sums at which h shows chroma p.
func (h SextantHue) SumRangeForChromaProp(p Prop) (SumRange, bool) {
	crossover := h.SumForMaxChroma()
	switch {
	case p.IsZero():
		return SumRange{}, false
	case p.IsOne():
		return newSumRange(crossover, crossover, crossover), true
	}
	lo := crossover.MulProp(p)
	hi := SumThree.Sub(SumTwo.SubProp(h.second).MulProp(p))
	return newSumRange(lo, crossover, hi), true
}

// MaxChromaForSum returns the largest chroma h can show at sum, or false
// where it floors to zero.
func (h SextantHue) MaxChromaForSum(sum Sum) (Chroma, bool) {
	assertSum(sum)
	if sum.IsZero() || sum == SumThree {
		return Chroma{}, false
	}
	crossover := h.SumForMaxChroma()
	switch sum.Cmp(crossover) {
	case -1:
		return found(ShadeChroma(sum.Ratio(crossover)))
	case 1:
		return found(TintChroma(SumThree.Sub(sum).Ratio(SumTwo.SubProp(h.second))))
	}
	return ChromaOne, true
}

// WarmthForChroma returns the warmth of h at chroma c.
func (h SextantHue) WarmthForChroma(c Chroma) Prop {
	cp := c.Prop()
	kc := cp.Mul(h.second)
	var x Sum
	// TODO: weight by Shade or Tint once warmth is defined for both sides.
	switch h.sextant {
	case RedYellow, RedMagenta:
		x = SumTwo.Add(cp.MulN(2)).SubProp(kc)
	case GreenYellow, BlueMagenta:
		x = SumTwo.Add(kc.MulN(2)).SubProp(cp)
	default:
		x = SumTwo.SubProp(kc).SubProp(cp)
	}
	return x.DivN(4).Prop()
}

// MaxChromaRGB returns the fully saturated colour of hue h.
func (h SextantHue) MaxChromaRGB() RGB[Prop] {
	return h.makeRGB(PropOne, h.second, PropZero)
}

// MaxChromaRGBForSum returns the most colourful RGB with hue h and the
// given sum.
func (h SextantHue) MaxChromaRGBForSum(sum Sum) (RGB[Prop], bool) {
	assertSum(sum)
	if sum.IsZero() || sum == SumThree {
		return RGB[Prop]{}, false
	}
	crossover := h.SumForMaxChroma()
	switch sum.Cmp(crossover) {
	case -1:
		first := sum.Ratio(crossover)
		return h.makeRGB(first, first.Mul(h.second), PropZero), true
	case 1:
		third := sum.Sub(crossover).Ratio(SumTwo.SubProp(h.second))
		second := third.Add(third.Complement().Mul(h.second)).Prop()
		return h.makeRGB(PropOne, second, third), true
	}
	return h.MaxChromaRGB(), true
}

// MinSumRGBForChroma returns the darkest RGB with hue h and chroma c.
func (h SextantHue) MinSumRGBForChroma(c Chroma) RGB[Prop] {
	switch p := c.Prop(); {
	case p.IsZero():
		return Black[Prop]()
	case p.IsOne():
		return h.MaxChromaRGB()
	default:
		return h.makeRGB(p, p.Mul(h.second), PropZero)
	}
}

// MaxSumRGBForChroma returns the lightest RGB with hue h and chroma c.
func (h SextantHue) MaxSumRGBForChroma(c Chroma) RGB[Prop] {
	switch p := c.Prop(); {
	case p.IsZero():
		return White[Prop]()
	case p.IsOne():
		return h.MaxChromaRGB()
	default:
		third := p.Complement()
		second := p.Mul(h.second).Add(third).Prop()
		return h.makeRGB(PropOne, second, third)
	}
}

// RGBForSumAndChroma returns the RGB with hue h, component sum sum and
// chroma c, or false if sum is outside the range for c.
//
// Light above the minimum sum for c is shared equally across the three
// channels. Up to two spare units from the division are given out by
// remainder so that both sum and chroma are reproduced exactly; the wedge
// position may drift by a few units as a result.
func (h SextantHue) RGBForSumAndChroma(sum Sum, c Chroma) (RGB[Prop], bool) {
	assertSum(sum)
	cp := c.Prop()
	r, ok := h.SumRangeForChromaProp(cp)
	if !ok || r.CompareSum(sum).IsFailure() {
		return RGB[Prop]{}, false
	}
	ck := cp.Mul(h.second)
	base := cp.Add(ck)
	switch sum.Cmp(base) {
	case -1:
		return RGB[Prop]{}, false
	case 0:
		return h.makeRGB(cp, ck, PropZero), true
	}
	threeDelta := sum.Sub(base)
	delta := threeDelta.DivN(3)
	first, second, third := delta.AddProp(cp), delta.AddProp(ck), delta
	switch threeDelta.ModN(3) {
	case 1:
		second = second.AddProp(1)
	case 2:
		first = first.AddProp(1)
		third = third.AddProp(1)
	}
	if SumOne.Less(first) || SumOne.Less(second) {
		return RGB[Prop]{}, false
	}
	check.That(first.Add(second).Add(third) == sum, "sextant rgb sum drift")
	return h.makeRGB(first.Prop(), second.Prop(), third.Prop()), true
}
