package hcv

import (
	"fmt"
	"math"
)

type hueKind uint8

const (
	primaryHue hueKind = iota
	secondaryHue
	sextantHue
)

// Hue is the angular identity of a colour, independent of its lightness and
// chroma. It is exactly one of a primary (RGBHue), a secondary (CMYHue) or a
// hue strictly inside a sextant (SextantHue).
//
// Hue values are comparable with ==. The zero value is red.
type Hue struct {
	kind hueKind
	rgb  RGBHue
	cmy  CMYHue
	sx   SextantHue
}

// hueGeometry is the set of queries every hue variant answers.
type hueGeometry interface {
	Angle() Angle
	SumRangeForChromaProp(Prop) (SumRange, bool)
	SumForMaxChroma() Sum
	MaxChromaForSum(Sum) (Chroma, bool)
	WarmthForChroma(Chroma) Prop
	MaxChromaRGB() RGB[Prop]
	MaxChromaRGBForSum(Sum) (RGB[Prop], bool)
	MinSumRGBForChroma(Chroma) RGB[Prop]
	MaxSumRGBForChroma(Chroma) RGB[Prop]
	RGBForSumAndChroma(Sum, Chroma) (RGB[Prop], bool)
}

var (
	_ hueGeometry = RGBHue(0)
	_ hueGeometry = CMYHue(0)
	_ hueGeometry = SextantHue{}
	_ hueGeometry = Hue{}
)

// The primary and secondary hues.
var (
	HueRed     = PrimaryHue(PrimaryRed)
	HueGreen   = PrimaryHue(PrimaryGreen)
	HueBlue    = PrimaryHue(PrimaryBlue)
	HueCyan    = SecondaryHue(SecondaryCyan)
	HueMagenta = SecondaryHue(SecondaryMagenta)
	HueYellow  = SecondaryHue(SecondaryYellow)
)

// PrimaryHues returns red, green and blue.
func PrimaryHues() [3]Hue { return [3]Hue{HueRed, HueGreen, HueBlue} }

// SecondaryHues returns cyan, magenta and yellow.
func SecondaryHues() [3]Hue { return [3]Hue{HueCyan, HueMagenta, HueYellow} }

// PrimaryHue returns the primary hue h.
func PrimaryHue(h RGBHue) Hue {
	return Hue{kind: primaryHue, rgb: h}
}

// SecondaryHue returns the secondary hue h.
func SecondaryHue(h CMYHue) Hue {
	return Hue{kind: secondaryHue, cmy: h}
}

// wedgeEnds maps each sextant to the primary at second == 0 and the
// secondary at second == 1.
var wedgeEnds = [...]struct {
	primary   RGBHue
	secondary CMYHue
}{
	RedMagenta:  {PrimaryRed, SecondaryMagenta},
	RedYellow:   {PrimaryRed, SecondaryYellow},
	GreenYellow: {PrimaryGreen, SecondaryYellow},
	GreenCyan:   {PrimaryGreen, SecondaryCyan},
	BlueCyan:    {PrimaryBlue, SecondaryCyan},
	BlueMagenta: {PrimaryBlue, SecondaryMagenta},
}

// NewSextantHue returns the hue at position second inside sextant s.
// A second of zero is the wedge's primary and one is its secondary.
func NewSextantHue(s Sextant, second Prop) Hue {
	switch {
	case second.IsZero():
		return PrimaryHue(wedgeEnds[s].primary)
	case second.IsOne():
		return SecondaryHue(wedgeEnds[s].secondary)
	}
	return Hue{kind: sextantHue, sx: newSextantHue(s, second)}
}

// Primary returns h as a primary hue.
func (h Hue) Primary() (RGBHue, bool) { return h.rgb, h.kind == primaryHue }

// Secondary returns h as a secondary hue.
func (h Hue) Secondary() (CMYHue, bool) { return h.cmy, h.kind == secondaryHue }

// Sextant returns h as a sextant hue.
func (h Hue) Sextant() (SextantHue, bool) { return h.sx, h.kind == sextantHue }

// IsPrimary reports whether h is red, green or blue.
func (h Hue) IsPrimary() bool { return h.kind == primaryHue }

// IsSecondary reports whether h is cyan, magenta or yellow.
func (h Hue) IsSecondary() bool { return h.kind == secondaryHue }

// IsSextant reports whether h lies strictly inside a sextant.
func (h Hue) IsSextant() bool { return h.kind == sextantHue }

// HueFromRGB classifies rgb. Two equal components give a primary or a
// secondary; three distinct components give a sextant hue. A grey has no
// hue and returns ErrAchromatic.
func HueFromRGB[T LightLevel](rgb RGB[T]) (Hue, error) {
	p := rgb.Props()
	r, g, b := p[0], p[1], p[2]
	switch {
	case r > g:
		switch {
		case g > b:
			return sextant(RedYellow, p), nil
		case g < b:
			switch {
			case r > b:
				return sextant(RedMagenta, p), nil
			case r < b:
				return sextant(BlueMagenta, p), nil
			}
			return HueMagenta, nil
		}
		return HueRed, nil
	case r < g:
		switch {
		case r > b:
			return sextant(GreenYellow, p), nil
		case r < b:
			switch {
			case g > b:
				return sextant(GreenCyan, p), nil
			case g < b:
				return sextant(BlueCyan, p), nil
			}
			return HueCyan, nil
		}
		return HueGreen, nil
	}
	switch {
	case r > b:
		return HueYellow, nil
	case r < b:
		return HueBlue, nil
	}
	return Hue{}, fmt.Errorf("%w: %v", ErrAchromatic, rgb)
}

func sextant(s Sextant, p [3]Prop) Hue {
	return Hue{kind: sextantHue, sx: sextantOf(s, p)}
}

// HueFromAngle returns the hue at angle a on the hue circle.
func HueFromAngle(a Angle) Hue {
	switch a {
	case AngleRed:
		return HueRed
	case AngleGreen:
		return HueGreen
	case AngleBlue:
		return HueBlue
	case AngleCyan:
		return HueCyan
	case AngleMagenta:
		return HueMagenta
	case AngleYellow:
		return HueYellow
	}
	// f inverts the wedge angle of a sextant hue back to its second.
	f := func(theta Angle) Prop {
		return PropFromFloat64(math.Min(theta.Sin()/AngleGreen.Sub(theta).Sin(), 1))
	}
	switch {
	case a > AngleRed && a < AngleYellow:
		return NewSextantHue(RedYellow, f(a))
	case a > AngleRed && a < AngleGreen:
		return NewSextantHue(GreenYellow, f(AngleGreen.Sub(a)))
	case a > AngleRed:
		return NewSextantHue(GreenCyan, f(a.Sub(AngleGreen)))
	case a > AngleMagenta:
		return NewSextantHue(RedMagenta, f(a.Neg()))
	case a > AngleBlue:
		return NewSextantHue(BlueMagenta, f(AngleGreen.Add(a)))
	}
	return NewSextantHue(BlueCyan, f(a.Neg().Sub(AngleGreen)))
}

// Angle returns the position of h on the hue circle.
func (h Hue) Angle() Angle {
	switch h.kind {
	case primaryHue:
		return h.rgb.Angle()
	case secondaryHue:
		return h.cmy.Angle()
	}
	return h.sx.Angle()
}

// SumRangeForChromaProp returns the range of sums at which h can show
// chroma p. There is none for p == 0. For p == 1 the range is the single
// crossover sum.
func (h Hue) SumRangeForChromaProp(p Prop) (SumRange, bool) {
	switch h.kind {
	case primaryHue:
		return h.rgb.SumRangeForChromaProp(p)
	case secondaryHue:
		return h.cmy.SumRangeForChromaProp(p)
	}
	return h.sx.SumRangeForChromaProp(p)
}

// SumForMaxChroma returns the sum at which h reaches full chroma.
func (h Hue) SumForMaxChroma() Sum {
	switch h.kind {
	case primaryHue:
		return h.rgb.SumForMaxChroma()
	case secondaryHue:
		return h.cmy.SumForMaxChroma()
	}
	return h.sx.SumForMaxChroma()
}

// MaxChromaForSum returns the largest chroma h can show at sum. There is
// none at black or white, nor within the few units of them where the chroma
// floors to zero.
func (h Hue) MaxChromaForSum(sum Sum) (Chroma, bool) {
	switch h.kind {
	case primaryHue:
		return h.rgb.MaxChromaForSum(sum)
	case secondaryHue:
		return h.cmy.MaxChromaForSum(sum)
	}
	return h.sx.MaxChromaForSum(sum)
}

// WarmthForChroma returns the warmth of a colour of hue h and chroma c.
func (h Hue) WarmthForChroma(c Chroma) Prop {
	switch h.kind {
	case primaryHue:
		return h.rgb.WarmthForChroma(c)
	case secondaryHue:
		return h.cmy.WarmthForChroma(c)
	}
	return h.sx.WarmthForChroma(c)
}

// MaxChromaRGB returns the fully saturated colour of hue h.
func (h Hue) MaxChromaRGB() RGB[Prop] {
	switch h.kind {
	case primaryHue:
		return h.rgb.MaxChromaRGB()
	case secondaryHue:
		return h.cmy.MaxChromaRGB()
	}
	return h.sx.MaxChromaRGB()
}

// MaxChromaRGBForSum returns the most colourful RGB of hue h at sum.
func (h Hue) MaxChromaRGBForSum(sum Sum) (RGB[Prop], bool) {
	switch h.kind {
	case primaryHue:
		return h.rgb.MaxChromaRGBForSum(sum)
	case secondaryHue:
		return h.cmy.MaxChromaRGBForSum(sum)
	}
	return h.sx.MaxChromaRGBForSum(sum)
}

// MinSumRGBForChroma returns the darkest RGB of hue h and chroma c.
func (h Hue) MinSumRGBForChroma(c Chroma) RGB[Prop] {
	switch h.kind {
	case primaryHue:
		return h.rgb.MinSumRGBForChroma(c)
	case secondaryHue:
		return h.cmy.MinSumRGBForChroma(c)
	}
	return h.sx.MinSumRGBForChroma(c)
}

// MaxSumRGBForChroma returns the lightest RGB of hue h and chroma c.
func (h Hue) MaxSumRGBForChroma(c Chroma) RGB[Prop] {
	switch h.kind {
	case primaryHue:
		return h.rgb.MaxSumRGBForChroma(c)
	case secondaryHue:
		return h.cmy.MaxSumRGBForChroma(c)
	}
	return h.sx.MaxSumRGBForChroma(c)
}

// RGBForSumAndChroma returns the RGB of hue h with component sum sum and
// chroma c, or false if no such colour exists.
func (h Hue) RGBForSumAndChroma(sum Sum, c Chroma) (RGB[Prop], bool) {
	switch h.kind {
	case primaryHue:
		return h.rgb.RGBForSumAndChroma(sum, c)
	case secondaryHue:
		return h.cmy.RGBForSumAndChroma(sum, c)
	}
	return h.sx.RGBForSumAndChroma(sum, c)
}

// ValueRangeForChroma returns the lowest and highest value at which h can
// show chroma p.
func (h Hue) ValueRangeForChroma(p Prop) (lo, hi Prop, ok bool) {
	r, ok := h.SumRangeForChromaProp(p)
	if !ok {
		return PropZero, PropZero, false
	}
	return r.Min.DivN(3).Prop(), r.Max.DivN(3).Prop(), true
}

// MaxChromaForValue returns the largest chroma h can show at value v.
func (h Hue) MaxChromaForValue(v Prop) (Chroma, bool) {
	return h.MaxChromaForSum(v.MulN(3))
}

// MaxChromaRGBForValue returns the most colourful RGB of hue h at value v.
func (h Hue) MaxChromaRGBForValue(v Prop) (RGB[Prop], bool) {
	return h.MaxChromaRGBForSum(v.MulN(3))
}

// RGBForValueAndChroma returns the RGB of hue h with value v and chroma c.
func (h Hue) RGBForValueAndChroma(v Prop, c Chroma) (RGB[Prop], bool) {
	return h.RGBForSumAndChroma(v.MulN(3), c)
}

// AbsDiff returns zero for equal primaries or secondaries, the difference
// in wedge position for sextant hues in the same wedge and one otherwise.
func (h Hue) AbsDiff(other Hue) Prop {
	if h.kind != other.kind {
		return PropOne
	}
	switch h.kind {
	case primaryHue:
		if h.rgb == other.rgb {
			return PropZero
		}
		return PropOne
	case secondaryHue:
		if h.cmy == other.cmy {
			return PropZero
		}
		return PropOne
	}
	return h.sx.AbsDiff(other.sx)
}

// ApproxEqual reports whether h and other are the same hue, allowing the
// wedge position of sextant hues to differ by the rounding allowance.
func (h Hue) ApproxEqual(other Hue, opts ...Option) bool {
	if h.kind != other.kind {
		return false
	}
	if h.kind != sextantHue {
		return h == other
	}
	o := applyOptions(opts)
	return h.sx.sextant == other.sx.sextant && h.sx.second.ApproxEqual(other.sx.second, o.maxDiff)
}

// String returns the hue name, with the wedge position for sextant hues.
func (h Hue) String() string {
	switch h.kind {
	case primaryHue:
		return h.rgb.String()
	case secondaryHue:
		return h.cmy.String()
	}
	return h.sx.String()
}
