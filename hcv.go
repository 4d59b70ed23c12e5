package hcv

import (
	"fmt"
	"log/slog"
)

// HCV is a colour held as hue, chroma and component sum together with the
// RGB those describe. A grey has no hue and zero chroma.
//
// Construct one with HCVFromRGB, GreyHCV or NewHCV.
type HCV struct {
	hue    Hue
	grey   bool
	chroma Chroma
	sum    Sum
	rgb    RGB[Prop]
}

// HCVFromRGB decomposes rgb.
func HCVFromRGB[T LightLevel](rgb RGB[T]) HCV {
	p := RGBFromProps[Prop](rgb.Props())
	sum := p.Sum()
	hue, err := HueFromRGB(p)
	if err != nil {
		return HCV{grey: true, chroma: ChromaZero, sum: sum, rgb: p}
	}
	hi, lo := p.maxMin()
	return HCV{hue: hue, chroma: ChromaFor(hi.Sub(lo), hue, sum), sum: sum, rgb: p}
}

// GreyHCV returns the grey whose components add up to sum.
func GreyHCV(sum Sum) HCV {
	assertSum(sum)
	v := sum.DivN(3).Prop()
	rgb := propRGB(v, v, v)
	return HCV{grey: true, chroma: ChromaZero, sum: rgb.Sum(), rgb: rgb}
}

// NewHCV returns the colour with the given hue, chroma and component sum.
// A zero chroma gives the grey at sum. ErrInfeasible is returned when hue
// cannot show chroma at sum.
//
// The side of the stored chroma is derived from sum, so a requested Shade
// above the crossover comes back as a Tint of the same magnitude.
func NewHCV(hue Hue, chroma Chroma, sum Sum) (HCV, error) {
	if !sum.IsValid() {
		Logger().Debug("hcv: sum out of range", slog.String("sum", sum.String()))
		return HCV{}, fmt.Errorf("%w: sum %v", ErrInfeasible, sum)
	}
	if chroma.IsZero() {
		return GreyHCV(sum), nil
	}
	rgb, ok := hue.RGBForSumAndChroma(sum, chroma)
	if !ok {
		Logger().Debug("hcv: infeasible colour",
			slog.String("hue", hue.String()),
			slog.String("chroma", chroma.String()),
			slog.String("sum", sum.String()))
		return HCV{}, fmt.Errorf("%w: %v %v at sum %v", ErrInfeasible, hue, chroma, sum)
	}
	return HCV{hue: hue, chroma: ChromaFor(chroma.Prop(), hue, sum), sum: sum, rgb: rgb}, nil
}

// NewHCVForValue is NewHCV with the lightness given as a value in [0, 1].
func NewHCVForValue(hue Hue, chroma Chroma, value Prop) (HCV, error) {
	return NewHCV(hue, chroma, value.MulN(3))
}

// Hue returns the hue of c. A grey has none.
func (c HCV) Hue() (Hue, bool) { return c.hue, !c.grey }

// IsGrey reports whether c has no hue.
func (c HCV) IsGrey() bool { return c.grey }

// Chroma returns the chroma of c.
func (c HCV) Chroma() Chroma { return c.chroma }

// Sum returns the component sum of c.
func (c HCV) Sum() Sum { return c.sum }

// Value returns the mean component of c.
func (c HCV) Value() Prop { return c.sum.DivN(3).Prop() }

// Greyness returns 1 - chroma.
func (c HCV) Greyness() Prop { return c.chroma.Prop().Complement() }

// Warmth returns the warmth of c; one half for greys.
func (c HCV) Warmth() Prop {
	if c.grey {
		return PropHalf
	}
	return c.hue.WarmthForChroma(c.chroma)
}

// RGB returns the RGB that c describes.
func (c HCV) RGB() RGB[Prop] { return c.rgb }

// MaxChromaRGB returns the fully saturated colour of c's hue, or the RGB of
// c itself for a grey.
func (c HCV) MaxChromaRGB() RGB[Prop] {
	if c.grey {
		return c.rgb
	}
	return c.hue.MaxChromaRGB()
}

// ScalarAttribute returns the value of attr for c.
func (c HCV) ScalarAttribute(attr ScalarAttribute) Prop {
	switch attr {
	case AttrChroma:
		return c.chroma.Prop()
	case AttrGreyness:
		return c.Greyness()
	case AttrValue:
		return c.Value()
	case AttrWarmth:
		return c.Warmth()
	}
	panic(fmt.Sprintf("hcv: unknown scalar attribute %d", attr))
}

// ApproxEqual reports whether c and other describe the same colour within
// the rounding allowance.
func (c HCV) ApproxEqual(other HCV, opts ...Option) bool {
	o := applyOptions(opts)
	if c.grey != other.grey {
		return false
	}
	if !c.grey && !c.hue.ApproxEqual(other.hue, opts...) {
		return false
	}
	return c.chroma.ApproxEqual(other.chroma, o.maxDiff) && c.sum.ApproxEqual(other.sum, o.maxDiff)
}

// String formats c as e.g. "HCV(Red, Tint(0.500000), 1.500000)".
func (c HCV) String() string {
	if c.grey {
		return fmt.Sprintf("HCV(Grey, %v)", c.sum)
	}
	return fmt.Sprintf("HCV(%v, %v, %v)", c.hue, c.chroma, c.sum)
}
