package hcv

import (
	"fmt"
	"image/color"
)

// CCI indexes the components of an RGB.
type CCI uint8

// Colour component indices.
const (
	CCIRed CCI = iota
	CCIGreen
	CCIBlue
)

// String returns the component name.
func (i CCI) String() string {
	switch i {
	case CCIRed:
		return "red"
	case CCIGreen:
		return "green"
	case CCIBlue:
		return "blue"
	}
	return fmt.Sprintf("CCI(%d)", uint8(i))
}

// RGB is an additive red, green, blue triple of light levels.
//
// RGB values are comparable with ==. They also implement color.Color so
// they can be handed directly to image and drawing code.
type RGB[T LightLevel] [3]T

// NewRGB returns the RGB with the given components.
func NewRGB[T LightLevel](r, g, b T) RGB[T] {
	return RGB[T]{r, g, b}
}

// RGBFromProps returns the RGB whose components are the proportions p.
func RGBFromProps[T LightLevel](p [3]Prop) RGB[T] {
	return RGB[T]{PropToLevel[T](p[0]), PropToLevel[T](p[1]), PropToLevel[T](p[2])}
}

// ConvertRGB converts rgb to light levels of type U.
func ConvertRGB[U, T LightLevel](rgb RGB[T]) RGB[U] {
	return RGBFromProps[U](rgb.Props())
}

func propRGB(r, g, b Prop) RGB[Prop] {
	return RGB[Prop]{r, g, b}
}

// Black returns black.
func Black[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropZero, PropZero, PropZero}) }

// White returns white.
func White[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropOne, PropOne, PropOne}) }

// Red returns full intensity red.
func Red[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropOne, PropZero, PropZero}) }

// Green returns full intensity green.
func Green[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropZero, PropOne, PropZero}) }

// Blue returns full intensity blue.
func Blue[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropZero, PropZero, PropOne}) }

// Cyan returns full intensity cyan.
func Cyan[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropZero, PropOne, PropOne}) }

// Magenta returns full intensity magenta.
func Magenta[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropOne, PropZero, PropOne}) }

// Yellow returns full intensity yellow.
func Yellow[T LightLevel]() RGB[T] { return RGBFromProps[T]([3]Prop{PropOne, PropOne, PropZero}) }

// Primaries returns red, green and blue in that order.
func Primaries[T LightLevel]() [3]RGB[T] {
	return [3]RGB[T]{Red[T](), Green[T](), Blue[T]()}
}

// Secondaries returns cyan, magenta and yellow in that order.
func Secondaries[T LightLevel]() [3]RGB[T] {
	return [3]RGB[T]{Cyan[T](), Magenta[T](), Yellow[T]()}
}

// Red returns the red component.
func (c RGB[T]) Red() T { return c[CCIRed] }

// Green returns the green component.
func (c RGB[T]) Green() T { return c[CCIGreen] }

// Blue returns the blue component.
func (c RGB[T]) Blue() T { return c[CCIBlue] }

// At returns the component at index i.
func (c RGB[T]) At(i CCI) T { return c[i] }

// Props returns the components as proportions.
func (c RGB[T]) Props() [3]Prop {
	return [3]Prop{LevelToProp(c[0]), LevelToProp(c[1]), LevelToProp(c[2])}
}

// Sum returns the sum of the components, in [0, 3].
func (c RGB[T]) Sum() Sum {
	p := c.Props()
	return p[0].Add(p[1]).AddProp(p[2])
}

// Value returns the mean of the components.
func (c RGB[T]) Value() Prop {
	return c.Sum().DivN(3).Prop()
}

// IsGrey reports whether all three components are equal.
func (c RGB[T]) IsGrey() bool {
	p := c.Props()
	return p[0] == p[1] && p[1] == p[2]
}

// Hue classifies c. It returns ErrAchromatic if c is grey.
func (c RGB[T]) Hue() (Hue, error) {
	return HueFromRGB(c)
}

// Chroma returns the chroma of c: the difference between its largest and
// smallest components, tagged Shade or Tint relative to its hue's crossover.
func (c RGB[T]) Chroma() Chroma {
	hue, err := HueFromRGB(c)
	if err != nil {
		return ChromaZero
	}
	hi, lo := c.maxMin()
	return ChromaFor(hi.Sub(lo), hue, c.Sum())
}

// Greyness returns 1 - chroma.
func (c RGB[T]) Greyness() Prop {
	return c.Chroma().Prop().Complement()
}

// Warmth returns how warm c is: 1 for pure red, 0 for pure cyan and one half
// for greys.
func (c RGB[T]) Warmth() Prop {
	hue, err := HueFromRGB(c)
	if err != nil {
		return PropHalf
	}
	return hue.WarmthForChroma(c.Chroma())
}

// ScalarAttribute returns the value of attr for c.
func (c RGB[T]) ScalarAttribute(attr ScalarAttribute) Prop {
	switch attr {
	case AttrChroma:
		return c.Chroma().Prop()
	case AttrGreyness:
		return c.Greyness()
	case AttrValue:
		return c.Value()
	case AttrWarmth:
		return c.Warmth()
	}
	panic(fmt.Sprintf("hcv: unknown scalar attribute %d", attr))
}

// MaxChromaRGB returns the fully saturated colour with the hue of c.
// A grey has no hue and is returned unchanged.
func (c RGB[T]) MaxChromaRGB() RGB[T] {
	hue, err := HueFromRGB(c)
	if err != nil {
		return c
	}
	return ConvertRGB[T](hue.MaxChromaRGB())
}

// Scale multiplies each component by p.
func (c RGB[T]) Scale(p Prop) RGB[T] {
	v := c.Props()
	return RGBFromProps[T]([3]Prop{v[0].Mul(p), v[1].Mul(p), v[2].Mul(p)})
}

// Complement returns the colour with each component replaced by one minus
// itself.
func (c RGB[T]) Complement() RGB[T] {
	v := c.Props()
	return RGBFromProps[T]([3]Prop{v[0].Complement(), v[1].Complement(), v[2].Complement()})
}

// AbsDiff returns the largest component-wise difference between c and other.
func (c RGB[T]) AbsDiff(other RGB[T]) Prop {
	a, b := c.Props(), other.Props()
	d := PropZero
	for i := range a {
		d = max(d, a[i].AbsDiff(b[i]))
	}
	return d
}

// ApproxEqual reports whether every component of c is within the rounding
// allowance of the corresponding component of other.
func (c RGB[T]) ApproxEqual(other RGB[T], opts ...Option) bool {
	o := applyOptions(opts)
	return uint64(c.AbsDiff(other)) <= o.maxDiff
}

func (c RGB[T]) maxMin() (hi, lo Prop) {
	p := c.Props()
	return max(p[0], p[1], p[2]), min(p[0], p[1], p[2])
}

// RGBA implements color.Color. The colour is fully opaque.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	p := c.Props()
	return uint32(p[0].Uint16()), uint32(p[1].Uint16()), uint32(p[2].Uint16()), 0xffff
}

// RGBFromColor converts any color.Color to an RGB, discarding alpha.
func RGBFromColor[T LightLevel](c color.Color) RGB[T] {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBFromProps[T]([3]Prop{PropFromUint16(n.R), PropFromUint16(n.G), PropFromUint16(n.B)})
}

// Hex formats c as "#RRGGBB".
func (c RGB[T]) Hex() string {
	p := c.Props()
	return fmt.Sprintf("#%02X%02X%02X", p[0].Uint8(), p[1].Uint8(), p[2].Uint8())
}

// String formats c as "RGB(r, g, b)".
func (c RGB[T]) String() string {
	p := c.Props()
	return fmt.Sprintf("RGB(%v, %v, %v)", p[0], p[1], p[2])
}
