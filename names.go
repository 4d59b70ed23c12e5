package hcv

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// RGBFromName returns the CSS / SVG 1.1 named colour name. Matching ignores
// case and surrounding space.
func RGBFromName[T LightLevel](name string) (RGB[T], error) {
	c, ok := colornames.Map[cases.Fold().String(strings.TrimSpace(name))]
	if !ok {
		return RGB[T]{}, fmt.Errorf("%w: %q", ErrUnknownColourName, name)
	}
	return RGBFromProps[T]([3]Prop{PropFromUint8(c.R), PropFromUint8(c.G), PropFromUint8(c.B)}), nil
}

// ColourNames returns the recognised colour names in alphabetical order.
func ColourNames() []string {
	return append([]string(nil), colornames.Names...)
}

// ParseRGB parses "#RGB", "#RRGGBB" or a colour name.
func ParseRGB[T LightLevel](s string) (RGB[T], error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return RGBFromName[T](s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGB[T]{}, &DecodeError{Type: "RGB", Value: s}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB[T]{}, &DecodeError{Type: "RGB", Value: s, Err: err}
	}
	return RGBFromProps[T]([3]Prop{
		PropFromUint8(uint8(v >> 16)),
		PropFromUint8(uint8(v >> 8)),
		PropFromUint8(uint8(v)),
	}), nil
}
