package hcv

import (
	"fmt"
	"strings"
)

// ScalarAttribute names a single Prop-valued property of a colour.
type ScalarAttribute uint8

// Scalar attributes.
const (
	AttrChroma ScalarAttribute = iota
	AttrGreyness
	AttrValue
	AttrWarmth
)

var attributeNames = [...]string{
	AttrChroma:   "Chroma",
	AttrGreyness: "Greyness",
	AttrValue:    "Value",
	AttrWarmth:   "Warmth",
}

// String returns the display name of a.
func (a ScalarAttribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return fmt.Sprintf("ScalarAttribute(%d)", uint8(a))
}

// ScalarAttributes lists every scalar attribute in display order.
func ScalarAttributes() []ScalarAttribute {
	return []ScalarAttribute{AttrChroma, AttrGreyness, AttrValue, AttrWarmth}
}

// ParseScalarAttribute returns the attribute with display name s. Matching
// ignores ASCII case.
func ParseScalarAttribute(s string) (ScalarAttribute, error) {
	for i, n := range attributeNames {
		if strings.EqualFold(n, s) {
			return ScalarAttribute(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, s)
}
