package hcv

import (
	"errors"
	"fmt"
)

// Sentinel errors for package hcv.
var (
	// ErrAchromatic is returned when a hue is requested for a grey.
	ErrAchromatic = errors.New("hcv: achromatic colour has no hue")

	// ErrInfeasible is returned when no colour has the requested hue, sum
	// and chroma.
	ErrInfeasible = errors.New("hcv: no colour with that hue, sum and chroma")

	// ErrUnknownColourName is returned by RGBFromName and ParseRGB for names
	// that are not CSS colour names.
	ErrUnknownColourName = errors.New("hcv: unknown colour name")

	// ErrUnknownAttribute is returned by ParseScalarAttribute.
	ErrUnknownAttribute = errors.New("hcv: unknown scalar attribute")
)

// DecodeError is returned when a serialised value cannot be decoded.
type DecodeError struct {
	Type  string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hcv: cannot decode %s from %q: %v", e.Type, e.Value, e.Err)
	}
	return fmt.Sprintf("hcv: cannot decode %s from %q", e.Type, e.Value)
}

func (e *DecodeError) Unwrap() error { return e.Err }
