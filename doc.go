// Package hcv provides an exact fixed-point Hue/Chroma/Value colour model.
//
// # Overview
//
// hcv converts additive RGB triples to a hue, a chroma and a component sum
// and back again without floating point. Proportions are 64-bit integers
// over a denominator of math.MaxUint64, so 0 and 1 are exact and every
// 8-bit and 16-bit light level survives a round trip unchanged.
//
// # Quick Start
//
//	import "github.com/gogpu/hcv"
//
//	rgb := hcv.NewRGB[uint8](255, 128, 0)
//	hue, err := rgb.Hue() // RedYellow(0.501961)
//	if err != nil {
//	    // grey
//	}
//
//	// Rebuild the colour from its hue, sum and chroma
//	back, ok := hue.RGBForSumAndChroma(rgb.Sum(), rgb.Chroma())
//
// # Data Model
//
// The package is organized around:
//   - Prop: a proportion in [0, 1]
//   - Sum: the sum of up to three proportions, in [0, 3]
//   - Chroma: a proportion tagged Shade or Tint
//   - Hue: a primary, a secondary or a hue inside one of six sextants
//   - RGB: a triple of light levels of any LightLevel type
//   - HCV: a validated hue, chroma and sum with its RGB
//
// # Shade and Tint
//
// Every hue has a crossover sum at which it reaches full chroma: 1 for
// primaries, 2 for secondaries and 1 + second for sextant hues. Colours
// darker than the crossover are shades and everything else, including the
// crossover itself, is a tint.
//
// # Rounding
//
// Multiplication and division are floored at double width. Reconstructed
// colours reproduce chroma exactly and sum to within two units in the last
// place; approximate comparisons accept DefaultMaxDiff units unless told
// otherwise with WithMaxDiff. Narrowing to an integer light level rounds to
// nearest.
//
// # Assertions
//
// Out of range arguments are programming errors. Build with -tags hcvdebug
// to panic on them; release builds do not check.
package hcv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
