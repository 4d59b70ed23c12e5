// Package wide provides double-width unsigned integer arithmetic for the
// fixed-point types of hcv.
//
// Go has no native 128-bit integer, so this package implements the small
// subset of operations the proportion and sum types need on top of
// math/bits: addition, subtraction, scalar multiplication, division and the
// scaled multiply/divide used to keep fixed-point results within one unit in
// the last place.
//
// # Wide Types
//
// U128: an unsigned 128-bit integer held as two uint64 halves.
//
// # Scaled Operations
//
// The fixed-point denominator used throughout hcv is math.MaxUint64. The
// helpers MulDivMax and ScaleDiv compute a*b/MaxUint64 and a*MaxUint64/d with
// a full-width intermediate and a floored result. MulDivMaxRound rounds to
// nearest instead and is used when narrowing to pixel formats.
//
// # Design Philosophy
//
//   - Value types only, no allocation
//   - Floor (truncating) division, so results never overshoot
//   - Keep functions small and inlineable
//
// # Usage Example
//
//	a := wide.From64(math.MaxUint64).Mul64(3) // 3.0
//	q, r := a.QuoRem64(2)
package wide
