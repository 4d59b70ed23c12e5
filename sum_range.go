package hcv

import "github.com/gogpu/hcv/internal/check"

// SumRange is the range of component sums at which a hue can show a given
// chroma: from Min on the shade side, through Crossover where chroma peaks,
// to Max on the tint side.
type SumRange struct {
	Min       Sum
	Crossover Sum
	Max       Sum
}

func newSumRange(lo, crossover, hi Sum) SumRange {
	check.That(lo.IsValid() && crossover.IsValid() && hi.IsValid(), "sum range %v %v %v", lo, crossover, hi)
	check.That(!crossover.Less(lo) && !hi.Less(crossover), "sum range out of order %v %v %v", lo, crossover, hi)
	return SumRange{Min: lo, Crossover: crossover, Max: hi}
}

// SumOrdering classifies a sum against a SumRange.
type SumOrdering uint8

const (
	// SumTooSmall is below the shade minimum.
	SumTooSmall SumOrdering = iota
	// SumShade is on the shade side of the crossover.
	SumShade
	// SumNeither is within one unit of the crossover.
	SumNeither
	// SumTint is on the tint side of the crossover.
	SumTint
	// SumTooBig is above the tint maximum.
	SumTooBig
)

// String returns a short name for o.
func (o SumOrdering) String() string {
	switch o {
	case SumTooSmall:
		return "too-small"
	case SumShade:
		return "shade"
	case SumNeither:
		return "neither"
	case SumTint:
		return "tint"
	case SumTooBig:
		return "too-big"
	}
	return "unknown"
}

// IsFailure reports whether o is outside the range.
func (o SumOrdering) IsFailure() bool {
	return o == SumTooSmall || o == SumTooBig
}

// CompareSum places sum relative to r. Sums within one unit of the
// crossover are SumNeither.
func (r SumRange) CompareSum(sum Sum) SumOrdering {
	one := Sum{}.AddProp(1)
	switch {
	case sum.Less(r.Min):
		return SumTooSmall
	case r.Max.Less(sum):
		return SumTooBig
	case sum.Add(one).Less(r.Crossover):
		return SumShade
	case r.Crossover.Add(one).Less(sum):
		return SumTint
	}
	return SumNeither
}

// Contains reports whether sum is within [Min, Max].
func (r SumRange) Contains(sum Sum) bool {
	return !r.CompareSum(sum).IsFailure()
}

// IsDegenerate reports whether the range collapses to its crossover, which
// is the case for full chroma.
func (r SumRange) IsDegenerate() bool {
	return r.Min == r.Max
}
