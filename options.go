package hcv

// DefaultMaxDiff is the rounding allowance, in units of the last place,
// used by the approximate comparisons when no WithMaxDiff option is given.
const DefaultMaxDiff = 0x10

// DefaultAngleTolerance is the angle allowance in degrees used when no
// WithAngleTolerance option is given.
const DefaultAngleTolerance = 1e-6

// Option configures an approximate comparison.
//
// Example:
//
//	// Accept the rounding of a reconstructed colour
//	ok := got.ApproxEqual(want, hcv.WithMaxDiff(0x100))
//
//	// Compare hue angles to a tenth of a degree
//	ok = a.ApproxEqual(b, hcv.WithAngleTolerance(0.1))
type Option func(*options)

// options holds the tolerances of an approximate comparison.
type options struct {
	maxDiff        uint64
	angleTolerance float64
}

// defaultOptions returns the default comparison options.
func defaultOptions() options {
	return options{
		maxDiff:        DefaultMaxDiff,
		angleTolerance: DefaultAngleTolerance,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxDiff sets the allowed difference, in units of the last place, for
// Prop, Sum and Chroma magnitudes compared inside composite values.
func WithMaxDiff(units uint64) Option {
	return func(o *options) {
		o.maxDiff = units
	}
}

// WithAngleTolerance sets the allowed angle difference in degrees.
func WithAngleTolerance(deg float64) Option {
	return func(o *options) {
		o.angleTolerance = deg
	}
}
