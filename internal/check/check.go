// Package check provides invariant assertions that are compiled in only with
// the hcvdebug build tag.
//
// Out-of-range proportions and sums are programming errors in hcv. With
// -tags hcvdebug they panic at the point of violation; in normal builds the
// checks are constant-folded away and the behavior is undefined.
package check

import "fmt"

// That panics with the formatted message if Enabled and cond is false.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("hcv: invariant violated: "+format, args...))
	}
}
