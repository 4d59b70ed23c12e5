//go:build !hcvdebug

package check

// Enabled is false when the hcvdebug build tag is not set.
const Enabled = false
