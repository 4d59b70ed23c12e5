//go:build hcvdebug

package check

// Enabled is true when the hcvdebug build tag is set.
const Enabled = true
