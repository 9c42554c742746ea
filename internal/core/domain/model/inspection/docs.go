// Package inspection models the quality gate between repair work and billing:
// the foreman's itemized quality check with its two-signature completion
// protocol, and the optional authorized road test that feeds back into the
// verdict.
package inspection
