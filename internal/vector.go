// Package internal has numeric slice helpers shared by kinassay packages.
package internal

import "math"

// Clone returns an independent copy of v. A nil or empty input yields an
// empty, non-nil vector so downstream code never aliases caller memory.
func Clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// NaNs returns a vector of n not-a-number entries, the default error vector
// for measurements reported without uncertainties.
func NaNs(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
