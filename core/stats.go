package core

import "gonum.org/v1/gonum/stat"

// Mean returns the mean of the replicate values.
func (m *Measurement) Mean() float64 {
	return stat.Mean(m.values, nil)
}

// StdDev returns the sample standard deviation of the replicate values. A
// single replicate has no spread to estimate and yields NaN.
func (m *Measurement) StdDev() float64 {
	return stat.StdDev(m.values, nil)
}

// FilterByGroup selects the measurements carrying the group label, keeping
// input order.
func FilterByGroup(ms []*Measurement, label string) []*Measurement {
	var out []*Measurement
	for _, m := range ms {
		if m.HasGroup(label) {
			out = append(out, m)
		}
	}
	return out
}
