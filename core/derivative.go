package core

import (
	"gonum.org/v1/gonum/diff/fd"

	"github.com/openkinome/kinassay/schema"
)

// Derivative numerically differentiates an array model with respect to a
// single latent input using central finite differences. It is meant for
// sanity checks against analytically pre-differentiated formulas, not for
// hot fitting loops.
func Derivative(model ArrayModel, x float64, p schema.ObservationParams) float64 {
	return fd.Derivative(func(t float64) float64 {
		return model([]float64{t}, p)[0]
	}, x, nil)
}
