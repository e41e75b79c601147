package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/openkinome/kinassay/internal"
	"github.com/openkinome/kinassay/schema"
)

// ln10 converts between natural and decadic log scales.
var ln10 = math.Log(10)

// ArrayModel maps a vector of latent dimensionless free energies (dG/kT) to
// predicted measurement values in the kind's physical units. Models are pure:
// they never mutate their inputs and carry no state.
type ArrayModel func(latent []float64, p schema.ObservationParams) []float64

// BoostingModel computes the per-row gradient and constant hessian of the
// half squared-error loss between the kind's predicted value and the training
// labels of a boosting round. The differentiation is analytic, done once on
// paper rather than per call.
type BoostingModel func(latent []float64, labels schema.LabelSource, p schema.ObservationParams) (grad, hess []float64, err error)

// Model is a resolved observation model formula. The concrete type is
// ArrayModel or BoostingModel, matching the backend it was looked up for;
// callers type-assert before invoking.
type Model interface {
	model()
}

func (ArrayModel) model()    {}
func (BoostingModel) model() {}

// modelSet is one kind's per-backend formula table.
type modelSet struct {
	array    ArrayModel
	boosting BoostingModel
}

// modelsByKind registers the formula table per measurement kind. Boosting
// slots without a derived formula hold an explicit placeholder, so lookup
// succeeds but invocation reports the gap.
var modelsByKind = map[schema.Kind]modelSet{
	schema.KindPercentageDisplacement: {
		array:    percentageDisplacementArray,
		boosting: notImplementedBoosting(schema.KindPercentageDisplacement),
	},
	schema.KindPIC50: {
		array:    pIC50Array,
		boosting: pIC50Boosting,
	},
	schema.KindPKi: {
		// Ki is assumed approximately equal to Kd, so pKi shares the pKd relation.
		array:    pKdArray,
		boosting: notImplementedBoosting(schema.KindPKi),
	},
	schema.KindPKd: {
		array:    pKdArray,
		boosting: notImplementedBoosting(schema.KindPKd),
	},
}

// ObservationModel resolves the formula registered for the (kind, backend)
// pair and returns the callable itself, never its result. Fitting loops
// request the function once and invoke it later with their own latent values
// and parameters.
func ObservationModel(kind schema.Kind, backend schema.Backend) (Model, error) {
	set, ok := modelsByKind[kind]
	if !ok {
		return nil, &schema.UnsupportedBackendError{Kind: kind, Backend: backend}
	}
	switch backend {
	case schema.BackendArray:
		return set.array, nil
	case schema.BackendBoosting:
		return set.boosting, nil
	}
	return nil, &schema.UnsupportedBackendError{Kind: kind, Backend: backend}
}

// ArrayObservationModel resolves the array-backend formula for the kind.
func ArrayObservationModel(kind schema.Kind) (ArrayModel, error) {
	model, err := ObservationModel(kind, schema.BackendArray)
	if err != nil {
		return nil, err
	}
	return model.(ArrayModel), nil
}

// BoostingObservationModel resolves the boosting-backend formula for the
// kind. The returned callable may still report NotImplementedError when the
// kind has no derived boosting formula.
func BoostingObservationModel(kind schema.Kind) (BoostingModel, error) {
	model, err := ObservationModel(kind, schema.BackendBoosting)
	if err != nil {
		return nil, err
	}
	return model.(BoostingModel), nil
}

// ObservationModel resolves a formula for this measurement's kind.
func (m *Measurement) ObservationModel(backend schema.Backend) (Model, error) {
	return ObservationModel(m.kind, backend)
}

// NullObservationModel is the identity passthrough: it returns the latent
// vector unchanged. Use it where no transformation is desired.
func NullObservationModel(latent []float64, _ schema.ObservationParams) []float64 {
	return latent
}

// percentageDisplacementArray predicts percent displacement from the latent
// free energy under the single-concentration KinomeScan assumption
// D ~ 1 / (1 + Kd/[I]):
//
//	D(x) = 100 * (1 - 1/(1 + 1/exp(x)))
//
// FIXME: this might be upside down -- check!
func percentageDisplacementArray(latent []float64, _ schema.ObservationParams) []float64 {
	out := make([]float64, len(latent))
	for i, x := range latent {
		out[i] = 100 * (1 - 1/(1+1/math.Exp(x)))
	}
	return out
}

// pIC50Array predicts pIC50 through the Cheng-Prusoff relation under the
// Ki ~ Kd assumption:
//
//	IC50 ~ (1 + [S]/Km) * Kd
//	pIC50(x) = -(x + ln((1 + [S]/Km) * [I])) / ln(10)
func pIC50Array(latent []float64, p schema.ObservationParams) []float64 {
	out := internal.Clone(latent)
	floats.AddConst(math.Log((1+p.SubstrateConc/p.MichaelisConstant)*p.InhibitorConc), out)
	floats.Scale(-1/ln10, out)
	return out
}

// pIC50Boosting supplies the boosting loop with the analytic gradient and
// hessian of loss = 1/2 * (pIC50(x) - label)^2 with respect to x:
//
//	grad_i = (label_i + x_i/ln10 + k) / ln10, k = ln((1 + [S]/Km) * [I]) / ln10
//	hess_i = 1 / ln10^2
func pIC50Boosting(latent []float64, labels schema.LabelSource, p schema.ObservationParams) (grad, hess []float64, err error) {
	rows := labels.Labels()
	if len(rows) != len(latent) {
		return nil, nil, fmt.Errorf("boosting round has %d labels for %d latent values", len(rows), len(latent))
	}

	constant := math.Log((1+p.SubstrateConc/p.MichaelisConstant)*p.InhibitorConc) / ln10

	grad = make([]float64, len(rows))
	hess = make([]float64, len(rows))
	for i, label := range rows {
		grad[i] = (label + latent[i]/ln10 + constant) / ln10
		hess[i] = 1 / (ln10 * ln10)
	}
	return grad, hess, nil
}

// pKdArray predicts pKd (and pKi, under Ki ~ Kd) from the latent free energy:
//
//	pKd(x) = -(x + ln([I])) / ln(10)
func pKdArray(latent []float64, p schema.ObservationParams) []float64 {
	out := internal.Clone(latent)
	floats.AddConst(math.Log(p.InhibitorConc), out)
	floats.Scale(-1/ln10, out)
	return out
}

// notImplementedBoosting builds the placeholder registered for kinds whose
// boosting formula has not been derived yet.
func notImplementedBoosting(kind schema.Kind) BoostingModel {
	return func(_ []float64, _ schema.LabelSource, _ schema.ObservationParams) ([]float64, []float64, error) {
		return nil, nil, &schema.NotImplementedError{Kind: kind, Backend: schema.BackendBoosting}
	}
}
