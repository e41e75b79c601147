package schema

// Custom string types for type safety.
type (
	// Kind identifies one of the supported measurement types.
	Kind string

	// Backend identifies the computation environment an observation model
	// formula is written for.
	Backend string
)

// All measurement kinds supported.
const (
	// KindPercentageDisplacement is a percentage-of-displacement readout,
	// e.g. from KinomeScan assays.
	KindPercentageDisplacement Kind = "PercentageDisplacement"

	// KindPIC50 is the negative decadic log of an IC50 in molar units.
	KindPIC50 Kind = "pIC50"

	// KindPKi is the negative decadic log of an inhibition constant.
	KindPKi Kind = "pKi"

	// KindPKd is the negative decadic log of a dissociation constant.
	KindPKd Kind = "pKd"
)

// All formula backends supported.
const (
	// BackendArray evaluates formulas element-wise over plain float64
	// vectors, suitable for differentiable-array pipelines.
	BackendArray Backend = "array"

	// BackendBoosting evaluates formulas as gradient/hessian pairs of a
	// half squared-error loss, suitable for gradient-boosting training.
	BackendBoosting Backend = "boosting"
)

// Kinds lists every supported measurement kind.
func Kinds() []Kind {
	return []Kind{KindPercentageDisplacement, KindPIC50, KindPKi, KindPKd}
}

// Bounds returns the inclusive range valid values of this kind must lie in.
// ok is false for kinds with no registered range.
func (k Kind) Bounds() (lo, hi float64, ok bool) {
	switch k {
	case KindPercentageDisplacement:
		return 0, 100, true
	case KindPIC50, KindPKi, KindPKd:
		return 0, 15, true
	}
	return 0, 0, false
}
