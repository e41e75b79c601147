// Package schema has the kinds, backends, parameters and collaborator
// contracts shared by all parts of kinassay.
package schema

import "fmt"

// AssayConditions describes the experimental conditions a measurement was
// taken under (pH, temperature, ...). Conditions are built elsewhere and
// consumed here as an opaque, equality-comparable value object.
type AssayConditions interface {
	fmt.Stringer

	// Equal reports whether two condition sets describe the same assay setup.
	Equal(other AssayConditions) bool
}

// System describes the molecular entities that were measured (protein,
// ligand, complex). Like AssayConditions, systems are built elsewhere and
// consumed here as an opaque, equality-comparable value object.
type System interface {
	fmt.Stringer

	// Equal reports whether two systems contain the same molecular entities.
	Equal(other System) bool
}

// LabelSource exposes the per-row training labels of a gradient-boosting
// round. It is the minimal contract boosting-backend formulas need from the
// boosting library's data matrix.
type LabelSource interface {
	// Labels returns one training label per data row.
	Labels() []float64
}
