package schema

import "fmt"

// ValidationError reports a measurement value outside the range its kind
// declares. It is returned by strict construction and by explicit checks.
type ValidationError struct {
	Kind  Kind    // Measurement kind whose range was violated
	Value float64 // Offending value
	Index int     // Position of the offending value in the vector
	Lo    float64 // Inclusive lower bound
	Hi    float64 // Inclusive upper bound
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"values for %s measurements are expected to be in the [%g, %g] range (got %g at index %d)",
		e.Kind, e.Lo, e.Hi, e.Value, e.Index,
	)
}

// UnsupportedBackendError reports an observation model lookup for a
// (kind, backend) pair with no registered formula slot.
type UnsupportedBackendError struct {
	Kind    Kind
	Backend Backend
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("observation model for backend %q is not available for %s measurements", e.Backend, e.Kind)
}

// NotImplementedError reports an invocation of a formula slot that exists in
// the contract but is an intentional placeholder for its (kind, backend)
// pair.
type NotImplementedError struct {
	Kind    Kind
	Backend Backend
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("observation model for backend %q is not implemented for %s measurements", e.Backend, e.Kind)
}
