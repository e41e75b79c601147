// Package core has the measurement value object and the observation model
// formulas that map latent free energies to predicted measurement values.
package core

import (
	"fmt"
	"maps"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/openkinome/kinassay/internal"
	"github.com/openkinome/kinassay/schema"
)

// Measurement is an experimental readout of one kind, taken on one system
// under one set of assay conditions. Values can hold more than one replicate;
// a single replicate is just the one-element case.
//
// Measurements are immutable once constructed: accessors return copies, and
// the conditions/system collaborators are referenced, never copied.
type Measurement struct {
	kind       schema.Kind
	values     []float64
	errs       []float64
	conditions schema.AssayConditions
	system     schema.System
	groups     map[string]struct{}
	metadata   map[string]any
}

// Option customizes measurement construction.
type Option func(*options)

type options struct {
	errs     []float64
	groups   []string
	metadata map[string]any
	lenient  bool
}

// WithErrors attaches per-replicate uncertainties. The vector must have the
// same length as the values vector.
func WithErrors(errs []float64) Option {
	return func(o *options) { o.errs = errs }
}

// WithGroups tags the measurement with group labels for later bucketing.
func WithGroups(labels ...string) Option {
	return func(o *options) { o.groups = labels }
}

// WithMetadata attaches auxiliary key/value pairs (assay identifiers,
// provenance notes, ...). The mapping is copied.
func WithMetadata(md map[string]any) Option {
	return func(o *options) { o.metadata = md }
}

// Lenient skips the range check at construction. Use it for raw data that
// still needs curation; Check can be run later.
func Lenient() Option {
	return func(o *options) { o.lenient = true }
}

// New builds a measurement of the given kind. Values are copied into a 1-D
// vector; errors default to NaN per replicate. Unless Lenient is given, the
// kind's range check runs before the measurement is returned.
func New(kind schema.Kind, values []float64, conditions schema.AssayConditions, system schema.System, opts ...Option) (*Measurement, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("measurement needs at least one value (received none)")
	}
	if conditions == nil {
		return nil, fmt.Errorf("measurement needs non-nil assay conditions")
	}
	if system == nil {
		return nil, fmt.Errorf("measurement needs a non-nil system")
	}

	errs := internal.NaNs(len(values))
	if o.errs != nil {
		if len(o.errs) != len(values) {
			return nil, fmt.Errorf("errors length %d does not match values length %d", len(o.errs), len(values))
		}
		errs = internal.Clone(o.errs)
	}

	groups := make(map[string]struct{}, len(o.groups))
	for _, label := range o.groups {
		groups[label] = struct{}{}
	}

	metadata := make(map[string]any, len(o.metadata))
	maps.Copy(metadata, o.metadata)

	m := &Measurement{
		kind:       kind,
		values:     internal.Clone(values),
		errs:       errs,
		conditions: conditions,
		system:     system,
		groups:     groups,
		metadata:   metadata,
	}
	if !o.lenient {
		if err := m.Check(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewScalar builds a single-replicate measurement from one value.
func NewScalar(kind schema.Kind, value float64, conditions schema.AssayConditions, system schema.System, opts ...Option) (*Measurement, error) {
	return New(kind, []float64{value}, conditions, system, opts...)
}

// Check verifies every value lies inside the kind's inclusive range. Kinds
// without a registered range pass trivially. NaN values fail.
func (m *Measurement) Check() error {
	lo, hi, ok := m.kind.Bounds()
	if !ok {
		return nil
	}
	for i, v := range m.values {
		if !(v >= lo && v <= hi) {
			return &schema.ValidationError{Kind: m.kind, Value: v, Index: i, Lo: lo, Hi: hi}
		}
	}
	return nil
}

// Kind returns the measurement kind tag.
func (m *Measurement) Kind() schema.Kind {
	return m.kind
}

// Values returns a copy of the replicate values vector.
func (m *Measurement) Values() []float64 {
	return internal.Clone(m.values)
}

// Errors returns a copy of the per-replicate uncertainty vector. Entries are
// NaN when no uncertainty was reported.
func (m *Measurement) Errors() []float64 {
	return internal.Clone(m.errs)
}

// Conditions returns the assay conditions reference.
func (m *Measurement) Conditions() schema.AssayConditions {
	return m.conditions
}

// System returns the measured system reference.
func (m *Measurement) System() schema.System {
	return m.system
}

// Replicates returns the number of replicate values.
func (m *Measurement) Replicates() int {
	return len(m.values)
}

// Groups returns the sorted group labels of the measurement.
func (m *Measurement) Groups() []string {
	labels := make([]string, 0, len(m.groups))
	for label := range m.groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// HasGroup reports whether the measurement carries the group label.
func (m *Measurement) HasGroup(label string) bool {
	_, ok := m.groups[label]
	return ok
}

// Metadata returns a shallow copy of the auxiliary metadata mapping.
func (m *Measurement) Metadata() map[string]any {
	out := make(map[string]any, len(m.metadata))
	maps.Copy(out, m.metadata)
	return out
}

// Equal reports whether two measurements carry element-wise equal values and
// equal conditions and system, by the collaborators' own equality. Errors,
// groups and metadata do not participate.
func (m *Measurement) Equal(other *Measurement) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !floats.Equal(m.values, other.values) {
		return false
	}
	return m.conditions.Equal(other.conditions) && m.system.Equal(other.system)
}

// String renders the measurement with nested collaborator renderings for
// diagnostics.
func (m *Measurement) String() string {
	return fmt.Sprintf("<%s values=%v conditions=%s system=%s>", m.kind, m.values, m.conditions, m.system)
}
