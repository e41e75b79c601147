package core

import (
	"fmt"

	"github.com/openkinome/kinassay/schema"
)

// fakeConditions is a minimal equality-comparable AssayConditions stand-in.
type fakeConditions struct {
	pH float64
}

func (c fakeConditions) Equal(other schema.AssayConditions) bool {
	o, ok := other.(fakeConditions)
	return ok && o.pH == c.pH
}

func (c fakeConditions) String() string {
	return fmt.Sprintf("AssayConditions(pH=%g)", c.pH)
}

// fakeSystem is a minimal equality-comparable System stand-in.
type fakeSystem struct {
	name string
}

func (s fakeSystem) Equal(other schema.System) bool {
	o, ok := other.(fakeSystem)
	return ok && o.name == s.name
}

func (s fakeSystem) String() string {
	return fmt.Sprintf("System(%s)", s.name)
}

// fakeLabels is a minimal LabelSource stand-in for boosting formulas.
type fakeLabels struct {
	rows []float64
}

func (l fakeLabels) Labels() []float64 {
	return l.rows
}
