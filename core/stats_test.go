package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkinome/kinassay/schema"
)

// TestReplicateStatistics checks the mean and spread over replicates.
func TestReplicateStatistics(t *testing.T) {
	cond := fakeConditions{pH: 7}
	sys := fakeSystem{name: "x"}

	m, err := New(schema.KindPKd, []float64{8.0, 8.2, 8.4}, cond, sys)
	require.NoError(t, err)
	assert.InDelta(t, 8.2, m.Mean(), 1e-12)
	assert.InDelta(t, 0.2, m.StdDev(), 1e-12)

	single, err := NewScalar(schema.KindPKd, 8.0, cond, sys)
	require.NoError(t, err)
	assert.Equal(t, 8.0, single.Mean())
	assert.True(t, math.IsNaN(single.StdDev()), "single replicate has no spread")
}

// TestFilterByGroup checks group-label bucketing.
func TestFilterByGroup(t *testing.T) {
	cond := fakeConditions{pH: 7}
	sys := fakeSystem{name: "x"}

	train1, err := NewScalar(schema.KindPKi, 6.1, cond, sys, WithGroups("train"))
	require.NoError(t, err)
	test1, err := NewScalar(schema.KindPKi, 6.2, cond, sys, WithGroups("test"))
	require.NoError(t, err)
	train2, err := NewScalar(schema.KindPKi, 6.3, cond, sys, WithGroups("train", "plate-1"))
	require.NoError(t, err)

	all := []*Measurement{train1, test1, train2}
	assert.Equal(t, []*Measurement{train1, train2}, FilterByGroup(all, "train"))
	assert.Equal(t, []*Measurement{test1}, FilterByGroup(all, "test"))
	assert.Empty(t, FilterByGroup(all, "validation"))
}
