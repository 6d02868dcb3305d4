package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintSetUpdateDropsTrueAndFailsOnFalse(t *testing.T) {
	x, err := IntVar("x", 0, 1, 2)
	require.NoError(t, err)
	y, err := IntVar("y", 0, 1, 2)
	require.NoError(t, err)

	cs := NewConstraintSet()
	trueOnceFixed, err := EqualTo(x, 1)
	require.NoError(t, err)
	residualRemains, err := LessThan(x, y)
	require.NoError(t, err)
	falseOnceFixed, err := EqualTo(x, 9)
	require.NoError(t, err)

	cs.Add(trueOnceFixed)
	cs.Add(residualRemains)

	require.NoError(t, cs.UpdateConstraints(map[string]Value{"x": IntValue(1)}))
	assert.Equal(t, 1, cs.Len())

	cs2 := NewConstraintSet()
	cs2.Add(falseOnceFixed)
	err = cs2.UpdateConstraints(map[string]Value{"x": IntValue(1)})
	require.Error(t, err)
	assert.True(t, IsInfeasible(err))
}

func TestConstraintSetRemoveRepeatedKeepsFirst(t *testing.T) {
	x, err := IntVar("x", 0, 1)
	require.NoError(t, err)
	y, err := IntVar("y", 0, 1)
	require.NoError(t, err)

	cs := NewConstraintSet()
	lt, err := LessThan(x, y)
	require.NoError(t, err)
	gt, err := GreaterThan(y, x)
	require.NoError(t, err)
	other, err := NotEqualTo(x, y)
	require.NoError(t, err)

	cs.Add(lt)
	cs.Add(gt)
	cs.Add(other)

	cs.RemoveRepeated()
	assert.Equal(t, 2, cs.Len())
}

func TestConstraintSetEvaluateShortCircuitsOnFalse(t *testing.T) {
	x, err := IntVar("x", 0, 1, 2)
	require.NoError(t, err)

	cs := NewConstraintSet()
	c, err := EqualTo(x, 5)
	require.NoError(t, err)
	cs.Add(c)

	ok, err := cs.Evaluate(map[string]Value{"x": IntValue(1)})
	require.NoError(t, err)
	assert.False(t, ok)
}
