package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblemRejectsDuplicateVariableNames(t *testing.T) {
	x1, err := IntVar("x", 0, 1)
	require.NoError(t, err)
	x2, err := IntVar("x", 2, 3)
	require.NoError(t, err)

	_, err = NewProblem("dup", []*Variable{x1, x2})
	require.Error(t, err)
	assert.True(t, IsBuildError(err))
}

func TestAddConstraintRejectsUndeclaredVariable(t *testing.T) {
	x, err := IntVar("x", 0, 1, 2)
	require.NoError(t, err)
	y, err := IntVar("y", 0, 1, 2)
	require.NoError(t, err)

	p, err := NewProblem("p", []*Variable{x})
	require.NoError(t, err)

	c, err := LessThan(x, y)
	require.NoError(t, err)

	err = p.AddConstraint(c)
	require.Error(t, err)
	assert.True(t, IsBuildError(err))
}

func TestSetObjectiveReplacementWarnsNotFails(t *testing.T) {
	x, err := IntVar("x", 0, 1, 2)
	require.NoError(t, err)

	p, err := NewProblem("p", []*Variable{x})
	require.NoError(t, err)

	p.SetObjective(Minimize(x.Expr()))
	assert.NotPanics(t, func() {
		p.SetObjective(Maximize(x.Expr()))
	})
	assert.Equal(t, Max, p.Objective().Polarity)
}

func TestComputeSearchSpace(t *testing.T) {
	x, err := IntVar("x", 0, 1, 2)
	require.NoError(t, err)
	y, err := IntVar("y", 0, 1)
	require.NoError(t, err)

	p, err := NewProblem("p", []*Variable{x, y})
	require.NoError(t, err)

	assert.Equal(t, int64(6), p.ComputeSearchSpace())
}

func TestEvaluateReportsFeasibilityAndObjective(t *testing.T) {
	x, err := IntVar("x", 0, 1, 2, 3)
	require.NoError(t, err)
	y, err := IntVar("y", 0, 1, 2, 3)
	require.NoError(t, err)

	p, err := NewProblem("p", []*Variable{x, y})
	require.NoError(t, err)

	c, err := LessThan(x, y)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(c))

	sum, err := Add(x, y)
	require.NoError(t, err)
	p.SetObjective(Minimize(sum))

	feasible, obj, err := p.Evaluate(map[string]Value{"x": IntValue(1), "y": IntValue(2)})
	require.NoError(t, err)
	assert.True(t, feasible)
	require.NotNil(t, obj)
	assert.True(t, obj.Equal(IntValue(3)))

	feasible, _, err = p.Evaluate(map[string]Value{"x": IntValue(2), "y": IntValue(1)})
	require.NoError(t, err)
	assert.False(t, feasible)
}

func TestVariableOrderHintRanksByDegree(t *testing.T) {
	x, err := IntVar("x", 0, 1, 2)
	require.NoError(t, err)
	y, err := IntVar("y", 0, 1, 2)
	require.NoError(t, err)
	z, err := IntVar("z", 0, 1, 2)
	require.NoError(t, err)

	p, err := NewProblem("p", []*Variable{x, y, z})
	require.NoError(t, err)

	xy, err := LessThan(x, y)
	require.NoError(t, err)
	xz, err := LessThan(x, z)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(xy))
	require.NoError(t, p.AddConstraint(xz))

	hint := p.VariableOrderHint()
	require.Len(t, hint, 3)
	assert.Equal(t, "x", hint[0].Name())
}
