package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueArithmetic(t *testing.T) {
	assert.Equal(t, IntValue(7), AddValue(IntValue(3), IntValue(4)))
	assert.Equal(t, IntValue(-1), SubValue(IntValue(3), IntValue(4)))
	assert.Equal(t, IntValue(12), MulValue(IntValue(3), IntValue(4)))
	assert.Equal(t, IntValue(-3), NegValue(IntValue(3)))
	assert.True(t, RealValue(2.5).IsReal())
	assert.False(t, IntValue(2).IsReal())
}

func TestDivValuePromotesOnUnevenDivision(t *testing.T) {
	exact, err := DivValue(IntValue(10), IntValue(5))
	require.NoError(t, err)
	assert.False(t, exact.IsReal())
	assert.Equal(t, int64(2), exact.Int())

	uneven, err := DivValue(IntValue(7), IntValue(2))
	require.NoError(t, err)
	assert.True(t, uneven.IsReal())
	assert.Equal(t, 3.5, uneven.Float())
}

func TestDivValueByZeroIsDomainError(t *testing.T) {
	_, err := DivValue(IntValue(1), IntValue(0))
	require.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestModValueFloorsLikePython(t *testing.T) {
	m, err := ModValue(IntValue(-7), IntValue(3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.Int())

	_, err = ModValue(IntValue(1), IntValue(0))
	require.Error(t, err)
	assert.True(t, IsDomainError(err))
}

func TestPowValueIntegerFastPath(t *testing.T) {
	v := PowValue(IntValue(2), IntValue(10))
	assert.False(t, v.IsReal())
	assert.Equal(t, int64(1024), v.Int())
}

func TestValueCmpAndEqual(t *testing.T) {
	assert.Equal(t, 0, IntValue(3).Cmp(RealValue(3.0)))
	assert.True(t, IntValue(3).Equal(RealValue(3.0)))
	assert.Equal(t, -1, IntValue(2).Cmp(IntValue(3)))
	assert.Equal(t, 1, RealValue(3.5).Cmp(IntValue(3)))
}
