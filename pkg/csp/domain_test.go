package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIntDomainSortsAndDedupes(t *testing.T) {
	d := NewIntDomain(3, 1, 2, 1, -5)
	assert.Equal(t, 4, d.Count())
	values := d.Values()
	assert.Equal(t, []Value{IntValue(-5), IntValue(1), IntValue(2), IntValue(3)}, values)
}

func TestIntRangeDomainIncludesNegatives(t *testing.T) {
	d := NewIntRangeDomain(-2, 2)
	assert.Equal(t, 5, d.Count())
	assert.True(t, d.Has(IntValue(-2)))
	assert.True(t, d.Has(IntValue(0)))
	assert.False(t, d.Has(IntValue(3)))
}

func TestDomainRemove(t *testing.T) {
	d := NewIntDomain(0, 1, 2)
	d2 := d.Remove(IntValue(1))
	assert.Equal(t, 3, d.Count(), "Remove must not mutate the receiver")
	assert.Equal(t, 2, d2.Count())
	assert.False(t, d2.Has(IntValue(1)))
}

func TestDomainSingleton(t *testing.T) {
	d := NewIntDomain(7)
	assert.True(t, d.IsSingleton())
	assert.True(t, d.SingletonValue().Equal(IntValue(7)))
}

func TestDomainIntersect(t *testing.T) {
	a := NewIntRangeDomain(0, 5)
	b := NewIntRangeDomain(3, 8)
	inter := a.Intersect(b)
	assert.Equal(t, []Value{IntValue(3), IntValue(4), IntValue(5)}, inter.Values())
}

func TestDomainEqual(t *testing.T) {
	a := NewIntDomain(1, 2, 3)
	b := NewIntDomain(3, 2, 1)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := NewIntDomain(1, 2)
	assert.False(t, a.Equal(c))
}

func TestDomainCloneIsIndependent(t *testing.T) {
	a := NewIntDomain(1, 2, 3)
	clone := a.Clone()
	a2 := a.Remove(IntValue(2))
	assert.Equal(t, 3, clone.Count())
	assert.Equal(t, 2, a2.Count())
}
