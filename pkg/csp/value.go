// Package csp implements a finite-domain constraint satisfaction and
// optimization library: a symbolic expression algebra, comparison
// constraints built over it, and a node/arc-consistency plus backtracking
// solver pipeline.
package csp

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Value is the numeric result of evaluating an Expression. It is either an
// exact integer or a real (floating point) number; arithmetic promotes to
// real only when a real operand is involved or when a division does not
// divide evenly, mirroring the original Python implementation's int/float
// distinction (ppips.VarsOperations).
type Value struct {
	isReal bool
	i      int64
	r      float64
}

// IntValue constructs an integer Value.
func IntValue(n int64) Value { return Value{i: n} }

// RealValue constructs a real Value.
func RealValue(f float64) Value { return Value{isReal: true, r: f} }

// IsReal reports whether the value carries a floating-point representation.
func (v Value) IsReal() bool { return v.isReal }

// Int returns the integer value. Behavior is only meaningful when !IsReal().
func (v Value) Int() int64 { return v.i }

// Float returns the value widened to float64 regardless of representation.
func (v Value) Float() float64 {
	if v.isReal {
		return v.r
	}
	return float64(v.i)
}

func (v Value) String() string {
	if v.isReal {
		return fmt.Sprintf("%g", v.r)
	}
	return fmt.Sprintf("%d", v.i)
}

// IsZero reports whether the value is exactly zero.
func (v Value) IsZero() bool {
	if v.isReal {
		return v.r == 0
	}
	return v.i == 0
}

// IsOne reports whether the value is exactly one.
func (v Value) IsOne() bool {
	if v.isReal {
		return v.r == 1
	}
	return v.i == 1
}

// Equal reports exact numeric equality, comparing across representations.
func (v Value) Equal(o Value) bool {
	if !v.isReal && !o.isReal {
		return v.i == o.i
	}
	return v.Float() == o.Float()
}

// Cmp returns -1, 0, or 1 as v is less than, equal to, or greater than o.
func (v Value) Cmp(o Value) int {
	if !v.isReal && !o.isReal {
		switch {
		case v.i < o.i:
			return -1
		case v.i > o.i:
			return 1
		default:
			return 0
		}
	}
	a, b := v.Float(), o.Float()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AddValue returns v + o.
func AddValue(v, o Value) Value {
	if !v.isReal && !o.isReal {
		return IntValue(v.i + o.i)
	}
	return RealValue(v.Float() + o.Float())
}

// SubValue returns v - o.
func SubValue(v, o Value) Value {
	if !v.isReal && !o.isReal {
		return IntValue(v.i - o.i)
	}
	return RealValue(v.Float() - o.Float())
}

// MulValue returns v * o.
func MulValue(v, o Value) Value {
	if !v.isReal && !o.isReal {
		return IntValue(v.i * o.i)
	}
	return RealValue(v.Float() * o.Float())
}

// NegValue returns -v.
func NegValue(v Value) Value {
	if v.isReal {
		return RealValue(-v.r)
	}
	return IntValue(-v.i)
}

// DivValue returns v / o. Integer division that does not divide evenly
// promotes to real, matching Python's true-division semantics that the
// original ppips implementation relied on. Division by zero is a DomainError.
func DivValue(v, o Value) (Value, error) {
	if o.IsZero() {
		return Value{}, errors.Wrap(errDomain, "division by zero")
	}
	if !v.isReal && !o.isReal {
		if v.i%o.i == 0 {
			return IntValue(v.i / o.i), nil
		}
	}
	return RealValue(v.Float() / o.Float()), nil
}

// ModValue returns v mod o (integer modulo; reals are truncated toward the
// mathematical floor, consistent with Python's % operator). Modulo by zero
// is a DomainError.
func ModValue(v, o Value) (Value, error) {
	if o.IsZero() {
		return Value{}, errors.Wrap(errDomain, "modulo by zero")
	}
	if !v.isReal && !o.isReal {
		m := v.i % o.i
		if m != 0 && (m < 0) != (o.i < 0) {
			m += o.i
		}
		return IntValue(m), nil
	}
	m := math.Mod(v.Float(), o.Float())
	if m != 0 && (m < 0) != (o.Float() < 0) {
		m += o.Float()
	}
	return RealValue(m), nil
}

// PowValue returns v ** o.
func PowValue(v, o Value) Value {
	if !v.isReal && !o.isReal && o.i >= 0 {
		result := int64(1)
		base := v.i
		exp := o.i
		for exp > 0 {
			if exp&1 == 1 {
				result *= base
			}
			base *= base
			exp >>= 1
		}
		return IntValue(result)
	}
	return RealValue(math.Pow(v.Float(), o.Float()))
}
