package csp

// Distribute pushes multiplication over addition throughout e (distribute_mul,
// spec.md §4.1): Mul([a, b+c]) becomes Add([Mul([a,b]), Mul([a,c])]). Per
// the SPEC_FULL.md §9.2 decision, this implementation performs full polynomial
// expansion — including the case where both factors of a product are sums
// — rather than leaving the outermost product unexpanded, which spec.md
// notes as an acceptable but incomplete alternative.
func Distribute(e Expression) Expression {
	switch e.kind {
	case KindConst, KindVar:
		return e
	case KindMul:
		kids := make([]Expression, len(e.children))
		for i, c := range e.children {
			kids[i] = Distribute(c)
		}
		return expandMul(kids)
	case KindAdd:
		kids := make([]Expression, len(e.children))
		for i, c := range e.children {
			kids[i] = Distribute(c)
		}
		return buildAdd(kids)
	case KindDiv:
		kids := make([]Expression, len(e.children))
		for i, c := range e.children {
			kids[i] = Distribute(c)
		}
		return Expression{kind: KindDiv, children: kids}
	case KindPow:
		return buildPow(Distribute(e.children[0]), Distribute(e.children[1]))
	case KindMod:
		return buildMod(Distribute(e.children[0]), Distribute(e.children[1]))
	default:
		return e
	}
}

// expandMul fully expands a product of factors, recursively distributing
// over the first Add factor found and combining the resulting terms, so
// that a product of two sums expands into the complete cross product of
// terms rather than stopping at the first level.
func expandMul(factors []Expression) Expression {
	idx := -1
	for i, f := range factors {
		if f.kind == KindAdd {
			idx = i
			break
		}
	}
	if idx == -1 {
		return buildMul(factors)
	}
	addNode := factors[idx]
	rest := make([]Expression, 0, len(factors)-1)
	rest = append(rest, factors[:idx]...)
	rest = append(rest, factors[idx+1:]...)
	terms := make([]Expression, len(addNode.children))
	for i, t := range addNode.children {
		factorSet := make([]Expression, 0, len(rest)+1)
		factorSet = append(factorSet, rest...)
		factorSet = append(factorSet, t)
		terms[i] = expandMul(factorSet)
	}
	return buildAdd(terms)
}

// PopNumbers removes and returns the sum of e's numeric-literal children,
// per spec.md §4.1 ("on an Add, remove and return the sum of numeric
// literal children"). e is expected to be an Add node; non-Add expressions
// are treated as a single term with no numeric part to pop (a bare Const
// pops its whole value).
func PopNumbers(e Expression) (Value, Expression) {
	if e.kind == KindConst {
		return e.constVal, ConstInt(0)
	}
	if e.kind != KindAdd {
		return IntValue(0), e
	}
	var sum *Value
	rest := make([]Expression, 0, len(e.children))
	for _, c := range e.children {
		if c.kind == KindConst {
			if sum == nil {
				v := c.constVal
				sum = &v
			} else {
				*sum = AddValue(*sum, c.constVal)
			}
		} else {
			rest = append(rest, c)
		}
	}
	total := IntValue(0)
	if sum != nil {
		total = *sum
	}
	switch len(rest) {
	case 0:
		return total, ConstInt(0)
	case 1:
		return total, rest[0]
	default:
		return total, Expression{kind: KindAdd, children: rest}
	}
}

// PopElements removes and returns the sum of e's non-numeric children,
// leaving behind the numeric remainder, the mirror image of PopNumbers
// (spec.md §4.1 "on an Add, remove and return the sum of non-numeric
// children").
func PopElements(e Expression) (Expression, Value) {
	if e.kind != KindAdd {
		if e.kind == KindConst {
			return ConstInt(0), e.constVal
		}
		return e, IntValue(0)
	}
	var sum *Value
	elems := make([]Expression, 0, len(e.children))
	for _, c := range e.children {
		if c.kind == KindConst {
			if sum == nil {
				v := c.constVal
				sum = &v
			} else {
				*sum = AddValue(*sum, c.constVal)
			}
		} else {
			elems = append(elems, c)
		}
	}
	total := IntValue(0)
	if sum != nil {
		total = *sum
	}
	return buildAdd(elems), total
}

// coefficientOf splits e into a numeric coefficient and the base expression
// it multiplies: Mul([3, x]) splits into (3, x); any other expression has
// an implicit coefficient of 1.
func coefficientOf(e Expression) (Value, Expression) {
	if e.kind == KindMul && len(e.children) > 0 && e.children[0].kind == KindConst {
		if len(e.children) == 2 {
			return e.children[0].constVal, e.children[1]
		}
		rest := make([]Expression, len(e.children)-1)
		copy(rest, e.children[1:])
		return e.children[0].constVal, Expression{kind: KindMul, children: rest}
	}
	return IntValue(1), e
}

func rebuildWithCoefficient(coef Value, base Expression) Expression {
	if coef.IsZero() {
		return ConstInt(0)
	}
	if coef.IsOne() {
		return base
	}
	return buildMul([]Expression{Const(coef), base})
}

// GroupSameExpressions fuses structurally equal Add children (x+x -> 2*x)
// and cancels additive inverses (x + (-x) -> 0), repeating until a fixed
// point, per spec.md §4.1. Both rules fall out of the same mechanism: two
// terms sharing a base expression combine by adding their coefficients,
// which yields 0 — and is then dropped by the surrounding Add fold — when
// the coefficients are additive inverses of one another.
func GroupSameExpressions(e Expression) Expression {
	if e.kind != KindAdd {
		return e
	}
	children := make([]Expression, len(e.children))
	copy(children, e.children)

	for {
		fusedAny := false
		for i := 0; i < len(children); i++ {
			coefI, baseI := coefficientOf(children[i])
			for j := i + 1; j < len(children); j++ {
				coefJ, baseJ := coefficientOf(children[j])
				if !baseI.IsEqual(baseJ) {
					continue
				}
				merged := rebuildWithCoefficient(AddValue(coefI, coefJ), baseI)
				children[i] = merged
				children = append(children[:j], children[j+1:]...)
				fusedAny = true
				break
			}
			if fusedAny {
				break
			}
		}
		if !fusedAny {
			break
		}
	}
	return buildAdd(children)
}

// Redistribute is the composed normal-form rewrite: distribute
// multiplications over sums, then group like terms. Per spec.md §9, the
// current solver's node/arc consistency does not require Redistribute to be
// correct — it is an advertised but independently useful API, not a
// dependency of consistency.go or search.go.
func Redistribute(e Expression) Expression {
	return GroupSameExpressions(Distribute(e))
}
