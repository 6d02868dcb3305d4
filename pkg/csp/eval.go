package csp

// Eval evaluates e against assignment, a map from variable name to bound
// Value. It implements the residual-evaluation contract of spec.md §4.1:
// fully-numeric subtrees fold to Const nodes; any subtree that still
// contains a free variable is returned as a reduced operator node rather
// than failing. Division and modulo by a numeric zero encountered during
// evaluation (as opposed to a literal zero caught at build time) is a
// DomainError.
//
// Eval never touches Variable.instance: the assignment is threaded purely
// through the recursion, per the "purely functional" design note in
// spec.md §9 (the alternative design that mutates a variable's instanced
// slot is used only by the search engine in search.go, at the boundary
// where a candidate assignment is bound for evaluation).
func Eval(e Expression, assignment map[string]Value) (Expression, error) {
	switch e.kind {
	case KindConst:
		return e, nil
	case KindVar:
		if val, ok := assignment[e.variable.Name()]; ok {
			return Const(val), nil
		}
		return e, nil
	case KindAdd:
		kids, err := evalChildren(e.children, assignment)
		if err != nil {
			return Expression{}, err
		}
		return buildAdd(kids), nil
	case KindMul:
		kids, err := evalChildren(e.children, assignment)
		if err != nil {
			return Expression{}, err
		}
		return buildMul(kids), nil
	case KindDiv:
		kids, err := evalChildren(e.children, assignment)
		if err != nil {
			return Expression{}, err
		}
		return foldChain(kids, DivValue, KindDiv)
	case KindMod:
		kids, err := evalChildren(e.children, assignment)
		if err != nil {
			return Expression{}, err
		}
		return foldChain(kids, ModValue, KindMod)
	case KindPow:
		kids, err := evalChildren(e.children, assignment)
		if err != nil {
			return Expression{}, err
		}
		return foldChain(kids, func(a, b Value) (Value, error) { return PowValue(a, b), nil }, KindPow)
	default:
		return e, nil
	}
}

func evalChildren(children []Expression, assignment map[string]Value) ([]Expression, error) {
	out := make([]Expression, len(children))
	for i, c := range children {
		r, err := Eval(c, assignment)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// foldChain reduces a left-to-right operator chain (Div, Pow, Mod), folding
// adjacent Const nodes with op and leaving the rest as a residual node of
// the given kind, per spec.md's "Pow and Mod are strictly left-to-right"
// and Div's left-associative fold.
func foldChain(children []Expression, op func(a, b Value) (Value, error), kind ExprKind) (Expression, error) {
	folded := []Expression{children[0]}
	for _, next := range children[1:] {
		last := folded[len(folded)-1]
		if last.kind == KindConst && next.kind == KindConst {
			v, err := op(last.constVal, next.constVal)
			if err != nil {
				return Expression{}, err
			}
			folded[len(folded)-1] = Const(v)
		} else {
			folded = append(folded, next)
		}
	}
	if len(folded) == 1 {
		return folded[0], nil
	}
	return Expression{kind: kind, children: folded}, nil
}

// IsEqual reports structural equality between two expressions: same
// variant, exact numeric equality for Const, matching names for Var, and
// equal symbol plus pairwise-equal children in order for operator nodes.
// Equality is not modulo commutativity, per spec.md §4.1 ("except at the
// constraint level").
func (e Expression) IsEqual(o Expression) bool {
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case KindConst:
		return e.constVal.Equal(o.constVal)
	case KindVar:
		return e.variable.Name() == o.variable.Name()
	default:
		if len(e.children) != len(o.children) {
			return false
		}
		for i := range e.children {
			if !e.children[i].IsEqual(o.children[i]) {
				return false
			}
		}
		return true
	}
}

// FreeVars returns the set of variable names free in e, in first-seen
// order, via a flat traversal (spec.md §4.2 get_vars).
func (e Expression) FreeVars() []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(Expression)
	walk = func(x Expression) {
		switch x.kind {
		case KindVar:
			if !seen[x.variable.Name()] {
				seen[x.variable.Name()] = true
				out = append(out, x.variable.Name())
			}
		case KindConst:
		default:
			for _, c := range x.children {
				walk(c)
			}
		}
	}
	walk(e)
	return out
}

// IsConst reports whether e has fully reduced to a numeric literal.
func (e Expression) IsConst() bool { return e.kind == KindConst }
