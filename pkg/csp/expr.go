package csp

import "strings"

// ExprKind tags the variant of an Expression node, per spec.md §3's tagged
// tree data model.
type ExprKind int

const (
	// KindConst is a numeric literal leaf.
	KindConst ExprKind = iota
	// KindVar is a reference to a Variable by identity (its name).
	KindVar
	// KindAdd is an n-ary sum, length >= 2.
	KindAdd
	// KindMul is an n-ary product, length >= 2.
	KindMul
	// KindDiv is left-associative division, length >= 2.
	KindDiv
	// KindPow is left-to-right exponentiation.
	KindPow
	// KindMod is left-to-right modulo.
	KindMod
)

// Expression is an immutable node in the arithmetic expression tree. Trees
// are acyclic and every operator node has at least two children (invariant
// I5). Expression is a value type: builders return fresh Expression values
// rather than mutating operands; this includes Mul negation (negateMul
// below), which builds a new node instead of prepending -1 in place.
type Expression struct {
	kind     ExprKind
	constVal Value
	variable *Variable
	children []Expression
}

// Const builds a numeric literal expression.
func Const(v Value) Expression { return Expression{kind: KindConst, constVal: v} }

// ConstInt builds an integer literal expression.
func ConstInt(n int64) Expression { return Const(IntValue(n)) }

// ConstReal builds a real literal expression.
func ConstReal(f float64) Expression { return Const(RealValue(f)) }

// VarExpr builds a leaf expression referencing v by identity.
func VarExpr(v *Variable) Expression { return Expression{kind: KindVar, variable: v} }

// Expr returns a leaf Expression referencing this variable, the usual entry
// point for building arithmetic expressions out of a declared Variable.
func (v *Variable) Expr() Expression { return VarExpr(v) }

// Kind reports the node's variant.
func (e Expression) Kind() ExprKind { return e.kind }

// Children returns an operator node's operands in order. Empty for leaves.
func (e Expression) Children() []Expression { return e.children }

// ConstValue returns a KindConst node's literal value.
func (e Expression) ConstValue() Value { return e.constVal }

// Variable returns a KindVar node's referenced variable.
func (e Expression) Variable() *Variable { return e.variable }

// operand is anything an arithmetic builder accepts: an Expression, a
// *Variable, a Value, or a Go numeric literal. Builders first coerce every
// operand to an Expression (numbers become Const nodes); the peephole checks
// then recognize literal 0/1 by inspecting those Const nodes.
type operand interface{}

func toExpr(x operand) (Expression, error) {
	switch t := x.(type) {
	case Expression:
		return t, nil
	case *Variable:
		return VarExpr(t), nil
	case Value:
		return Const(t), nil
	case int:
		return ConstInt(int64(t)), nil
	case int64:
		return ConstInt(t), nil
	case float64:
		return ConstReal(t), nil
	default:
		return Expression{}, newBuildError("unsupported operand type %T", x)
	}
}

// flattenOperands flattens nested nodes of the same associative kind
// (constant folding is left to buildAdd/buildMul), implementing the associative
// flattening peephole of spec.md §3: "building Add from two children of
// which one is already Add yields a single Add whose children are the
// concatenation; same for Mul."
func flattenOperands(kind ExprKind, children []Expression) []Expression {
	out := make([]Expression, 0, len(children))
	for _, c := range children {
		if c.kind == kind {
			out = append(out, c.children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

func buildAdd(children []Expression) Expression {
	flat := flattenOperands(KindAdd, children)
	var sum *Value
	rest := make([]Expression, 0, len(flat))
	for _, c := range flat {
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
	if sum != nil && !sum.IsZero() {
		rest = append(rest, Const(*sum))
	}
	switch {
	case len(rest) == 0:
		if sum != nil {
			return Const(*sum)
		}
		return ConstInt(0)
	case len(rest) == 1:
		return rest[0]
	default:
		return Expression{kind: KindAdd, children: rest}
	}
}

func buildMul(children []Expression) Expression {
	flat := flattenOperands(KindMul, children)
	var prod *Value
	rest := make([]Expression, 0, len(flat))
	for _, c := range flat {
		if c.kind == KindConst {
			if c.constVal.IsZero() {
				return ConstInt(0)
			}
			if prod == nil {
				v := c.constVal
				prod = &v
			} else {
				*prod = MulValue(*prod, c.constVal)
			}
		} else {
			rest = append(rest, c)
		}
	}
	if prod != nil && !prod.IsOne() {
		rest = append([]Expression{Const(*prod)}, rest...)
	}
	switch {
	case len(rest) == 0:
		if prod != nil {
			return Const(*prod)
		}
		return ConstInt(1)
	case len(rest) == 1:
		return rest[0]
	default:
		return Expression{kind: KindMul, children: rest}
	}
}

func buildDiv(a, b Expression) (Expression, error) {
	if b.kind == KindConst && b.constVal.IsZero() {
		return Expression{}, newDomainError("division by literal zero at build time")
	}
	if b.kind == KindConst && b.constVal.IsOne() {
		return a, nil
	}
	var children []Expression
	if a.kind == KindDiv {
		children = append(append([]Expression{}, a.children...), b)
	} else {
		children = []Expression{a, b}
	}
	return Expression{kind: KindDiv, children: children}, nil
}

func buildPow(a, b Expression) Expression {
	if b.kind == KindConst && b.constVal.IsZero() {
		return ConstInt(1)
	}
	if b.kind == KindConst && b.constVal.IsOne() {
		return a
	}
	if a.kind == KindConst && a.constVal.IsOne() {
		return ConstInt(1)
	}
	if a.kind == KindConst && a.constVal.IsZero() {
		return ConstInt(0)
	}
	return Expression{kind: KindPow, children: []Expression{a, b}}
}

func buildMod(a, b Expression) Expression {
	return Expression{kind: KindMod, children: []Expression{a, b}}
}

// Add builds a+b with peephole normalization and associative flattening.
func Add(a, b operand) (Expression, error) {
	ea, err := toExpr(a)
	if err != nil {
		return Expression{}, err
	}
	eb, err := toExpr(b)
	if err != nil {
		return Expression{}, err
	}
	return buildAdd([]Expression{ea, eb}), nil
}

// AddAll folds Add across two or more operands, failing with a BuildError
// if fewer than two are given (spec.md §7 BuildError: "operator with fewer
// than two operands").
func AddAll(operands ...operand) (Expression, error) {
	if len(operands) < 2 {
		return Expression{}, newBuildError("Add requires at least two operands, got %d", len(operands))
	}
	exprs := make([]Expression, len(operands))
	for i, o := range operands {
		e, err := toExpr(o)
		if err != nil {
			return Expression{}, err
		}
		exprs[i] = e
	}
	return buildAdd(exprs), nil
}

// Sub builds a-b as Add(a, Neg(b)).
func Sub(a, b operand) (Expression, error) {
	ea, err := toExpr(a)
	if err != nil {
		return Expression{}, err
	}
	eb, err := toExpr(b)
	if err != nil {
		return Expression{}, err
	}
	return buildAdd([]Expression{ea, Neg(eb)}), nil
}

// Mul builds a*b with peephole normalization and associative flattening.
func Mul(a, b operand) (Expression, error) {
	ea, err := toExpr(a)
	if err != nil {
		return Expression{}, err
	}
	eb, err := toExpr(b)
	if err != nil {
		return Expression{}, err
	}
	return buildMul([]Expression{ea, eb}), nil
}

// MulAll folds Mul across two or more operands.
func MulAll(operands ...operand) (Expression, error) {
	if len(operands) < 2 {
		return Expression{}, newBuildError("Mul requires at least two operands, got %d", len(operands))
	}
	exprs := make([]Expression, len(operands))
	for i, o := range operands {
		e, err := toExpr(o)
		if err != nil {
			return Expression{}, err
		}
		exprs[i] = e
	}
	return buildMul(exprs), nil
}

// Div builds a/b, left-associative. Dividing by the literal 0 is a
// DomainError raised at build time, per spec.md §3.
func Div(a, b operand) (Expression, error) {
	ea, err := toExpr(a)
	if err != nil {
		return Expression{}, err
	}
	eb, err := toExpr(b)
	if err != nil {
		return Expression{}, err
	}
	return buildDiv(ea, eb)
}

// Pow builds a**b, left-to-right.
func Pow(a, b operand) (Expression, error) {
	ea, err := toExpr(a)
	if err != nil {
		return Expression{}, err
	}
	eb, err := toExpr(b)
	if err != nil {
		return Expression{}, err
	}
	return buildPow(ea, eb), nil
}

// Mod builds a%b, left-to-right. Taking the modulo by the literal 0 is a
// DomainError raised at build time.
func Mod(a, b operand) (Expression, error) {
	ea, err := toExpr(a)
	if err != nil {
		return Expression{}, err
	}
	eb, err := toExpr(b)
	if err != nil {
		return Expression{}, err
	}
	if eb.kind == KindConst && eb.constVal.IsZero() {
		return Expression{}, newDomainError("modulo by literal zero at build time")
	}
	return buildMod(ea, eb), nil
}

// Neg builds -e, per spec.md §4.1's per-variant negation rules.
func Neg(e Expression) Expression {
	switch e.kind {
	case KindConst:
		return Const(NegValue(e.constVal))
	case KindVar:
		return buildMul([]Expression{ConstInt(-1), e})
	case KindAdd:
		negated := make([]Expression, len(e.children))
		for i, c := range e.children {
			negated[i] = Neg(c)
		}
		return buildAdd(negated)
	case KindMul:
		return negateMul(e)
	default: // Div, Pow, Mod
		return Expression{kind: KindMul, children: []Expression{ConstInt(-1), e}}
	}
}

// negateMul implements "negation of a Mul either prepends -1 or cancels an
// existing leading -1" (spec.md §3/§4.1). This is the one place the §3
// lifecycle note allows an in-place-style rewrite; here it is expressed as
// building a fresh node, which is equally valid per that note.
func negateMul(m Expression) Expression {
	if len(m.children) > 0 && m.children[0].kind == KindConst && m.children[0].constVal.Equal(IntValue(-1)) {
		rest := m.children[1:]
		if len(rest) == 1 {
			return rest[0]
		}
		cp := make([]Expression, len(rest))
		copy(cp, rest)
		return Expression{kind: KindMul, children: cp}
	}
	newChildren := make([]Expression, 0, len(m.children)+1)
	newChildren = append(newChildren, ConstInt(-1))
	newChildren = append(newChildren, m.children...)
	return Expression{kind: KindMul, children: newChildren}
}

func (e Expression) symbol() string {
	switch e.kind {
	case KindAdd:
		return "+"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindPow:
		return "**"
	case KindMod:
		return "%"
	default:
		return ""
	}
}

// String renders the expression tree in infix form for diagnostics.
func (e Expression) String() string {
	switch e.kind {
	case KindConst:
		return e.constVal.String()
	case KindVar:
		return e.variable.Name()
	default:
		parts := make([]string, len(e.children))
		for i, c := range e.children {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " "+e.symbol()+" ") + ")"
	}
}
