package csp

import "math"

// Polarity selects whether an Objective is minimized or maximized.
type Polarity int

const (
	Min Polarity = iota
	Max
)

// Objective wraps an expression to be minimized or maximized, together with
// monotone current-best bookkeeping, per spec.md §3/§4.5. best_so_far
// starts at +inf for Min and -inf for Max and is updated monotonically
// (invariant I4).
type Objective struct {
	Expr     Expression
	Polarity Polarity
	best     Value
}

// Minimize builds a minimization objective over expr.
func Minimize(expr Expression) *Objective {
	return &Objective{Expr: expr, Polarity: Min, best: RealValue(math.Inf(1))}
}

// Maximize builds a maximization objective over expr.
func Maximize(expr Expression) *Objective {
	return &Objective{Expr: expr, Polarity: Max, best: RealValue(math.Inf(-1))}
}

// Eval evaluates the objective expression against a full assignment.
func (o *Objective) Eval(assignment map[string]Value) (Value, error) {
	r, err := Eval(o.Expr, assignment)
	if err != nil {
		return Value{}, err
	}
	if !r.IsConst() {
		return Value{}, newConfigError("objective %s is not fully resolved under the given assignment", o.Expr)
	}
	return r.ConstValue(), nil
}

// Update partially evaluates the objective expression against fixedValues
// and replaces it with the residual (which may become a numeric constant),
// per spec.md §4.5.
func (o *Objective) Update(fixedValues map[string]Value) error {
	r, err := Eval(o.Expr, fixedValues)
	if err != nil {
		return err
	}
	o.Expr = r
	return nil
}

// BestSoFar returns the current best objective value recorded.
func (o *Objective) BestSoFar() Value { return o.best }

// IsOptimal reports whether v equals the current best-so-far value.
func (o *Objective) IsOptimal(v Value) bool {
	return v.Cmp(o.best) == 0
}

// IsBetterThanOptimal reports whether v strictly improves on best-so-far.
// As a side effect, when it does, best-so-far is updated to v (spec.md
// §4.5) — the improvement check and the update happen together so callers
// cannot observe a stale best between the two.
func (o *Objective) IsBetterThanOptimal(v Value) bool {
	better := false
	switch o.Polarity {
	case Min:
		better = v.Cmp(o.best) < 0
	case Max:
		better = v.Cmp(o.best) > 0
	}
	if better {
		o.best = v
	}
	return better
}

// ResetOptimal restores the sentinel best-so-far (+inf for Min, -inf for
// Max).
func (o *Objective) ResetOptimal() {
	switch o.Polarity {
	case Min:
		o.best = RealValue(math.Inf(1))
	case Max:
		o.best = RealValue(math.Inf(-1))
	}
}
