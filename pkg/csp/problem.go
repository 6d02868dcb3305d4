package csp

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Problem owns a name, the live declared variables, a ConstraintSet, an
// optional Objective, and the variables preprocessing has determined a
// unique value for (removedVars), per spec.md §3. Variable names are
// interned within the Problem (SPEC_FULL.md §9.1): declaring two variables
// with the same name is a BuildError, resolving the variable-identity open
// question from spec.md §9 toward option (ii) without allowing aliasing.
type Problem struct {
	name        string
	vars        []*Variable
	removedVars map[string]Value
	constraints *ConstraintSet
	objective   *Objective
	names       map[string]*Variable
	diag        *diagnostics
	config      *SolverConfig
	graph       *Graph
}

// NewProblem constructs a Problem over the given variables, in declaration
// order. Declaring two variables with the same name is a BuildError.
func NewProblem(name string, vars []*Variable) (*Problem, error) {
	p := &Problem{
		name:        name,
		removedVars: make(map[string]Value),
		constraints: NewConstraintSet(),
		names:       make(map[string]*Variable),
		diag:        newDiagnostics(name),
		config:      DefaultSolverConfig(),
	}
	for _, v := range vars {
		if _, exists := p.names[v.Name()]; exists {
			return nil, newBuildError("problem %q: duplicate variable name %q", name, v.Name())
		}
		p.names[v.Name()] = v
		p.vars = append(p.vars, v)
	}
	return p, nil
}

// Name returns the problem's name.
func (p *Problem) Name() string { return p.name }

// Vars returns the currently live variables, in declaration order minus any
// that preprocessing has removed.
func (p *Problem) Vars() []*Variable { return p.vars }

// RemovedVars returns the variables (by name) whose value preprocessing has
// determined uniquely.
func (p *Problem) RemovedVars() map[string]Value {
	out := make(map[string]Value, len(p.removedVars))
	for k, v := range p.removedVars {
		out[k] = v
	}
	return out
}

// Constraints returns the problem's constraint set.
func (p *Problem) Constraints() *ConstraintSet { return p.constraints }

// Objective returns the installed objective, or nil if none is set.
func (p *Problem) Objective() *Objective { return p.objective }

// SetConfig installs a custom SolverConfig, overriding DefaultSolverConfig.
func (p *Problem) SetConfig(cfg *SolverConfig) {
	if cfg != nil {
		p.config = cfg
	}
}

// SetLogger routes this problem's diagnostic warnings into a caller-supplied
// logrus entry instead of the package default.
func (p *Problem) SetLogger(entry *logrus.Entry) { p.diag.SetLogger(entry) }

// AddConstraint appends c to the problem's constraint set, failing with a
// BuildError if c references a variable not declared on this Problem
// (invariant I3: every Comparison references only vars in vars ∪
// removed_vars).
func (p *Problem) AddConstraint(c Comparison) error {
	for _, name := range c.GetVars() {
		if _, ok := p.names[name]; !ok {
			return newBuildError("problem %q: constraint references undeclared variable %q", p.name, name)
		}
	}
	p.constraints.Add(c)
	p.graph = nil
	return nil
}

// SetObjective installs o as the problem's objective. Replacing an existing
// objective emits a warning through the diagnostic channel rather than
// failing, per spec.md §4.6.
func (p *Problem) SetObjective(o *Objective) {
	if p.objective != nil {
		p.diag.warnObjectiveReplaced()
	}
	p.objective = o
}

// ComputeSearchSpace returns the product of the live variables' current
// domain sizes (spec.md §4.6, a pure query).
func (p *Problem) ComputeSearchSpace() int64 {
	space := int64(1)
	for _, v := range p.vars {
		space *= int64(v.GetDomain().Count())
	}
	return space
}

// Evaluate checks assignment against every constraint and, if feasible,
// evaluates the objective (spec.md §6 Problem.evaluate).
func (p *Problem) Evaluate(assignment map[string]Value) (feasible bool, objectiveValue *Value, err error) {
	ok, err := p.constraints.Evaluate(assignment)
	if err != nil {
		return false, nil, err
	}
	if !ok {
		return false, nil, nil
	}
	if p.objective == nil {
		return true, nil, nil
	}
	v, err := p.objective.Eval(assignment)
	if err != nil {
		return true, nil, err
	}
	return true, &v, nil
}

// ConstraintGraph builds (or returns the cached) constraint graph over the
// problem's live variables, per spec.md §4.6. It is invalidated whenever a
// constraint is added.
func (p *Problem) ConstraintGraph() *Graph {
	if p.graph == nil {
		p.graph = buildConstraintGraph(p.vars, p.constraints)
	}
	return p.graph
}

// VariableOrderHint returns the live variables sorted by descending
// constraint-graph degree (SPEC_FULL.md §4.6, NEW). It is a pure query: the
// default Solve path still walks p.vars in declaration order, so this hint
// changes no observable search semantics (P6/P7 remain intact) and exists
// only for callers that want a branching-order suggestion.
func (p *Problem) VariableOrderHint() []*Variable {
	g := p.ConstraintGraph()
	out := append([]*Variable(nil), p.vars...)
	sort.SliceStable(out, func(i, j int) bool {
		return g.Degree(out[i].Name()) > g.Degree(out[j].Name())
	})
	return out
}

// promoteToRemoved records v as determined to the unique value, removing it
// from the live vars slice. A repeated record with a conflicting value is
// an InternalInconsistency (spec.md §4.6 step 3).
func (p *Problem) promoteToRemoved(v *Variable, value Value) error {
	if existing, ok := p.removedVars[v.Name()]; ok {
		if !existing.Equal(value) {
			return newInternalInconsistency(
				"variable %q recorded with conflicting values %s and %s during preprocessing",
				v.Name(), existing, value)
		}
		return nil
	}
	p.removedVars[v.Name()] = value
	for i, vv := range p.vars {
		if vv == v {
			p.vars = append(p.vars[:i], p.vars[i+1:]...)
			break
		}
	}
	p.graph = nil
	return nil
}

// totalAssignment merges a candidate's live-variable bindings with the
// problem's removedVars so callers see a complete assignment over every
// originally declared variable (spec.md §4.6).
func (p *Problem) totalAssignment(live map[string]Value) map[string]Value {
	out := make(map[string]Value, len(live)+len(p.removedVars))
	for k, v := range p.removedVars {
		out[k] = v
	}
	for k, v := range live {
		out[k] = v
	}
	return out
}
