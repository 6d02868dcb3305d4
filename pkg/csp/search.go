package csp

import (
	"context"
	"sort"
)

// SolveMode selects how Problem.Solve terminates its backtracking search,
// per spec.md §4.6/§6.
type SolveMode int

const (
	// ModeFirst stops at the first feasible, fully-bound assignment.
	ModeFirst SolveMode = iota
	// ModeAll exhausts the search space and returns every feasible
	// assignment.
	ModeAll
	// ModeOptimal exhausts the search space, keeping only the single
	// assignment with the best objective value seen. Requires an objective.
	ModeOptimal
)

func (m SolveMode) String() string {
	switch m {
	case ModeFirst:
		return "first"
	case ModeAll:
		return "all"
	case ModeOptimal:
		return "optimal"
	default:
		return "unknown"
	}
}

// Solution is one feasible, fully-bound assignment returned by Solve,
// together with the objective value at that assignment, if an objective is
// installed.
type Solution struct {
	Assignment map[string]Value
	Objective  *Value
}

// Solve runs the configured preprocessing passes (SolverConfig) followed by
// backtracking search over the problem's live variables, per spec.md §4.6.
// Search walks variables in declaration order and each variable's domain in
// ascending order; ctx is checked cooperatively between candidate
// completions so a long search can be aborted. ModeOptimal without an
// installed objective is a ConfigError.
func (p *Problem) Solve(ctx context.Context, mode SolveMode) ([]Solution, error) {
	switch mode {
	case ModeFirst, ModeAll, ModeOptimal:
	default:
		return nil, newConfigError("unknown solve mode %v", int(mode))
	}
	if mode == ModeOptimal && p.objective == nil {
		return nil, newConfigError("solve mode %q requires an objective", mode)
	}

	if p.config != nil && p.config.RunArcConsistency {
		if err := p.ArcConsistency(); err != nil {
			return nil, err
		}
	} else if p.config != nil && p.config.RunNodeConsistency {
		if err := p.NodeConsistency(); err != nil {
			return nil, err
		}
	}

	vars := append([]*Variable(nil), p.vars...)
	for _, v := range vars {
		v.DeInstance()
	}
	if p.objective != nil {
		p.objective.ResetOptimal()
	}

	var results []Solution
	var searchErr error

	var backtrack func(i int) bool
	backtrack = func(i int) bool {
		select {
		case <-ctx.Done():
			searchErr = ctx.Err()
			return true
		default:
		}

		if i == len(vars) {
			live := make(map[string]Value, len(vars))
			for _, v := range vars {
				val, _ := v.Instanced()
				live[v.Name()] = val
			}
			ok, err := p.constraints.Evaluate(live)
			if err != nil {
				searchErr = err
				return true
			}
			if !ok {
				return false
			}

			full := p.totalAssignment(live)
			var objPtr *Value
			if p.objective != nil {
				v, err := p.objective.Eval(full)
				if err != nil {
					searchErr = err
					return true
				}
				objPtr = &v
				if mode == ModeOptimal {
					if p.objective.IsBetterThanOptimal(v) {
						results = []Solution{{Assignment: full, Objective: objPtr}}
					}
					return false
				}
			}
			results = append(results, Solution{Assignment: full, Objective: objPtr})
			return mode == ModeFirst
		}

		v := vars[i]
		cursor := NewCursor(v)
		stop := false
		for cursor.InstanceNext() {
			// CHECK: evaluate every constraint touching only the variables
			// bound so far against this partial assignment before
			// descending, per spec.md §4.6's TRY_NEXT/CHECK/EXHAUSTED
			// states. A residual (not-yet-fully-bound) constraint never
			// short-circuits this, only a resolved false does.
			partial := make(map[string]Value, i+1)
			for _, pv := range vars[:i+1] {
				val, _ := pv.Instanced()
				partial[pv.Name()] = val
			}
			ok, err := p.constraints.Evaluate(partial)
			if err != nil {
				searchErr = err
				stop = true
				break
			}
			if !ok {
				continue
			}
			if backtrack(i + 1) {
				stop = true
				break
			}
		}
		cursor.DeInstance()
		return stop
	}

	backtrack(0)

	for _, v := range vars {
		v.DeInstance()
	}

	if searchErr != nil {
		return results, searchErr
	}

	if mode == ModeAll && p.objective != nil {
		sort.SliceStable(results, func(i, j int) bool {
			cmp := results[i].Objective.Cmp(*results[j].Objective)
			if p.objective.Polarity == Min {
				return cmp < 0
			}
			return cmp > 0
		})
	}

	return results, nil
}
