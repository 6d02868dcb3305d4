package csp

// NodeConsistency prunes each live variable's domain against every
// constraint that mentions only that one variable (spec.md §4.6). Each
// unary constraint is removed from the set once it has been applied,
// whether or not the variable ends up a singleton. A variable whose domain
// is pruned to a single value is promoted into removedVars; constraints
// and the objective are then updated once against every variable
// determined so far. An emptied domain is Infeasible.
func (p *Problem) NodeConsistency() error {
	for _, v := range append([]*Variable(nil), p.vars...) {
		var processed []Comparison
		for _, c := range append([]Comparison(nil), p.constraints.Items()...) {
			names := c.GetVars()
			if len(names) != 1 || names[0] != v.Name() {
				continue
			}
			var kept []Value
			for _, val := range v.GetDomain().Values() {
				result, ok, _, err := c.Evaluate(map[string]Value{v.Name(): val})
				if err != nil {
					return err
				}
				if ok && result {
					kept = append(kept, val)
				}
			}
			v.SetDomain(NewDomain(kept...))
			processed = append(processed, c)
		}
		p.constraints.RemoveMany(processed)
		if v.GetDomain().Count() == 0 {
			return newInfeasible("node consistency emptied the domain of variable %q", v.Name())
		}
		if v.GetDomain().IsSingleton() {
			if err := p.promoteToRemoved(v, v.GetDomain().SingletonValue()); err != nil {
				return err
			}
		}
	}
	return p.finalizeConsistencyPass()
}

// arc is a directed AC-3 work item: revise `revised`'s domain using its
// binary constraint c with `other`.
type arc struct {
	revised *Variable
	other   *Variable
	c       Comparison
}

// buildArcs collects both directions of every binary (arity-2) constraint
// currently in the constraint set.
func (p *Problem) buildArcs() []arc {
	var out []arc
	for _, c := range p.constraints.Items() {
		names := c.GetVars()
		if len(names) != 2 {
			continue
		}
		va, vb := p.names[names[0]], p.names[names[1]]
		out = append(out, arc{revised: va, other: vb, c: c})
		out = append(out, arc{revised: vb, other: va, c: c})
	}
	return out
}

// neighborArcs returns the arcs that re-revise each of v's binary-constraint
// neighbors against v's just-shrunk domain: arc{revised: neighbor, other: v}.
// This is the standard AC-3 re-enqueue step — it is v's neighbors whose
// support may now be gone, not v itself.
func (p *Problem) neighborArcs(v *Variable) []arc {
	var out []arc
	for _, c := range p.constraints.Items() {
		names := c.GetVars()
		if len(names) != 2 {
			continue
		}
		var otherName string
		switch v.Name() {
		case names[0]:
			otherName = names[1]
		case names[1]:
			otherName = names[0]
		default:
			continue
		}
		out = append(out, arc{revised: p.names[otherName], other: v, c: c})
	}
	return out
}

// revise prunes x's domain to the values for which some value of y's domain
// satisfies c, per the standard AC-3 revise step. It reports whether any
// value was removed.
func revise(x, y *Variable, c Comparison) (bool, error) {
	changed := false
	var kept []Value
	for _, vx := range x.GetDomain().Values() {
		supported := false
		for _, vy := range y.GetDomain().Values() {
			result, ok, _, err := c.Evaluate(map[string]Value{x.Name(): vx, y.Name(): vy})
			if err != nil {
				return false, err
			}
			if ok && result {
				supported = true
				break
			}
		}
		if supported {
			kept = append(kept, vx)
		} else {
			changed = true
		}
	}
	if changed {
		x.SetDomain(NewDomain(kept...))
	}
	return changed, nil
}

// ArcConsistency runs node consistency, then an AC-3 pass with a LIFO
// worklist over every binary constraint, pruning each variable's domain to
// values that have support in every neighbor, then folds fixed variables
// back into the constraint set/objective and re-runs node consistency once
// more (spec.md §4.6: "first run node consistency ... after draining the
// queue, apply update_constraints and Objective.update, then re-run node
// consistency") — a binary residual that UpdateConstraints reduces to unary
// is otherwise never node-consistency-pruned within this call. A variable
// pruned to a singleton is promoted into removedVars mid-pass, the same as
// NodeConsistency. An emptied domain is Infeasible; a promotion that
// conflicts with a prior one is an InternalInconsistency.
func (p *Problem) ArcConsistency() error {
	if err := p.NodeConsistency(); err != nil {
		return err
	}
	stack := p.buildArcs()
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		changed, err := revise(a.revised, a.other, a.c)
		if err != nil {
			return err
		}
		if !changed {
			continue
		}
		dom := a.revised.GetDomain()
		if dom.Count() == 0 {
			return newInfeasible("arc consistency emptied the domain of variable %q", a.revised.Name())
		}
		if dom.IsSingleton() {
			if err := p.promoteToRemoved(a.revised, dom.SingletonValue()); err != nil {
				return err
			}
		}
		for _, next := range p.neighborArcs(a.revised) {
			if next.revised.Name() != a.other.Name() {
				stack = append(stack, next)
			}
		}
	}
	if err := p.finalizeConsistencyPass(); err != nil {
		return err
	}
	return p.NodeConsistency()
}

// finalizeConsistencyPass folds every variable determined so far back into
// the constraint set and the objective, exactly once per NodeConsistency or
// ArcConsistency call (spec.md §4.6).
func (p *Problem) finalizeConsistencyPass() error {
	if len(p.removedVars) == 0 {
		return nil
	}
	fixed := p.RemovedVars()
	if err := p.constraints.UpdateConstraints(fixed); err != nil {
		return err
	}
	if p.objective != nil {
		if err := p.objective.Update(fixed); err != nil {
			return err
		}
	}
	return nil
}
