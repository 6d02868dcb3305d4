package csp

// ConstraintSet is an ordered collection of Comparisons, per spec.md §3/§4.4.
// Order is insertion order; iteration is deterministic.
type ConstraintSet struct {
	items []Comparison
}

// NewConstraintSet builds an empty constraint set.
func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{}
}

// Add appends c to the set.
func (cs *ConstraintSet) Add(c Comparison) {
	cs.items = append(cs.items, c)
}

// Remove removes the first constraint equal to c (per Comparison.IsEqual),
// reporting whether one was found.
func (cs *ConstraintSet) Remove(c Comparison) bool {
	for i, item := range cs.items {
		if item.IsEqual(c) {
			cs.items = append(cs.items[:i], cs.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt removes the constraint at index i.
func (cs *ConstraintSet) RemoveAt(i int) {
	cs.items = append(cs.items[:i], cs.items[i+1:]...)
}

// RemoveMany removes every constraint in list, in order.
func (cs *ConstraintSet) RemoveMany(list []Comparison) {
	for _, c := range list {
		cs.Remove(c)
	}
}

// Len returns the number of constraints currently in the set.
func (cs *ConstraintSet) Len() int { return len(cs.items) }

// Items returns the constraints in insertion order. The returned slice must
// not be mutated by the caller.
func (cs *ConstraintSet) Items() []Comparison { return cs.items }

// Evaluate evaluates every constraint against assignment, short-circuiting
// to false as soon as any constraint evaluates to literal false (spec.md
// §4.4). A residual (not fully resolved) constraint is treated as not yet
// violated and does not short-circuit.
func (cs *ConstraintSet) Evaluate(assignment map[string]Value) (bool, error) {
	for _, c := range cs.items {
		result, ok, _, err := c.Evaluate(assignment)
		if err != nil {
			return false, err
		}
		if ok && !result {
			return false, nil
		}
	}
	return true, nil
}

// UpdateConstraints partially evaluates every constraint against
// fixedValues, per spec.md §4.4: a still-residual result replaces the
// stored constraint; a literal true drops it; a literal false fails with
// Infeasible.
func (cs *ConstraintSet) UpdateConstraints(fixedValues map[string]Value) error {
	next := make([]Comparison, 0, len(cs.items))
	for _, c := range cs.items {
		result, ok, residual, err := c.Evaluate(fixedValues)
		if err != nil {
			return err
		}
		if ok {
			if !result {
				return newInfeasible("constraint %s is false under derived bindings", c)
			}
			continue // literal true: drop
		}
		next = append(next, residual)
	}
	cs.items = next
	return nil
}

// RemoveRepeated removes later duplicate constraints via an O(n^2) pairwise
// IsEqual check, keeping the first occurrence (spec.md §4.4).
func (cs *ConstraintSet) RemoveRepeated() {
	kept := make([]Comparison, 0, len(cs.items))
	for _, c := range cs.items {
		duplicate := false
		for _, k := range kept {
			if k.IsEqual(c) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, c)
		}
	}
	cs.items = kept
}
