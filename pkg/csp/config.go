package csp

// SolverConfig controls which preprocessing passes Problem.Solve runs
// before backtracking search, mirroring the teacher's SolverConfig /
// DefaultSolverConfig pattern (pkg/minikanren/fd_solver.go, solver.go).
// None of these fields are read from environment variables or files,
// matching spec.md §6's "no environment variables are part of the core
// contract."
type SolverConfig struct {
	// RunNodeConsistency enables the node-consistency preprocessing pass.
	RunNodeConsistency bool
	// RunArcConsistency enables the arc-consistency (AC-3) preprocessing
	// pass. Arc consistency always runs node consistency first regardless
	// of RunNodeConsistency, per spec.md §4.6 ("arc_consistency: first run
	// node consistency").
	RunArcConsistency bool
}

// DefaultSolverConfig returns a config with both preprocessing passes
// enabled, the configuration Problem uses unless overridden.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{RunNodeConsistency: true, RunArcConsistency: true}
}
