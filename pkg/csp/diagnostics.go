package csp

import "github.com/sirupsen/logrus"

// diagnostics is the host diagnostic channel referenced by spec.md §4.6 and
// §7: warnings (such as replacing an already-installed objective) are
// emitted here instead of raising, and instead of the original Python
// implementation's bare print() to stdout (ppips.IntProblem.__ilshift__).
type diagnostics struct {
	log *logrus.Entry
}

func newDiagnostics(problemName string) *diagnostics {
	return &diagnostics{
		log: logrus.StandardLogger().WithField("problem", problemName),
	}
}

// SetLogger installs a custom logrus entry as this problem's diagnostic
// sink, letting a host application route warnings into its own logging
// pipeline instead of the package-default standard logger.
func (d *diagnostics) SetLogger(entry *logrus.Entry) {
	if entry == nil {
		return
	}
	d.log = entry
}

func (d *diagnostics) warnObjectiveReplaced() {
	d.log.WithField("event", "objective_replaced").
		Warn("problem already has an objective function; replacing it with the new one")
}
