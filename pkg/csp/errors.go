package csp

import "github.com/pkg/errors"

// ErrorKind classifies the sentinel errors the solver and builder API can
// return, per the taxonomy in spec.md §7. Kinds are not type names: callers
// should branch with errors.Is against the exported sentinels below, or call
// Kind() to classify a wrapped error.
type ErrorKind int

const (
	// KindNone is returned by Kind() for errors outside this taxonomy.
	KindNone ErrorKind = iota
	// KindDomainError covers values outside a declared domain, build-time
	// division/modulo by the literal zero, and empty initial domains.
	KindDomainError
	// KindInfeasible covers preprocessing that emptied a domain or proved a
	// constraint literally false under derived bindings.
	KindInfeasible
	// KindInternalInconsistency covers contradictory values recorded for the
	// same variable during preprocessing.
	KindInternalInconsistency
	// KindConfigError covers unknown solve modes, optimal mode without an
	// objective, and an objective that does not resolve to a number under
	// the assignment it is evaluated against.
	KindConfigError
	// KindBuildError covers malformed expression construction.
	KindBuildError
)

var (
	errDomain      = errors.New("domain error")
	errInfeasible  = errors.New("infeasible")
	errInternal    = errors.New("internal inconsistency")
	errConfig      = errors.New("config error")
	errBuild       = errors.New("build error")
)

// IsDomainError reports whether err (or any error it wraps) is a DomainError.
func IsDomainError(err error) bool { return errors.Is(err, errDomain) }

// IsInfeasible reports whether err (or any error it wraps) is Infeasible.
func IsInfeasible(err error) bool { return errors.Is(err, errInfeasible) }

// IsInternalInconsistency reports whether err (or any error it wraps) is an
// InternalInconsistency.
func IsInternalInconsistency(err error) bool { return errors.Is(err, errInternal) }

// IsConfigError reports whether err (or any error it wraps) is a ConfigError.
func IsConfigError(err error) bool { return errors.Is(err, errConfig) }

// IsBuildError reports whether err (or any error it wraps) is a BuildError.
func IsBuildError(err error) bool { return errors.Is(err, errBuild) }

// Kind classifies err against the taxonomy, returning KindNone if it does
// not match any known sentinel.
func Kind(err error) ErrorKind {
	switch {
	case IsDomainError(err):
		return KindDomainError
	case IsInfeasible(err):
		return KindInfeasible
	case IsInternalInconsistency(err):
		return KindInternalInconsistency
	case IsConfigError(err):
		return KindConfigError
	case IsBuildError(err):
		return KindBuildError
	default:
		return KindNone
	}
}

func newDomainError(format string, args ...interface{}) error {
	return errors.Wrapf(errDomain, format, args...)
}

func newInfeasible(format string, args ...interface{}) error {
	return errors.Wrapf(errInfeasible, format, args...)
}

func newInternalInconsistency(format string, args ...interface{}) error {
	return errors.Wrapf(errInternal, format, args...)
}

func newConfigError(format string, args ...interface{}) error {
	return errors.Wrapf(errConfig, format, args...)
}

func newBuildError(format string, args ...interface{}) error {
	return errors.Wrapf(errBuild, format, args...)
}
