package core

import "fmt"

// The calculator raises four error kinds of its own, plus units.UnitError
// from the units package. All are deterministic input errors: they are
// returned synchronously from the validating or computing call and are
// never retried or silently corrected.

// UnknownParameterError reports an input name that is not part of the
// parameter registry.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}

// RangeError reports a value outside a parameter's physically valid range.
// Min and Max are expressed in the parameter's default unit.
type RangeError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("parameter %q: value %g outside valid range [%g, %g]",
		e.Name, e.Value, e.Min, e.Max)
}

// InvalidInputError reports a violated cross-field constraint, such as the
// integration-time/sensitivity mutual exclusivity rule.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

// DomainError reports a formula or lookup input outside its valid physical
// domain: an out-of-table frequency, a non-positive dish area, and so on.
// Out-of-domain inputs fail loudly instead of being clamped, since they mark
// the boundary of the physical approximation.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
