package core

import "github.com/signalsfoundry/sensitivity-calculator/units"

// Parameter is a single named value that has passed unit and range
// validation against its spec. The held quantity is replaced wholesale on
// update; it is never mutated in place.
type Parameter struct {
	spec  *ParameterSpec
	value units.Quantity
}

// NewParameter validates a quantity against the spec and wraps it. It
// returns a *units.UnitError when the dimension is wrong and a *RangeError
// when the value falls outside the declared validity interval.
func NewParameter(spec *ParameterSpec, q units.Quantity) (Parameter, error) {
	if err := validateAgainstSpec(spec, q); err != nil {
		return Parameter{}, err
	}
	return Parameter{spec: spec, value: q}, nil
}

// Spec returns the parameter's registry entry.
func (p Parameter) Spec() *ParameterSpec { return p.spec }

// Value returns the validated quantity.
func (p Parameter) Value() units.Quantity { return p.value }

// Update re-runs the spec checks and commits the new quantity. On error the
// previous value is left untouched.
func (p *Parameter) Update(q units.Quantity) error {
	if err := validateAgainstSpec(p.spec, q); err != nil {
		return err
	}
	p.value = q
	return nil
}

func validateAgainstSpec(spec *ParameterSpec, q units.Quantity) error {
	if q.Unit.Dimension() != spec.Dimension {
		return &units.UnitError{
			Unit: q.Unit.Name(),
			Want: spec.Dimension,
			Got:  q.Unit.Dimension(),
		}
	}
	if spec.Range == nil {
		return nil
	}
	// Compare in the spec's default unit, where the range is declared.
	inDefault, err := q.To(spec.Default.Unit)
	if err != nil {
		return err
	}
	if inDefault.Value < spec.Range.Min || inDefault.Value > spec.Range.Max {
		return &RangeError{
			Name:  spec.Name,
			Value: inDefault.Value,
			Min:   spec.Range.Min,
			Max:   spec.Range.Max,
		}
	}
	return nil
}
