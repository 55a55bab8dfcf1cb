package core

import (
	"sort"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// RawValue is the {value, unit} shape handed over by the file and HTTP
// layers before validation.
type RawValue struct {
	Value float64 `json:"value" mapstructure:"value"`
	Unit  string  `json:"unit" mapstructure:"unit"`
}

// CalculationInputs aggregates every validated parameter feeding the
// derivation pipeline. It is built once per Calculator from the merge
// defaults <- instrument setup <- user input, with later layers winning
// per field. A pristine copy of the merged state is retained so Reset can
// restore it exactly.
type CalculationInputs struct {
	params   map[string]Parameter
	pristine map[string]Parameter
}

// NewCalculationInputs merges and validates the input layers. It returns
// *UnknownParameterError for names outside the registry or outside the
// group a layer is allowed to set, unit/range errors from per-field
// validation, and *InvalidInputError when the integration-time/sensitivity
// mutual-exclusivity rule is violated.
func NewCalculationInputs(userInput, instrumentSetup map[string]RawValue) (*CalculationInputs, error) {
	params := make(map[string]Parameter, len(parameterSpecs))
	for i := range parameterSpecs {
		spec := &parameterSpecs[i]
		p, err := NewParameter(spec, spec.Default)
		if err != nil {
			return nil, err
		}
		params[spec.Name] = p
	}

	if err := applyLayer(params, instrumentSetup, GroupInstrument); err != nil {
		return nil, err
	}
	if err := applyLayer(params, userInput, GroupUser); err != nil {
		return nil, err
	}

	if err := checkFreeVariable(params); err != nil {
		return nil, err
	}

	ci := &CalculationInputs{params: params}
	ci.pristine = copyParams(params)
	return ci, nil
}

// applyLayer validates one override layer against the registry. Keys are
// processed in sorted order so validation failures are deterministic.
func applyLayer(params map[string]Parameter, layer map[string]RawValue, group ParameterGroup) error {
	names := make([]string, 0, len(layer))
	for name := range layer {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec, ok := specsByName[name]
		if !ok || spec.Group != group {
			// Fixed parameters (T_cmb) are rejected the same way as
			// misspelled names: the layer has no business setting them.
			return &UnknownParameterError{Name: name}
		}
		raw := layer[name]
		unit, err := units.Parse(raw.Unit)
		if err != nil {
			return err
		}
		p, err := NewParameter(spec, units.New(raw.Value, unit))
		if err != nil {
			return err
		}
		params[name] = p
	}
	return nil
}

// checkFreeVariable enforces that exactly one of integration time and
// sensitivity is unset (zero): the zero one is the quantity to solve for.
func checkFreeVariable(params map[string]Parameter) error {
	tInt := params[ParamTInt].Value().Value
	sens := params[ParamSensitivity].Value().Value
	if (tInt != 0) == (sens != 0) {
		return &InvalidInputError{
			Reason: "provide exactly one of integration time or sensitivity",
		}
	}
	return nil
}

// Get returns the current value of a named parameter.
func (ci *CalculationInputs) Get(name string) (units.Quantity, error) {
	p, ok := ci.params[name]
	if !ok {
		return units.Quantity{}, &UnknownParameterError{Name: name}
	}
	return p.Value(), nil
}

// Set validates and replaces one parameter value. Fixed parameters are not
// settable and yield *UnknownParameterError.
func (ci *CalculationInputs) Set(name string, q units.Quantity) error {
	p, ok := ci.params[name]
	if !ok || p.Spec().Group == GroupFixed {
		return &UnknownParameterError{Name: name}
	}
	if err := p.Update(q); err != nil {
		return err
	}
	ci.params[name] = p
	return nil
}

// Reset restores the originally merged, pre-mutation snapshot.
func (ci *CalculationInputs) Reset() {
	ci.params = copyParams(ci.pristine)
}

// Snapshot returns the current parameter values as a flat name -> quantity
// map, for serialization by the I/O layers.
func (ci *CalculationInputs) Snapshot() map[string]units.Quantity {
	out := make(map[string]units.Quantity, len(ci.params))
	for name, p := range ci.params {
		out[name] = p.Value()
	}
	return out
}

func copyParams(src map[string]Parameter) map[string]Parameter {
	dst := make(map[string]Parameter, len(src))
	for name, p := range src {
		dst[name] = p
	}
	return dst
}
