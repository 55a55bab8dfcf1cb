package units

import (
	"fmt"
	"strconv"
)

// Quantity pairs a numeric magnitude with a unit from the supported set.
// Quantities are plain values; converting one never mutates the original.
type Quantity struct {
	Value float64
	Unit  Unit
}

// New builds a Quantity from a magnitude and unit.
func New(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// To converts the quantity into the target unit. It returns a *UnitError
// when the dimensions differ.
func (q Quantity) To(target Unit) (Quantity, error) {
	if q.Unit.dim != target.dim {
		return Quantity{}, &UnitError{Unit: q.Unit.name, Want: target.dim, Got: q.Unit.dim}
	}
	if q.Unit == target {
		return q, nil
	}
	return Quantity{Value: q.Value * q.Unit.factor / target.factor, Unit: target}, nil
}

// SI returns the magnitude expressed in the base unit of the quantity's
// dimension (Hz, s, K, m, rad, W m^-2 Hz^-1).
func (q Quantity) SI() float64 {
	return q.Value * q.Unit.factor
}

// String renders the quantity as "<value> <unit>", e.g. "7.5 GHz".
// Dimensionless quantities render as the bare number.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.Unit.name == "" {
		return v
	}
	return fmt.Sprintf("%s %s", v, q.Unit.name)
}
