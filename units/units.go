// Package units provides a small value-with-unit type for the closed set of
// physical dimensions the sensitivity calculator works in. Conversion is
// always explicit; arithmetic across units is left to the caller.
package units

import "fmt"

// Dimension identifies the physical dimension a Unit measures.
type Dimension int

const (
	Dimensionless Dimension = iota
	Frequency
	Time
	Temperature
	Length
	Angle
	FluxDensity
)

// String returns a human-readable dimension name.
func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case Frequency:
		return "frequency"
	case Time:
		return "time"
	case Temperature:
		return "temperature"
	case Length:
		return "length"
	case Angle:
		return "angle"
	case FluxDensity:
		return "flux density"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// Unit is a named scale within one Dimension. The factor converts a value
// in this unit into the dimension's base unit (Hz, s, K, m, rad, and
// W m^-2 Hz^-1 for flux density).
type Unit struct {
	name   string
	dim    Dimension
	factor float64
}

// Name returns the unit symbol as used in input files and the API ("GHz",
// "micron", "mJy", ...). The dimensionless unit has an empty name.
func (u Unit) Name() string { return u.name }

// Dimension returns the physical dimension the unit measures.
func (u Unit) Dimension() Dimension { return u.dim }

// The supported unit vocabulary. This is intentionally a closed set: the
// calculator validates every incoming unit against it rather than accepting
// arbitrary unit expressions.
var (
	None = Unit{"", Dimensionless, 1}

	Hertz     = Unit{"Hz", Frequency, 1}
	Kilohertz = Unit{"kHz", Frequency, 1e3}
	Megahertz = Unit{"MHz", Frequency, 1e6}
	Gigahertz = Unit{"GHz", Frequency, 1e9}

	Second = Unit{"s", Time, 1}
	Minute = Unit{"min", Time, 60}
	Hour   = Unit{"h", Time, 3600}

	Kelvin = Unit{"K", Temperature, 1}

	Metre      = Unit{"m", Length, 1}
	Centimetre = Unit{"cm", Length, 1e-2}
	Millimetre = Unit{"mm", Length, 1e-3}
	Micron     = Unit{"micron", Length, 1e-6}

	Radian = Unit{"rad", Angle, 1}
	Degree = Unit{"deg", Angle, degToRad}

	Jansky      = Unit{"Jy", FluxDensity, 1e-26}
	Millijansky = Unit{"mJy", FluxDensity, 1e-29}
	Microjansky = Unit{"uJy", FluxDensity, 1e-32}

	// WattPerSqMetreHertz is the SI base unit of flux density; SEFD values
	// are carried in it internally.
	WattPerSqMetreHertz = Unit{"W/(m^2 Hz)", FluxDensity, 1}
)

const degToRad = 0.017453292519943295

var byName = map[string]Unit{
	"none":   None,
	"Hz":     Hertz,
	"kHz":    Kilohertz,
	"MHz":    Megahertz,
	"GHz":    Gigahertz,
	"s":      Second,
	"min":    Minute,
	"h":      Hour,
	"K":      Kelvin,
	"m":      Metre,
	"cm":     Centimetre,
	"mm":     Millimetre,
	"micron": Micron,
	"um":     Micron,
	"rad":    Radian,
	"deg":    Degree,
	"Jy":     Jansky,
	"mJy":    Millijansky,
	"uJy":    Microjansky,

	"W/(m^2 Hz)": WattPerSqMetreHertz,
}

// Parse resolves a unit symbol from the supported vocabulary. The empty
// string and "none" both resolve to the dimensionless unit.
func Parse(name string) (Unit, error) {
	if name == "" {
		return None, nil
	}
	u, ok := byName[name]
	if !ok {
		return Unit{}, &UnitError{Unit: name, Reason: "unknown unit"}
	}
	return u, nil
}

// UnitError reports an unknown unit symbol or a unit of the wrong dimension.
type UnitError struct {
	Unit   string
	Want   Dimension
	Got    Dimension
	Reason string
}

func (e *UnitError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unit %q: %s", e.Unit, e.Reason)
	}
	return fmt.Sprintf("unit %q measures %s, want %s", e.Unit, e.Got, e.Want)
}
