package core

import (
	"errors"
	"math"
	"testing"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

func TestTablesStartAtThirtyGigahertz(t *testing.T) {
	if zenithOpacityTable[0][0] != 30 {
		t.Errorf("zenith opacity table starts at %g GHz, want 30", zenithOpacityTable[0][0])
	}
	if skyTemperatureTable[0][0] != 30 {
		t.Errorf("sky temperature table starts at %g GHz, want 30", skyTemperatureTable[0][0])
	}
}

func TestTAtmReferencePoint(t *testing.T) {
	atm, err := NewAtmosphereModel(
		units.New(500, units.Gigahertz),
		units.New(50, units.None),
		units.New(20, units.Degree),
	)
	if err != nil {
		t.Fatalf("NewAtmosphereModel: %v", err)
	}

	tAtm := atm.TAtm()
	if tAtm.Unit != units.Kelvin {
		t.Fatalf("TAtm unit = %q, want K", tAtm.Unit.Name())
	}
	if tAtm.Value <= 173.668 || tAtm.Value >= 173.766 {
		t.Errorf("TAtm = %g K, want in (173.668, 173.766)", tAtm.Value)
	}
}

func TestTauAtmReferencePoint(t *testing.T) {
	atm, err := NewAtmosphereModel(
		units.New(500, units.Gigahertz),
		units.New(50, units.None),
		units.New(20, units.Degree),
	)
	if err != nil {
		t.Fatalf("NewAtmosphereModel: %v", err)
	}

	zenith := (90 - 20) * math.Pi / 180
	tau := atm.TauAtm()
	if tau <= 1.040/math.Cos(zenith) || tau >= 1.0419/math.Cos(zenith) {
		t.Errorf("TauAtm = %g, want in (%g, %g)",
			tau, 1.040/math.Cos(zenith), 1.0419/math.Cos(zenith))
	}
}

func TestTauScalesWithAirmass(t *testing.T) {
	at90, err := NewAtmosphereModel(
		units.New(345, units.Gigahertz), units.New(25, units.None), units.New(90, units.Degree))
	if err != nil {
		t.Fatalf("NewAtmosphereModel(el=90): %v", err)
	}
	at30, err := NewAtmosphereModel(
		units.New(345, units.Gigahertz), units.New(25, units.None), units.New(30, units.Degree))
	if err != nil {
		t.Fatalf("NewAtmosphereModel(el=30): %v", err)
	}

	// At 30 deg elevation the path is twice the zenith airmass.
	ratio := at30.TauAtm() / at90.TauAtm()
	if math.Abs(ratio-2) > 1e-9 {
		t.Errorf("tau(30 deg)/tau(90 deg) = %g, want 2", ratio)
	}
}

func TestInterpolationBetweenBuckets(t *testing.T) {
	// 505 GHz and weather 60 sit strictly between grid points; the result
	// must land between the surrounding bucket values.
	atm, err := NewAtmosphereModel(
		units.New(505, units.Gigahertz), units.New(60, units.None), units.New(90, units.Degree))
	if err != nil {
		t.Fatalf("NewAtmosphereModel: %v", err)
	}

	lo, err := interpolateAtmTable(zenithOpacityTable, 500, 50)
	if err != nil {
		t.Fatalf("interpolateAtmTable(500, 50): %v", err)
	}
	hi, err := interpolateAtmTable(zenithOpacityTable, 510, 75)
	if err != nil {
		t.Fatalf("interpolateAtmTable(510, 75): %v", err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if got := atm.TauAtm(); got < lo || got > hi {
		t.Errorf("interpolated tau = %g, want within [%g, %g]", got, lo, hi)
	}
}

func TestOutOfTableInputsAreDomainErrors(t *testing.T) {
	cases := []struct {
		name                 string
		freqGHz, weather, el float64
	}{
		{"frequency too low", 20, 50, 45},
		{"frequency too high", 1100, 50, 45},
		{"weather below table", 500, -5, 45},
		{"weather above table", 500, 150, 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAtmosphereModel(
				units.New(tc.freqGHz, units.Gigahertz),
				units.New(tc.weather, units.None),
				units.New(tc.el, units.Degree),
			)
			var domainErr *DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("error = %v, want *DomainError", err)
			}
		})
	}
}

func TestAtmosphereRejectsWrongUnits(t *testing.T) {
	_, err := NewAtmosphereModel(
		units.New(500, units.Kelvin),
		units.New(50, units.None),
		units.New(20, units.Degree),
	)
	var unitErr *units.UnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("error = %v, want *units.UnitError", err)
	}
}
