package core

import (
	"errors"
	"math"
	"testing"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

func TestSensitivityReferenceValue(t *testing.T) {
	r := Radiometer{
		BandwidthHz: 7.5e9,
		TauAtm:      0.7,
		SEFD:        10 * Boltzmann, // 10 K/m^2 worth of flux density
		NPol:        1,
		EtaS:        1,
	}
	got, err := r.Sensitivity(units.New(1, units.Second))
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	if got.Unit != units.Jansky {
		t.Fatalf("sensitivity unit = %q, want Jy", got.Unit.Name())
	}
	want := 0.32103973505475175
	if math.Abs(got.Value-want) > 1e-9*want {
		t.Errorf("sensitivity = %.16g Jy, want %.16g Jy", got.Value, want)
	}
}

func TestTIntegrationReferenceValue(t *testing.T) {
	r := Radiometer{
		BandwidthHz: 7.5e9,
		TauAtm:      0.7,
		SEFD:        10 * Boltzmann,
		NPol:        1,
		EtaS:        1,
	}
	got, err := r.TIntegration(units.New(15e-5, units.Jansky))
	if err != nil {
		t.Fatalf("TIntegration: %v", err)
	}
	if got.Unit != units.Second {
		t.Fatalf("integration time unit = %q, want s", got.Unit.Name())
	}
	want := 4580733.843734454
	if math.Abs(got.Value-want) > 1e-9*want {
		t.Errorf("t_integration = %.12g s, want %.12g s", got.Value, want)
	}
}

func TestRoundTripRecoversIntegrationTime(t *testing.T) {
	r := Radiometer{
		BandwidthHz: 7.5e9,
		TauAtm:      3,
		SEFD:        30 * Boltzmann,
		NPol:        2,
		EtaS:        1,
	}
	target := units.New(3.5, units.Jansky)
	tInt, err := r.TIntegration(target)
	if err != nil {
		t.Fatalf("TIntegration: %v", err)
	}
	back, err := r.Sensitivity(tInt)
	if err != nil {
		t.Fatalf("Sensitivity: %v", err)
	}
	if math.Abs(back.Value-target.Value) > 0.01*target.Value {
		t.Errorf("round trip sensitivity = %g Jy, want %g Jy within 1%%", back.Value, target.Value)
	}
}

func TestRoundTripAcrossConfigurations(t *testing.T) {
	cases := []struct {
		name string
		r    Radiometer
		tInt float64
	}{
		{"single pol narrow band", Radiometer{BandwidthHz: 100e6, TauAtm: 0.2, SEFD: 5 * Boltzmann, NPol: 1, EtaS: 0.9}, 300},
		{"dual pol wide band", Radiometer{BandwidthHz: 16e9, TauAtm: 1.1, SEFD: 80 * Boltzmann, NPol: 2, EtaS: 0.85}, 3600},
		{"short integration", Radiometer{BandwidthHz: 7.5e9, TauAtm: 0.05, SEFD: 12 * Boltzmann, NPol: 2, EtaS: 0.8}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sens, err := tc.r.Sensitivity(units.New(tc.tInt, units.Second))
			if err != nil {
				t.Fatalf("Sensitivity: %v", err)
			}
			back, err := tc.r.TIntegration(sens)
			if err != nil {
				t.Fatalf("TIntegration: %v", err)
			}
			if math.Abs(back.Value-tc.tInt) > 0.01*tc.tInt {
				t.Errorf("round trip t_int = %g s, want %g s within 1%%", back.Value, tc.tInt)
			}
		})
	}
}

func TestRadiometerDomainChecks(t *testing.T) {
	valid := Radiometer{BandwidthHz: 7.5e9, TauAtm: 0.7, SEFD: 10 * Boltzmann, NPol: 1, EtaS: 1}

	var domainErr *DomainError
	if _, err := valid.Sensitivity(units.New(0, units.Second)); !errors.As(err, &domainErr) {
		t.Errorf("t_int=0 error = %v, want *DomainError", err)
	}
	if _, err := valid.TIntegration(units.New(0, units.Jansky)); !errors.As(err, &domainErr) {
		t.Errorf("sensitivity=0 error = %v, want *DomainError", err)
	}

	broken := valid
	broken.BandwidthHz = 0
	if _, err := broken.Sensitivity(units.New(1, units.Second)); !errors.As(err, &domainErr) {
		t.Errorf("bandwidth=0 error = %v, want *DomainError", err)
	}

	var unitErr *units.UnitError
	if _, err := valid.TIntegration(units.New(1, units.Kelvin)); !errors.As(err, &unitErr) {
		t.Errorf("kelvin sensitivity error = %v, want *units.UnitError", err)
	}
}
