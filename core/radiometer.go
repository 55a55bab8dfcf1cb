package core

import (
	"math"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// Radiometer evaluates the two inverse forms of the radiometer equation.
// It is pure over its five fields; the Calculator rebuilds one whenever the
// derived parameters change.
type Radiometer struct {
	BandwidthHz float64
	TauAtm      float64
	SEFD        float64 // W m^-2 Hz^-1
	NPol        float64
	EtaS        float64
}

func (r Radiometer) check() error {
	switch {
	case r.BandwidthHz <= 0:
		return &DomainError{Op: "radiometer equation", Reason: "bandwidth must be positive"}
	case r.SEFD <= 0:
		return &DomainError{Op: "radiometer equation", Reason: "SEFD must be positive"}
	case r.NPol <= 0:
		return &DomainError{Op: "radiometer equation", Reason: "polarization count must be positive"}
	case r.EtaS <= 0:
		return &DomainError{Op: "radiometer equation", Reason: "system efficiency must be positive"}
	}
	return nil
}

// Sensitivity returns the reachable sensitivity in Jy for a given
// integration time:
//
//	SEFD / (eta_s * sqrt(n_pol * bandwidth * t_int)) * exp(tau_atm)
func (r Radiometer) Sensitivity(tInt units.Quantity) (units.Quantity, error) {
	if err := r.check(); err != nil {
		return units.Quantity{}, err
	}
	tSec, err := tInt.To(units.Second)
	if err != nil {
		return units.Quantity{}, err
	}
	if tSec.Value <= 0 {
		return units.Quantity{}, &DomainError{Op: "radiometer equation", Reason: "integration time must be positive"}
	}

	si := r.SEFD / (r.EtaS * math.Sqrt(r.NPol*r.BandwidthHz*tSec.Value)) * math.Exp(r.TauAtm)
	return units.New(si, units.WattPerSqMetreHertz).To(units.Jansky)
}

// TIntegration returns the integration time in seconds required to reach a
// target sensitivity:
//
//	(SEFD * exp(tau_atm) / (sensitivity * eta_s))^2 / (n_pol * bandwidth)
func (r Radiometer) TIntegration(sensitivity units.Quantity) (units.Quantity, error) {
	if err := r.check(); err != nil {
		return units.Quantity{}, err
	}
	if sensitivity.Unit.Dimension() != units.FluxDensity {
		return units.Quantity{}, &units.UnitError{
			Unit: sensitivity.Unit.Name(),
			Want: units.FluxDensity,
			Got:  sensitivity.Unit.Dimension(),
		}
	}
	sSI := sensitivity.SI()
	if sSI <= 0 {
		return units.Quantity{}, &DomainError{Op: "radiometer equation", Reason: "sensitivity must be positive"}
	}

	ratio := r.SEFD * math.Exp(r.TauAtm) / (sSI * r.EtaS)
	return units.New(ratio*ratio/(r.NPol*r.BandwidthHz), units.Second), nil
}
