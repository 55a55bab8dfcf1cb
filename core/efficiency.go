package core

import (
	"math"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// speedOfLight is the speed of light in vacuum, m/s.
const speedOfLight = 299792458.0

// Efficiencies collects the dimensionless optical efficiency terms of the
// instrument.
type Efficiencies struct {
	Ill   float64 // illumination
	Quant float64 // quantization; 0 means not configured
	Spill float64 // spillover
	Block float64 // blockage
	Pol   float64 // polarization
	Rad   float64 // radiation resistance
}

// EtaA computes the aperture efficiency via the Ruze equation:
// eta_ill * exp(-(4*pi*surface_rms/wavelength)^2), with the surface
// accuracy and wavelength brought into consistent length units first.
func (e Efficiencies) EtaA(obsFreq, surfaceRMS units.Quantity) (float64, error) {
	freqHz, err := obsFreq.To(units.Hertz)
	if err != nil {
		return 0, err
	}
	rmsM, err := surfaceRMS.To(units.Metre)
	if err != nil {
		return 0, err
	}
	if freqHz.Value <= 0 {
		return 0, &DomainError{Op: "aperture efficiency", Reason: "observing frequency must be positive"}
	}
	wavelength := speedOfLight / freqHz.Value
	ruze := 4 * math.Pi * rmsM.Value / wavelength
	return e.Ill * math.Exp(-ruze*ruze), nil
}

// EtaS computes the combined spillover, blockage, polarization, and
// radiation-resistance efficiency. The quantization term joins the product
// when the instrument configures one.
func (e Efficiencies) EtaS() float64 {
	etaS := e.Spill * e.Block * e.Pol * e.Rad
	if e.Quant > 0 {
		etaS *= e.Quant
	}
	return etaS
}
