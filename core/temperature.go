package core

import (
	"math"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// SystemTemperatureModel aggregates the receiver, cosmic-background,
// atmospheric, and ambient temperature contributions into one effective
// system temperature.
type SystemTemperatureModel struct {
	TRx    units.Quantity // receiver temperature
	TCmb   units.Quantity // cosmic microwave background
	TAtm   units.Quantity // atmospheric brightness temperature
	TAmb   units.Quantity // ambient temperature
	TauAtm float64        // line-of-sight opacity
}

// SystemTemperature evaluates
//
//	T_sys = T_rx/g + T_cmb*exp(-tau) + T_atm*(1-exp(-tau)) + (1-eta_eff)/eta_eff * T_amb
//
// The receiver term is divided by the amplifier gain; the sky terms are
// weighted by the atmospheric transmission exp(-tau); the ambient leakage
// term is scaled by the forward-efficiency loss fraction.
func (m SystemTemperatureModel) SystemTemperature(gain, etaEff float64) (units.Quantity, error) {
	if gain <= 0 {
		return units.Quantity{}, &DomainError{Op: "system temperature", Reason: "gain must be positive"}
	}
	if etaEff <= 0 || etaEff > 1 {
		return units.Quantity{}, &DomainError{Op: "system temperature", Reason: "forward efficiency must be in (0, 1]"}
	}

	tRx, err := m.TRx.To(units.Kelvin)
	if err != nil {
		return units.Quantity{}, err
	}
	tCmb, err := m.TCmb.To(units.Kelvin)
	if err != nil {
		return units.Quantity{}, err
	}
	tAtm, err := m.TAtm.To(units.Kelvin)
	if err != nil {
		return units.Quantity{}, err
	}
	tAmb, err := m.TAmb.To(units.Kelvin)
	if err != nil {
		return units.Quantity{}, err
	}

	transmission := math.Exp(-m.TauAtm)
	tSys := tRx.Value/gain +
		tCmb.Value*transmission +
		tAtm.Value*(1-transmission) +
		(1-etaEff)/etaEff*tAmb.Value
	return units.New(tSys, units.Kelvin), nil
}
