package core

import "github.com/signalsfoundry/sensitivity-calculator/units"

// Boltzmann is the Boltzmann constant in J/K (exact, 2019 SI).
const Boltzmann = 1.380649e-23

// CalculateSEFD computes the source equivalent flux density
// 2*k_B*T_sys / (area*eta_a) in W m^-2 Hz^-1 for a system temperature,
// collecting area in m^2, and aperture efficiency.
func CalculateSEFD(tSys units.Quantity, areaM2, etaA float64) (float64, error) {
	if areaM2 <= 0 {
		return 0, &DomainError{Op: "SEFD", Reason: "collecting area must be positive"}
	}
	if etaA <= 0 {
		return 0, &DomainError{Op: "SEFD", Reason: "aperture efficiency must be positive"}
	}
	tSysK, err := tSys.To(units.Kelvin)
	if err != nil {
		return 0, err
	}
	return 2 * Boltzmann * tSysK.Value / (areaM2 * etaA), nil
}
