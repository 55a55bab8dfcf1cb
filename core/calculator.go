package core

import (
	"math"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// DerivedParameters holds everything the derivation pipeline computes from
// the calculation inputs. The set is recomputed wholesale whenever an input
// affecting it changes; it is never patched incrementally.
type DerivedParameters struct {
	TauAtm   float64        // line-of-sight atmospheric opacity
	TAtm     units.Quantity // atmospheric brightness temperature
	TRx      units.Quantity // receiver temperature feeding T_sys
	EtaA     float64        // aperture efficiency
	EtaS     float64        // combined optical efficiency
	TSys     units.Quantity // system temperature
	SEFD     units.Quantity // source equivalent flux density, W/(m^2 Hz)
	DishArea float64        // collecting area, m^2
}

// Calculator owns one set of calculation inputs and keeps the derived
// parameters in sync with them. Every validated setter re-runs the full
// derivation before returning, so callers never observe a stale state.
// Instances are not safe for concurrent mutation; service wrappers build
// one per request.
type Calculator struct {
	inputs  *CalculationInputs
	derived DerivedParameters
}

// NewCalculator merges and validates the input layers, then derives the
// full parameter set.
func NewCalculator(userInput, instrumentSetup map[string]RawValue) (*Calculator, error) {
	inputs, err := NewCalculationInputs(userInput, instrumentSetup)
	if err != nil {
		return nil, err
	}
	c := &Calculator{inputs: inputs}
	if err := c.recompute(); err != nil {
		return nil, err
	}
	return c, nil
}

// recompute runs the whole derivation chain: atmosphere lookup,
// efficiencies, system temperature, dish area, and SEFD.
func (c *Calculator) recompute() error {
	obsFreq := c.value(ParamObsFreq)
	weather := c.value(ParamWeather)
	elevation := c.value(ParamElevation)

	atm, err := NewAtmosphereModel(obsFreq, weather, elevation)
	if err != nil {
		return err
	}
	tauAtm := atm.TauAtm()
	tAtm := atm.TAtm()

	eta := Efficiencies{
		Ill:   c.value(ParamEtaIll).Value,
		Quant: c.value(ParamEtaQ).Value,
		Spill: c.value(ParamEtaSpill).Value,
		Block: c.value(ParamEtaBlock).Value,
		Pol:   c.value(ParamEtaPol).Value,
		Rad:   c.value(ParamEtaR).Value,
	}
	etaA, err := eta.EtaA(obsFreq, c.value(ParamSurfaceRMS))
	if err != nil {
		return err
	}
	etaS := eta.EtaS()

	tRx := c.value(ParamTRx)
	tSys, err := SystemTemperatureModel{
		TRx:    tRx,
		TCmb:   c.value(ParamTCmb),
		TAtm:   tAtm,
		TAmb:   c.value(ParamTAmb),
		TauAtm: tauAtm,
	}.SystemTemperature(c.value(ParamGain).Value, c.value(ParamEtaEff).Value)
	if err != nil {
		return err
	}

	radiusM, err := c.value(ParamDishRadius).To(units.Metre)
	if err != nil {
		return err
	}
	area := math.Pi * radiusM.Value * radiusM.Value

	sefd, err := CalculateSEFD(tSys, area, etaA)
	if err != nil {
		return err
	}

	c.derived = DerivedParameters{
		TauAtm:   tauAtm,
		TAtm:     tAtm,
		TRx:      tRx,
		EtaA:     etaA,
		EtaS:     etaS,
		TSys:     tSys,
		SEFD:     units.New(sefd, units.WattPerSqMetreHertz),
		DishArea: area,
	}
	return nil
}

// value fetches a parameter that the registry guarantees to exist.
func (c *Calculator) value(name string) units.Quantity {
	q, err := c.inputs.Get(name)
	if err != nil {
		panic(err) // registry names only; a miss is a programming error
	}
	return q
}

// setAndRecompute is the single funnel for the user-settable parameters
// that drive the derivation. When the re-derivation fails the previous
// value is restored, so the calculator stays consistent.
func (c *Calculator) setAndRecompute(name string, q units.Quantity) error {
	prev, err := c.inputs.Get(name)
	if err != nil {
		return err
	}
	if err := c.inputs.Set(name, q); err != nil {
		return err
	}
	if err := c.recompute(); err != nil {
		_ = c.inputs.Set(name, prev)
		_ = c.recompute()
		return err
	}
	return nil
}

// SetBandwidth updates the observing bandwidth and re-derives.
func (c *Calculator) SetBandwidth(q units.Quantity) error {
	return c.setAndRecompute(ParamBandwidth, q)
}

// SetObsFreq updates the observing frequency and re-derives.
func (c *Calculator) SetObsFreq(q units.Quantity) error {
	return c.setAndRecompute(ParamObsFreq, q)
}

// SetNPol updates the polarization count and re-derives.
func (c *Calculator) SetNPol(q units.Quantity) error {
	return c.setAndRecompute(ParamNPol, q)
}

// SetWeather updates the weather percentile and re-derives.
func (c *Calculator) SetWeather(q units.Quantity) error {
	return c.setAndRecompute(ParamWeather, q)
}

// SetElevation updates the elevation angle and re-derives.
func (c *Calculator) SetElevation(q units.Quantity) error {
	return c.setAndRecompute(ParamElevation, q)
}

// SetDishRadius updates the dish radius and re-derives.
func (c *Calculator) SetDishRadius(q units.Quantity) error {
	return c.setAndRecompute(ParamDishRadius, q)
}

// TInt returns the stored integration time without recomputation.
func (c *Calculator) TInt() units.Quantity { return c.value(ParamTInt) }

// Sensitivity returns the stored sensitivity without recomputation.
func (c *Calculator) Sensitivity() units.Quantity { return c.value(ParamSensitivity) }

// Derived returns a copy of the current derived parameters.
func (c *Calculator) Derived() DerivedParameters { return c.derived }

func (c *Calculator) radiometer() (Radiometer, error) {
	bandwidthHz, err := c.value(ParamBandwidth).To(units.Hertz)
	if err != nil {
		return Radiometer{}, err
	}
	return Radiometer{
		BandwidthHz: bandwidthHz.Value,
		TauAtm:      c.derived.TauAtm,
		SEFD:        c.derived.SEFD.SI(),
		NPol:        c.value(ParamNPol).Value,
		EtaS:        c.derived.EtaS,
	}, nil
}

// CalculateSensitivity solves the radiometer equation for sensitivity. A
// nil tInt falls back to the stored integration time. When update is true
// the result is written back into the sensitivity input.
func (c *Calculator) CalculateSensitivity(tInt *units.Quantity, update bool) (units.Quantity, error) {
	r, err := c.radiometer()
	if err != nil {
		return units.Quantity{}, err
	}
	t := c.value(ParamTInt)
	if tInt != nil {
		t = *tInt
	}
	sens, err := r.Sensitivity(t)
	if err != nil {
		return units.Quantity{}, err
	}
	if update {
		if err := c.inputs.Set(ParamSensitivity, sens); err != nil {
			return units.Quantity{}, err
		}
	}
	return sens, nil
}

// CalculateTIntegration solves the radiometer equation for integration
// time. A nil sensitivity falls back to the stored sensitivity. When
// update is true the result is written back into the integration-time
// input.
func (c *Calculator) CalculateTIntegration(sensitivity *units.Quantity, update bool) (units.Quantity, error) {
	r, err := c.radiometer()
	if err != nil {
		return units.Quantity{}, err
	}
	s := c.value(ParamSensitivity)
	if sensitivity != nil {
		s = *sensitivity
	}
	tInt, err := r.TIntegration(s)
	if err != nil {
		return units.Quantity{}, err
	}
	if update {
		if err := c.inputs.Set(ParamTInt, tInt); err != nil {
			return units.Quantity{}, err
		}
	}
	return tInt, nil
}

// Reset restores the originally merged inputs and re-derives.
func (c *Calculator) Reset() error {
	c.inputs.Reset()
	return c.recompute()
}

// Snapshot returns all input parameters plus the derived values as a flat
// name -> quantity map for serialization. Derived entries use the same
// names the parameter log format always used: tau_atm, T_atm, eta_a,
// eta_s, T_sys, sefd, area.
func (c *Calculator) Snapshot() map[string]units.Quantity {
	out := c.inputs.Snapshot()
	out["tau_atm"] = units.New(c.derived.TauAtm, units.None)
	out["T_atm"] = c.derived.TAtm
	out["eta_a"] = units.New(c.derived.EtaA, units.None)
	out["eta_s"] = units.New(c.derived.EtaS, units.None)
	out["T_sys"] = c.derived.TSys
	out["sefd"] = c.derived.SEFD
	out["area"] = units.New(c.derived.DishArea, units.None)
	return out
}
