package core

import "github.com/signalsfoundry/sensitivity-calculator/units"

// ParameterGroup says who is allowed to supply a parameter.
type ParameterGroup int

const (
	// GroupUser parameters arrive with each observation request.
	GroupUser ParameterGroup = iota
	// GroupInstrument parameters describe the telescope setup and are
	// overridden per deployment, not per request.
	GroupInstrument
	// GroupFixed parameters are physical constants and never settable.
	GroupFixed
)

// ValueRange is an inclusive validity interval expressed in a parameter's
// default unit.
type ValueRange struct {
	Min, Max float64
}

// ParameterSpec declares everything the validation layer needs to know
// about one named parameter: its default, its required dimension, its
// validity range, and which group may set it.
type ParameterSpec struct {
	Name      string
	Group     ParameterGroup
	Dimension units.Dimension
	Default   units.Quantity
	// Range is nil when any finite value of the right dimension is valid.
	Range *ValueRange
}

// Canonical parameter names. These match the keys used by input files and
// the HTTP API.
const (
	ParamTInt        = "t_int"
	ParamSensitivity = "sensitivity"
	ParamBandwidth   = "bandwidth"
	ParamObsFreq     = "obs_freq"
	ParamNPol        = "n_pol"
	ParamWeather     = "weather"
	ParamElevation   = "elevation"
	ParamGain        = "g"
	ParamSurfaceRMS  = "surface_rms"
	ParamDishRadius  = "dish_radius"
	ParamTAmb        = "T_amb"
	ParamTRx         = "T_rx"
	ParamEtaEff      = "eta_eff"
	ParamEtaIll      = "eta_ill"
	ParamEtaQ        = "eta_q"
	ParamEtaSpill    = "eta_spill"
	ParamEtaBlock    = "eta_block"
	ParamEtaPol      = "eta_pol"
	ParamEtaR        = "eta_r"
	ParamTCmb        = "T_cmb"
)

func rng(min, max float64) *ValueRange { return &ValueRange{Min: min, Max: max} }

// parameterSpecs is the closed registry of parameters the calculator
// understands, in presentation order. Defaults describe a 50 m-class
// single-dish observation; the obs_freq range tracks the atmospheric
// table coverage so validation and the table domain agree.
var parameterSpecs = []ParameterSpec{
	{ParamTInt, GroupUser, units.Time, units.New(70, units.Second), rng(0, 3.15e8)},
	{ParamSensitivity, GroupUser, units.FluxDensity, units.New(0, units.Millijansky), rng(0, 1e9)},
	{ParamBandwidth, GroupUser, units.Frequency, units.New(7.5, units.Gigahertz), rng(1e-9, 1000)},
	{ParamObsFreq, GroupUser, units.Frequency, units.New(100, units.Gigahertz), rng(30, 1000)},
	{ParamNPol, GroupUser, units.Dimensionless, units.New(2, units.None), rng(1, 2)},
	{ParamWeather, GroupUser, units.Dimensionless, units.New(50, units.None), rng(0, 100)},
	{ParamElevation, GroupUser, units.Angle, units.New(30, units.Degree), rng(5, 90)},
	{ParamGain, GroupInstrument, units.Dimensionless, units.New(1, units.None), rng(1e-3, 1e3)},
	{ParamSurfaceRMS, GroupInstrument, units.Length, units.New(25, units.Micron), rng(0, 1e4)},
	{ParamDishRadius, GroupInstrument, units.Length, units.New(25, units.Metre), rng(0.1, 1000)},
	{ParamTAmb, GroupInstrument, units.Temperature, units.New(270, units.Kelvin), rng(0, 1000)},
	{ParamTRx, GroupInstrument, units.Temperature, units.New(50, units.Kelvin), rng(0, 1000)},
	{ParamEtaEff, GroupInstrument, units.Dimensionless, units.New(0.80, units.None), rng(1e-6, 1)},
	{ParamEtaIll, GroupInstrument, units.Dimensionless, units.New(0.80, units.None), rng(1e-6, 1)},
	{ParamEtaQ, GroupInstrument, units.Dimensionless, units.New(0.96, units.None), rng(1e-6, 1)},
	{ParamEtaSpill, GroupInstrument, units.Dimensionless, units.New(0.95, units.None), rng(1e-6, 1)},
	{ParamEtaBlock, GroupInstrument, units.Dimensionless, units.New(0.94, units.None), rng(1e-6, 1)},
	{ParamEtaPol, GroupInstrument, units.Dimensionless, units.New(0.99, units.None), rng(1e-6, 1)},
	{ParamEtaR, GroupInstrument, units.Dimensionless, units.New(1, units.None), rng(1e-6, 1)},
	{ParamTCmb, GroupFixed, units.Temperature, units.New(2.73, units.Kelvin), nil},
}

var specsByName = func() map[string]*ParameterSpec {
	m := make(map[string]*ParameterSpec, len(parameterSpecs))
	for i := range parameterSpecs {
		m[parameterSpecs[i].Name] = &parameterSpecs[i]
	}
	return m
}()

// SpecFor returns the registered spec for a parameter name, or an
// *UnknownParameterError if the name is not part of the registry.
func SpecFor(name string) (*ParameterSpec, error) {
	spec, ok := specsByName[name]
	if !ok {
		return nil, &UnknownParameterError{Name: name}
	}
	return spec, nil
}

// AllSpecs returns the registry in presentation order. The slice is shared;
// callers must not modify it.
func AllSpecs() []ParameterSpec { return parameterSpecs }
