package core

import (
	"errors"
	"math"
	"testing"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

func newDefaultCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(nil, nil)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

func TestConstructionDerivesEverything(t *testing.T) {
	calc := newDefaultCalculator(t)
	d := calc.Derived()

	if d.TauAtm <= 0 {
		t.Errorf("TauAtm = %g, want > 0", d.TauAtm)
	}
	if d.TAtm.Value <= 0 {
		t.Errorf("TAtm = %g K, want > 0", d.TAtm.Value)
	}
	if d.EtaA <= 0 || d.EtaA > 1 {
		t.Errorf("EtaA = %g, want in (0, 1]", d.EtaA)
	}
	if d.EtaS <= 0 || d.EtaS > 1 {
		t.Errorf("EtaS = %g, want in (0, 1]", d.EtaS)
	}
	if d.TSys.Value <= 0 {
		t.Errorf("TSys = %g K, want > 0", d.TSys.Value)
	}
	if d.SEFD.SI() <= 0 {
		t.Errorf("SEFD = %g, want > 0", d.SEFD.SI())
	}
	wantArea := math.Pi * 25 * 25
	if math.Abs(d.DishArea-wantArea) > 1e-9 {
		t.Errorf("DishArea = %g m^2, want %g m^2", d.DishArea, wantArea)
	}
}

func TestDefaultLineOfSightOpacity(t *testing.T) {
	// 100 GHz, weather 50, elevation 30 deg: zenith tau 0.0377 over two
	// airmasses.
	calc := newDefaultCalculator(t)
	want := 0.0377 / math.Cos(60*math.Pi/180)
	if got := calc.Derived().TauAtm; math.Abs(got-want) > 1e-9 {
		t.Errorf("default TauAtm = %g, want %g", got, want)
	}
}

func TestSettersRederiveAtomically(t *testing.T) {
	calc := newDefaultCalculator(t)
	before := calc.Derived()

	if err := calc.SetWeather(units.New(100, units.None)); err != nil {
		t.Fatalf("SetWeather: %v", err)
	}
	after := calc.Derived()
	if after.TauAtm <= before.TauAtm {
		t.Errorf("worse weather lowered opacity: %g -> %g", before.TauAtm, after.TauAtm)
	}
	if after.TSys.Value <= before.TSys.Value {
		t.Errorf("worse weather lowered T_sys: %g -> %g", before.TSys.Value, after.TSys.Value)
	}
}

func TestRejectedSetterLeavesStateUntouched(t *testing.T) {
	calc := newDefaultCalculator(t)
	before := calc.Derived()

	err := calc.SetElevation(units.New(120, units.Degree))
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("SetElevation(120 deg) error = %v, want *RangeError", err)
	}
	if calc.Derived() != before {
		t.Error("derived parameters changed after rejected setter")
	}
}

func TestResetRestoresDerivedParametersExactly(t *testing.T) {
	calc := newDefaultCalculator(t)
	before := calc.Derived()
	sensBefore, err := calc.CalculateSensitivity(nil, false)
	if err != nil {
		t.Fatalf("CalculateSensitivity: %v", err)
	}

	if err := calc.SetBandwidth(units.New(1, units.Gigahertz)); err != nil {
		t.Fatalf("SetBandwidth: %v", err)
	}
	if err := calc.SetObsFreq(units.New(650, units.Gigahertz)); err != nil {
		t.Fatalf("SetObsFreq: %v", err)
	}
	if calc.Derived() == before {
		t.Fatal("mutations did not change derived parameters; test is vacuous")
	}

	if err := calc.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if calc.Derived() != before {
		t.Error("derived parameters after reset differ from pre-mutation values")
	}
	sensAfter, err := calc.CalculateSensitivity(nil, false)
	if err != nil {
		t.Fatalf("CalculateSensitivity after reset: %v", err)
	}
	if sensAfter.Value != sensBefore.Value {
		t.Errorf("sensitivity after reset = %g, want %g", sensAfter.Value, sensBefore.Value)
	}
}

func TestCalculateSensitivityWriteback(t *testing.T) {
	calc := newDefaultCalculator(t)

	got, err := calc.CalculateSensitivity(nil, true)
	if err != nil {
		t.Fatalf("CalculateSensitivity: %v", err)
	}
	if stored := calc.Sensitivity(); stored != got {
		t.Errorf("stored sensitivity = %v, want written-back result %v", stored, got)
	}
}

func TestCalculateSensitivityWithoutWriteback(t *testing.T) {
	calc := newDefaultCalculator(t)
	storedBefore := calc.Sensitivity()

	if _, err := calc.CalculateSensitivity(nil, false); err != nil {
		t.Fatalf("CalculateSensitivity: %v", err)
	}
	if calc.Sensitivity() != storedBefore {
		t.Error("update_calculator=false still mutated the stored sensitivity")
	}
}

func TestCalculateSensitivityOverride(t *testing.T) {
	calc := newDefaultCalculator(t)

	base, err := calc.CalculateSensitivity(nil, false)
	if err != nil {
		t.Fatalf("CalculateSensitivity(stored): %v", err)
	}
	longT := units.New(280, units.Second) // 4x the stored 70 s
	deeper, err := calc.CalculateSensitivity(&longT, false)
	if err != nil {
		t.Fatalf("CalculateSensitivity(override): %v", err)
	}
	// Sensitivity improves with sqrt(t): 4x time halves the noise.
	if math.Abs(deeper.Value-base.Value/2) > 1e-12*base.Value {
		t.Errorf("sensitivity(280 s) = %g, want half of sensitivity(70 s) = %g", deeper.Value, base.Value/2)
	}
}

func TestCalculatorRoundTrip(t *testing.T) {
	calc, err := NewCalculator(map[string]RawValue{
		"t_int":       {Value: 0, Unit: "s"},
		"sensitivity": {Value: 0.5, Unit: "mJy"},
		"obs_freq":    {Value: 345, Unit: "GHz"},
	}, nil)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	tInt, err := calc.CalculateTIntegration(nil, true)
	if err != nil {
		t.Fatalf("CalculateTIntegration: %v", err)
	}
	back, err := calc.CalculateSensitivity(&tInt, false)
	if err != nil {
		t.Fatalf("CalculateSensitivity: %v", err)
	}
	wantJy := 0.5e-3
	backJy, err := back.To(units.Jansky)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if math.Abs(backJy.Value-wantJy) > 0.01*wantJy {
		t.Errorf("round trip sensitivity = %g Jy, want %g Jy within 1%%", backJy.Value, wantJy)
	}
}

func TestSnapshotIncludesDerivedValues(t *testing.T) {
	calc := newDefaultCalculator(t)
	snap := calc.Snapshot()

	for _, key := range []string{"tau_atm", "T_atm", "eta_a", "eta_s", "T_sys", "sefd", "area", "obs_freq", "T_cmb"} {
		if _, ok := snap[key]; !ok {
			t.Errorf("snapshot missing %q", key)
		}
	}
	if snap["T_sys"].Unit != units.Kelvin {
		t.Errorf("snapshot T_sys unit = %q, want K", snap["T_sys"].Unit.Name())
	}
}
