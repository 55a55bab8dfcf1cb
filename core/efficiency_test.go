package core

import (
	"math"
	"testing"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

func TestEtaAPerfectSurface(t *testing.T) {
	eta := Efficiencies{Ill: 0.8}
	got, err := eta.EtaA(units.New(500, units.Gigahertz), units.New(0, units.Micron))
	if err != nil {
		t.Fatalf("EtaA: %v", err)
	}
	if got != 0.8 {
		t.Errorf("EtaA with zero surface rms = %g, want eta_ill = 0.8", got)
	}
}

func TestEtaARuzeReference(t *testing.T) {
	// 25 micron rms at 500 GHz (0.5996 mm wavelength):
	// eta_a = 0.8 * exp(-(4*pi*25e-6/lambda)^2) = 0.60794.
	eta := Efficiencies{Ill: 0.8}
	got, err := eta.EtaA(units.New(500, units.Gigahertz), units.New(25, units.Micron))
	if err != nil {
		t.Fatalf("EtaA: %v", err)
	}
	want := 0.6079400836096389
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EtaA = %.16g, want %.16g", got, want)
	}
}

func TestEtaAIndependentOfInputUnits(t *testing.T) {
	eta := Efficiencies{Ill: 0.8}
	inMicron, err := eta.EtaA(units.New(500, units.Gigahertz), units.New(25, units.Micron))
	if err != nil {
		t.Fatalf("EtaA(25 micron): %v", err)
	}
	inMM, err := eta.EtaA(units.New(500000, units.Megahertz), units.New(0.025, units.Millimetre))
	if err != nil {
		t.Fatalf("EtaA(0.025 mm): %v", err)
	}
	if math.Abs(inMicron-inMM) > 1e-15 {
		t.Errorf("EtaA differs across equivalent units: %g vs %g", inMicron, inMM)
	}
}

func TestEtaSProduct(t *testing.T) {
	eta := Efficiencies{Spill: 0.95, Block: 0.94, Pol: 0.99, Rad: 1}
	want := 0.95 * 0.94 * 0.99
	if got := eta.EtaS(); math.Abs(got-want) > 1e-15 {
		t.Errorf("EtaS = %g, want %g", got, want)
	}
}

func TestEtaSIncludesQuantizationWhenConfigured(t *testing.T) {
	withoutQ := Efficiencies{Spill: 0.95, Block: 0.94, Pol: 0.99, Rad: 1}
	withQ := withoutQ
	withQ.Quant = 0.96
	if got, want := withQ.EtaS(), withoutQ.EtaS()*0.96; math.Abs(got-want) > 1e-15 {
		t.Errorf("EtaS with quantization = %g, want %g", got, want)
	}
}
