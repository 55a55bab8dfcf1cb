package core

import (
	"math"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// AtmosphereModel derives line-of-sight atmospheric opacity and atmospheric
// brightness temperature from the embedded zenith tables. Lookups
// interpolate bilinearly between the neighbouring frequency and weather
// buckets; inputs outside the tabulated grid are a hard *DomainError*, not
// clamped, since the tables bound the physical approximation.
type AtmosphereModel struct {
	zenithRad  float64
	tauZenith  float64
	skyTempKel float64
}

// NewAtmosphereModel resolves the model for one observation geometry.
// obsFreq must be a frequency, weather a 0-100 dimensionless percentile,
// and elevation an angle above the horizon.
func NewAtmosphereModel(obsFreq, weather, elevation units.Quantity) (*AtmosphereModel, error) {
	freqGHz, err := obsFreq.To(units.Gigahertz)
	if err != nil {
		return nil, err
	}
	if weather.Unit.Dimension() != units.Dimensionless {
		return nil, &units.UnitError{
			Unit: weather.Unit.Name(),
			Want: units.Dimensionless,
			Got:  weather.Unit.Dimension(),
		}
	}
	elevDeg, err := elevation.To(units.Degree)
	if err != nil {
		return nil, err
	}

	tau, err := interpolateAtmTable(zenithOpacityTable, freqGHz.Value, weather.Value)
	if err != nil {
		return nil, err
	}
	tSky, err := interpolateAtmTable(skyTemperatureTable, freqGHz.Value, weather.Value)
	if err != nil {
		return nil, err
	}

	zenithDeg := 90 - elevDeg.Value
	return &AtmosphereModel{
		zenithRad:  zenithDeg * math.Pi / 180,
		tauZenith:  tau,
		skyTempKel: tSky,
	}, nil
}

// TauAtm returns the dimensionless optical depth along the line of sight:
// the zenith opacity stretched by the secant of the zenith angle.
func (a *AtmosphereModel) TauAtm() float64 {
	return a.tauZenith / math.Cos(a.zenithRad)
}

// TAtm returns the atmospheric brightness temperature.
func (a *AtmosphereModel) TAtm() units.Quantity {
	return units.New(a.skyTempKel, units.Kelvin)
}

// interpolateAtmTable bilinearly interpolates one of the embedded tables at
// (freqGHz, weather). Column 0 of each row is the frequency axis.
func interpolateAtmTable(table [][]float64, freqGHz, weather float64) (float64, error) {
	minFreq := table[0][0]
	maxFreq := table[len(table)-1][0]
	if freqGHz < minFreq || freqGHz > maxFreq {
		return 0, &DomainError{
			Op:     "atmosphere lookup",
			Reason: "observing frequency outside tabulated range",
		}
	}
	minW := atmWeatherGrid[0]
	maxW := atmWeatherGrid[len(atmWeatherGrid)-1]
	if weather < minW || weather > maxW {
		return 0, &DomainError{
			Op:     "atmosphere lookup",
			Reason: "weather percentile outside tabulated range",
		}
	}

	row := searchAxis(len(table), func(i int) float64 { return table[i][0] }, freqGHz)
	col := searchAxis(len(atmWeatherGrid), func(i int) float64 { return atmWeatherGrid[i] }, weather)

	f0, f1 := table[row][0], table[row+1][0]
	w0, w1 := atmWeatherGrid[col], atmWeatherGrid[col+1]
	tf := (freqGHz - f0) / (f1 - f0)
	tw := (weather - w0) / (w1 - w0)

	// Weather values start at column 1; column 0 is the frequency axis.
	v00 := table[row][col+1]
	v01 := table[row][col+2]
	v10 := table[row+1][col+1]
	v11 := table[row+1][col+2]

	lo := v00 + (v01-v00)*tw
	hi := v10 + (v11-v10)*tw
	return lo + (hi-lo)*tf, nil
}

// searchAxis returns the index of the bucket [axis(i), axis(i+1)] that
// contains v, with the last bucket covering the upper boundary.
func searchAxis(n int, axis func(int) float64, v float64) int {
	for i := 0; i < n-1; i++ {
		if v < axis(i+1) {
			return i
		}
	}
	return n - 2
}
