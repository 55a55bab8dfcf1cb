package core

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// LoadRawValues reads a parameter file of `name: {value: .., unit: ..}`
// entries. Viper resolves the format from the file extension, so YAML,
// JSON, and TOML inputs all work. Values are returned unvalidated; the
// calculation-input merge performs all unit/range checking.
func LoadRawValues(path string) (map[string]RawValue, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read parameter file %s: %w", path, err)
	}

	decoded := make(map[string]RawValue)
	if err := v.Unmarshal(&decoded); err != nil {
		return nil, fmt.Errorf("parse parameter file %s: %w", path, err)
	}

	// Viper lowercases keys; map them back onto the registry's canonical
	// spelling (T_amb, T_rx, ...). Names with no canonical match pass
	// through unchanged and fail later as unknown parameters.
	out := make(map[string]RawValue, len(decoded))
	for name, raw := range decoded {
		out[canonicalParamName(name)] = raw
	}
	return out, nil
}

var lowerToCanonical = func() map[string]string {
	m := make(map[string]string, len(parameterSpecs))
	for i := range parameterSpecs {
		m[strings.ToLower(parameterSpecs[i].Name)] = parameterSpecs[i].Name
	}
	// Derived snapshot entries with mixed-case names round-trip too.
	for _, name := range []string{"T_atm", "T_sys"} {
		m[strings.ToLower(name)] = name
	}
	return m
}()

func canonicalParamName(name string) string {
	if canonical, ok := lowerToCanonical[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

// RawSnapshot converts a quantity snapshot into the {value, unit} wire
// shape used by parameter files and the HTTP API.
func RawSnapshot(snapshot map[string]units.Quantity) map[string]RawValue {
	out := make(map[string]RawValue, len(snapshot))
	for name, q := range snapshot {
		out[name] = RawValue{Value: q.Value, Unit: q.Unit.Name()}
	}
	return out
}

// WriteSnapshot writes a flat parameter snapshot to path in the same
// `name : {value: .., unit: ..}` layout the loader reads, with keys
// sorted for stable output.
func WriteSnapshot(path string, snapshot map[string]RawValue) error {
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		raw := snapshot[name]
		unit := raw.Unit
		if unit == "" {
			unit = "none"
		}
		fmt.Fprintf(&b, "%-16s: {value: %12g, unit: %s}\n", name, raw.Value, unit)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write parameter log %s: %w", path, err)
	}
	return nil
}
