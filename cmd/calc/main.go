package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/signalsfoundry/sensitivity-calculator/core"
	"github.com/signalsfoundry/sensitivity-calculator/internal/logging"
	"github.com/signalsfoundry/sensitivity-calculator/units"
)

func main() {
	inputPath := flag.String("input", "", "Path to a user input file (YAML/JSON/TOML); empty uses registry defaults")
	instrumentPath := flag.String("instrument", "", "Path to an instrument setup file; empty uses registry defaults")
	logPath := flag.String("log-output", "", "Optional path to write the full parameter snapshot to")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	userInput, err := loadOptional(*inputPath)
	if err != nil {
		log.Error(ctx, "failed to load user input", logging.Err(err))
		os.Exit(1)
	}
	instrument, err := loadOptional(*instrumentPath)
	if err != nil {
		log.Error(ctx, "failed to load instrument setup", logging.Err(err))
		os.Exit(1)
	}

	calc, err := core.NewCalculator(userInput, instrument)
	if err != nil {
		log.Error(ctx, "invalid calculation input", logging.Err(err))
		os.Exit(1)
	}

	// The unset one of {t_int, sensitivity} is the quantity to solve for.
	if calc.TInt().Value != 0 {
		sens, err := calc.CalculateSensitivity(nil, true)
		if err != nil {
			log.Error(ctx, "sensitivity calculation failed", logging.Err(err))
			os.Exit(1)
		}
		inMilli, _ := sens.To(units.Millijansky)
		fmt.Printf("Sensitivity: %.2f %s for an integration time of %s\n",
			inMilli.Value, inMilli.Unit.Name(), calc.TInt())
	} else {
		tInt, err := calc.CalculateTIntegration(nil, true)
		if err != nil {
			log.Error(ctx, "integration time calculation failed", logging.Err(err))
			os.Exit(1)
		}
		fmt.Printf("Integration time: %.2f s to obtain a sensitivity of %s\n",
			tInt.Value, calc.Sensitivity())
	}

	if *logPath != "" {
		if err := core.WriteSnapshot(*logPath, core.RawSnapshot(calc.Snapshot())); err != nil {
			log.Error(ctx, "failed to write parameter log", logging.Err(err))
			os.Exit(1)
		}
		log.Info(ctx, "wrote parameter log", logging.String("path", *logPath))
	}
}

func loadOptional(path string) (map[string]core.RawValue, error) {
	if path == "" {
		return nil, nil
	}
	return core.LoadRawValues(path)
}
