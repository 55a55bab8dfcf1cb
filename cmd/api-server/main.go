package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/signalsfoundry/sensitivity-calculator/core"
	"github.com/signalsfoundry/sensitivity-calculator/internal/api"
	"github.com/signalsfoundry/sensitivity-calculator/internal/logging"
	"github.com/signalsfoundry/sensitivity-calculator/internal/observability"
)

func main() {
	addr := flag.String("addr", ":8080", "TCP address the API server listens on")
	instrumentPath := flag.String("instrument", "", "Path to an instrument setup file (YAML/JSON/TOML); empty uses registry defaults")
	rps := flag.Float64("rps", 50, "API rate limit in requests per second; 0 disables limiting")
	burst := flag.Int("burst", 100, "API rate limiter burst size")
	flag.Parse()

	// .env is optional; absent files are fine.
	_ = godotenv.Load()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	collector, err := observability.NewAPICollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.Err(err))
		os.Exit(1)
	}

	var instrument map[string]core.RawValue
	if *instrumentPath != "" {
		instrument, err = core.LoadRawValues(*instrumentPath)
		if err != nil {
			log.Error(ctx, "failed to load instrument setup", logging.String("path", *instrumentPath), logging.Err(err))
			os.Exit(1)
		}
		log.Info(ctx, "loaded instrument setup", logging.String("path", *instrumentPath), logging.Int("params", len(instrument)))
	}

	// Fail fast if the instrument setup cannot produce a working calculator.
	if _, err := core.NewCalculator(nil, instrument); err != nil {
		log.Error(ctx, "instrument setup rejected", logging.Err(err))
		os.Exit(1)
	}

	server := api.NewServer(api.Config{
		InstrumentSetup:   instrument,
		RequestsPerSecond: *rps,
		Burst:             *burst,
	}, log, collector)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info(ctx, "starting sensitivity API server", logging.String("addr", *addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "API server exited", logging.Err(err))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
