package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/signalsfoundry/sensitivity-calculator/core"
	"github.com/signalsfoundry/sensitivity-calculator/internal/logging"
	"github.com/signalsfoundry/sensitivity-calculator/internal/observability"
	"golang.org/x/time/rate"
)

// Config carries the server's wiring inputs.
type Config struct {
	// InstrumentSetup overrides instrument parameters for this deployment;
	// nil means registry defaults.
	InstrumentSetup map[string]core.RawValue
	// RequestsPerSecond and Burst size the shared API rate limiter.
	// Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
}

// Server exposes the sensitivity calculator over HTTP. Each calculation
// request builds its own Calculator instance, so no mutable state is
// shared between requests.
type Server struct {
	router     *mux.Router
	log        logging.Logger
	collector  *observability.APICollector
	limiter    *rate.Limiter
	instrument map[string]core.RawValue
}

// NewServer wires the routes, middleware, and metrics for the API surface.
func NewServer(cfg Config, log logging.Logger, collector *observability.APICollector) *Server {
	if log == nil {
		log = logging.Noop()
	}

	s := &Server{
		log:        log,
		collector:  collector,
		instrument: cfg.InstrumentSetup,
	}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	r := mux.NewRouter()
	s.route(r, "/v1/sensitivity", http.MethodPost, s.handleSensitivity)
	s.route(r, "/v1/integration-time", http.MethodPost, s.handleIntegrationTime)
	s.route(r, "/v1/param-values-units", http.MethodGet, s.handleParamValuesUnits)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	if collector != nil {
		r.Handle("/metrics", collector.Handler()).Methods(http.MethodGet)
	}
	s.router = r
	return s
}

// route installs one handler with the standard middleware chain:
// request logging, rate limiting, then per-route metrics.
func (s *Server) route(r *mux.Router, path, method string, h http.HandlerFunc) {
	var handler http.Handler = h
	handler = s.collector.Middleware(path, handler)
	handler = rateLimitMiddleware(s.limiter, s.collector, handler)
	handler = requestLogMiddleware(s.log, handler)
	r.Handle(path, handler).Methods(method)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
