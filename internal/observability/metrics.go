package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APICollector bundles Prometheus metrics for the calculator API and
// provides helpers to wire them into HTTP handlers.
type APICollector struct {
	gatherer prometheus.Gatherer

	Requests     *prometheus.CounterVec
	Durations    *prometheus.HistogramVec
	Calculations *prometheus.CounterVec
	RateLimited  prometheus.Counter
}

// NewAPICollector registers the API Prometheus metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewAPICollector(reg prometheus.Registerer) (*APICollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "Total number of handled API requests, labeled by route, method, and HTTP status code.",
	}, []string{"route", "method", "code"})
	requests, err := registerCounterVec(reg, requests, "api_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "API request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"route"})
	durations, err = registerHistogramVec(reg, durations, "api_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calculations_total",
		Help: "Completed sensitivity/integration-time calculations, labeled by operation and outcome.",
	}, []string{"operation", "outcome"})
	calculations, err = registerCounterVec(reg, calculations, "calculations_total")
	if err != nil {
		return nil, err
	}

	rateLimited := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "api_rate_limited_total",
		Help: "Requests rejected by the API rate limiter.",
	})
	rateLimited, err = registerCounter(reg, rateLimited, "api_rate_limited_total")
	if err != nil {
		return nil, err
	}

	return &APICollector{
		gatherer:     gatherer,
		Requests:     requests,
		Durations:    durations,
		Calculations: calculations,
		RateLimited:  rateLimited,
	}, nil
}

// Middleware records request counts and durations for one named route.
func (c *APICollector) Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c == nil {
			return
		}
		if c.Requests != nil {
			c.Requests.WithLabelValues(route, r.Method, fmt.Sprintf("%d", rec.status)).Inc()
		}
		if c.Durations != nil {
			c.Durations.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	})
}

// ObserveCalculation counts one solve operation with its outcome.
func (c *APICollector) ObserveCalculation(operation string, err error) {
	if c == nil || c.Calculations == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.Calculations.WithLabelValues(operation, outcome).Inc()
}

// ObserveRateLimited counts one request rejected by the rate limiter.
func (c *APICollector) ObserveRateLimited() {
	if c == nil || c.RateLimited == nil {
		return
	}
	c.RateLimited.Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *APICollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
