package api

import (
	"net/http"
	"time"

	"github.com/signalsfoundry/sensitivity-calculator/internal/logging"
	"github.com/signalsfoundry/sensitivity-calculator/internal/observability"
	"golang.org/x/time/rate"
)

// requestLogMiddleware attaches a request ID to the context and logs one
// line per request.
func requestLogMiddleware(log logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, reqLog := logging.WithRequestLogger(r.Context(), log)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		reqLog.Info(ctx, "request handled",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.String("duration", time.Since(start).String()),
		)
	})
}

// rateLimitMiddleware applies one shared token-bucket limiter to the whole
// API surface, answering 429 when the bucket is empty.
func rateLimitMiddleware(limiter *rate.Limiter, collector *observability.APICollector, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter != nil && !limiter.Allow() {
			collector.ObserveRateLimited()
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Detail: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
