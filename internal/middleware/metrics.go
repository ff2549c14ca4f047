package middleware

import (
	"net/http"
	"strconv"
	"time"

	"hr-dashboard-api/internal/metrics"
)

// Instrument records request counts and latency. It shares the status
// tracking wrapper with the logging middleware.
func Instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			started := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			status := strconv.Itoa(wrapped.status)
			m.RequestsTotal.WithLabelValues(r.Method, status).Inc()
			m.RequestDuration.WithLabelValues(r.Method, status).Observe(time.Since(started).Seconds())
		})
	}
}
