package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the API's prometheus instruments. Pass nil to NewMetrics
// in tests to get a registry that is never scraped.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	LoginsTotal     *prometheus.CounterVec
	AuthFailures    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hr_api_request_duration_seconds",
			Help:    "Histogram of request latencies.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "status"}),

		RequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hr_api_requests_total",
			Help: "Total number of processed HTTP requests.",
		}, []string{"method", "status"}),

		LoginsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hr_api_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}), // outcomes: success, denied, error

		AuthFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hr_api_auth_failures_total",
			Help: "Bearer credentials rejected by the authorizer.",
		}),
	}
}
