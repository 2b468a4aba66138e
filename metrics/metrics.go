package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// HTTPRequestsTotal counts handled requests by route, method and status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketecho",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, labeled by route, method and status.",
	}, []string{"route", "method", "status"})

	// HTTPRequestDurationSeconds is the time spent in the handler chain.
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marketecho",
		Subsystem: "api",
		Name:      "http_request_duration_seconds",
		Help:      "Time to serve an HTTP request, labeled by route and method.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"route", "method"})

	// BrandLookupsTotal counts brand lookups by result (found, not_found, bad_request).
	BrandLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketecho",
		Subsystem: "brands",
		Name:      "lookups_total",
		Help:      "Total number of brand lookups, labeled by result.",
	}, []string{"result"})

	// DatasetBrands is the number of brands in the loaded dataset.
	DatasetBrands = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "marketecho",
		Subsystem: "brands",
		Name:      "dataset_brands",
		Help:      "Number of brands in the loaded dataset (0 when the dataset failed to load).",
	})

	// DatasetLoadErrorsTotal counts failed dataset loads.
	DatasetLoadErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "marketecho",
		Subsystem: "brands",
		Name:      "dataset_load_errors_total",
		Help:      "Total number of dataset load failures.",
	})

	// SuggestionsTotal counts suggestion requests by outcome.
	SuggestionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketecho",
		Subsystem: "suggestions",
		Name:      "requests_total",
		Help:      "Total number of suggestion requests, labeled by outcome (fallback, generated, parse_error, unavailable).",
	}, []string{"outcome"})
)

// Register registers API metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			BrandLookupsTotal,
			DatasetBrands,
			DatasetLoadErrorsTotal,
			SuggestionsTotal,
		)
	})
}
