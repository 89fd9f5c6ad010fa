package prometheus

import (
	"sync"
	"time"

	"buyer-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultPrefix = "buyer_service"

// Metric vectors, named under the configured prefix by InitMetrics. They are
// built eagerly under the default prefix so recording code works before (and
// without) registration.
var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authorization metrics
	AuthErrorsCounter *prometheus.CounterVec

	// Resource operation metrics
	BuyerOperationsCounter   *prometheus.CounterVec
	ProductOperationsCounter *prometheus.CounterVec

	// Listing cache metrics
	CacheHitCounter          *prometheus.CounterVec
	CacheMissCounter         *prometheus.CounterVec
	CacheInvalidationCounter *prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec
)

func init() {
	buildMetrics(defaultPrefix)
}

func buildMetrics(prefix string) {
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of denied or failed authorizations",
		},
		[]string{"reason"},
	)

	BuyerOperationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_buyer_operations_total",
			Help: "Total number of buyer operations",
		},
		[]string{"operation"},
	)

	ProductOperationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation"},
	)

	CacheHitCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cache_hits_total",
			Help: "Total number of listing cache hits",
		},
		[]string{"tag"},
	)

	CacheMissCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cache_misses_total",
			Help: "Total number of listing cache misses",
		},
		[]string{"tag"},
	)

	CacheInvalidationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cache_invalidations_total",
			Help: "Total number of tag invalidations",
		},
		[]string{"tag"},
	)

	DbOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
}

var registerOnce sync.Once

// InitMetrics names the service metrics under the configured prefix and
// registers them with the default registry.
func InitMetrics(cfg *config.Config) {
	registerOnce.Do(func() {
		if cfg.Metrics.Prefix != defaultPrefix {
			buildMetrics(cfg.Metrics.Prefix)
		}
		prometheus.MustRegister(
			HttpRequestsTotal,
			HttpRequestDuration,
			AuthErrorsCounter,
			BuyerOperationsCounter,
			ProductOperationsCounter,
			CacheHitCounter,
			CacheMissCounter,
			CacheInvalidationCounter,
			DbOperationDuration,
		)
	})
}

// RecordAuthError increments the auth error counter for the given reason
func RecordAuthError(reason string) {
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordBuyerOperation increments the buyer operation counter
func RecordBuyerOperation(operation string) {
	BuyerOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordProductOperation increments the product operation counter
func RecordProductOperation(operation string) {
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// TrackDBOperation returns a function that records the duration of a database
// operation when called: defer TrackDBOperation("query")(time.Now())
func TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		DbOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
