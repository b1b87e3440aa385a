package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the strategy tools

// Lookup results
const (
	LookupResolved    = "resolved"
	LookupAmbiguous   = "ambiguous"
	LookupNotFound    = "not_found"
	LookupSchemaError = "schema_error"
)

var (
	// Request metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ncaam_strategy_requests_total",
			Help: "Total number of analysis requests",
		},
		[]string{"operation", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ncaam_strategy_request_duration_seconds",
			Help:    "Duration of analysis requests in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"operation"},
	)

	// Team lookup metrics
	TeamLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ncaam_strategy_team_lookups_total",
			Help: "Total number of team name lookups by result",
		},
		[]string{"result"},
	)

	UnavailableRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaam_strategy_unavailable_records_total",
			Help: "Total number of resolved teams whose metrics could not be parsed",
		},
	)

	// Prediction metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ncaam_strategy_predictions_total",
			Help: "Total number of risk predictions by risk level",
		},
		[]string{"risk_level"},
	)

	// Table metrics
	TableRowsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ncaam_strategy_table_rows",
			Help: "Number of team rows in the loaded ratings table",
		},
	)

	TableLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ncaam_strategy_table_load_duration_seconds",
			Help:    "Duration of ratings table loads in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"source"},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaam_strategy_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaam_strategy_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ncaam_strategy_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// System metrics
	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ncaam_strategy_system_uptime_seconds",
			Help: "System uptime in seconds",
		},
	)
)

// RecordRequest records an analysis request
func RecordRequest(operation, status string, duration float64) {
	RequestsTotal.WithLabelValues(operation, status).Inc()
	RequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordLookup records a team lookup result
func RecordLookup(result string) {
	TeamLookupsTotal.WithLabelValues(result).Inc()
}

// RecordUnavailableRecord records a team whose metrics could not be parsed
func RecordUnavailableRecord() {
	UnavailableRecordsTotal.Inc()
}

// RecordPrediction records a risk prediction
func RecordPrediction(riskLevel string) {
	PredictionsTotal.WithLabelValues(riskLevel).Inc()
}

// RecordTableLoad records a ratings table load
func RecordTableLoad(source string, rows int, duration float64) {
	TableRowsLoaded.Set(float64(rows))
	TableLoadDuration.WithLabelValues(source).Observe(duration)
}

// RecordCacheHit records a cache hit
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
