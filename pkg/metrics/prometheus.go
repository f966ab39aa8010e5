// Package metrics provides Prometheus metrics for the frontoffice engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the frontoffice service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Simulation Metrics
	weeksAdvanced     prometheus.Counter
	matchesSimulated  prometheus.Counter
	decisionsDrawn    prometheus.Counter
	decisionsResolved prometheus.Counter
	athletesRetired   prometheus.Counter
	managersConverted prometheus.Counter
	academyGraduates  prometheus.Counter
	advanceLatency    prometheus.Histogram

	// World State Gauges
	currentWeek     prometheus.Gauge
	currentYear     prometheus.Gauge
	cashBalance     prometheus.Gauge
	reputation      prometheus.Gauge
	athleteCount    prometheus.Gauge
	franchiseCount  prometheus.Gauge
	loanOutstanding prometheus.Gauge
	pendingDecision prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "frontoffice",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	// Core Simulation Metrics
	m.weeksAdvanced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "weeks_advanced_total",
		Help:      "Total number of weekly turns the engine has processed",
	})

	m.matchesSimulated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_simulated_total",
		Help:      "Total number of fixtures resolved by the match simulator",
	})

	m.decisionsDrawn = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "decisions_drawn_total",
		Help:      "Total number of life-event decisions drawn for clients",
	})

	m.decisionsResolved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "decisions_resolved_total",
		Help:      "Total number of pending decisions resolved by the caller",
	})

	m.athletesRetired = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "athletes_retired_total",
		Help:      "Total number of athletes who reached retirement",
	})

	m.managersConverted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "managers_converted_total",
		Help:      "Total number of retiring athletes converted into managers",
	})

	m.academyGraduates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "academy_graduates_total",
		Help:      "Total number of homegrown athletes produced by academies",
	})

	m.advanceLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "advance_latency_milliseconds",
		Help:      "Histogram of weekly advance computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// World State Gauges
	m.currentWeek = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "current_week",
		Help:      "Current in-game week (1-52)",
	})

	m.currentYear = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "current_year",
		Help:      "Current in-game year",
	})

	m.cashBalance = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cash_balance",
		Help:      "Agency cash balance (negative values signal impending bankruptcy)",
	})

	m.reputation = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reputation",
		Help:      "Agency reputation scalar",
	})

	m.athleteCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "athlete_count",
		Help:      "Total number of athletes in the world, including retired",
	})

	m.franchiseCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "franchise_count",
		Help:      "Total number of franchises in the league",
	})

	m.loanOutstanding = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "loan_outstanding",
		Help:      "Sum of outstanding loan balances",
	})

	m.pendingDecision = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pending_decision",
		Help:      "1 when a life-event decision is blocking week advancement, else 0",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics
	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total errors by endpoint, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total errors by type and severity",
		},
		[]string{"error_type", "severity"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of operations that resulted in an error",
			Buckets:   m.histogramBuckets,
		},
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Core Simulation Metrics Functions.

// RecordWeekAdvanced increments the weekly-turn counter.
func RecordWeekAdvanced() {
	globalManager.weeksAdvanced.Inc()
}

// RecordMatchSimulated increments the fixture counter.
func RecordMatchSimulated() {
	globalManager.matchesSimulated.Inc()
}

// RecordDecisionDrawn increments the drawn-decision counter.
func RecordDecisionDrawn() {
	globalManager.decisionsDrawn.Inc()
}

// RecordDecisionResolved increments the resolved-decision counter.
func RecordDecisionResolved() {
	globalManager.decisionsResolved.Inc()
}

// RecordAthleteRetired increments the retirement counter.
func RecordAthleteRetired() {
	globalManager.athletesRetired.Inc()
}

// RecordManagerConverted increments the athlete-to-manager conversion counter.
func RecordManagerConverted() {
	globalManager.managersConverted.Inc()
}

// RecordAcademyGraduate increments the homegrown-athlete counter.
func RecordAcademyGraduate() {
	globalManager.academyGraduates.Inc()
}

// RecordAdvanceLatency records how long one weekly advance took.
func RecordAdvanceLatency(latencyMs float64) {
	globalManager.advanceLatency.Observe(latencyMs)
}

// World State Gauge Functions.

// UpdateClock sets the current in-game week and year.
func UpdateClock(week, year int) {
	globalManager.currentWeek.Set(float64(week))
	globalManager.currentYear.Set(float64(year))
}

// UpdateCashBalance sets the agency cash gauge.
func UpdateCashBalance(cash float64) {
	globalManager.cashBalance.Set(cash)
}

// UpdateReputation sets the agency reputation gauge.
func UpdateReputation(rep float64) {
	globalManager.reputation.Set(rep)
}

// UpdateAthleteCount sets the world athlete count.
func UpdateAthleteCount(count int) {
	globalManager.athleteCount.Set(float64(count))
}

// UpdateFranchiseCount sets the league franchise count.
func UpdateFranchiseCount(count int) {
	globalManager.franchiseCount.Set(float64(count))
}

// UpdateLoanOutstanding sets the total outstanding loan balance.
func UpdateLoanOutstanding(total float64) {
	globalManager.loanOutstanding.Set(total)
}

// UpdatePendingDecision flags whether a decision is blocking advancement.
func UpdatePendingDecision(pending bool) {
	if pending {
		globalManager.pendingDecision.Set(1)
		return
	}
	globalManager.pendingDecision.Set(0)
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request with labels.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// Error Metrics Functions.

// RecordErrorByEndpoint records an error with endpoint, method and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
