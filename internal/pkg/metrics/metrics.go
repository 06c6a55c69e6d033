// Package metrics holds the Prometheus collectors shared by the HTTP layer and the services.
// Label sets are kept small so cardinality stays bounded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequests counts requests by method, chi route pattern, and status code.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPLatency records request duration in seconds by method and route pattern.
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// HTTPInflight gauges the number of requests currently being served.
	HTTPInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	// ConfigCacheRefreshes counts snapshot reloads of the system config cache by result (ok, error).
	ConfigCacheRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "config_cache_refresh_total",
			Help: "System config cache refreshes from the backing store.",
		},
		[]string{"result"},
	)

	// SeriesPointFailures counts chart points that degraded to zero because their query failed.
	SeriesPointFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "attendance_series_point_failures_total",
			Help: "Attendance series points that could not be computed.",
		},
	)

	// EmployeeIDAllocations counts allocator outcomes by role class and result.
	EmployeeIDAllocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "employee_id_allocations_total",
			Help: "Employee id allocations by role class and result.",
		},
		[]string{"role", "result"},
	)

	// CronJobRuns counts scheduled job executions by job name and result (ok, error).
	CronJobRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cron_job_runs_total",
			Help: "Scheduled job runs.",
		},
		[]string{"job", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPLatency,
		HTTPInflight,
		ConfigCacheRefreshes,
		SeriesPointFailures,
		EmployeeIDAllocations,
		CronJobRuns,
	)
}
