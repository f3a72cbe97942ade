// Package metrics registers the Prometheus collectors used by the service:
// HTTP request counters and latencies plus database connection pool gauges.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors.
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge
}

// New registers the collectors on the default registry.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_open_connections", Help: "Open database connections.", ConstLabels: labels,
		}),
		dbInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_in_use_connections", Help: "Database connections in use.", ConstLabels: labels,
		}),
		dbIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_idle_connections", Help: "Idle database connections.", ConstLabels: labels,
		}),
		dbWaitCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_wait_count_total", Help: "Total connections waited for.", ConstLabels: labels,
		}),
	}
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records one completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// StartPoolStatsCollector polls db.Stats until stop is closed.
func (m *Metrics) StartPoolStatsCollector(db *sql.DB, interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.dbOpenConnections.Set(float64(stats.OpenConnections))
				m.dbInUse.Set(float64(stats.InUse))
				m.dbIdle.Set(float64(stats.Idle))
				m.dbWaitCount.Set(float64(stats.WaitCount))
			}
		}
	}()
}
