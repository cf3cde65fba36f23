package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector of the service.
// All recording methods are safe on a nil *Metrics, which is what callers get when metrics are disabled.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AgendaReloads     *prometheus.CounterVec
	SnapshotChanges   prometheus.Counter
	Moves             *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
	CheckinAttempts   *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge

	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBWaitDurationTotal prometheus.Gauge
}

// New creates the collectors on a dedicated registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		AgendaReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_reloads_total",
			Help:        "Agenda reloads from the backend by trigger and result",
			ConstLabels: constLabels,
		}, []string{"trigger", "result"}),
		SnapshotChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "agenda_snapshot_changes_total",
			Help:        "Reloads whose snapshot hash differed from the previous one",
			ConstLabels: constLabels,
		}),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_moves_total",
			Help:        "Drag and drop reschedules by scope and result",
			ConstLabels: constLabels,
		}, []string{"scope", "result"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_status_transitions_total",
			Help:        "Quick status advances",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		CheckinAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_checkin_attempts_total",
			Help:        "Check-in preparation attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "agenda_active_sessions",
			Help:        "Agenda sessions currently held in memory",
			ConstLabels: constLabels,
		}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "db_open_connections", Help: "Open connections", ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "db_in_use_connections", Help: "Connections in use", ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "db_idle_connections", Help: "Idle connections", ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "db_wait_count", Help: "Connections waited for", ConstLabels: constLabels,
		}),
		DBWaitDurationTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "db_wait_duration_seconds", Help: "Total time blocked waiting for a connection", ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AgendaReloads,
		m.SnapshotChanges,
		m.Moves,
		m.StatusTransitions,
		m.CheckinAttempts,
		m.ActiveSessions,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
	)

	return m
}

// Handler exposes the registry for scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveReload records a reload and whether the snapshot changed
func (m *Metrics) ObserveReload(trigger string, err error, changed bool) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.AgendaReloads.WithLabelValues(trigger, result).Inc()
	if err == nil && changed {
		m.SnapshotChanges.Inc()
	}
}

// ObserveMove records a reschedule attempt
func (m *Metrics) ObserveMove(scope string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Moves.WithLabelValues(scope, result).Inc()
}

// ObserveTransition records a status advance
func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(from, to).Inc()
}

// ObserveCheckinAttempt records one check-in preparation attempt
func (m *Metrics) ObserveCheckinAttempt(result string) {
	if m == nil {
		return
	}
	m.CheckinAttempts.WithLabelValues(result).Inc()
}

// SetActiveSessions updates the session gauge
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}

// ObserveDBQuery records a query duration
func (m *Metrics) ObserveDBQuery(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}

// SetDBStats exports connection pool statistics
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBOpenConnections.Set(float64(stats.OpenConnections))
	m.DBInUseConnections.Set(float64(stats.InUse))
	m.DBIdleConnections.Set(float64(stats.Idle))
	m.DBWaitCount.Set(float64(stats.WaitCount))
	m.DBWaitDurationTotal.Set(stats.WaitDuration.Seconds())
}
