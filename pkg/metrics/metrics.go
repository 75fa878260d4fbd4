package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors exposed by the service
type Metrics struct {
	service string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	LedgerCallsTotal   *prometheus.CounterVec
	LedgerCallDuration *prometheus.HistogramVec

	BookingsTotal         prometheus.Counter
	BookingRollbacksTotal prometheus.Counter
}

// New registers and returns the service collectors
func New(serviceName string) *Metrics {
	return &Metrics{
		service: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		LedgerCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_calls_total",
			Help: "Total number of spreadsheet ledger calls",
		}, []string{"service", "operation", "status"}),

		LedgerCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_call_duration_seconds",
			Help:    "Spreadsheet ledger call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service", "operation"}),

		BookingsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total number of successfully persisted bookings",
		}),

		BookingRollbacksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "booking_rollbacks_total",
			Help: "Total number of reservations rolled back after a failed ledger write",
		}),
	}
}

// ObserveHTTP records one handled HTTP request
func (m *Metrics) ObserveHTTP(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

// BookingPersisted counts one successfully persisted booking
func (m *Metrics) BookingPersisted() {
	m.BookingsTotal.Inc()
}

// BookingRolledBack counts one compensating rollback
func (m *Metrics) BookingRolledBack() {
	m.BookingRollbacksTotal.Inc()
}

// ObserveLedgerCall records one ledger round trip
func (m *Metrics) ObserveLedgerCall(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.LedgerCallsTotal.WithLabelValues(m.service, operation, status).Inc()
	m.LedgerCallDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}
