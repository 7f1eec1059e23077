// Package metrics метрики Prometheus для HTTP и бизнес-событий
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal   prometheus.Counter
	BookingsCancelledTotal prometheus.Counter
	BookingsUpdatedTotal   prometheus.Counter
	BookingConflictsTotal  prometheus.Counter
}

// New регистрирует метрики сервиса в глобальном регистре
func New(serviceName string) *Metrics {
	return NewWith(prometheus.DefaultRegisterer, serviceName)
}

// NewWith регистрирует метрики сервиса в переданном регистре
// В тестах используется отдельный prometheus.NewRegistry, чтобы повторная
// регистрация не падала
func NewWith(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: labels,
		}),

		BookingsCancelledTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of bookings cancelled",
			ConstLabels: labels,
		}),

		BookingsUpdatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_updated_total",
			Help:        "Total number of bookings updated",
			ConstLabels: labels,
		}),

		BookingConflictsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of booking requests rejected due to slot conflicts",
			ConstLabels: labels,
		}),
	}
}
