package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vplay_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vplay_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vplay_slot_reservations_total",
			Help: "Slot reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	SlotsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vplay_slots_created_total",
			Help: "Total number of slots created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vplay_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vplay_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vplay_payments_recorded_total",
			Help: "Total number of simulated payments recorded",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordReservation outcomes: won, conflict, not_found, error.
func RecordReservation(outcome string) {
	ReservationsTotal.WithLabelValues(outcome).Inc()
}

func RecordSlotsCreated(n int) {
	SlotsCreatedTotal.Add(float64(n))
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordPayment() {
	PaymentsRecordedTotal.Inc()
}
