package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driveslot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "driveslot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driveslot_reservations_total",
			Help: "Total number of slot reservation attempts",
		},
		[]string{"result", "payment_method"},
	)

	ReservationConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "driveslot_reservation_conflicts_total",
			Help: "Reservation attempts rejected because the slot was already taken",
		},
	)

	ExpiredReservationsReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "driveslot_expired_reservations_released_total",
			Help: "Pending reservations reverted to available by the TTL sweeper",
		},
	)

	PaymentConfirmationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driveslot_payment_confirmations_total",
			Help: "Payment confirmation outcomes applied to orders",
		},
		[]string{"result"},
	)

	SSESubscribers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "driveslot_sse_subscribers",
			Help: "Currently connected SSE subscribers",
		},
		[]string{"stream"},
	)

	SSEEventsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driveslot_sse_events_sent_total",
			Help: "SSE events pushed to clients",
		},
		[]string{"stream", "type"},
	)

	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driveslot_cart_operations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"operation"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driveslot_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "driveslot_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordReservation(result, paymentMethod string) {
	ReservationsTotal.WithLabelValues(result, paymentMethod).Inc()
}

func RecordReservationConflict() {
	ReservationConflictsTotal.Inc()
}

func RecordExpiredReleased(n int) {
	ExpiredReservationsReleased.Add(float64(n))
}

func RecordPaymentConfirmation(result string) {
	PaymentConfirmationsTotal.WithLabelValues(result).Inc()
}

func RecordSSEEvent(stream, eventType string) {
	SSEEventsSentTotal.WithLabelValues(stream, eventType).Inc()
}

func RecordCartOperation(operation string) {
	CartOperationsTotal.WithLabelValues(operation).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
