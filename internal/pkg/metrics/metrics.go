package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "furnicraft"

// Metrics owns its registry so several instances (tests, fx apps) never collide.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	couponValidations   *prometheus.CounterVec
	orderStatusUpdates  *prometheus.CounterVec
	outboxDeliveries    *prometheus.CounterVec
	wsClients           prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path", "status"},
		),
		couponValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "coupon_validations_total",
				Help:      "Coupon validations by outcome",
			},
			[]string{"outcome"},
		),
		orderStatusUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_status_updates_total",
				Help:      "Order status updates by target status",
			},
			[]string{"status"},
		),
		outboxDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outbox_deliveries_total",
				Help:      "Outbox event delivery attempts by result",
			},
			[]string{"topic", "result"},
		),
		wsClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "order_feed_clients",
				Help:      "Connected order feed websocket clients",
			},
		),
	}
}

func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) RecordCouponValidation(outcome string) {
	m.couponValidations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordOrderStatusUpdate(status string) {
	m.orderStatusUpdates.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordOutboxDelivery(topic string, success bool) {
	result := "success"
	if !success {
		result = "error"
	}
	m.outboxDeliveries.WithLabelValues(topic, result).Inc()
}

func (m *Metrics) SetFeedClients(n int) {
	m.wsClients.Set(float64(n))
}
