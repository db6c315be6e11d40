// Package metrics owns the Prometheus registry and the collectors the
// dashboard exports.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dashboard/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "dashboard"

// Metrics groups the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	mutations     *prometheus.CounterVec
	auditFailures prometheus.Counter
}

// New creates a registry with the process and Go runtime collectors plus the
// dashboard's own counters.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests served, by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds, by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mutations_total",
				Help:      "Mutations applied to the store, by entity type and action.",
			},
			[]string{"entity_type", "action"},
		),
		auditFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audit_record_failures_total",
				Help:      "Mutations whose audit record could not be written.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.mutations,
		m.auditFailures,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request. route is the router pattern, not
// the raw path, so ids never become label values.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// instrumentedRecorder counts every audited mutation.
type instrumentedRecorder struct {
	next    service.AuditRecorder
	metrics *Metrics
}

// InstrumentAuditRecorder wraps next so each recorded event increments the
// mutation counter and each failure increments the failure counter.
func InstrumentAuditRecorder(next service.AuditRecorder, m *Metrics) service.AuditRecorder {
	return &instrumentedRecorder{next: next, metrics: m}
}

func (r *instrumentedRecorder) Record(ctx context.Context, event *service.AuditEvent) error {
	r.metrics.mutations.WithLabelValues(event.EntityType, event.Action).Inc()

	if err := r.next.Record(ctx, event); err != nil {
		r.metrics.auditFailures.Inc()

		return err
	}

	return nil
}

// Module provides the metrics registry and instruments the audit recorder
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Decorate(InstrumentAuditRecorder),
)
