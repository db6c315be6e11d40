package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderFunc func(ctx context.Context, event *service.AuditEvent) error

func (f recorderFunc) Record(ctx context.Context, event *service.AuditEvent) error {
	return f(ctx, event)
}

func TestInstrumentAuditRecorder(t *testing.T) {
	t.Parallel()

	m := New()
	fail := false
	rec := InstrumentAuditRecorder(recorderFunc(func(context.Context, *service.AuditEvent) error {
		if fail {
			return errors.New("store unavailable")
		}

		return nil
	}), m)

	ctx := context.Background()
	require.NoError(t, rec.Record(ctx, &service.AuditEvent{EntityType: "device", EntityID: "dev-1", Action: "block"}))
	require.NoError(t, rec.Record(ctx, &service.AuditEvent{EntityType: "device", EntityID: "dev-1", Action: "block"}))

	fail = true
	require.Error(t, rec.Record(ctx, &service.AuditEvent{EntityType: "session", EntityID: "ses-1", Action: "revoke"}))

	body := scrape(t, m)
	assert.Contains(t, body, `dashboard_mutations_total{action="block",entity_type="device"} 2`)
	assert.Contains(t, body, `dashboard_mutations_total{action="revoke",entity_type="session"} 1`)
	assert.Contains(t, body, "dashboard_audit_record_failures_total 1")
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestMetrics_HandlerExposesHTTPCounters(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveHTTP(http.MethodGet, "/api/v1/devices", http.StatusOK, 15*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `dashboard_http_requests_total{method="GET",route="/api/v1/devices",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
