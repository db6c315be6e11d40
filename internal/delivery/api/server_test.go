package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dashboard/config"
	apimiddleware "dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/response"
	"dashboard/internal/delivery/api/router"
	"dashboard/internal/delivery/api/router/handler"
	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/infra/audit"
	"dashboard/internal/infra/metrics"
	"dashboard/internal/infra/persistence/memory"
	"dashboard/internal/infra/seed"
	"dashboard/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionCookie = "admin_session"

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
	Meta    response.MetaInfo   `json:"meta"`
}

func newTestEcho(t *testing.T, role string) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{
		CookieName: sessionCookie,
		Descriptor: config.SessionDescriptor{UserID: "admin-1", Name: "Ada Admin", Role: role},
	}
	cfg.Pagination = config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100}
	cfg.Metrics = config.MetricsConfig{Enabled: true, Path: "/metrics"}

	dataset, err := seed.Baseline()
	require.NoError(t, err)

	store := memory.NewStore()
	seeder := seed.NewWithDataset(store, dataset, logger)
	m := metrics.New()
	auditRepo := memory.NewAuditLogRepository(store)
	recorder := metrics.InstrumentAuditRecorder(audit.NewStoreRecorder(auditRepo, logger), m)
	pager := handler.NewPager(cfg)

	return NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
				DeviceUC: impl.NewDeviceService(seeder, memory.NewDeviceRepository(store), recorder, logger),
				Pager:    pager,
				Logger:   logger,
			}),
			SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
				SessionUC: impl.NewSessionService(seeder, memory.NewSessionRepository(store), recorder, logger),
				Pager:     pager,
				Logger:    logger,
			}),
			SecurityEventHandler: handler.NewSecurityEventHandler(handler.SecurityEventHandlerParams{
				SecurityEventUC: impl.NewSecurityEventService(seeder, memory.NewSecurityEventRepository(store), logger),
				Pager:           pager,
				Logger:          logger,
			}),
			AuditLogHandler: handler.NewAuditLogHandler(handler.AuditLogHandlerParams{
				AuditLogUC: impl.NewAuditLogService(seeder, auditRepo, logger),
				Pager:      pager,
			}),
			WalletLedgerHandler: handler.NewWalletLedgerHandler(handler.WalletLedgerHandlerParams{
				WalletLedgerUC: impl.NewWalletLedgerService(seeder, memory.NewWalletLedgerRepository(store), logger),
				Pager:          pager,
			}),
			AuthHandler:       handler.NewAuthHandler(),
			SessionMiddleware: apimiddleware.NewSessionMiddleware(cfg),
			Metrics:           m,
			Config:            cfg,
		},
	})
}

func do(t *testing.T, e *echo.Echo, method, target, body string, withCookie bool, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if withCookie {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "opaque"})
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestListDevicesEndToEnd(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodGet, "/api/v1/devices?userId=user-1&page=1&limit=2", "", true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var devices []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &devices))
	require.Len(t, devices, 2)
	assert.Equal(t, "dev-1", devices[0]["id"])
	assert.Equal(t, "dev-2", devices[1]["id"])

	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, response.PaginationInfo{Total: 3, Page: 1, Limit: 2, Pages: 2}, *env.Meta.Pagination)
	assert.True(t, strings.HasSuffix(env.Meta.Timestamp, "Z"))
}

func TestHugePageIsEmptyNotAnError(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodGet, "/api/v1/devices?page=9223372036854775807", "", true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, 5, env.Meta.Pagination.Total)
}

func TestEmptyPageKeepsDataArray(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodGet, "/api/v1/devices?userId=nobody", "", true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, 0, env.Meta.Pagination.Pages)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := newTestEcho(t, "admin")

	t.Run("caller id", func(t *testing.T) {
		rec, env := do(t, e, http.MethodGet, "/api/v1/devices", "", true,
			map[string]string{deliverycontext.HeaderXRequestID: "abc-123"})
		assert.Equal(t, "abc-123", env.Meta.RequestID)
		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("correlation header", func(t *testing.T) {
		_, env := do(t, e, http.MethodGet, "/api/v1/devices", "", true,
			map[string]string{deliverycontext.HeaderXCorrelationID: "corr-9"})
		assert.Equal(t, "corr-9", env.Meta.RequestID)
	})

	t.Run("generated id", func(t *testing.T) {
		rec, env := do(t, e, http.MethodGet, "/api/v1/devices", "", true, nil)
		_, err := uuid.Parse(env.Meta.RequestID)
		require.NoError(t, err)
		assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestMissingCookieIsUnauthorized(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodGet, "/api/v1/devices", "", false,
		map[string]string{deliverycontext.HeaderXRequestID: "abc-123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	assert.Equal(t, "abc-123", env.Meta.RequestID)
}

func TestAuthSession(t *testing.T) {
	e := newTestEcho(t, "operator")

	rec, env := do(t, e, http.MethodGet, "/api/v1/auth/session", "", true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"admin-1","name":"Ada Admin","roles":["operator"]}`, string(env.Data))
}

func TestDeviceActions(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodPatch, "/api/v1/devices", `{"id":"dev-1","action":"block"}`, true,
		map[string]string{deliverycontext.HeaderXRequestID: "abc-123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var device map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &device))
	assert.Equal(t, true, device["blocked"])

	rec, env = do(t, e, http.MethodPatch, "/api/v1/devices", `{"id":"dev-1","action":"explode"}`, true, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", env.Error.Code)

	rec, env = do(t, e, http.MethodPatch, "/api/v1/devices", `{"id":"dev-404","action":"block"}`, true, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec, env = do(t, e, http.MethodPatch, "/api/v1/devices", `{"action":"block"}`, true, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Message, "id is required")

	// Only the successful block reached the audit log.
	_, env = do(t, e, http.MethodGet, "/api/v1/audit-logs", "", true, nil)
	var logs []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "block", logs[0]["action"])
	assert.Equal(t, "dev-1", logs[0]["entityId"])
	assert.Equal(t, "abc-123", logs[0]["requestId"])
	assert.Equal(t, "admin-1", logs[0]["actorId"])
}

func TestRevokeSessions(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodDelete, "/api/v1/sessions", `{"id":"ses-1"}`, true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"revoked":true,"id":"ses-1","count":1}`, string(env.Data))

	rec, env = do(t, e, http.MethodDelete, "/api/v1/sessions", `{"id":"ses-1"}`, true, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	rec, env = do(t, e, http.MethodDelete, "/api/v1/sessions", `{"userId":"user-2"}`, true, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"revoked":true,"userId":"user-2","count":2}`, string(env.Data))

	rec, env = do(t, e, http.MethodDelete, "/api/v1/sessions", `{}`, true, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", env.Error.Code)

	_, env = do(t, e, http.MethodGet, "/api/v1/sessions", "", true, nil)
	assert.Equal(t, 1, env.Meta.Pagination.Total)
}

func TestCreateSecurityEvent(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodPost, "/api/v1/security-events",
		`{"type":"mfa_disabled","severity":"high","userId":"user-1"}`, true, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var event map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &event))
	assert.True(t, strings.HasPrefix(event["id"].(string), "evt-"))

	rec, env = do(t, e, http.MethodPost, "/api/v1/security-events", `{"type":"x","severity":"apocalyptic"}`, true, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", env.Error.Code)

	_, env = do(t, e, http.MethodGet, "/api/v1/security-events?severity=high&limit=1", "", true, nil)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &events))
	require.Len(t, events, 1)
	assert.Equal(t, event["id"], events[0]["id"])
}

func TestListValidationErrors(t *testing.T) {
	e := newTestEcho(t, "admin")

	for _, target := range []string{
		"/api/v1/security-events?startDate=yesterday",
		"/api/v1/devices?filter=trustScore%20%3E%20",
	} {
		rec, env := do(t, e, http.MethodGet, target, "", true, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "VALIDATION", env.Error.Code, target)
	}
}

func TestErrorEnvelopes(t *testing.T) {
	e := newTestEcho(t, "admin")
	e.GET("/boom", func(echo.Context) error { panic("kaboom") })

	rec, env := do(t, e, http.MethodGet, "/nowhere", "", false, map[string]string{deliverycontext.HeaderXRequestID: "abc-123"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "abc-123", env.Meta.RequestID)

	rec, env = do(t, e, http.MethodGet, "/boom", "", false, map[string]string{deliverycontext.HeaderXRequestID: "abc-123"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "kaboom")
	assert.Equal(t, "abc-123", env.Meta.RequestID)
}

func TestHealthAndMetrics(t *testing.T) {
	e := newTestEcho(t, "admin")

	rec, env := do(t, e, http.MethodGet, "/health", "", false, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	do(t, e, http.MethodPatch, "/api/v1/devices", `{"id":"dev-2","action":"trust"}`, true, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `dashboard_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `dashboard_mutations_total{action="trust",entity_type="device"} 1`)
}
