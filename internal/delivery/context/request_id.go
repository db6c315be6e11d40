package context

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"dashboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyAdminSession is the key for storing the authenticated admin in context.
	KeyAdminSession ContextKey = "admin_session"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXCorrelationID is accepted as an alias of HeaderXRequestID.
	HeaderXCorrelationID = "X-Correlation-Id"
)

// CorrelationID returns the caller supplied correlation identifier, or an
// empty string when the request carries none.
func CorrelationID(header http.Header) string {
	for _, name := range []string{HeaderXRequestID, HeaderXCorrelationID} {
		if id := strings.TrimSpace(header.Get(name)); id != "" {
			return id
		}
	}

	return ""
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID and stores it so later calls agree.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	id := uuid.New().String()
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithAdminSession returns a new context carrying the authenticated admin.
func WithAdminSession(ctx context.Context, session *entity.AdminSession) context.Context {
	return context.WithValue(ctx, KeyAdminSession, session)
}

// GetAdminSession returns the authenticated admin, or nil for anonymous contexts.
func GetAdminSession(ctx context.Context) *entity.AdminSession {
	if session, ok := ctx.Value(KeyAdminSession).(*entity.AdminSession); ok {
		return session
	}

	return nil
}
