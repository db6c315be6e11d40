// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dashboard/config"
	"dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/router/handler"
	"dashboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler        *handler.DeviceHandler
	SessionHandler       *handler.SessionHandler
	SecurityEventHandler *handler.SecurityEventHandler
	AuditLogHandler      *handler.AuditLogHandler
	WalletLedgerHandler  *handler.WalletLedgerHandler
	AuthHandler          *handler.AuthHandler
	SessionMiddleware    *middleware.SessionMiddleware
	Metrics              *metrics.Metrics
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler        *handler.DeviceHandler
	sessionHandler       *handler.SessionHandler
	securityEventHandler *handler.SecurityEventHandler
	auditLogHandler      *handler.AuditLogHandler
	walletLedgerHandler  *handler.WalletLedgerHandler
	authHandler          *handler.AuthHandler
	sessionMiddleware    *middleware.SessionMiddleware
	metrics              *metrics.Metrics
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:        params.DeviceHandler,
		sessionHandler:       params.SessionHandler,
		securityEventHandler: params.SecurityEventHandler,
		auditLogHandler:      params.AuditLogHandler,
		walletLedgerHandler:  params.WalletLedgerHandler,
		authHandler:          params.AuthHandler,
		sessionMiddleware:    params.SessionMiddleware,
		metrics:              params.Metrics,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Authenticate) // All API v1 routes require the session cookie

	apiV1.GET("/auth/session", r.authHandler.GetSession)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PATCH("", r.deviceHandler.ApplyAction)
	}

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.GET("", r.sessionHandler.ListSessions)
		sessionsGroup.DELETE("", r.sessionHandler.RevokeSessions)
	}

	eventsGroup := apiV1.Group("/security-events")
	{
		eventsGroup.GET("", r.securityEventHandler.ListSecurityEvents)
		eventsGroup.POST("", r.securityEventHandler.CreateSecurityEvent)
	}

	apiV1.GET("/audit-logs", r.auditLogHandler.ListAuditLogs)
	apiV1.GET("/wallet-ledger", r.walletLedgerHandler.ListWalletLedger)
}
