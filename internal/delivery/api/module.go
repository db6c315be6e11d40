package api

import (
	apimiddleware "dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

// Module provides the HTTP handlers and the session middleware. The server
// itself joins the "deliveries" group where the application is assembled.
var Module = fx.Options(
	fx.Provide(
		handler.NewPager,
		handler.NewDeviceHandler,
		handler.NewSessionHandler,
		handler.NewSecurityEventHandler,
		handler.NewAuditLogHandler,
		handler.NewWalletLedgerHandler,
		handler.NewAuthHandler,
		apimiddleware.NewSessionMiddleware,
	),
)
