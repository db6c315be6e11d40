package handler

import (
	"dashboard/internal/delivery/api/response"
	"dashboard/internal/domain/query"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuditLogHandlerParams holds dependencies for AuditLogHandler, injected by Fx.
type AuditLogHandlerParams struct {
	fx.In

	AuditLogUC usecase.AuditLogUsecase
	Pager      query.Pager
}

// AuditLogHandler serves the read-only audit log
type AuditLogHandler struct {
	auditLogUC usecase.AuditLogUsecase
	pager      query.Pager
}

// NewAuditLogHandler is the constructor for AuditLogHandler
func NewAuditLogHandler(params AuditLogHandlerParams) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUC: params.AuditLogUC,
		pager:      params.Pager,
	}
}

// ListAuditLogs handles GET /api/v1/audit-logs
func (h *AuditLogHandler) ListAuditLogs(c echo.Context) error {
	page, err := h.auditLogUC.ListAuditLogs(c.Request().Context(), listQuery(c, h.pager))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}
