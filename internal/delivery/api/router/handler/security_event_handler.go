package handler

import (
	"log/slog"
	"net/http"

	"dashboard/internal/delivery/api/response"
	"dashboard/internal/domain/query"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SecurityEventHandlerParams holds dependencies for SecurityEventHandler, injected by Fx.
type SecurityEventHandlerParams struct {
	fx.In

	SecurityEventUC usecase.SecurityEventUsecase
	Pager           query.Pager
	Logger          *slog.Logger
}

// SecurityEventHandler serves the security event feed
type SecurityEventHandler struct {
	securityEventUC usecase.SecurityEventUsecase
	pager           query.Pager
	logger          *slog.Logger
}

// NewSecurityEventHandler is the constructor for SecurityEventHandler
func NewSecurityEventHandler(params SecurityEventHandlerParams) *SecurityEventHandler {
	return &SecurityEventHandler{
		securityEventUC: params.SecurityEventUC,
		pager:           params.Pager,
		logger:          params.Logger,
	}
}

// ListSecurityEvents handles GET /api/v1/security-events
func (h *SecurityEventHandler) ListSecurityEvents(c echo.Context) error {
	page, err := h.securityEventUC.ListSecurityEvents(c.Request().Context(), listQuery(c, h.pager))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}

// CreateSecurityEvent handles POST /api/v1/security-events
func (h *SecurityEventHandler) CreateSecurityEvent(c echo.Context) error {
	var req usecase.SecurityEventInput
	if err := c.Bind(&req); err != nil {
		return response.Validation(c, "Invalid security event payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.Validation(c, err.Error())
	}

	event, err := h.securityEventUC.CreateSecurityEvent(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, event)
}
