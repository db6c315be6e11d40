package handler

import (
	"log/slog"
	"net/http"

	"dashboard/internal/delivery/api/response"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/query"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Pager     query.Pager
	Logger    *slog.Logger
}

// SessionHandler serves the user session endpoints
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	pager     query.Pager
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		pager:     params.Pager,
		logger:    params.Logger,
	}
}

// RevokeSessionRequest names exactly one session or one user.
type RevokeSessionRequest struct {
	ID     string `json:"id" validate:"required_without=UserID,excluded_with=UserID"`
	UserID string `json:"userId" validate:"required_without=ID"`
}

// ListSessions handles GET /api/v1/sessions
func (h *SessionHandler) ListSessions(c echo.Context) error {
	page, err := h.sessionUC.ListSessions(c.Request().Context(), listQuery(c, h.pager))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}

// RevokeSessions handles DELETE /api/v1/sessions
func (h *SessionHandler) RevokeSessions(c echo.Context) error {
	var req RevokeSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Validation(c, "Invalid revoke payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.Validation(c, err.Error())
	}

	ctx := c.Request().Context()

	var err error
	var ack *entity.RevokeAck
	if req.ID != "" {
		ack, err = h.sessionUC.RevokeSession(ctx, req.ID)
	} else {
		ack, err = h.sessionUC.RevokeUserSessions(ctx, req.UserID)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ack)
}
