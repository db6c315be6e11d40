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

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Pager    query.Pager
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	pager    query.Pager
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		pager:    params.Pager,
		logger:   params.Logger,
	}
}

// DeviceActionRequest represents the request body for a device mutation
type DeviceActionRequest struct {
	ID     string `json:"id" validate:"required"`
	Action string `json:"action" validate:"required"`
}

// ListDevices handles GET /api/v1/devices
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	page, err := h.deviceUC.ListDevices(c.Request().Context(), listQuery(c, h.pager))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}

// ApplyAction handles PATCH /api/v1/devices
func (h *DeviceHandler) ApplyAction(c echo.Context) error {
	var req DeviceActionRequest
	if err := c.Bind(&req); err != nil {
		return response.Validation(c, "Invalid device action payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.Validation(c, err.Error())
	}

	device, err := h.deviceUC.ApplyDeviceAction(c.Request().Context(), req.ID, req.Action)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}
