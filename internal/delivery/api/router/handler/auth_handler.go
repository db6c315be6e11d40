package handler

import (
	"net/http"

	"dashboard/internal/delivery/api/middleware"
	"dashboard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// AuthHandler reports the admin behind the current session
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// GetSession handles GET /api/v1/auth/session
func (h *AuthHandler) GetSession(c echo.Context) error {
	session := middleware.GetAdminSession(c)
	if session == nil {
		return response.Unauthorized(c, "Session cookie is missing")
	}

	return response.Success(c, http.StatusOK, session)
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
