package middleware

import (
	"strings"

	"dashboard/config"
	"dashboard/internal/delivery/api/response"
	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes behind the admin session cookie. The core
// does not issue sessions: any non-empty cookie authenticates as the
// configured descriptor.
type SessionMiddleware struct {
	cookieName string
	descriptor entity.AdminSession
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(cfg *config.Config) *SessionMiddleware {
	desc := cfg.Session.Descriptor

	return &SessionMiddleware{
		cookieName: cfg.Session.CookieName,
		descriptor: entity.AdminSession{
			UserID: desc.UserID,
			Name:   desc.Name,
			Email:  desc.Email,
			Roles:  entity.RolesFromStrings([]string{desc.Role}),
		},
	}
}

// Authenticate rejects requests without the session cookie.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || strings.TrimSpace(cookie.Value) == "" {
			return response.Unauthorized(c, "Session cookie is missing")
		}

		session := m.descriptor
		session.Roles = append(entity.Roles(nil), m.descriptor.Roles...)

		c.Set(string(deliverycontext.KeyAdminSession), &session)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithAdminSession(c.Request().Context(), &session),
		))

		return next(c)
	}
}

// GetAdminSession returns the session set by Authenticate, or nil.
func GetAdminSession(c echo.Context) *entity.AdminSession {
	session, _ := c.Get(string(deliverycontext.KeyAdminSession)).(*entity.AdminSession)

	return session
}
