package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"shopping-helper-admin/workspace"
)

const (
	SessionCookieName = "shopping_admin_session"
	WorkspaceKey      = "workspace"
)

// SessionMiddleware attaches the caller's workspace to the request. A missing,
// expired or tampered cookie starts a fresh session.
func SessionMiddleware(registry *workspace.Registry, sealer *workspace.SessionSealer, secure bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		var sid string
		if token := c.Cookies(SessionCookieName); token != "" {
			if id, err := sealer.Open(token); err == nil {
				sid = id
			}
		}

		id, ws := registry.Get(sid)

		// Re-seal on every request so the expiry slides with activity.
		now := time.Now()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    sealer.Seal(id, now),
			Path:     "/",
			Expires:  now.Add(sealer.TTL()),
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		c.Locals(WorkspaceKey, ws)
		return c.Next()
	}
}

// WorkspaceFrom returns the workspace stored by SessionMiddleware.
func WorkspaceFrom(c fiber.Ctx) *workspace.Workspace {
	ws, _ := c.Locals(WorkspaceKey).(*workspace.Workspace)
	return ws
}
