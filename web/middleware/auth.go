package middleware

import (
	"strings"

	"github.com/Alas-3/syrincal-system/auth"
	"github.com/gofiber/fiber/v2"
)

var (
	sessions   *auth.SessionManager
	cookieName string
)

// InitAuth wires the session manager used by the auth middleware
func InitAuth(sm *auth.SessionManager, cookie string) {
	sessions = sm
	cookieName = cookie
}

// SessionCookieName returns the configured session cookie name
func SessionCookieName() string {
	return cookieName
}

// Sessions returns the session manager
func Sessions() *auth.SessionManager {
	return sessions
}

// RequireAuth validates the session cookie and stores the user's
// identity in request locals. Unauthenticated page requests are
// redirected to the login form; API requests get a 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return unauthenticated(c)
		}

		claims, err := sessions.Validate(token)
		if err != nil {
			c.ClearCookie(cookieName)
			return unauthenticated(c)
		}

		c.Locals("UserID", claims.UserID)
		c.Locals("UserEmail", claims.Email)
		c.Locals("UserRole", claims.Role)
		c.Locals("PriceTier", claims.PriceTier)

		return c.Next()
	}
}

// RequireRole restricts a route to the given roles. Must run after
// RequireAuth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("UserRole").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "you do not have access to this page")
	}
}

func unauthenticated(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return c.Redirect("/login")
}
