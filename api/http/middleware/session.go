package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resume-builder/pkg/session"
	"github.com/artem13815/resume-builder/pkg/view"
)

const viewKey = "view"

// Session attaches the caller's view to the request, starting a new session
// when the cookie is missing, malformed or refers to an expired view.
// The cookie is re-issued each time with a fresh MaxAge.
func Session(reg *session.Registry, cookieName string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Cookies(cookieName))
		var (
			v  *view.Controller
			ok bool
		)
		if err == nil {
			v, ok = reg.Get(id)
		}
		if !ok {
			id, v = reg.Create()
		}
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    id.String(),
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(viewKey, v)
		return c.Next()
	}
}

// View returns the view attached by Session.
func View(c *fiber.Ctx) *view.Controller {
	v, _ := c.Locals(viewKey).(*view.Controller)
	return v
}
