package handlers

import (
	applog "stockledger/internal/log"
	"stockledger/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireLogin guards a route behind the shared-password session. The
// check is explicit per route rather than ambient state, so every gated
// handler can rely on c.Locals("authorized") being set.
func RequireLogin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if !auth.LoggedIn(sid) {
			// JSON callers (the payment endpoint) get a structured failure
			// instead of a login redirect.
			if c.Is("json") {
				applog.Security(c, "access.denied", map[string]any{"sid": sid})
				return c.JSON(fiber.Map{"success": false, "message": "Not logged in"})
			}
			return c.Redirect("/login")
		}
		c.Locals("authorized", true)
		return c.Next()
	}
}
