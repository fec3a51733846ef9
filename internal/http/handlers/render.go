package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// One-shot notice set by a previous redirect
	if kind, msg := popFlash(c); msg != "" {
		data["Flash"] = msg
		data["FlashKind"] = kind
	}
	// Pick up the token the CSRF middleware put into Locals
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}

// setFlash stores a one-shot notice ("success" or "error") in a cookie,
// to be consumed by the next rendered page.
func setFlash(c *fiber.Ctx, kind, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    url.QueryEscape(kind + "|" + msg),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func popFlash(c *fiber.Ctx) (kind, msg string) {
	raw := c.Cookies("flash")
	if raw == "" {
		return "", ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	dec, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ""
	}
	kind, msg, ok := strings.Cut(dec, "|")
	if !ok {
		return "info", dec
	}
	return kind, msg
}
