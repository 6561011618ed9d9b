package middleware

import (
	"time"

	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"

	"github.com/gofiber/fiber/v2"
)

const themeCookieTTL = 365 * 24 * time.Hour

// Theme loads the stored theme preference on every request
func Theme(cfg *config.Config) fiber.Handler {
	fallback := domain.ParseTheme(cfg.DefaultTheme, domain.ThemeLight)
	return func(c *fiber.Ctx) error {
		c.Locals(domain.ThemeKey, domain.ParseTheme(c.Cookies(domain.ThemeKey), fallback))
		return c.Next()
	}
}

// CurrentTheme returns the theme loaded for this request
func CurrentTheme(c *fiber.Ctx) domain.Theme {
	if t, ok := c.Locals(domain.ThemeKey).(domain.Theme); ok {
		return t
	}
	return domain.ThemeLight
}

// StoreTheme writes the theme preference cookie
func StoreTheme(c *fiber.Ctx, cfg *config.Config, t domain.Theme) {
	c.Cookie(&fiber.Cookie{
		Name:     domain.ThemeKey,
		Value:    string(t),
		Path:     "/",
		Domain:   cfg.Cookie.Domain,
		Expires:  time.Now().Add(themeCookieTTL),
		Secure:   cfg.Cookie.Secure,
		SameSite: cfg.Cookie.SameSite,
	})
	c.Locals(domain.ThemeKey, t)
}
