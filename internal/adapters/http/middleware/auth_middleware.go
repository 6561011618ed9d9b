package middleware

import (
	"errors"
	"net/url"
	"strings"

	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/jwt"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the Locals key holding the signed-in *domain.Identity
const IdentityKey = "identity"

// OptionalAuth middleware - doesn't require auth but sets the identity if a valid token is present
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := accessToken(c); token != "" {
			claims, err := jwt.ValidateIdentityToken(token, cfg.JWT.Secret, cfg.JWT.Issuer)
			if err == nil {
				c.Locals(IdentityKey, &domain.Identity{Email: claims.Email, Name: claims.Name})
			}
		}
		return c.Next()
	}
}

// RequireAuth rejects visitors without a valid identity token. Browsers are
// sent to the auth provider's login page, API clients get 401.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentIdentity(c) != nil {
			return c.Next()
		}

		token := accessToken(c)
		if token != "" {
			claims, err := jwt.ValidateIdentityToken(token, cfg.JWT.Secret, cfg.JWT.Issuer)
			if err == nil {
				c.Locals(IdentityKey, &domain.Identity{Email: claims.Email, Name: claims.Name})
				return c.Next()
			}
			if WantsJSON(c) {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return response.Unauthorized(c, "Access token expired")
				}
				return response.Unauthorized(c, "Invalid access token")
			}
		}

		if WantsJSON(c) {
			return response.Unauthorized(c, "Sign in required")
		}
		return c.Redirect(LoginURL(cfg, c.OriginalURL()), fiber.StatusSeeOther)
	}
}

// CurrentIdentity returns the signed-in visitor, or nil
func CurrentIdentity(c *fiber.Ctx) *domain.Identity {
	id, _ := c.Locals(IdentityKey).(*domain.Identity)
	return id
}

// LoginURL builds the auth provider login URL returning to next
func LoginURL(cfg *config.Config, next string) string {
	sep := "?"
	if strings.Contains(cfg.JWT.LoginURL, "?") {
		sep = "&"
	}
	return cfg.JWT.LoginURL + sep + "redirect=" + url.QueryEscape(next)
}

func accessToken(c *fiber.Ctx) string {
	if token := c.Cookies("access_token"); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}
