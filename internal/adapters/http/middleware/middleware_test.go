package middleware_test

import (
	"net/http/httptest"
	"testing"

	"bloodlink-web/internal/adapters/http/middleware"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preflight(t *testing.T, mode, origin string) string {
	t.Helper()
	app := fiber.New()
	middleware.Setup(app, &config.Config{AppMode: mode}, logger.Nop())
	app.Put("/api/v1/theme", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(fiber.MethodOptions, "/api/v1/theme", nil)
	req.Header.Set(fiber.HeaderOrigin, origin)
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodPut)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	return resp.Header.Get(fiber.HeaderAccessControlAllowMethods)
}

func TestCORSPreflightAllowsPutInDev(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	assert.Contains(t, preflight(t, "dev", "http://localhost:5173"), fiber.MethodPut)
}

func TestCORSPreflightAllowsPutInProd(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://bloodlink.example.org")
	assert.Contains(t, preflight(t, "prod", "https://bloodlink.example.org"), fiber.MethodPut)
}
