package handlers

import (
	"bloodlink-web/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg     *config.Config
	dbCheck func() error
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, dbCheck func() error) *HealthHandler {
	return &HealthHandler{cfg: cfg, dbCheck: dbCheck}
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check site and content store health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	overall, dbStatus, status := "ok", "healthy", fiber.StatusOK
	if err := h.dbCheck(); err != nil {
		overall, dbStatus, status = "degraded", "unhealthy", fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"web":      "healthy",
			"database": dbStatus,
		},
	})
}

// APIInfo handles API v1 info
// @Summary API v1 Info
// @Description Returns API v1 information
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1 [get]
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "BloodLink web API v1",
		"version":     "1.0.0",
		"mode":        h.cfg.AppMode,
		"donationApi": h.cfg.Collaborator.BaseURL,
		"docs":        "/swagger/index.html",
	})
}
