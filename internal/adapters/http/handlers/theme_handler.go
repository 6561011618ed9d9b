package handlers

import (
	"strings"

	"bloodlink-web/internal/adapters/http/middleware"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ThemeHandler handles the light/dark toggle
type ThemeHandler struct {
	cfg *config.Config
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(cfg *config.Config) *ThemeHandler {
	return &ThemeHandler{cfg: cfg}
}

// Toggle flips the stored theme and sends the browser back to the page it came from
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	next := middleware.CurrentTheme(c).Toggle()
	middleware.StoreTheme(c, h.cfg, next)
	return c.Redirect(localPath(c.FormValue("next")), fiber.StatusSeeOther)
}

// ThemeInput is the theme update body
type ThemeInput struct {
	Theme string `json:"theme"`
}

// Set stores a theme preference
// @Summary Set theme
// @Description Stores the light or dark theme preference. An empty theme toggles the current one.
// @Tags Theme
// @Accept json
// @Produce json
// @Param request body ThemeInput false "Theme"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/theme [put]
func (h *ThemeHandler) Set(c *fiber.Ctx) error {
	var input ThemeInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	next := middleware.CurrentTheme(c).Toggle()
	if input.Theme != "" {
		t := domain.ParseTheme(input.Theme, "")
		if t == "" {
			return response.BadRequest(c, "Theme must be light or dark")
		}
		next = t
	}
	middleware.StoreTheme(c, h.cfg, next)
	return response.Success(c, "Theme updated", fiber.Map{"theme": next})
}

// localPath keeps redirects on this site
func localPath(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
