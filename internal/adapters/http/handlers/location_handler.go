package handlers

import (
	"bloodlink-web/internal/adapters/reference"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LocationHandler serves the district and upazila selector data
type LocationHandler struct {
	locations *reference.Locations
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locations *reference.Locations) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// Districts lists all districts
// @Summary List districts
// @Description Lists every district, sorted by name
// @Tags Locations
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/locations/districts [get]
func (h *LocationHandler) Districts(c *fiber.Ctx) error {
	return response.Success(c, "Districts retrieved successfully", h.locations.Districts())
}

// Upazilas lists upazilas of one district
// @Summary List upazilas
// @Description Lists the upazilas of a district. No district (or all) lists every upazila; an unknown district lists none.
// @Tags Locations
// @Produce json
// @Param district query string false "District name"
// @Success 200 {object} response.Response
// @Router /api/v1/locations/upazilas [get]
func (h *LocationHandler) Upazilas(c *fiber.Ctx) error {
	return response.Success(c, "Upazilas retrieved successfully", h.locations.Upazilas(c.Query("district")))
}
