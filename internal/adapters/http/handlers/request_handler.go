package handlers

import (
	"errors"

	"bloodlink-web/internal/adapters/http/views"
	"bloodlink-web/internal/adapters/reference"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"
	"bloodlink-web/internal/pkg/pagination"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles the donation request pages
type RequestHandler struct {
	requestService *services.RequestService
	locations      *reference.Locations
	cfg            *config.Config
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService, locations *reference.Locations, cfg *config.Config) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		locations:      locations,
		cfg:            cfg,
	}
}

func parseRequestFilter(c *fiber.Ctx) domain.RequestFilter {
	return domain.RequestFilter{
		BloodGroup: c.Query("bloodGroup"),
		District:   c.Query("district"),
		Upazila:    c.Query("upazila"),
	}
}

func (h *RequestHandler) locationOptions(district string) views.LocationOptions {
	return views.LocationOptions{
		Districts: reference.Names(h.locations.Districts()),
		Upazilas:  reference.Names(h.locations.Upazilas(district)),
	}
}

// PendingPage renders the pending requests page
func (h *RequestHandler) PendingPage(c *fiber.Ctx) error {
	page := h.requestService.Pending(c.UserContext(), parseRequestFilter(c), pagination.GetParams(c))
	return renderHTML(c, fiber.StatusOK, views.RequestsPage(
		pageMeta(c, h.cfg, "Donation Requests", page.Toasts),
		page,
		h.locationOptions(page.Filter.District),
		queryValues(c),
	))
}

// ListPending lists pending donation requests
// @Summary List pending donation requests
// @Description Fetches pending requests from the donation API and filters them by blood group, district and upazila
// @Tags Requests
// @Produce json
// @Param bloodGroup query string false "Blood group (A+, O-, ...), empty or all for any"
// @Param district query string false "Recipient district"
// @Param upazila query string false "Recipient upazila"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/donation-requests [get]
func (h *RequestHandler) ListPending(c *fiber.Ctx) error {
	page := h.requestService.Pending(c.UserContext(), parseRequestFilter(c), pagination.GetParams(c))
	return viewJSON(c, page.View.Failed(), page.Toasts, "Donation requests retrieved successfully", page)
}

// SearchPage renders the search page. It stays idle until the form is submitted.
func (h *RequestHandler) SearchPage(c *fiber.Ctx) error {
	submitted := hasAnyQuery(c, "bloodGroup", "district", "upazila")
	page := h.requestService.Search(c.UserContext(), parseRequestFilter(c), submitted, pagination.GetParams(c))
	return renderHTML(c, fiber.StatusOK, views.SearchPage(
		pageMeta(c, h.cfg, "Search", page.Toasts),
		page,
		h.locationOptions(page.Filter.District),
		queryValues(c),
	))
}

// Search searches donation requests
// @Summary Search donation requests
// @Description Runs the donation API search with blood group, district and upazila. Every call is a submitted search.
// @Tags Requests
// @Produce json
// @Param bloodGroup query string false "Blood group"
// @Param district query string false "Recipient district"
// @Param upazila query string false "Recipient upazila"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/search-requests [get]
func (h *RequestHandler) Search(c *fiber.Ctx) error {
	page := h.requestService.Search(c.UserContext(), parseRequestFilter(c), true, pagination.GetParams(c))
	return viewJSON(c, page.View.Failed(), page.Toasts, "Search completed", page)
}

// DetailsPage renders one request
func (h *RequestHandler) DetailsPage(c *fiber.Ctx) error {
	req, err := h.requestService.Details(c.UserContext(), c.Params("id"))
	if err != nil {
		status, msg := detailsError(err)
		return renderHTML(c, status, views.ErrorPage(pageMeta(c, h.cfg, "Donation Request", errorToast(msg)), status, msg))
	}
	return renderHTML(c, fiber.StatusOK, views.RequestDetailsPage(pageMeta(c, h.cfg, req.RecipientName, nil), *req))
}

// GetRequest gets one donation request
// @Summary Get donation request
// @Description Loads one donation request (sign-in required)
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/donation-requests/{id} [get]
func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	req, err := h.requestService.Details(c.UserContext(), c.Params("id"))
	if err != nil {
		status, msg := detailsError(err)
		return sendError(c, status, msg)
	}
	return response.Success(c, "Donation request retrieved successfully", req)
}

func detailsError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		return fiber.StatusNotFound, "Donation request not found"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "Invalid request ID"
	}
	return fiber.StatusBadGateway, "Failed to load donation request"
}
