package handlers

import (
	"errors"
	"strconv"
	"strings"

	"bloodlink-web/internal/adapters/http/middleware"
	"bloodlink-web/internal/adapters/http/views"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FundingHandler handles the funding pages and the checkout action
type FundingHandler struct {
	fundingService *services.FundingService
	cfg            *config.Config
}

// NewFundingHandler creates a new funding handler
func NewFundingHandler(fundingService *services.FundingService, cfg *config.Config) *FundingHandler {
	return &FundingHandler{
		fundingService: fundingService,
		cfg:            cfg,
	}
}

// CheckoutInput is the donate form body
type CheckoutInput struct {
	DonateAmount float64 `json:"donateAmount" form:"donateAmount"`
}

// FundingPage renders the funding list and totals
func (h *FundingHandler) FundingPage(c *fiber.Ctx) error {
	page := h.fundingService.Overview(c.UserContext(), pagination.GetParams(c))
	return renderHTML(c, fiber.StatusOK, views.FundingPage(pageMeta(c, h.cfg, "Funding", page.Toasts), page, queryValues(c)))
}

// ListFunding lists fundings with totals
// @Summary List fundings
// @Description Fetches all fundings and the funding totals from the donation API
// @Tags Funding
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/funding [get]
func (h *FundingHandler) ListFunding(c *fiber.Ctx) error {
	page := h.fundingService.Overview(c.UserContext(), pagination.GetParams(c))
	return viewJSON(c, page.View.Failed(), page.Toasts, "Fundings retrieved successfully", page)
}

// CheckoutForm starts a checkout from the donate form and redirects to the payment page
func (h *FundingHandler) CheckoutForm(c *fiber.Ctx) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("donateAmount")), 64)
	if err != nil {
		return h.checkoutFailed(c, fiber.StatusUnprocessableEntity, "Please enter a valid amount")
	}

	session, err := h.fundingService.Checkout(c.UserContext(), *middleware.CurrentIdentity(c), amount)
	if err != nil {
		status, msg := checkoutError(err)
		return h.checkoutFailed(c, status, msg)
	}
	return c.Redirect(session.URL, fiber.StatusSeeOther)
}

// checkoutFailed re-renders the funding page with one toast
func (h *FundingHandler) checkoutFailed(c *fiber.Ctx, status int, msg string) error {
	page := h.fundingService.Overview(c.UserContext(), pagination.GetParams(c))
	toasts := append(page.Toasts, listing.Toast{Level: listing.LevelError, Message: msg})
	return renderHTML(c, status, views.FundingPage(pageMeta(c, h.cfg, "Funding", toasts), page, nil))
}

// Checkout starts a payment session
// @Summary Start donation checkout
// @Description Opens a payment session for the signed-in donor and returns the payment page URL
// @Tags Funding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckoutInput true "Donation amount"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/funding/checkout [post]
func (h *FundingHandler) Checkout(c *fiber.Ctx) error {
	var input CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	session, err := h.fundingService.Checkout(c.UserContext(), *middleware.CurrentIdentity(c), input.DonateAmount)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid donation", verr.Fields)
		}
		status, msg := checkoutError(err)
		return sendError(c, status, msg)
	}
	return response.Success(c, "Checkout started", session)
}

func checkoutError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity, "Please enter a valid amount"
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return fiber.StatusConflict, "Your donation is already being processed"
	}
	return fiber.StatusBadGateway, "Could not start the payment, please try again"
}

// PaymentSuccess confirms the payment session and shows the success panel
func (h *FundingHandler) PaymentSuccess(c *fiber.Ctx) error {
	toasts := h.fundingService.ConfirmPayment(c.UserContext(), c.Query("session_id"))
	return renderHTML(c, fiber.StatusOK, views.PaymentSuccessPage(pageMeta(c, h.cfg, "Payment Successful", toasts)))
}
