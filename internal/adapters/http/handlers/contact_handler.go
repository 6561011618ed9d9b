package handlers

import (
	"errors"

	"bloodlink-web/internal/adapters/http/views"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the contact form
type ContactHandler struct {
	contactService *services.ContactService
	cfg            *config.Config
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService, cfg *config.Config) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		cfg:            cfg,
	}
}

// Form renders the empty contact form
func (h *ContactHandler) Form(c *fiber.Ctx) error {
	return renderHTML(c, fiber.StatusOK, views.ContactPage(pageMeta(c, h.cfg, "Contact", nil), views.ContactForm{}))
}

// SubmitForm handles the posted contact form
func (h *ContactHandler) SubmitForm(c *fiber.Ctx) error {
	var msg domain.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return h.formFailed(c, fiber.StatusBadRequest, msg, nil, "Invalid form submission")
	}

	if _, err := h.contactService.Submit(c.UserContext(), msg); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return h.formFailed(c, fiber.StatusUnprocessableEntity, msg, verr.Fields, "Please fix the highlighted fields")
		}
		status, text := contactError(err)
		return h.formFailed(c, status, msg, nil, text)
	}

	toasts := []listing.Toast{{Level: listing.LevelSuccess, Message: "Your message has been sent"}}
	return renderHTML(c, fiber.StatusOK, views.ContactPage(pageMeta(c, h.cfg, "Contact", toasts), views.ContactForm{Sent: true}))
}

func (h *ContactHandler) formFailed(c *fiber.Ctx, status int, msg domain.ContactMessage, fields map[string]string, text string) error {
	form := views.ContactForm{Values: msg, Errors: fields}
	return renderHTML(c, status, views.ContactPage(pageMeta(c, h.cfg, "Contact", errorToast(text)), form))
}

// Submit sends a contact message
// @Summary Send contact message
// @Description Stores a contact message and forwards it to the team inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body domain.ContactMessage true "Contact message"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /api/v1/contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var msg domain.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	saved, err := h.contactService.Submit(c.UserContext(), msg)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return response.ValidationFailed(c, "Invalid contact message", verr.Fields)
		}
		status, text := contactError(err)
		return sendError(c, status, text)
	}
	return response.Created(c, "Message sent", saved)
}

func contactError(err error) (int, string) {
	if errors.Is(err, domain.ErrDuplicateSubmission) {
		return fiber.StatusConflict, "This message is already being sent"
	}
	return fiber.StatusInternalServerError, "Could not send your message, please try again"
}
