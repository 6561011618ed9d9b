package handlers

import (
	"errors"

	"bloodlink-web/internal/adapters/http/views"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/domain"
	"bloodlink-web/internal/core/services"
	"bloodlink-web/internal/pkg/listing"
	"bloodlink-web/internal/pkg/pagination"
	"bloodlink-web/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const homeLatestPosts = 3

// ContentHandler handles the home, about, blog and help pages
type ContentHandler struct {
	contentService *services.ContentService
	fundingService *services.FundingService
	cfg            *config.Config
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *services.ContentService, fundingService *services.FundingService, cfg *config.Config) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		fundingService: fundingService,
		cfg:            cfg,
	}
}

func parseContentFilter(c *fiber.Ctx) domain.ContentFilter {
	return domain.ContentFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
}

// Home renders the landing page with funding totals and the newest posts
func (h *ContentHandler) Home(c *fiber.Ctx) error {
	toasts := &listing.Toasts{}
	summary := h.fundingService.Summary(c.UserContext(), toasts)
	posts := h.contentService.LatestPosts(c.UserContext(), homeLatestPosts)
	return renderHTML(c, fiber.StatusOK, views.HomePage(pageMeta(c, h.cfg, "Home", toasts.List()), summary, posts))
}

// About renders the about page
func (h *ContentHandler) About(c *fiber.Ctx) error {
	return renderHTML(c, fiber.StatusOK, views.AboutPage(pageMeta(c, h.cfg, "About Us", nil)))
}

// BlogPage renders the blog list
func (h *ContentHandler) BlogPage(c *fiber.Ctx) error {
	page := h.contentService.Blog(c.UserContext(), parseContentFilter(c), pagination.GetParams(c))
	return renderHTML(c, fiber.StatusOK, views.BlogPage(pageMeta(c, h.cfg, "Blog", page.Toasts), page, queryValues(c)))
}

// ListPosts lists blog posts
// @Summary List blog posts
// @Description Lists blog posts, newest first, filtered by category and a title/excerpt search
// @Tags Content
// @Produce json
// @Param category query string false "Category, empty or all for any"
// @Param search query string false "Case-insensitive text search"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/blog [get]
func (h *ContentHandler) ListPosts(c *fiber.Ctx) error {
	page := h.contentService.Blog(c.UserContext(), parseContentFilter(c), pagination.GetParams(c))
	return viewJSON(c, page.View.Failed(), page.Toasts, "Blog posts retrieved successfully", page)
}

// PostPage renders one blog post
func (h *ContentHandler) PostPage(c *fiber.Ctx) error {
	post, err := h.contentService.Post(c.UserContext(), c.Params("slug"))
	if err != nil {
		status, msg := postError(err)
		return renderHTML(c, status, views.ErrorPage(pageMeta(c, h.cfg, "Blog", errorToast(msg)), status, msg))
	}
	return renderHTML(c, fiber.StatusOK, views.BlogPostPage(pageMeta(c, h.cfg, post.Title, nil), *post))
}

// GetPost gets one blog post
// @Summary Get blog post
// @Description Loads one blog post with its body
// @Tags Content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/v1/blog/{slug} [get]
func (h *ContentHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.contentService.Post(c.UserContext(), c.Params("slug"))
	if err != nil {
		status, msg := postError(err)
		return sendError(c, status, msg)
	}
	return response.Success(c, "Blog post retrieved successfully", post)
}

func postError(err error) (int, string) {
	if errors.Is(err, domain.ErrPostNotFound) {
		return fiber.StatusNotFound, "Blog post not found"
	}
	return fiber.StatusInternalServerError, "Failed to load blog post"
}

// HelpPage renders the FAQ page
func (h *ContentHandler) HelpPage(c *fiber.Ctx) error {
	page := h.contentService.Help(c.UserContext(), parseContentFilter(c))
	return renderHTML(c, fiber.StatusOK, views.HelpPage(pageMeta(c, h.cfg, "Help", page.Toasts), page))
}

// ListFAQs lists help topics
// @Summary List help topics
// @Description Lists FAQs filtered by category and a question/answer search
// @Tags Content
// @Produce json
// @Param category query string false "Category, empty or all for any"
// @Param search query string false "Case-insensitive text search"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/help [get]
func (h *ContentHandler) ListFAQs(c *fiber.Ctx) error {
	page := h.contentService.Help(c.UserContext(), parseContentFilter(c))
	return viewJSON(c, page.View.Failed(), page.Toasts, "Help topics retrieved successfully", page)
}
