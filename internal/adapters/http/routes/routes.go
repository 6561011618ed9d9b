package routes

import (
	"fmt"

	"bloodlink-web/internal/adapters/collaborator"
	"bloodlink-web/internal/adapters/http/handlers"
	"bloodlink-web/internal/adapters/http/middleware"
	"bloodlink-web/internal/adapters/persistence/repositories"
	"bloodlink-web/internal/adapters/reference"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/core/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Handlers groups every page and API handler
type Handlers struct {
	Health   *handlers.HealthHandler
	Request  *handlers.RequestHandler
	Funding  *handlers.FundingHandler
	Content  *handlers.ContentHandler
	Contact  *handlers.ContactHandler
	Theme    *handlers.ThemeHandler
	Location *handlers.LocationHandler
}

// Setup wires repositories, services and handlers and registers all routes.
// The returned cron service is not started.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, log zerolog.Logger) (*services.CronService, error) {
	// Reference data
	locations, err := reference.Load()
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}

	// Donation API client
	client, err := collaborator.NewClient(collaborator.Options{
		BaseURL: cfg.Collaborator.BaseURL,
		Timeout: cfg.Collaborator.Timeout,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("donation api client: %w", err)
	}

	// Initialize repositories
	contentRepo := repositories.NewContentRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	// Initialize services
	validate := validator.New()
	dispatcher := services.NewDispatcher(log)
	requestService := services.NewRequestService(client, log)
	fundingService := services.NewFundingService(client, dispatcher, validate, log)
	contentService := services.NewContentService(contentRepo, log)
	notifyService := services.NewNotificationService(cfg.Mail, log)
	contactService := services.NewContactService(contactRepo, notifyService, dispatcher, validate, log)

	cronService, err := services.NewCronService(contactService, cfg.Content.PurgeSchedule, cfg.Content.RetentionDays, log)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	Register(app, Handlers{
		Health:   handlers.NewHealthHandler(cfg, config.HealthCheck),
		Request:  handlers.NewRequestHandler(requestService, locations, cfg),
		Funding:  handlers.NewFundingHandler(fundingService, cfg),
		Content:  handlers.NewContentHandler(contentService, fundingService, cfg),
		Contact:  handlers.NewContactHandler(contactService, cfg),
		Theme:    handlers.NewThemeHandler(cfg),
		Location: handlers.NewLocationHandler(locations),
	}, cfg)

	return cronService, nil
}

// Register mounts the page routes, the JSON API and the docs
func Register(app *fiber.App, h Handlers, cfg *config.Config) {
	app.Use(middleware.Theme(cfg))
	app.Use(middleware.OptionalAuth(cfg))

	// Health check
	app.Get("/health", h.Health.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1", middleware.NoCacheHeaders())
	setupAPIV1Routes(apiV1, h, cfg)

	setupPageRoutes(app, h, cfg)
}

// setupPageRoutes configures the server-rendered pages
func setupPageRoutes(router fiber.Router, h Handlers, cfg *config.Config) {
	router.Get("/", h.Content.Home)
	router.Get("/about", h.Content.About)
	router.Get("/blog", h.Content.BlogPage)
	router.Get("/blog/:slug", h.Content.PostPage)
	router.Get("/help", h.Content.HelpPage)

	router.Get("/donation-requests", h.Request.PendingPage)
	router.Get("/donation-requests/:id", middleware.RequireAuth(cfg), h.Request.DetailsPage)
	router.Get("/search", h.Request.SearchPage)

	router.Get("/funding", h.Funding.FundingPage)
	router.Post("/funding/checkout", middleware.RequireAuth(cfg), middleware.StrictRateLimiter(), h.Funding.CheckoutForm)
	router.Get("/payment-success", middleware.NoCacheHeaders(), h.Funding.PaymentSuccess)

	router.Get("/contact", h.Contact.Form)
	router.Post("/contact", middleware.StrictRateLimiter(), h.Contact.SubmitForm)

	router.Post("/theme/toggle", h.Theme.Toggle)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(router fiber.Router, h Handlers, cfg *config.Config) {
	// API Info
	router.Get("/", h.Health.APIInfo)

	// Donation requests
	router.Get("/donation-requests", h.Request.ListPending)
	router.Get("/donation-requests/:id", middleware.RequireAuth(cfg), h.Request.GetRequest)
	router.Get("/search-requests", h.Request.Search)

	// Funding
	router.Get("/funding", h.Funding.ListFunding)
	router.Post("/funding/checkout", middleware.RequireAuth(cfg), middleware.StrictRateLimiter(), h.Funding.Checkout)

	// Content
	router.Get("/blog", h.Content.ListPosts)
	router.Get("/blog/:slug", h.Content.GetPost)
	router.Get("/help", h.Content.ListFAQs)

	router.Post("/contact", middleware.StrictRateLimiter(), h.Contact.Submit)
	router.Put("/theme", h.Theme.Set)

	// Reference data
	locationRoutes := router.Group("/locations", middleware.ReferenceDataCache())
	setupLocationRoutes(locationRoutes, h.Location)
}

// setupLocationRoutes configures district/upazila routes
func setupLocationRoutes(router fiber.Router, handler *handlers.LocationHandler) {
	router.Get("/districts", handler.Districts)
	router.Get("/upazilas", handler.Upazilas)
}
