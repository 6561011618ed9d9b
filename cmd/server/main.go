package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloodlink-web/internal/adapters/http/middleware"
	"bloodlink-web/internal/adapters/http/routes"
	"bloodlink-web/internal/adapters/persistence/models"
	"bloodlink-web/internal/adapters/persistence/repositories"
	"bloodlink-web/internal/config"
	"bloodlink-web/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "bloodlink-web/docs" // Swagger docs
)

// @title BloodLink Web API
// @version 1.0
// @description JSON views of the BloodLink blood-donation site: donation requests, search, funding, blog, help and contact.

// @contact.name BloodLink Support
// @contact.email support@bloodlink.example.org

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.New(cfg.AppMode)
	log.Logger = appLog

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		appLog.Fatal().Err(err).Msg("failed to auto migrate")
	}
	appLog.Info().Msg("database migration completed")

	// Seed blog posts and FAQs
	seed, err := config.LoadContentSeed(cfg.Content.SeedFile)
	if err != nil {
		appLog.Fatal().Err(err).Str("file", cfg.Content.SeedFile).Msg("failed to load content seed")
	}
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := config.NewContentSeeder(repositories.NewContentRepository(db)).Run(seedCtx, seed); err != nil {
		appLog.Warn().Err(err).Msg("failed to seed content")
	}
	cancelSeed()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "BloodLink Web v1.0",
		ErrorHandler: middleware.ErrorHandler(cfg),
	})

	// Setup middlewares
	middleware.Setup(app, cfg, appLog)

	// Setup routes
	cronService, err := routes.Setup(app, db, cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to set up routes")
	}

	// Contact message retention
	cronService.Start()
	defer cronService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app, appLog)

	// Start server
	appLog.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLog.Error().Err(err).Msg("server stopped")
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped gracefully")
}
