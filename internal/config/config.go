package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the application
type Config struct {
	AppMode      string
	Port         string
	DefaultTheme string
	Database     DatabaseConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Collaborator CollaboratorConfig
	Mail         MailConfig
	Content      ContentConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds the auth provider's identity token settings
type JWTConfig struct {
	Secret   string
	Issuer   string
	LoginURL string
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// CollaboratorConfig points at the blood-donation REST API
type CollaboratorConfig struct {
	BaseURL string
	Timeout time.Duration
}

// MailConfig holds SMTP settings for contact notifications
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Inbox    string
}

// Enabled reports whether contact notifications can be sent
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.Inbox != ""
}

// ContentConfig holds local content store settings
type ContentConfig struct {
	SeedFile      string
	RetentionDays int
	PurgeSchedule string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	collaborator, err := loadCollaboratorConfig()
	if err != nil {
		return nil, err
	}
	mail, err := loadMailConfig()
	if err != nil {
		return nil, err
	}
	content, err := loadContentConfig()
	if err != nil {
		return nil, err
	}
	jwtConfig, err := loadJWTConfig(appMode)
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:      appMode,
		Port:         getEnv("PORT", "3000"),
		DefaultTheme: getEnv("DEFAULT_THEME", "light"),
		Database:     loadDatabaseConfig(appMode),
		JWT:          jwtConfig,
		Cookie:       loadCookieConfig(appMode),
		Collaborator: collaborator,
		Mail:         mail,
		Content:      content,
	}

	AppConfig = config

	log.Info().Str("mode", appMode).Str("collaborator", collaborator.BaseURL).Msg("configuration loaded")
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "bloodlink_web"),
	}
}

// DevLoginURL is the auth provider login page assumed in dev mode
const DevLoginURL = "http://localhost:5173/login"

// loadJWTConfig loads auth provider settings based on mode.
// Prod has no fallback secret or login page.
func loadJWTConfig(mode string) (JWTConfig, error) {
	if mode == "prod" {
		secret := strings.TrimSpace(os.Getenv("PROD_AUTH_TOKEN_SECRET"))
		if secret == "" {
			return JWTConfig{}, fmt.Errorf("PROD_AUTH_TOKEN_SECRET is required in prod mode")
		}
		loginURL := strings.TrimSpace(os.Getenv("AUTH_LOGIN_URL"))
		if loginURL == "" {
			return JWTConfig{}, fmt.Errorf("AUTH_LOGIN_URL is required in prod mode")
		}
		return JWTConfig{
			Secret:   secret,
			Issuer:   getEnv("AUTH_TOKEN_ISSUER", ""),
			LoginURL: loginURL,
		}, nil
	}

	return JWTConfig{
		Secret:   getEnv("DEV_AUTH_TOKEN_SECRET", "dev_secret"),
		Issuer:   getEnv("AUTH_TOKEN_ISSUER", ""),
		LoginURL: getEnv("AUTH_LOGIN_URL", DevLoginURL),
	}, nil
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadCollaboratorConfig() (CollaboratorConfig, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(getEnv("COLLABORATOR_BASE_URL", "http://localhost:5000")), "/")
	if baseURL == "" {
		return CollaboratorConfig{}, fmt.Errorf("COLLABORATOR_BASE_URL is required")
	}
	seconds, err := getEnvInt("COLLABORATOR_TIMEOUT_SECONDS", 15)
	if err != nil {
		return CollaboratorConfig{}, err
	}
	return CollaboratorConfig{
		BaseURL: baseURL,
		Timeout: time.Duration(seconds) * time.Second,
	}, nil
}

func loadMailConfig() (MailConfig, error) {
	port, err := getEnvInt("SMTP_PORT", 587)
	if err != nil {
		return MailConfig{}, err
	}
	return MailConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     port,
		User:     getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@bloodlink.local"),
		Inbox:    getEnv("CONTACT_INBOX", ""),
	}, nil
}

func loadContentConfig() (ContentConfig, error) {
	days, err := getEnvInt("CONTACT_RETENTION_DAYS", 90)
	if err != nil {
		return ContentConfig{}, err
	}
	return ContentConfig{
		SeedFile:      getEnv("CONTENT_SEED_FILE", ""),
		RetentionDays: days,
		PurgeSchedule: getEnv("CONTACT_PURGE_SCHEDULE", "0 3 * * *"),
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid %s: '%s' (must be a non-negative integer)", key, value)
	}
	return i, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://bloodlink.example.org"
	}
	return origins
}
