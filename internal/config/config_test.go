package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("COLLABORATOR_BASE_URL", "")
	t.Setenv("COLLABORATOR_TIMEOUT_SECONDS", "")
	t.Setenv("CONTACT_RETENTION_DAYS", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("AUTH_LOGIN_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, DevLoginURL, cfg.JWT.LoginURL)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:5000", cfg.Collaborator.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Collaborator.Timeout)
	assert.Equal(t, 90, cfg.Content.RetentionDays)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
	assert.Same(t, cfg, AppConfig)
}

func TestLoadProdUsesPrefixedSettings(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_DB_NAME", "bloodlink_prod")
	t.Setenv("PROD_AUTH_TOKEN_SECRET", "prod-secret")
	t.Setenv("AUTH_LOGIN_URL", "https://auth.bloodlink.example.org/login")
	t.Setenv("COLLABORATOR_BASE_URL", "https://api.bloodlink.example.org/")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "bloodlink_prod", cfg.Database.DBName)
	assert.Equal(t, "prod-secret", cfg.JWT.Secret)
	assert.Equal(t, "https://auth.bloodlink.example.org/login", cfg.JWT.LoginURL)
	assert.Equal(t, "https://api.bloodlink.example.org", cfg.Collaborator.BaseURL)
	assert.Equal(t, "https://bloodlink.example.org", cfg.GetAllowedOrigins())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("APP_MODE", "dev")
	t.Setenv("COLLABORATOR_TIMEOUT_SECONDS", "soon")
	_, err = Load()
	assert.Error(t, err)
	t.Setenv("COLLABORATOR_TIMEOUT_SECONDS", "")

	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_AUTH_TOKEN_SECRET", "")
	t.Setenv("AUTH_LOGIN_URL", "https://auth.bloodlink.example.org/login")
	_, err = Load()
	assert.ErrorContains(t, err, "PROD_AUTH_TOKEN_SECRET")

	t.Setenv("PROD_AUTH_TOKEN_SECRET", "prod-secret")
	t.Setenv("AUTH_LOGIN_URL", "")
	_, err = Load()
	assert.ErrorContains(t, err, "AUTH_LOGIN_URL")
}

func TestMailEnabled(t *testing.T) {
	assert.False(t, MailConfig{Host: "smtp.example.org"}.Enabled())
	assert.True(t, MailConfig{Host: "smtp.example.org", Inbox: "team@example.org"}.Enabled())
}
