package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBuildDSNUsesUTC(t *testing.T) {
	dsn := buildDSN(DatabaseConfig{Host: "db", Port: "3306", User: "web", Password: "pw", DBName: "bloodlink_web"})
	assert.Equal(t, "web:pw@tcp(db:3306)/bloodlink_web?charset=utf8mb4&parseTime=True&loc=UTC", dsn)
}

func TestHealthCheckWithoutConnection(t *testing.T) {
	prev := DB
	DB = nil
	t.Cleanup(func() { DB = prev })

	assert.EqualError(t, HealthCheck(), "content store not initialized")
}

func TestContentStoreLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	contentStoreLogger(&Config{AppMode: "prod"}, l).Info(context.Background(), "migrated %d tables", 3)
	assert.Empty(t, buf.String())

	contentStoreLogger(&Config{AppMode: "dev"}, l).Info(context.Background(), "migrated %d tables", 3)
	assert.Contains(t, buf.String(), "migrated 3 tables")
	assert.Contains(t, buf.String(), `"component":"gorm"`)
}
