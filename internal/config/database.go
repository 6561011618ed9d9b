package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	contentStoreMaxIdle  = 5
	contentStoreMaxOpen  = 25
	contentStorePingWait = 2 * time.Second
	slowQueryThreshold   = 200 * time.Millisecond
)

// DB is the global content store instance
var DB *gorm.DB

// gormWriter forwards gorm's printf-style log lines to zerolog
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// contentStoreLogger logs every statement in dev and only errors otherwise.
// Missing rows are expected lookups (unknown blog slug) and stay quiet.
func contentStoreLogger(cfg *Config, l zerolog.Logger) logger.Interface {
	level := logger.Error
	if cfg.IsDev() {
		level = logger.Info
	}
	return logger.New(gormWriter{log: l}, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// ConnectDatabase opens the MySQL content store (blog posts, FAQs, contact messages)
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(buildDSN(cfg.Database)), &gorm.Config{
		Logger:                 contentStoreLogger(cfg, log.Logger),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open content store %s: %w", cfg.Database.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("content store handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(contentStoreMaxIdle)
	sqlDB.SetMaxOpenConns(contentStoreMaxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), contentStorePingWait)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping content store %s:%s: %w", cfg.Database.Host, cfg.Database.Port, err)
	}

	DB = db

	log.Info().
		Str("host", cfg.Database.Host).
		Str("port", cfg.Database.Port).
		Str("db", cfg.Database.DBName).
		Msg("content store connected")

	return db, nil
}

// buildDSN returns the MySQL DSN. Times are stored and read as UTC.
func buildDSN(d DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
	)
}

// CloseDatabase closes the content store
func CloseDatabase() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// HealthCheck pings the content store, giving up after a short wait
func HealthCheck() error {
	if DB == nil {
		return fmt.Errorf("content store not initialized")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), contentStorePingWait)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
