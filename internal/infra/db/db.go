package db

import (
	"time"

	"github.com/slyt3/fyyur/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	lvl := logger.Warn
	if cfg.Log.Level == "debug" {
		lvl = logger.Info
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.ConnString()), &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return d, nil
}

// RegisterOpenTelemetryPlugin adds query spans; call after the tracer provider is set.
func RegisterOpenTelemetryPlugin(d *gorm.DB) error {
	return d.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}
