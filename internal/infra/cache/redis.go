package cache

import (
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/slyt3/fyyur/internal/config"
)

// New returns nil when no redis address is configured.
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	return redisotel.InstrumentTracing(rdb)
}
