package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/slyt3/fyyur/internal/config"
	"github.com/slyt3/fyyur/internal/infra/blob"
	"github.com/slyt3/fyyur/internal/infra/cache"
	"github.com/slyt3/fyyur/internal/infra/db"
	"github.com/slyt3/fyyur/internal/infra/flash"
	"github.com/slyt3/fyyur/internal/infra/logger"
	"github.com/slyt3/fyyur/internal/infra/queue"
	"github.com/slyt3/fyyur/internal/modules/handler"
	"github.com/slyt3/fyyur/internal/modules/model"
	"github.com/slyt3/fyyur/internal/modules/repo"
	"github.com/slyt3/fyyur/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(
				&model.Venue{},
				&model.Artist{},
				&model.Show{},
			); err != nil {
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
		}
		return d, nil
	})

	// Redis, nil when not configured
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// Flash notices live in redis when available, otherwise in process memory.
	do.Provide(inj, func(i *do.Injector) (flash.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb := do.MustInvoke[*redis.Client](i)
		if rdb == nil {
			do.MustInvoke[*zap.Logger](i).Sugar().Warn("redis not configured, flash notices are kept in memory")
			return flash.NewMemoryStore(time.Duration(cfg.Flash.TTLSec) * time.Second), nil
		}
		return flash.NewRedisStore(rdb, time.Duration(cfg.Flash.TTLSec)*time.Second), nil
	})

	// RabbitMQ Connection, nil when not configured
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// Listing events publisher; a nil interface turns publishing off.
	do.Provide(inj, func(i *do.Injector) (service.EventPublisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		conn := do.MustInvoke[*amqp.Connection](i)
		if conn == nil {
			return nil, nil
		}
		return queue.NewPublisher(conn, cfg.RabbitMQ.Queue, do.MustInvoke[*zap.Logger](i))
	})

	// S3, nil when no bucket is configured
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.VenueRepo, error) {
		return repo.NewVenueRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ArtistRepo, error) {
		return repo.NewArtistRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ShowRepo, error) {
		return repo.NewShowRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.VenueService, error) {
		return service.NewVenueService(
			do.MustInvoke[repo.VenueRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ArtistService, error) {
		return service.NewArtistService(
			do.MustInvoke[repo.ArtistRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ShowService, error) {
		return service.NewShowService(
			do.MustInvoke[repo.ShowRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[service.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MediaService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		expire := do.MustInvoke[func() time.Duration](i)()
		var store service.ImageStore
		if s3 := do.MustInvoke[*blob.S3Deps](i); s3 != nil {
			store = s3
		}
		return service.NewMediaService(store, cfg.S3.KeyPrefix, expire), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.HomeHandler, error) {
		return handler.NewHomeHandler(
			do.MustInvoke[service.VenueService](i),
			do.MustInvoke[service.ArtistService](i),
			do.MustInvoke[service.MediaService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.VenueHandler, error) {
		return handler.NewVenueHandler(
			do.MustInvoke[service.VenueService](i),
			do.MustInvoke[service.MediaService](i),
			do.MustInvoke[*handler.HomeHandler](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ArtistHandler, error) {
		return handler.NewArtistHandler(
			do.MustInvoke[service.ArtistService](i),
			do.MustInvoke[service.MediaService](i),
			do.MustInvoke[*handler.HomeHandler](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ShowHandler, error) {
		return handler.NewShowHandler(
			do.MustInvoke[service.ShowService](i),
			do.MustInvoke[service.VenueService](i),
			do.MustInvoke[service.ArtistService](i),
			do.MustInvoke[*handler.HomeHandler](i),
		), nil
	})

	return inj
}
