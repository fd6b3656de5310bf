package main

//	@title			Fyyur API
//	@version		1.0
//	@description	Venues, artists and the shows that link them. Every page is also served as JSON when the client sends Accept: application/json.
//	@schemes		http https
//	@BasePath		/

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/slyt3/fyyur/internal/bootstrap"
	"github.com/slyt3/fyyur/internal/config"
	"github.com/slyt3/fyyur/internal/infra/cache"
	dbpkg "github.com/slyt3/fyyur/internal/infra/db"
	"github.com/slyt3/fyyur/internal/infra/flash"
	"github.com/slyt3/fyyur/internal/infra/queue"
	"github.com/slyt3/fyyur/internal/modules/handler"
	"github.com/slyt3/fyyur/internal/modules/service"
	"github.com/slyt3/fyyur/internal/router"
	"github.com/slyt3/fyyur/internal/telemetry"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	// Setup OpenTelemetry tracing (using configuration system)
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Register GORM OpenTelemetry plugin after tracer provider is set
		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		} else {
			log.Sugar().Info("GORM OpenTelemetry plugin registered")
		}

		// Register Redis OpenTelemetry plugin after tracer provider is set
		if rdb != nil {
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
			} else {
				log.Sugar().Info("Redis OpenTelemetry plugin registered")
			}
		}
	}

	if conn := do.MustInvoke[*amqp.Connection](inj); conn != nil {
		defer func() { _ = conn.Close() }()
	}
	if pub, ok := do.MustInvoke[service.EventPublisher](inj).(*queue.Publisher); ok {
		defer func() { _ = pub.Close() }()
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:        cfg,
		Log:           log,
		FlashStore:    do.MustInvoke[flash.Store](inj),
		HomeHandler:   do.MustInvoke[*handler.HomeHandler](inj),
		VenueHandler:  do.MustInvoke[*handler.VenueHandler](inj),
		ArtistHandler: do.MustInvoke[*handler.ArtistHandler](inj),
		ShowHandler:   do.MustInvoke[*handler.ShowHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Sugar().Info("server exited")
}
