package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/content-gateway/internal/api/http"
	"github.com/spec-kit/content-gateway/internal/api/http/handlers"
	"github.com/spec-kit/content-gateway/internal/api/middleware"
	"github.com/spec-kit/content-gateway/internal/config"
	"github.com/spec-kit/content-gateway/internal/content"
	"github.com/spec-kit/content-gateway/internal/locale"
	"github.com/spec-kit/content-gateway/internal/notify"
	"github.com/spec-kit/content-gateway/internal/observability"
	"github.com/spec-kit/content-gateway/internal/persistence"
	"github.com/spec-kit/content-gateway/internal/repository"
	"github.com/spec-kit/content-gateway/internal/routeguard"
	"github.com/spec-kit/content-gateway/internal/service"
	"github.com/spec-kit/content-gateway/internal/session"
	"github.com/spec-kit/content-gateway/internal/session/registry"
	"github.com/spec-kit/content-gateway/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	locales := locale.NewSet(cfg.Locale.Supported, cfg.Locale.Default)
	guard := routeguard.New(locales, cfg.Routes.ProtectedPrefixes, cfg.Routes.AuthOnlyPrefixes)

	api, err := upstream.New(cfg.Upstream, logger)
	if err != nil {
		logger.Fatal("failed to build upstream client", zap.Error(err))
	}
	contentService := content.NewService(api)

	sessionRegistry := registry.New(redis.Client, 12*time.Hour, cfg.Session.RememberDays)
	tokenCodec := session.NewTokenCodec(cfg.Session.JWTSecret)
	toasts := notify.NewStore(cfg.Notify.ToastTTL())

	bookmarkRepo := repository.NewBookmarkRepository(pg.PoolHandle())
	bookmarkService := service.NewBookmarkService(bookmarkRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Locales:       locales,
		Session:       middleware.Session(cfg.Session, tokenCodec, sessionRegistry, logger),
		Guard:         middleware.Guard(guard),
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, api),
		Home:          handlers.NewHomeHandler(locales),
		Auth:          handlers.NewAuthHandler(contentService, sessionRegistry, toasts, logger),
		Content:       handlers.NewContentHandler(contentService),
		Bookmarks:     handlers.NewBookmarksHandler(bookmarkService, toasts),
		Notifications: handlers.NewNotificationsHandler(toasts),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
