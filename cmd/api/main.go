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

	httptransport "github.com/civiclens/report-service/internal/api/http"
	"github.com/civiclens/report-service/internal/api/http/handlers"
	"github.com/civiclens/report-service/internal/auth"
	"github.com/civiclens/report-service/internal/config"
	"github.com/civiclens/report-service/internal/events"
	"github.com/civiclens/report-service/internal/observability"
	"github.com/civiclens/report-service/internal/persistence"
	"github.com/civiclens/report-service/internal/repository"
	"github.com/civiclens/report-service/internal/service"
	"github.com/civiclens/report-service/internal/uploads"
	"github.com/civiclens/report-service/internal/verify"
	"github.com/civiclens/report-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	feedCache := repository.NewFeedCache(redis.Client, time.Duration(cfg.Intake.FeedCacheTTLSeconds)*time.Second)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	gate := verify.NewGate(verify.Options{
		Tick:   cfg.Verification.ScanTick(),
		Step:   cfg.Verification.ScanStepPercent,
		Logger: logger,
	})
	defer gate.Shutdown()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	intakeService := service.NewIntakeService(cfg.Intake, service.IntakeDependencies{
		ComplaintRepo: complaintRepo,
		FeedCache:     feedCache,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	lifecycleService := service.NewLifecycleService(cfg.Intake, service.LifecycleDependencies{
		ComplaintRepo: complaintRepo,
		FeedCache:     feedCache,
		Gate:          gate,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	uploader := uploads.NewHTTPUploader(cfg.Uploads)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Uploads:        handlers.NewUploadsHandler(uploader),
		Complaints:     handlers.NewComplaintsHandler(intakeService, lifecycleService),
		AuthMiddleware: authMiddleware,
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
