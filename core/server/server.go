package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"

	"gotix-api/core/cache"
	"gotix-api/core/config"
	"gotix-api/core/database"
	"gotix-api/core/logger"
	"gotix-api/core/queue"
	"gotix-api/core/storage"
	"gotix-api/modules/auth"
	"gotix-api/modules/booking"
	"gotix-api/modules/event"
	"gotix-api/modules/notification"
	"gotix-api/modules/notification/tasks"
)

// Run wires the application together and blocks until shutdown.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Get()
	logger.Init(cfg.Log.Level)

	db, err := database.InitDB(database.DatabaseConfig(cfg.Database))
	if err != nil {
		return err
	}

	c, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("failed to init redis: %w", err)
	}

	queueClient := queue.NewClient()
	defer queueClient.Close()

	uploader := storage.NewS3Uploader(cfg.AWS)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth.Init(e, db, c)
	event.Init(e, db, c, uploader)
	notifSvc := notification.Init(e, db, c)
	bookingSvc := booking.Init(e, db, c, queueClient)

	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeBookingConfirmed, tasks.NewBookingConfirmedHandler(notifSvc))
	worker := queue.NewWorker()
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Server:Worker:Error", "error", err)
		}
	}()

	scheduler := cron.New()
	// Nightly sweep of pending bookings whose payment window lapsed.
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, appErr := bookingSvc.ExpireStalePending(ctx); appErr != nil {
			logger.Error("Server:StaleBookingSweep:Error", "error", appErr)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule stale booking sweep: %w", err)
	}
	scheduler.Start()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()
	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
