package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"NewsPulse/internal/app"
	"NewsPulse/internal/config"
	"NewsPulse/internal/infrastructure/storage"
	"NewsPulse/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	db, err := storage.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := storage.EnsureSchema(ctx, db); err != nil {
		logger.Error("schema setup failed", "error", err)
		os.Exit(1)
	}

	application := app.New(cfg, db, logger)

	if len(os.Args) > 1 && os.Args[1] == "once" {
		if err := application.RunOnce(ctx); err != nil {
			logger.Error("run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := application.Start(ctx); err != nil {
		logger.Error("scheduler start failed", "error", err)
		os.Exit(1)
	}
	logger.Info("scheduler started", "cron", cfg.Scheduler.CronExpression)

	<-ctx.Done()
	_ = application.Stop(context.Background())
	logger.Info("shutdown complete")
}
