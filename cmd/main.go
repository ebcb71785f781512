package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"techblog/config"
	"techblog/internal/app"
	"techblog/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Error("init app", "error", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Error("app stopped", "error", err)
		os.Exit(1)
	}
	log.Info("app stopped")
}
