package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flowx/config"
	_ "flowx/docs" // Swagger docs
	"flowx/internal/app"
	"flowx/pkg/log"
)

// @title       flowx API
// @description Daily task scheduling, lifecycle and efficiency scoring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load(os.Getenv("FLOWX_CONFIG"))
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting flowx...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Driver)

	// 3. Dependencies
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		os.Exit(1)
	}
	defer container.Close()

	// 4. Run
	if err := container.Serve(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
