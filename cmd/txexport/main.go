package main

import (
	"context"
	"os"
	"time"

	"github.com/gabapcia/txexport/internal/config"
	"github.com/gabapcia/txexport/internal/handlers/cli"
	"github.com/gabapcia/txexport/internal/pkg/logger"
	"github.com/gabapcia/txexport/internal/pkg/telemetry"
)

const serviceName = "txexport"

// shutdownTimeout bounds the flush of telemetry on exit.
const shutdownTimeout = 5 * time.Second

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		_ = logger.Init()
		logger.Error(ctx, "invalid configuration", "error", err)
		return 1
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			_ = logger.Init(logger.WithLevel(cfg.LogLevel))
			logger.Error(ctx, "failed to initialize telemetry", "error", err)
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				logger.Error(ctx, "failed to shut down telemetry", "error", err)
			}
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := cli.Run(ctx, cfg); err != nil {
		logger.Error(ctx, "txexport failed", "error", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(context.Background()))
}
