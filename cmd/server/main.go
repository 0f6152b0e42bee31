// Command server runs the detection engine as an HTTP service, wiring
// config, logging, and internal/httpapi together with a signal-based
// graceful shutdown grounded on cmd/fusionaly/main.go's shutdown flow
// in the teacher.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simplecastapps/go-device-detector/internal/config"
	"github.com/simplecastapps/go-device-detector/internal/detector"
	"github.com/simplecastapps/go-device-detector/internal/httpapi"
	"github.com/simplecastapps/go-device-detector/internal/logging"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.GetConfig()
	logger := logging.New(cfg)

	det, err := detector.New(detector.Config{
		RuleCorpusDir:               cfg.RuleCorpusDir,
		EngineVersionCacheSoftLimit: cfg.EngineVersionCacheSoftLimit,
	})
	if err != nil {
		logger.Error("failed to initialize detector", slog.Any("error", err))
		os.Exit(1)
	}

	var svc httpapi.Detector = det
	if cfg.DetectionCacheSize > 0 {
		cached, err := detector.NewWithCache(det, cfg.DetectionCacheSize)
		if err != nil {
			logger.Error("failed to initialize detection cache", slog.Any("error", err))
			os.Exit(1)
		}
		svc = cached
	}

	app := httpapi.New(svc, logger)

	go func() {
		logger.Info("starting server", slog.String("address", cfg.ListenAddress()))
		if err := app.Listen(cfg.ListenAddress()); err != nil {
			logger.Error("server stopped unexpectedly", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	waitForShutdownSignal(app, logger)
}

func waitForShutdownSignal(app interface{ ShutdownWithContext(context.Context) error }, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	sig := <-sigChan
	logger.Info("received signal, shutting down", slog.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("error during shutdown", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server shutdown complete")
}
