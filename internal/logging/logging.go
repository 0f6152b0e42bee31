// Package logging builds the structured logger shared by cmd/server and
// cmd/devetect, grounded on the teacher's geoip.InitLogger/*slog.Logger
// injection idiom and on the teacher's lumberjack-backed log rotation
// dependency.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/simplecastapps/go-device-detector/internal/config"
)

// New builds a *slog.Logger that writes JSON lines to stdout, and
// additionally to a rotating file under cfg.LogsDirectory when the
// environment is not development.
func New(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.GetLogLevel())

	var out io.Writer = os.Stdout
	if !cfg.IsDevelopment() {
		rotator := &lumberjack.Logger{
			Filename:   cfg.GetLogDirectory() + "/" + cfg.AppName + ".log",
			MaxSize:    cfg.GetLogMaxSizeMB(),
			MaxBackups: cfg.GetLogMaxBackups(),
			MaxAge:     cfg.GetLogMaxAgeDays(),
		}
		out = io.MultiWriter(os.Stdout, rotator)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", cfg.AppName), slog.String("env", cfg.Environment))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
