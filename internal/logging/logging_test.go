package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simplecastapps/go-device-detector/internal/config"
)

func TestNewBuildsALoggerWithAppAndEnvFields(t *testing.T) {
	cfg := &config.Config{AppName: "devdetect", Environment: config.Development, LogLevel: config.LogLevelDebug}
	logger := New(cfg)
	assert.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, -4, int(parseLevel("debug")))
	assert.Equal(t, 0, int(parseLevel("info")))
	assert.Equal(t, 4, int(parseLevel("warn")))
	assert.Equal(t, 8, int(parseLevel("error")))
	assert.Equal(t, 0, int(parseLevel("")))
}
