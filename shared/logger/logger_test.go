package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"tavola/config"
	"tavola/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel zerolog.Level
	}{
		{name: "configured level", logLevel: "warn", wantLevel: zerolog.WarnLevel},
		{name: "unset level", logLevel: "", wantLevel: zerolog.InfoLevel},
		{name: "unknown level", logLevel: "chatty", wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.Setup(cfg, &bytes.Buffer{})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetup_JSONWithAppName(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.App.Name = "tavola"

	var buf bytes.Buffer
	logger.Setup(cfg, &buf)

	log.Info().Str("session", "s1").Msg("session started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "tavola", entry["app"])
	assert.Equal(t, "s1", entry["session"])
	assert.Equal(t, "session started", entry["message"])
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"

	var buf bytes.Buffer
	logger.Setup(cfg, &buf)

	logger.ErrorWithStack(errors.New("lock table"))

	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "lock table")
	assert.Contains(t, buf.String(), "logger_test.go")
}
