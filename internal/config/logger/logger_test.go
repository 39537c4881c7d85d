package logger

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"dockhand/internal/config"
)

func newConfig(level, format string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = level
	cfg.Logging.Format = format

	return cfg
}

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected zerolog.Level
	}{
		{name: "Default", cfg: config.DefaultConfig(), expected: zerolog.InfoLevel},
		{name: "Debug level", cfg: newConfig(DebugLevel, ConsoleFormat), expected: zerolog.DebugLevel},
		{name: "Warn level and json format", cfg: newConfig(WarnLevel, JSONFormat), expected: zerolog.WarnLevel},
		{name: "Empty level and format (defaults)", cfg: newConfig("", ""), expected: zerolog.InfoLevel},
		{name: "Error level", cfg: newConfig(ErrorLevel, ConsoleFormat), expected: zerolog.ErrorLevel},
		{name: "Trace level", cfg: newConfig(TraceLevel, ConsoleFormat), expected: zerolog.TraceLevel},
		{name: "Unknown format (defaults to console)", cfg: newConfig(InfoLevel, "unknown"), expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			assert.NotNil(t, logger)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_NewLogger_FillsEmptySettings(t *testing.T) {
	cfg := newConfig("", "")

	NewLogger(cfg)

	assert.Equal(t, InfoLevel, cfg.Logging.Level)
	assert.Equal(t, ConsoleFormat, cfg.Logging.Format)
}

func Test_NewLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithOutput(newConfig(DebugLevel, JSONFormat), &buf)
	logger.Debug().Str("key", "value").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"message":"hello"`)
	assert.Contains(t, out, `"key":"value"`)
	assert.Contains(t, out, `"app":"dockhand"`)
	assert.Contains(t, out, `"version":"`+config.Version+`"`)
}

func Test_WithComponent(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithOutput(newConfig(InfoLevel, JSONFormat), &buf).WithComponent("API")
	logger.Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"API"`)
}

func Test_NewSilentLogger(t *testing.T) {
	logger := NewSilentLogger(newConfig(DebugLevel, ConsoleFormat))

	assert.NotNil(t, logger)
	logger.Error().Err(errors.New("discarded")).Msg("nothing printed")
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Fatal", level: FatalLevel, expected: zerolog.FatalLevel},
		{name: "Panic", level: PanicLevel, expected: zerolog.PanicLevel},
		{name: "Trace", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Unknown", level: "unknown", expected: zerolog.InfoLevel},
		{name: "Empty", level: "", expected: zerolog.InfoLevel},
		{name: "Upper case", level: "WARN", expected: zerolog.WarnLevel},
		{name: "Padded", level: " debug ", expected: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}

func Test_zerologEvent(t *testing.T) {
	logger := NewLoggerWithOutput(newConfig(DebugLevel, JSONFormat), io.Discard)

	event := logger.Debug()

	assert.NotNil(t, event.Str("key", "value"))
	assert.NotNil(t, event.Int("count", 42))
	assert.NotNil(t, event.Dur("duration", time.Second))
	assert.NotNil(t, event.Err(errors.New("test error")))

	event.Msg("test message")
}
