package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(LogConfig{Level: "info", Format: "json"}, &buf)

		logger.Debug("hidden")
		logger.Info("shown", "component", "test")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Same(t, logger, slog.Default())
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(LogConfig{Level: "debug", Format: "text"}, &buf)

		logger.Debug("visible")

		assert.Contains(t, buf.String(), "msg=visible")
	})
}
