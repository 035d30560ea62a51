package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("env var selects the log file", func(t *testing.T) {
		t.Parallel()
		tempDir := t.TempDir()
		logPath := filepath.Join(tempDir, "custom.log")
		env := &mockEnvProvider{values: map[string]string{LogEnvVar: logPath}}

		logLevel := &slog.LevelVar{}
		stderr := &bytes.Buffer{}
		logger, closer, err := setupLogger(stderr, logLevel, env)
		require.NoError(t, err)
		defer closer.Close()

		assert.NotNil(t, logger)
		assert.FileExists(t, logPath)
	})

	t.Run("console shows message, file gets structured record", func(t *testing.T) {
		t.Parallel()
		tempDir := t.TempDir()
		logPath := filepath.Join(tempDir, "fwtool.log")
		env := &mockEnvProvider{values: map[string]string{LogEnvVar: logPath}}

		logLevel := &slog.LevelVar{}
		logLevel.Set(slog.LevelInfo)
		stderr := &bytes.Buffer{}

		logger, closer, err := setupLogger(stderr, logLevel, env)
		require.NoError(t, err)
		defer closer.Close()

		logger.Info("test message", "key", "value")

		assert.Contains(t, stderr.String(), "test message")
		// Attributes stay out of console output unless debugging
		assert.NotContains(t, stderr.String(), "key=value")

		data, rErr := os.ReadFile(logPath)
		require.NoError(t, rErr)
		assert.Contains(t, string(data), `"msg":"test message"`)
		assert.Contains(t, string(data), `"key":"value"`)
	})

	t.Run("debug messages reach the file even when console is quiet", func(t *testing.T) {
		t.Parallel()
		tempDir := t.TempDir()
		logPath := filepath.Join(tempDir, "fwtool.log")
		env := &mockEnvProvider{values: map[string]string{LogEnvVar: logPath}}

		logLevel := &slog.LevelVar{}
		logLevel.Set(slog.LevelInfo)
		stderr := &bytes.Buffer{}

		logger, closer, err := setupLogger(stderr, logLevel, env)
		require.NoError(t, err)
		defer closer.Close()

		logger.Debug("quiet detail")

		assert.NotContains(t, stderr.String(), "quiet detail")
		data, rErr := os.ReadFile(logPath)
		require.NoError(t, rErr)
		assert.Contains(t, string(data), "quiet detail")
	})

	t.Run("warning and error prefixes on console", func(t *testing.T) {
		t.Parallel()
		tempDir := t.TempDir()
		env := &mockEnvProvider{values: map[string]string{LogEnvVar: filepath.Join(tempDir, "l.log")}}

		logLevel := &slog.LevelVar{}
		stderr := &bytes.Buffer{}
		logger, closer, err := setupLogger(stderr, logLevel, env)
		require.NoError(t, err)
		defer closer.Close()

		logger.Warn("conflicting flags")
		logger.Error("diff failed")

		assert.Contains(t, stderr.String(), "Warning: conflicting flags")
		assert.Contains(t, stderr.String(), "Error: diff failed")
	})
}
