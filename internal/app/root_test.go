package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/firmforge/fwtool/internal/format"
)

func newTestRootCmd(mockMgr *MockManager) (*LazyManager, *bytes.Buffer, *bytes.Buffer, *slog.LevelVar) {
	lazy := &LazyManager{}
	lazy.SetInner(mockMgr) // pre-hydrate so PersistentPreRunE skips real wiring

	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return lazy, stdout, stderr, ll
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("dispatches to the cformat subcommand", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("CFormat", mock.Anything, mock.Anything, "text", true).Return(nil)

		lazy, stdout, stderr, ll := newTestRootCmd(mockMgr)
		cmd := NewRootCmd(lazy, ll, stdout, stderr, &mockEnvProvider{})
		cmd.SetArgs([]string{"cformat", "-a"})
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)

		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mockMgr.AssertExpectations(t)
	})

	t.Run("nocolour disables colour in the report", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("CFormat", mock.Anything, mock.Anything, "text", false).Return(nil)

		lazy, stdout, stderr, ll := newTestRootCmd(mockMgr)
		cmd := NewRootCmd(lazy, ll, stdout, stderr, &mockEnvProvider{})
		cmd.SetArgs([]string{"--nocolour", "cformat", "-a"})
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)

		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mockMgr.AssertExpectations(t)
	})

	t.Run("debug flag raises the log level", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("CFormat", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		lazy, stdout, stderr, ll := newTestRootCmd(mockMgr)
		cmd := NewRootCmd(lazy, ll, stdout, stderr, &mockEnvProvider{})
		cmd.SetArgs([]string{"--debug", "cformat", "-a"})
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)

		require.NoError(t, cmd.ExecuteContext(context.Background()))
		assert.Equal(t, slog.LevelDebug, ll.Level())
	})

	t.Run("root without arguments shows help", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		lazy, stdout, stderr, ll := newTestRootCmd(mockMgr)
		cmd := NewRootCmd(lazy, ll, stdout, stderr, &mockEnvProvider{})
		cmd.SetArgs([]string{})
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)

		require.NoError(t, cmd.ExecuteContext(context.Background()))
		assert.Contains(t, stdout.String(), "cformat")
	})
}

func TestLazyManager(t *testing.T) {
	t.Parallel()

	t.Run("panics before initialisation", func(t *testing.T) {
		t.Parallel()
		lazy := &LazyManager{}
		assert.False(t, lazy.HasInner())
		assert.Panics(t, func() {
			_ = lazy.CFormat(context.Background(), format.Options{}, "text", true)
		})
	})

	t.Run("delegates after SetInner", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("CFormat", mock.Anything, mock.Anything, "text", true).Return(nil)

		lazy := &LazyManager{}
		lazy.SetInner(mockMgr)
		assert.True(t, lazy.HasInner())

		require.NoError(t, lazy.CFormat(context.Background(), format.Options{}, "text", true))
		mockMgr.AssertExpectations(t)
	})
}
