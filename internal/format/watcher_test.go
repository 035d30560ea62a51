package format

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmforge/fwtool/internal/config"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*config.Config, string) {
		t.Helper()
		dir := t.TempDir()
		coreDir := filepath.Join(dir, "quantum")
		require.NoError(t, os.MkdirAll(filepath.Join(coreDir, "template"), 0o755))

		cfg := config.Default()
		cfg.CoreDirs = []string{coreDir}
		cfg.IgnoredPaths = []string{filepath.Join(coreDir, "template")}
		return cfg, coreDir
	}

	start := func(t *testing.T, cfg *config.Config) (*Watcher, chan string, context.CancelFunc) {
		t.Helper()
		watcher := NewWatcher(cfg, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		events := make(chan string, 10)
		go func() {
			_ = watcher.Watch(ctx, func(path string) {
				events <- path
			})
		}()

		select {
		case <-watcher.Ready:
		case <-time.After(1 * time.Second):
			t.Fatal("watcher did not become ready in time")
		}

		return watcher, events, cancel
	}

	t.Run("source file change triggers callback", func(t *testing.T) {
		t.Parallel()
		cfg, coreDir := setup(t)
		_, events, cancel := start(t, cfg)
		defer cancel()

		path := filepath.Join(coreDir, "matrix.c")
		require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o600))

		select {
		case got := <-events:
			assert.Equal(t, path, got)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for watch event")
		}
	})

	t.Run("non-source and ignored files are filtered", func(t *testing.T) {
		t.Parallel()
		cfg, coreDir := setup(t)
		_, events, cancel := start(t, cfg)
		defer cancel()

		require.NoError(t, os.WriteFile(filepath.Join(coreDir, "readme.md"), []byte("docs\n"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(coreDir, "template", "skip.c"), []byte("int y;\n"), 0o600))

		select {
		case got := <-events:
			t.Fatalf("unexpected event for %s", got)
		case <-time.After(500 * time.Millisecond):
		}
	})

	t.Run("missing core directories are skipped", func(t *testing.T) {
		t.Parallel()
		cfg, _ := setup(t)
		cfg.CoreDirs = append([]string{filepath.Join(t.TempDir(), "absent")}, cfg.CoreDirs...)

		_, _, cancel := start(t, cfg)
		cancel()
	})
}
