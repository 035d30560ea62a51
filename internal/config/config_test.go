package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults, omitted fields kept", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		data := "sourceSuffixes: [c, h]\nbaseBranch: origin/develop\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ToolConfigFile), []byte(data), 0o600))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "h"}, cfg.SourceSuffixes)
		assert.Equal(t, "origin/develop", cfg.BaseBranch)
		assert.Equal(t, Default().CoreDirs, cfg.CoreDirs)
		assert.Equal(t, Default().IgnoredPaths, cfg.IgnoredPaths)
	})

	t.Run("explicit empty baseBranch falls back to the default", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ToolConfigFile), []byte(`baseBranch: ""`), 0o600))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseBranch, cfg.BaseBranch)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ToolConfigFile), []byte("sourceSuffixes: ["), 0o600))

		_, err := Load(dir)
		var yamlErr *InvalidYAMLError
		require.ErrorAs(t, err, &yamlErr)
	})

	t.Run("suffix with dot rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ToolConfigFile), []byte("sourceSuffixes: ['.c']"), 0o600))

		_, err := Load(dir)
		var sErr *InvalidSuffixError
		require.ErrorAs(t, err, &sErr)
	})

	t.Run("empty coreDirs rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ToolConfigFile), []byte("coreDirs: []"), 0o600))

		_, err := Load(dir)
		var mErr *MissingPropertyError
		require.ErrorAs(t, err, &mErr)
		assert.Equal(t, "coreDirs", mErr.Property)
	})
}

func TestHasSourceSuffix(t *testing.T) {
	t.Parallel()
	cfg := Default()

	tests := []struct {
		path string
		want bool
	}{
		{"quantum/matrix.c", true},
		{"quantum/matrix.h", true},
		{"tests/basic/test.cpp", true},
		{"docs/readme.md", false},
		{"src/a.py", false},
		{"quantum/matrix.C", false}, // case sensitive
		{"Makefile", false},         // no dot
		{"quantum/a.c.orig", false}, // suffix is text after the LAST dot
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.HasSourceSuffix(tt.path), tt.path)
	}
}

func TestIgnoredMatching(t *testing.T) {
	t.Parallel()
	cfg := Default()

	t.Run("ContainsIgnored matches substrings anywhere", func(t *testing.T) {
		t.Parallel()
		assert.True(t, cfg.ContainsIgnored("quantum/template/base/x.c"))
		assert.True(t, cfg.ContainsIgnored("nested/quantum/template/x.c"))
		assert.False(t, cfg.ContainsIgnored("quantum/core.c"))
	})

	t.Run("HasIgnoredPrefix matches only the start", func(t *testing.T) {
		t.Parallel()
		assert.True(t, cfg.HasIgnoredPrefix("platforms/chibios/boot.c"))
		assert.False(t, cfg.HasIgnoredPrefix("nested/platforms/chibios/boot.c"))
	})
}
