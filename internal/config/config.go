// Package config holds the tool configuration: which file suffixes count as
// formattable sources, which top-level directories are in scope, and which
// path prefixes are excluded. Compiled-in defaults can be overridden by an
// optional fwtool.yml at the repository root.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const ToolConfigFile = "fwtool.yml"

// DefaultBaseBranch is the reference branch-diff selection compares against
// unless overridden on the command line or in fwtool.yml.
const DefaultBaseBranch = "origin/master"

type Config struct {
	// SourceSuffixes is the set of recognised source-file extensions,
	// matched case-sensitively against the text after the last '.'.
	SourceSuffixes []string `yaml:"sourceSuffixes"`

	// CoreDirs are the top-level directories in scope for whole-repo and
	// branch-diff scans, in scan order.
	CoreDirs []string `yaml:"coreDirs"`

	// IgnoredPaths are path prefixes excluded even when otherwise in scope.
	IgnoredPaths []string `yaml:"ignoredPaths"`

	// BaseBranch is the default base reference for branch-diff scans.
	BaseBranch string `yaml:"baseBranch"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		SourceSuffixes: []string{"c", "h", "cpp"},
		CoreDirs:       []string{"drivers", "quantum", "tests", "tmk_core", "platforms"},
		IgnoredPaths:   []string{"tmk_core/protocol/usb_hid", "quantum/template", "platforms/chibios"},
		BaseBranch:     DefaultBaseBranch,
	}
}

// Load reads fwtool.yml from rootDir if present, falling back to Default.
// Fields omitted from the file keep their default values.
func Load(rootDir string) (*Config, error) {
	cfg := Default()

	configPath := filepath.Join(rootDir, ToolConfigFile)
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}

	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}

	if vErr := cfg.Validate(); vErr != nil {
		return nil, vErr
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.SourceSuffixes) == 0 {
		return &MissingPropertyError{Property: "sourceSuffixes"}
	}
	for _, s := range c.SourceSuffixes {
		if s == "" || strings.Contains(s, ".") {
			return &InvalidSuffixError{Suffix: s}
		}
	}
	if len(c.CoreDirs) == 0 {
		return &MissingPropertyError{Property: "coreDirs"}
	}
	return nil
}

// HasSourceSuffix reports whether the text after the last '.' in path is a
// recognised source suffix. Paths without a '.' never match.
func (c *Config) HasSourceSuffix(path string) bool {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return false
	}
	suffix := path[idx+1:]
	for _, s := range c.SourceSuffixes {
		if suffix == s {
			return true
		}
	}
	return false
}

// ContainsIgnored reports whether any ignored path prefix appears anywhere
// in path. Substring matching, not path-segment matching.
func (c *Config) ContainsIgnored(path string) bool {
	for _, ig := range c.IgnoredPaths {
		if strings.Contains(path, ig) {
			return true
		}
	}
	return false
}

// HasIgnoredPrefix reports whether path starts with any ignored path prefix.
func (c *Config) HasIgnoredPrefix(path string) bool {
	for _, ig := range c.IgnoredPaths {
		if strings.HasPrefix(path, ig) {
			return true
		}
	}
	return false
}
