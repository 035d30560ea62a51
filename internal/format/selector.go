package format

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/firmforge/fwtool/internal/ci"
	"github.com/firmforge/fwtool/internal/config"
	"github.com/firmforge/fwtool/internal/fsh"
	"github.com/firmforge/fwtool/internal/repo"
)

// statFile is a variable for os.Stat to allow mocking in tests.
var statFile = os.Stat

// Selector produces the candidate file list for one invocation. It holds no
// mutable state: Select can be called repeatedly (watch mode does).
type Selector struct {
	cfg        *config.Config
	logger     *slog.Logger
	changesets ci.Reader
	gitter     repo.Gitter
	walker     fsh.Walker
	resolver   fsh.PathResolver
}

// NewSelector creates a Selector with the given collaborators.
func NewSelector(
	cfg *config.Config,
	logger *slog.Logger,
	changesets ci.Reader,
	gitter repo.Gitter,
	walker fsh.Walker,
	resolver fsh.PathResolver,
) *Selector {
	return &Selector{
		cfg:        cfg,
		logger:     logger,
		changesets: changesets,
		gitter:     gitter,
		walker:     walker,
		resolver:   resolver,
	}
}

// Select resolves the mode from opts and returns the candidate file list.
//
// An empty list with a nil error is returned only in changeset mode when the
// manifest holds no matching source files: that is a successful no-op, not a
// failure. Every other empty selection is a NoFilesSelectedError.
func (s *Selector) Select(ctx context.Context, opts Options) ([]string, error) {
	var files []string
	var err error

	mode := opts.Mode()
	switch mode {
	case ModeChangeset:
		return s.selectChangeset(opts)
	case ModeExplicit:
		files, err = s.selectExplicit(opts)
	case ModeAllFiles:
		files, err = s.selectAllFiles()
	default:
		files, err = s.selectBranchDiff(ctx, opts)
	}
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, &NoFilesSelectedError{}
	}

	s.logger.Debug("selected files", "mode", mode.String(), "count", len(files))
	return files, nil
}

func (s *Selector) selectChangeset(opts Options) ([]string, error) {
	if len(opts.Files) > 0 || opts.AllFiles {
		s.logger.Warn("Filename or -a passed with --ci, only formatting CI files.")
	}

	changed, err := s.changesets.Changed()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, file := range changed {
		if s.cfg.HasSourceSuffix(file) {
			files = append(files, file)
		}
	}

	if len(files) == 0 {
		s.logger.Info("No matching source files in changeset: " + strings.Join(changed, ", "))
		return nil, nil
	}

	return files, nil
}

func (s *Selector) selectExplicit(opts Options) ([]string, error) {
	if opts.AllFiles {
		s.logger.Warn("Filenames passed with -a, only formatting: " + strings.Join(opts.Files, ","))
	}

	files := make([]string, 0, len(opts.Files))
	for _, file := range opts.Files {
		normalized, err := s.resolver.Abs(file)
		if err != nil {
			return nil, err
		}
		files = append(files, normalized)
	}

	return files, nil
}

func (s *Selector) selectAllFiles() ([]string, error) {
	all, err := s.walker.SourceFiles(s.cfg.CoreDirs, s.cfg.HasSourceSuffix)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, file := range all {
		if !s.cfg.ContainsIgnored(file) {
			files = append(files, file)
		}
	}

	return files, nil
}

func (s *Selector) selectBranchDiff(ctx context.Context, opts Options) ([]string, error) {
	base := opts.BaseBranch
	if base == "" {
		base = s.cfg.BaseBranch
	}

	changed, err := s.gitter.DiffNames(ctx, base, s.cfg.CoreDirs)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, file := range changed {
		if s.cfg.HasIgnoredPrefix(file) {
			continue
		}
		// The diff also reports deletions; only files still on disk count.
		if _, sErr := statFile(file); sErr != nil {
			continue
		}
		if s.cfg.HasSourceSuffix(file) {
			files = append(files, file)
		}
	}

	return files, nil
}
