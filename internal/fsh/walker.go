package fsh

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Walker enumerates source files below a set of directories.
type Walker interface {
	// SourceFiles returns every file under the given directories (recursively)
	// whose name matches the keep predicate. Directories that do not exist are
	// skipped rather than reported as errors.
	SourceFiles(dirs []string, keep func(path string) bool) ([]string, error)
}

// FSWalker is the default Walker backed by the local filesystem.
type FSWalker struct{}

// NewWalker creates a new FSWalker.
func NewWalker() *FSWalker {
	return &FSWalker{}
}

// SourceFiles walks each directory in order so the returned list is stable
// across invocations.
func (w *FSWalker) SourceFiles(dirs []string, keep func(path string) bool) ([]string, error) {
	var files []string

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if keep == nil || keep(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}
