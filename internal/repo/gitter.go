// Package repo wraps the version-control operations the tool needs.
package repo

import (
	"context"
)

// Gitter defines the interface for git repository operations.
type Gitter interface {
	// DiffNames returns the paths changed between the working tree and base,
	// restricted to the given directory scopes, in diff output order.
	DiffNames(ctx context.Context, base string, scopes []string) ([]string, error)
}
