package ci

import (
	"fmt"
)

type ManifestReadError struct {
	Path    string
	Wrapped error
}

func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("could not read changeset manifest %s: %v", e.Path, e.Wrapped)
}

func (e *ManifestReadError) Unwrap() error { return e.Wrapped }

type InvalidManifestError struct {
	Path    string
	Wrapped error
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("changeset manifest %s is not a JSON array of paths: %v", e.Path, e.Wrapped)
}

func (e *InvalidManifestError) Unwrap() error { return e.Wrapped }
