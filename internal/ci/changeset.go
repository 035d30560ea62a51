// Package ci reads the changed-files manifest produced by the CI pipeline.
package ci

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"

	"github.com/firmforge/fwtool/internal/fsh"
	"github.com/firmforge/fwtool/internal/validator"
)

// ManifestName is the well-known manifest filename, written to $HOME by the
// CI changed-files step before the format check runs.
const ManifestName = "files.json"

const manifestSchemaID = "fwtool://changeset.schema.json"

// The manifest must be a flat JSON array of path strings.
const manifestSchema = `{
	"type": "array",
	"items": { "type": "string" }
}`

// Reader provides the list of files changed in the change under review.
type Reader interface {
	// Changed returns every path in the manifest, in manifest order.
	Changed() ([]string, error)
}

// FileReader reads the manifest from $HOME/files.json.
type FileReader struct {
	env      fsh.EnvProvider
	compiler validator.Compiler

	compileOnce sync.Once
	schema      validator.Validator
	compileErr  error
}

// NewFileReader creates a FileReader that locates the manifest via the given
// environment and validates it with the given compiler.
func NewFileReader(env fsh.EnvProvider, compiler validator.Compiler) *FileReader {
	return &FileReader{env: env, compiler: compiler}
}

// ManifestPath returns the absolute path of the changeset manifest.
func (r *FileReader) ManifestPath() string {
	return filepath.Join(r.env.Get("HOME"), ManifestName)
}

// Changed reads, validates and parses the manifest.
func (r *FileReader) Changed() ([]string, error) {
	path := r.ManifestPath()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ManifestReadError{Path: path, Wrapped: err}
	}

	if vErr := r.validate(path, data); vErr != nil {
		return nil, vErr
	}

	result := gjson.ParseBytes(data)
	entries := result.Array()
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.String())
	}

	return paths, nil
}

// validate checks the manifest document against the embedded schema so a
// malformed CI artifact fails loudly instead of selecting garbage paths.
func (r *FileReader) validate(path string, data []byte) error {
	v, err := r.compiledSchema()
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return &InvalidManifestError{Path: path, Wrapped: err}
	}
	if err = v.Validate(doc); err != nil {
		return &InvalidManifestError{Path: path, Wrapped: err}
	}
	return nil
}

// compiledSchema compiles the embedded manifest schema on first use.
func (r *FileReader) compiledSchema() (validator.Validator, error) {
	r.compileOnce.Do(func() {
		schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(manifestSchema)))
		if err != nil {
			r.compileErr = err
			return
		}
		if err = r.compiler.AddSchema(manifestSchemaID, schemaDoc); err != nil {
			r.compileErr = err
			return
		}
		r.schema, r.compileErr = r.compiler.Compile(manifestSchemaID)
	})
	return r.schema, r.compileErr
}
