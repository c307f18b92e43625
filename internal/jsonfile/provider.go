// Package jsonfile loads a schema model from a JSON schema export on disk.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-typegen/pkg/schema"
)

// Provider reads an array of collection descriptors from a JSON file. The
// export already carries structured field lists, so no nested deserialization
// happens on this path.
type Provider struct {
	path string
}

var _ schema.Provider = (*Provider)(nil)

// New constructs a Provider for the given file path.
func New(path string) *Provider {
	return &Provider{path: filepath.Clean(path)}
}

// Load reads and decodes the schema export.
func (p *Provider) Load(ctx context.Context) ([]schema.Collection, error) {
	if p.path == "" || p.path == "." {
		return nil, errors.New("jsonfile: schema path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read schema: %w", err)
	}
	return schema.ParseCollections(data)
}
