// Package typegen generates TypeScript type definitions from a record
// service schema. The schema can come from a JSON export, from the service's
// embedded database file, or from the authenticated admin API; all three
// paths produce the same model and the same deterministic document.
package typegen

import (
	"context"

	"github.com/goliatone/go-typegen/pkg/orchestrator"
	"github.com/goliatone/go-typegen/pkg/schema"
	"github.com/goliatone/go-typegen/pkg/typescript"
)

// Version is the tool's semantic version.
const Version = "0.1.0"

// Request describes one generation run; alias exported via the root package
// for convenience.
type Request = orchestrator.Request

// Option customises the orchestrator configuration.
type Option = orchestrator.Option

// Source identifies where a schema model originates.
type Source = schema.Source

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate resolves the schema provider for the request, runs the generator,
// and writes the document when an output path is set. It is the simplest
// entry point for callers that just want the generated text.
func Generate(ctx context.Context, req Request, options ...Option) (string, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, req)
}

// SourceFromFile returns a Source pointing to a JSON schema export.
func SourceFromFile(path string) Source {
	return schema.SourceFromFile(path)
}

// SourceFromDatabase returns a Source pointing to an embedded database file.
func SourceFromDatabase(path string) Source {
	return schema.SourceFromDatabase(path)
}

// SourceFromURL returns a Source pointing to a running record service.
func SourceFromURL(raw string) Source {
	return schema.SourceFromURL(raw)
}

// WithHeader overrides the generated-file banner comment on the default
// generator.
func WithHeader(header string) Option {
	return orchestrator.WithGenerator(typescript.NewGenerator(typescript.WithHeader(header)))
}
