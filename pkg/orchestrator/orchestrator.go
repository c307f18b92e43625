package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-typegen/internal/jsonfile"
	"github.com/goliatone/go-typegen/internal/remote"
	"github.com/goliatone/go-typegen/internal/sqlitedb"
	"github.com/goliatone/go-typegen/pkg/schema"
	"github.com/goliatone/go-typegen/pkg/typescript"
)

// Sink persists a generated document. The default implementation writes the
// file to disk.
type Sink func(path string, data []byte) error

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithGenerator injects a custom document generator.
func WithGenerator(generator *typescript.Generator) Option {
	return func(o *Orchestrator) {
		o.generator = generator
	}
}

// WithSink injects a custom output sink.
func WithSink(sink Sink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithLogger injects a structured logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithHTTPClient overrides the HTTP client used by the remote provider.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Orchestrator) {
		o.httpClient = client
	}
}

// WithProvider pins a schema provider to a source kind, replacing the
// built-in implementation for that kind.
func WithProvider(kind schema.SourceKind, provider schema.Provider) Option {
	return func(o *Orchestrator) {
		if provider == nil {
			return
		}
		if o.providers == nil {
			o.providers = make(map[schema.SourceKind]schema.Provider)
		}
		o.providers[kind] = provider
	}
}

// Orchestrator coordinates the full pipeline from schema acquisition to the
// written type-definition file. Missing collaborators are initialised with
// the built-in implementations so callers can start with a single
// constructor call.
type Orchestrator struct {
	generator  *typescript.Generator
	sink       Sink
	logger     zerolog.Logger
	httpClient *http.Client
	providers  map[schema.SourceKind]schema.Provider
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.generator == nil {
		o.generator = typescript.NewGenerator()
	}
	if o.sink == nil {
		o.sink = func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o644)
		}
	}
	return o
}

// Request describes one generation run.
type Request struct {
	// Source identifies where the schema lives. Optional when Provider is
	// supplied.
	Source schema.Source

	// Provider bypasses source resolution when the caller already has one.
	Provider schema.Provider

	// Email and Password authenticate the remote acquisition path. Ignored by
	// the file and database paths.
	Email    string
	Password string

	// OutPath, when set, has the generated document written through the sink.
	OutPath string
}

// Generate executes the provider → generator → sink sequence and returns the
// generated document.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (string, error) {
	if ctx == nil {
		return "", errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	provider, err := o.resolveProvider(req)
	if err != nil {
		return "", err
	}

	collections, err := provider.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("orchestrator: load schema: %w", err)
	}
	o.logger.Debug().Int("collections", len(collections)).Msg("schema model loaded")

	document, err := o.generator.Generate(collections)
	if err != nil {
		return "", fmt.Errorf("orchestrator: generate document: %w", err)
	}

	if req.OutPath != "" {
		if err := o.sink(req.OutPath, []byte(document)); err != nil {
			return "", fmt.Errorf("orchestrator: write document: %w", err)
		}
		o.logger.Info().Str("path", req.OutPath).Msg("type definitions written")
	}

	return document, nil
}

func (o *Orchestrator) resolveProvider(req Request) (schema.Provider, error) {
	if req.Provider != nil {
		return req.Provider, nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source or provider is required")
	}
	if provider, ok := o.providers[req.Source.Kind()]; ok {
		return provider, nil
	}

	switch req.Source.Kind() {
	case schema.SourceKindFile:
		return jsonfile.New(req.Source.Location()), nil
	case schema.SourceKindDatabase:
		return sqlitedb.New(req.Source.Location()), nil
	case schema.SourceKindURL:
		client := remote.NewClient(req.Source.Location(), o.httpClient, o.logger)
		return remote.NewProvider(client, remote.Credentials{
			Email:    req.Email,
			Password: req.Password,
		}), nil
	default:
		return nil, fmt.Errorf("orchestrator: unsupported source kind %q", req.Source.Kind())
	}
}
