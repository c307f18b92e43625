package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-typegen/pkg/schema"
	"github.com/goliatone/go-typegen/pkg/typescript"
)

type stubProvider struct {
	collections []schema.Collection
	err         error
	calls       int
}

func (p *stubProvider) Load(ctx context.Context) ([]schema.Collection, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.collections, nil
}

type stubSource struct {
	kind schema.SourceKind
}

func (s stubSource) Kind() schema.SourceKind {
	return s.kind
}

func (s stubSource) Location() string {
	return "stub"
}

func TestGenerateWithExplicitProvider(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{collections: []schema.Collection{
		{Name: "posts", Fields: []schema.Field{{Name: "title", Type: schema.FieldTypeText, Required: true}}},
	}}

	document, err := New().Generate(context.Background(), Request{Provider: provider})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one provider call, got %d", provider.calls)
	}
	if !strings.Contains(document, "export type PostsRecord = {") {
		t.Fatalf("unexpected document:\n%s", document)
	}
}

func TestGenerateWritesThroughSink(t *testing.T) {
	t.Parallel()

	var (
		gotPath string
		gotData []byte
	)
	sink := func(path string, data []byte) error {
		gotPath = path
		gotData = data
		return nil
	}

	provider := &stubProvider{}
	gen := New(WithSink(sink))

	document, err := gen.Generate(context.Background(), Request{Provider: provider, OutPath: "types.ts"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gotPath != "types.ts" {
		t.Fatalf("sink path = %q", gotPath)
	}
	if string(gotData) != document {
		t.Fatalf("sink received %q, generator produced %q", gotData, document)
	}
}

func TestGenerateSinkFailure(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("disk full")
	gen := New(WithSink(func(string, []byte) error { return sinkErr }))

	_, err := gen.Generate(context.Background(), Request{Provider: &stubProvider{}, OutPath: "types.ts"})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestGenerateProviderFailureAbortsBeforeGeneration(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("connection refused")
	sinkCalled := false
	gen := New(WithSink(func(string, []byte) error {
		sinkCalled = true
		return nil
	}))

	_, err := gen.Generate(context.Background(), Request{Provider: &stubProvider{err: loadErr}, OutPath: "types.ts"})
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if sinkCalled {
		t.Fatalf("sink must not run after an acquisition failure")
	}
}

func TestGenerateUnknownFieldTypeIsFatal(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{collections: []schema.Collection{
		{Name: "posts", Fields: []schema.Field{{Name: "x", Type: "bogus"}}},
	}}

	document, err := New().Generate(context.Background(), Request{Provider: provider})
	if !errors.Is(err, typescript.ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
	if document != "" {
		t.Fatalf("expected no partial document, got %q", document)
	}
}

func TestResolveProviderHonorsOverrides(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	gen := New(WithProvider(schema.SourceKindFile, provider))

	if _, err := gen.Generate(context.Background(), Request{Source: schema.SourceFromFile("schema.json")}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if provider.calls != 1 {
		t.Fatalf("expected pinned provider to run, got %d calls", provider.calls)
	}
}

func TestResolveProviderUnsupportedKind(t *testing.T) {
	t.Parallel()

	_, err := New().Generate(context.Background(), Request{Source: stubSource{kind: "ftp"}})
	if err == nil || !strings.Contains(err.Error(), "unsupported source kind") {
		t.Fatalf("expected unsupported source kind error, got %v", err)
	}
}

func TestGenerateRequiresSourceOrProvider(t *testing.T) {
	t.Parallel()

	if _, err := New().Generate(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error when neither source nor provider is set")
	}
}

func TestGenerateRequiresContext(t *testing.T) {
	t.Parallel()

	var ctx context.Context
	if _, err := New().Generate(ctx, Request{Provider: &stubProvider{}}); err == nil {
		t.Fatalf("expected error for nil context")
	}
}
