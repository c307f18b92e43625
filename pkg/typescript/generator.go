package typescript

import (
	"sort"
	"strings"

	"github.com/goliatone/go-typegen/pkg/schema"
)

// DefaultHeader is the banner comment emitted at the top of every document.
const DefaultHeader = "// This file was @generated using typegen"

// Option customises a Generator before construction.
type Option func(*Generator)

// WithHeader overrides the generated-file banner comment.
func WithHeader(header string) Option {
	return func(g *Generator) {
		if header != "" {
			g.header = header
		}
	}
}

// Generator assembles the full type-definition document. It holds no mutable
// state across runs; Generate is a pure function of its input and yields
// byte-identical output for identical models.
type Generator struct {
	header string
}

// NewGenerator constructs a Generator applying any provided options.
func NewGenerator(options ...Option) *Generator {
	g := &Generator{header: DefaultHeader}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Generate renders the complete document for the given collections: the
// banner comment, the Collections enum, one record type per collection with
// fields, and the CollectionRecords mapping, joined by blank lines. The enum
// and the mapping are emitted exactly once even when no collections exist.
func (g *Generator) Generate(collections []schema.Collection) (string, error) {
	names := make([]string, 0, len(collections))
	records := make([]string, 0, len(collections))

	for _, collection := range collections {
		if collection.Name != "" {
			names = append(names, collection.Name)
		}
		if len(collection.Fields) == 0 {
			continue
		}
		record, err := renderRecordType(collection.Name, collection.Fields)
		if err != nil {
			return "", err
		}
		records = append(records, record)
	}

	sort.Strings(names)
	// Record blocks sort by their rendered text, not by collection name.
	// Prior consumers depend on the resulting byte order.
	sort.Strings(records)

	parts := make([]string, 0, len(records)+3)
	parts = append(parts, g.header, renderCollectionEnum(names))
	parts = append(parts, records...)
	parts = append(parts, renderCollectionRecordMap(names))
	return strings.Join(parts, "\n\n"), nil
}

// renderCollectionEnum binds each collection name to its own string value
// under a PascalCase member name.
func renderCollectionEnum(sortedNames []string) string {
	var b strings.Builder
	b.WriteString("export enum Collections {\n")
	for _, name := range sortedNames {
		b.WriteString("\t" + ToIdentifier(name) + ` = "` + name + `",` + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// renderCollectionRecordMap binds each raw collection name to its record
// type, giving consumers a single lookup type over the whole schema.
func renderCollectionRecordMap(sortedNames []string) string {
	var b strings.Builder
	b.WriteString("export type CollectionRecords = {\n")
	for _, name := range sortedNames {
		b.WriteString("\t" + name + ": " + ToIdentifier(name) + "Record\n")
	}
	b.WriteString("}")
	return b.String()
}
