// Package testsupport provides schema fixtures shared by tests across the
// module.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-typegen/pkg/schema"
)

// SampleCollections returns a small but representative schema model covering
// every rendered field shape.
func SampleCollections() []schema.Collection {
	maxSelect := 3
	return []schema.Collection{
		{
			Name: "posts",
			Fields: []schema.Field{
				{Name: "title", Type: schema.FieldTypeText, Required: true},
				{Name: "status", Type: schema.FieldTypeSelect, Required: true, Options: schema.FieldOptions{Values: []string{"draft", "published"}}},
				{Name: "views", Type: schema.FieldTypeNumber},
				{Name: "metadata", Type: schema.FieldTypeJSON},
			},
		},
		{
			Name: "users",
			Fields: []schema.Field{
				{Name: "email", Type: schema.FieldTypeEmail, Required: true},
				{Name: "avatar", Type: schema.FieldTypeFile, Options: schema.FieldOptions{MaxSelect: &maxSelect}},
				{Name: "homepage", Type: schema.FieldTypeURL},
			},
		},
	}
}

// WriteSchemaFile serializes the collections into a schema export inside a
// temporary directory and returns its path.
func WriteSchemaFile(t *testing.T, collections []schema.Collection) string {
	t.Helper()

	data, err := json.Marshal(collections)
	if err != nil {
		t.Fatalf("marshal collections: %v", err)
	}

	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}
