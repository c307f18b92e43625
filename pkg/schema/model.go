package schema

import (
	"encoding/json"
	"fmt"
)

// FieldType is the declared storage type of a collection field. The record
// service persists these as plain strings, so values outside the known set
// survive decoding and are rejected later by the generator.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBool     FieldType = "bool"
	FieldTypeEmail    FieldType = "email"
	FieldTypeURL      FieldType = "url"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeJSON     FieldType = "json"
	FieldTypeFile     FieldType = "file"
	FieldTypeRelation FieldType = "relation"
	FieldTypeUser     FieldType = "user"
)

// FieldOptions carries the per-type extras attached to a field. Only select
// and file fields read from the bag; every other type ignores it.
type FieldOptions struct {
	// Values lists the allowed literals for select fields, in source order.
	Values []string `json:"values,omitempty"`
	// MaxSelect caps how many files a file field accepts. nil means the
	// service never set a limit.
	MaxSelect *int `json:"maxSelect,omitempty"`
}

// Field describes one typed, optionally required attribute of a collection.
type Field struct {
	Name     string       `json:"name"`
	Type     FieldType    `json:"type"`
	Required bool         `json:"required"`
	Options  FieldOptions `json:"options"`
}

// Collection names one record type together with its ordered field set. The
// JSON shape matches the record service's collection listing, which labels
// the field array "schema".
type Collection struct {
	Name   string  `json:"name"`
	Fields []Field `json:"schema"`
}

// ParseCollections decodes a JSON array of collection descriptors, the shape
// produced by a schema export file and by the remote listing's items array.
func ParseCollections(data []byte) ([]Collection, error) {
	var collections []Collection
	if err := json.Unmarshal(data, &collections); err != nil {
		return nil, fmt.Errorf("schema: decode collections: %w", err)
	}
	return collections, nil
}

// ParseFields decodes the field array that the embedded database stores as a
// serialized JSON column on each collection row.
func ParseFields(data []byte) ([]Field, error) {
	var fields []Field
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("schema: decode fields: %w", err)
	}
	return fields, nil
}
