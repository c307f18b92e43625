package typescript

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-typegen/pkg/schema"
)

// ErrUnknownFieldType reports a field whose declared type is outside the
// supported set. Generation stops entirely: a document with a silently
// skipped field would misrepresent the schema.
var ErrUnknownFieldType = errors.New("typescript: unknown field type")

// renderFieldType maps one field's declared type and options onto a
// TypeScript type expression. The switch is exhaustive over the known
// schema.FieldType constants; anything else wraps ErrUnknownFieldType.
func renderFieldType(field schema.Field) (string, error) {
	switch field.Type {
	case schema.FieldTypeText, schema.FieldTypeEmail, schema.FieldTypeURL, schema.FieldTypeDate:
		return "string", nil
	case schema.FieldTypeNumber:
		return "number", nil
	case schema.FieldTypeBool:
		return "boolean", nil
	case schema.FieldTypeJSON:
		return "null | unknown", nil
	case schema.FieldTypeRelation, schema.FieldTypeUser:
		return "string", nil
	case schema.FieldTypeSelect:
		return renderSelect(field.Options.Values), nil
	case schema.FieldTypeFile:
		if field.Options.MaxSelect != nil && *field.Options.MaxSelect > 1 {
			return "string[]", nil
		}
		return "string", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, string(field.Type))
	}
}

// renderSelect builds a quoted literal union from the declared values,
// preserving source order. A select without values degrades to string.
func renderSelect(values []string) string {
	if len(values) == 0 {
		return "string"
	}
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, `"`+value+`"`)
	}
	return strings.Join(quoted, " | ")
}

// renderMember prints the member line for one field: sanitized name, the
// optionality marker when the field is not required, and the rendered type
// expression. Optionality is the only effect Required has.
func renderMember(field schema.Field) (string, error) {
	expr, err := renderFieldType(field)
	if err != nil {
		return "", err
	}
	optional := "?"
	if field.Required {
		optional = ""
	}
	return SanitizeMemberName(field.Name) + optional + ": " + expr + "\n", nil
}
