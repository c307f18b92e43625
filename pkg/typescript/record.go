package typescript

import (
	"strings"

	"github.com/goliatone/go-typegen/pkg/schema"
)

// renderRecordType emits the named type declaration for one collection.
// Fields keep their source order and are never deduplicated: if two names
// collide after sanitizing, both lines are emitted and the later declaration
// shadows the earlier one, exactly as the input described it.
func renderRecordType(collectionName string, fields []schema.Field) (string, error) {
	var b strings.Builder
	b.WriteString("export type " + ToIdentifier(collectionName) + "Record = {\n")
	for _, field := range fields {
		member, err := renderMember(field)
		if err != nil {
			return "", err
		}
		b.WriteString("\t" + member)
	}
	b.WriteString("}")
	return b.String(), nil
}
