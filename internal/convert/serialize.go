package convert

import (
	"maps"
	"slices"
	"strings"
)

// KnownFields is the order Serialize writes recognized keys in.
var KnownFields = []string{
	FieldID,
	FieldName,
	FieldTitle,
	FieldQuadrant,
	FieldRing,
	FieldOrder,
	FieldStatus,
	FieldRequiresSkills,
	FieldTaughtByUnits,
	FieldKitTags,
}

// Serialize renders doc as an MDX document: the frontmatter block, a blank
// line, the body with surrounding whitespace trimmed and a final newline.
//
// Known fields come first in KnownFields order, then every other key sorted
// lexicographically. Scalars are written as "key: value"; lists as "key:"
// followed by one "  - item" line per element.
func Serialize(doc *Document) string {
	var sb strings.Builder

	sb.WriteString("---\n")
	for _, key := range KnownFields {
		if v, ok := doc.Fields[key]; ok {
			writeField(&sb, key, v)
		}
	}
	for _, key := range extraKeys(doc.Fields) {
		writeField(&sb, key, doc.Fields[key])
	}
	sb.WriteString("---\n\n")

	sb.WriteString(strings.TrimSpace(doc.Body))
	sb.WriteString("\n")

	return sb.String()
}

func writeField(sb *strings.Builder, key string, v Value) {
	if !v.IsList() {
		sb.WriteString(key + ": " + v.String() + "\n")
		return
	}
	sb.WriteString(key + ":\n")
	for _, item := range v.Items() {
		sb.WriteString("  - " + item + "\n")
	}
}

func extraKeys(fields map[string]Value) []string {
	keys := slices.Sorted(maps.Keys(fields))
	return slices.DeleteFunc(keys, func(k string) bool {
		return slices.Contains(KnownFields, k)
	})
}
