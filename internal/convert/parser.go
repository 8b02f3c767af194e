package convert

import (
	"regexp"
	"strings"
)

// frontmatterRE matches an opening "---" line at the very start, the shortest
// block up to a closing "---" line, and the rest of the text as body.
// Trailing whitespace is allowed after either delimiter.
var frontmatterRE = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n(.*)\z`)

// ParseDocument splits text into frontmatter fields and body.
//
// Text that does not open with a closed frontmatter block is returned whole
// as the body with no fields. That is the normal path for plain markdown, not
// an error.
func ParseDocument(text string) *Document {
	m := frontmatterRE.FindStringSubmatch(text)
	if m == nil {
		return NewDocument(text)
	}

	doc := NewDocument(m[2])
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			// List continuations ("- item") and other stray lines.
			doc.Dropped = append(doc.Dropped, line)
			continue
		}

		doc.Set(strings.TrimSpace(key), Scalar(unquote(strings.TrimSpace(value))))
	}

	return doc
}

// unquote removes at most one leading and one trailing double quote.
// Escapes and single quotes are left alone.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
