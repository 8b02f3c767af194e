package convert

import "slices"

// Value is a frontmatter value: either a scalar string or a list of strings.
// The parser only produces scalars; lists come from normalization defaults.
type Value struct {
	scalar string
	items  []string
	isList bool
}

// Scalar returns a scalar Value.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List returns a list Value holding a copy of items. List() is an empty list,
// which is distinct from an absent field.
func List(items ...string) Value {
	return Value{items: slices.Clone(items), isList: true}
}

// IsList reports whether v is a list.
func (v Value) IsList() bool {
	return v.isList
}

// String returns the scalar text. For lists it returns the empty string.
func (v Value) String() string {
	return v.scalar
}

// Items returns a copy of the list elements, or nil for scalars.
func (v Value) Items() []string {
	if !v.isList {
		return nil
	}
	return slices.Clone(v.items)
}

// Document is one input file split into its frontmatter mapping and body.
type Document struct {
	// Fields holds the frontmatter. Keys are unique; map order carries no
	// meaning because Serialize imposes its own.
	Fields map[string]Value

	// Body is the text after the closing delimiter, or the whole input when
	// there was no frontmatter block.
	Body string

	// Dropped lists non-blank, non-comment frontmatter lines that had no
	// colon and were ignored.
	Dropped []string
}

// NewDocument returns a Document with an empty mapping and the given body.
func NewDocument(body string) *Document {
	return &Document{
		Fields: make(map[string]Value),
		Body:   body,
	}
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	v, ok := d.Fields[key]
	return v, ok
}

// Set stores v under key, replacing any existing value.
func (d *Document) Set(key string, v Value) {
	if d.Fields == nil {
		d.Fields = make(map[string]Value)
	}
	d.Fields[key] = v
}

// SetDefault stores v under key only if key is absent and reports whether it did.
func (d *Document) SetDefault(key string, v Value) bool {
	if _, ok := d.Fields[key]; ok {
		return false
	}
	d.Set(key, v)
	return true
}
