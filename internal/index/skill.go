package index

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"
)

// DefaultOrder is the sort position of skills without an order.
const DefaultOrder = 9999

// Skill is one entry of the index.
type Skill struct {
	ID             string   `json:"id" yaml:"id" toml:"id"`
	Name           string   `json:"name" yaml:"name" toml:"name"`
	Title          string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Quadrant       string   `json:"quadrant" yaml:"quadrant" toml:"quadrant"`
	Ring           string   `json:"ring" yaml:"ring" toml:"ring"`
	CategoryID     string   `json:"categoryId" yaml:"categoryId" toml:"categoryId"`
	LevelID        string   `json:"levelId" yaml:"levelId" toml:"levelId"`
	Order          *float64 `json:"order,omitempty" yaml:"order,omitempty" toml:"order,omitempty"`
	Status         string   `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	RequiresSkills []string `json:"requiresSkills" yaml:"requiresSkills" toml:"requiresSkills"`
	Prereqs        []string `json:"prereqs" yaml:"prereqs" toml:"prereqs"`
	TaughtByUnits  []string `json:"taughtByUnits" yaml:"taughtByUnits" toml:"taughtByUnits"`
	KitTags        []string `json:"kitTags" yaml:"kitTags" toml:"kitTags"`
	SourcePath     string   `json:"sourcePath" yaml:"sourcePath" toml:"sourcePath"`
}

// sortOrder returns the order used for sorting.
func (s Skill) sortOrder() float64 {
	if s.Order == nil {
		return DefaultOrder
	}
	return *s.Order
}

// sortTitle returns the title, falling back to the id.
func (s Skill) sortTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}

// Slugify lowercases s and joins its words with hyphens. Punctuation and
// symbols separate words, so "AI/ML" becomes "ai-ml". Empty input yields an
// empty slug.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.Map(separatorToSpace, s))
	if s == "" {
		return ""
	}
	normalized, err := slug.Normalize(s)
	if err != nil || normalized == "" {
		return strings.ToLower(s)
	}
	return normalized
}

func separatorToSpace(r rune) rune {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return ' '
	}
	return r
}

// stringValue renders a decoded YAML scalar as text. Absent and null values
// are empty.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// stringList converts a decoded YAML sequence to strings. Anything that is
// not a sequence yields an empty, non-nil slice.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringValue(item))
	}
	return out
}

// orderValue parses an order value. ok is false when v is present but not a
// number.
func orderValue(v any) (order *float64, ok bool) {
	var f float64
	switch val := v.(type) {
	case nil:
		return nil, true
	case int:
		f = float64(val)
	case float64:
		f = val
	case string:
		if strings.TrimSpace(val) == "" {
			return nil, true
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, false
		}
		f = parsed
	default:
		return nil, false
	}
	return &f, true
}
