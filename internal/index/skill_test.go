package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Adopt", "adopt"},
		{"Design Tools", "design-tools"},
		{"  Trial  ", "trial"},
		{"AI/ML", "ai-ml"},
		{"Tools & Techniques", "tools-techniques"},
		{"UX_Research", "ux-research"},
		{"Don't Panic", "don-t-panic"},
		{"--Edge--", "edge"},
		{"///", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestOrderValue(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   *float64
		wantOK bool
	}{
		{name: "absent", in: nil, want: nil, wantOK: true},
		{name: "int", in: 3, want: ptr(3), wantOK: true},
		{name: "float", in: 2.5, want: ptr(2.5), wantOK: true},
		{name: "numeric string", in: " 7 ", want: ptr(7), wantOK: true},
		{name: "blank string", in: "", want: nil, wantOK: true},
		{name: "word", in: "first", want: nil, wantOK: false},
		{name: "list", in: []any{1}, want: nil, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := orderValue(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{}, stringList(nil))
	assert.Equal(t, []string{}, stringList("govuk"))
	assert.Equal(t, []string{"govuk", "1"}, stringList([]any{"govuk", 1}))
}

func TestSort(t *testing.T) {
	skills := []Skill{
		{ID: "zeta"},
		{ID: "beta", Title: "Beta", Order: ptr(2)},
		{ID: "alpha", Title: "Zed", Order: ptr(1)},
		{ID: "gamma", Title: "Alpha", Order: ptr(2)},
		{ID: "aardvark"},
	}
	Sort(skills)

	var ids []string
	for _, s := range skills {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"alpha", "gamma", "beta", "aardvark", "zeta"}, ids)
}

func ptr(f float64) *float64 { return &f }
