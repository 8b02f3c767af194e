package index

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/logging"
)

const figmaMDX = `---
id: figma
name: Figma
title: Figma
quadrant: Design Tools
ring: Adopt
order: 2
requiresSkills:
taughtByUnits:
kitTags:
  - govuk
  - nhs
---

# Figma

Figma is the shared design tool for prototypes.
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func testContext(t *testing.T) context.Context {
	return logging.NewContext(context.Background(), logging.ForTest(t))
}

func TestBuild(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"figma.mdx":  figmaMDX,
		"sketch.md":  "---\ntitle: Sketch\nquadrant: Design Tools\nring: Hold\ncategoryId: legacy\n---\n\nSketch is no longer recommended for new work.\n",
		"notes.txt":  "ignored",
		"plain.mdx":  "No frontmatter in this file at all.",
		"zz-unit.md": "---\nid: unit-1\ntype: unit\n---\n",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mdx"), 0o755))

	idx, result, err := Build(testContext(t), dir)
	require.NoError(t, err)
	require.Len(t, idx.Skills, 3)
	assert.Equal(t, dir, idx.Source)

	figma := idx.Skills[0]
	assert.Equal(t, "figma", figma.ID)
	assert.Equal(t, "Figma", figma.Name)
	assert.Equal(t, "design-tools", figma.CategoryID)
	assert.Equal(t, "adopt", figma.LevelID)
	require.NotNil(t, figma.Order)
	assert.InDelta(t, 2.0, *figma.Order, 0)
	assert.Equal(t, "Figma is the shared design tool for prototypes.", figma.Description)
	assert.Equal(t, []string{}, figma.RequiresSkills)
	assert.Equal(t, []string{}, figma.Prereqs)
	assert.Equal(t, []string{"govuk", "nhs"}, figma.KitTags)
	assert.Equal(t, filepath.Join(dir, "figma.mdx"), figma.SourcePath)

	// Unordered skills sort by title, falling back to id.
	sketch := idx.Skills[1]
	assert.Equal(t, "sketch", sketch.ID)
	assert.Equal(t, "Sketch", sketch.Name)
	assert.Equal(t, "legacy", sketch.CategoryID)
	assert.Equal(t, "hold", sketch.LevelID)
	assert.Nil(t, sketch.Order)

	plain := idx.Skills[2]
	assert.Equal(t, "plain", plain.ID)
	assert.Equal(t, "plain", plain.Name)
	assert.Equal(t, "No frontmatter in this file at all.", plain.Description)

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "zz-unit.md", errs[0].File)
	assert.Equal(t, "type", errs[0].Field)
	assert.Equal(t, "unit", errs[0].Value)

	var warned []string
	for _, w := range result.Warnings() {
		warned = append(warned, w.File+":"+w.Field)
	}
	assert.ElementsMatch(t, []string{
		"plain.mdx:id",
		"plain.mdx:title",
		"sketch.md:id",
	}, warned)
}

func TestBuild_InvalidYAML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"broken.mdx": "---\ntitle: Figma: Advanced\n---\n\nBody text that is long enough.\n",
	})

	idx, result, err := Build(testContext(t), dir)
	require.NoError(t, err)
	assert.Empty(t, idx.Skills)
	require.True(t, result.HasErrors())
	assert.Equal(t, "broken.mdx", result.Errors()[0].File)
}

func TestBuild_DuplicateID(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.mdx": "---\nid: figma\ntitle: Figma\n---\n",
		"b.mdx": "---\nid: figma\ntitle: Figma again\n---\n",
		"c.mdx": "---\nid: sketch\ntitle: Sketch\n---\n",
	})

	idx, result, err := Build(testContext(t), dir)
	require.NoError(t, err)
	require.Len(t, idx.Skills, 2)
	assert.Equal(t, "Figma", idx.Skills[0].Title)

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "b.mdx", errs[0].File)
	assert.Equal(t, "id", errs[0].Field)
	assert.Equal(t, "figma", errs[0].Value)
	assert.Contains(t, errs[0].Message, "a.mdx")
}

func TestBuild_DuplicateFilenameID(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"figma.md":  "---\ntitle: Figma\n---\n",
		"figma.mdx": "---\ntitle: Figma\n---\n",
	})

	_, result, err := Build(testContext(t), dir)
	require.NoError(t, err)
	require.Len(t, result.Errors(), 1)
	assert.Equal(t, "figma.mdx", result.Errors()[0].File)
}

func TestBuild_BadOrder(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.mdx": "---\nid: a\ntitle: A\norder: first\n---\n",
	})

	idx, result, err := Build(testContext(t), dir)
	require.NoError(t, err)
	require.Len(t, idx.Skills, 1)
	assert.Nil(t, idx.Skills[0].Order)
	require.Len(t, result.Warnings(), 1)
	assert.Equal(t, "order", result.Warnings()[0].Field)
}

func TestBuild_MissingDir(t *testing.T) {
	_, _, err := Build(testContext(t), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestBuild_Canceled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"figma.mdx": figmaMDX})
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, _, err := Build(ctx, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sampleIndex() *Index {
	order := 1.0
	return &Index{
		Source: "skills",
		Skills: []Skill{{
			ID:             "figma",
			Name:           "Figma",
			Title:          "Figma",
			Quadrant:       "Design Tools",
			Ring:           "Adopt",
			CategoryID:     "design-tools",
			LevelID:        "adopt",
			Order:          &order,
			RequiresSkills: []string{"sketching"},
			Prereqs:        []string{"sketching"},
			TaughtByUnits:  []string{"unit-1"},
			KitTags:        []string{"govuk"},
			SourcePath:     "skills/figma.mdx",
		}},
	}
}

func TestEncodeAndWrite(t *testing.T) {
	decoders := map[Format]func([]byte, any) error{
		FormatJSON: json.Unmarshal,
		FormatYAML: yaml.Unmarshal,
		FormatTOML: toml.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			want := sampleIndex()

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, want, format))
			var fromStream Index
			require.NoError(t, decode(buf.Bytes(), &fromStream))
			assert.Equal(t, *want, fromStream)

			path := filepath.Join(t.TempDir(), "index."+string(format))
			require.NoError(t, Write(path, want, format))
			data, err := os.ReadFile(path)
			require.NoError(t, err)
			var fromFile Index
			require.NoError(t, decode(data, &fromFile))
			assert.Equal(t, *want, fromFile)
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, sampleIndex(), Format("xml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	err = Write(filepath.Join(t.TempDir(), "x"), sampleIndex(), Format("xml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
