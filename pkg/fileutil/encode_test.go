package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type entry struct {
	ID   string   `json:"id" yaml:"id" toml:"id"`
	Tags []string `json:"tags" yaml:"tags" toml:"tags"`
}

type doc struct {
	Entries []entry `json:"entries" yaml:"entries" toml:"entries"`
}

func TestAtomicWriteEncoders(t *testing.T) {
	v := doc{Entries: []entry{{ID: "figma", Tags: []string{"govuk"}}}}

	tests := []struct {
		name   string
		write  func(string, any) error
		decode func([]byte, any) error
	}{
		{
			name:   "json",
			write:  AtomicWriteJSON,
			decode: json.Unmarshal,
		},
		{
			name:   "yaml",
			write:  AtomicWriteYAML,
			decode: yaml.Unmarshal,
		},
		{
			name:   "toml",
			write:  AtomicWriteTOML,
			decode: toml.Unmarshal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index."+tt.name)
			require.NoError(t, tt.write(path, v))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, len(got) > 0 && got[len(got)-1] == '\n', "missing trailing newline")

			var decoded doc
			require.NoError(t, tt.decode(got, &decoded))
			assert.Equal(t, v, decoded)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, DefaultFilePerm, info.Mode().Perm())
		})
	}
}

func TestAtomicWriteYAML_Unmarshalable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := AtomicWriteYAML(path, map[string]any{"fn": func() {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshaling YAML")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAtomicWriteJSON_Unmarshalable(t *testing.T) {
	err := AtomicWriteJSON(filepath.Join(t.TempDir(), "bad.json"), make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshaling JSON")
}
