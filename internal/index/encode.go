package index

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/pkg/fileutil"
)

// Format selects the index encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown index format")

// ParseFormat resolves a format name, case-insensitively. "yml" is accepted
// for YAML and the empty string means JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (want json, yaml or toml)", name)
	}
}

// Encode writes idx to w.
func Encode(w io.Writer, idx *Index, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(idx), "encoding JSON index")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(idx); err != nil {
			return errors.Wrap(err, "encoding YAML index")
		}
		return errors.Wrap(enc.Close(), "encoding YAML index")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(idx), "encoding TOML index")
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// Write stores idx at path atomically. The parent directory must exist.
func Write(path string, idx *Index, format Format) error {
	switch format {
	case FormatJSON:
		return fileutil.AtomicWriteJSON(path, idx)
	case FormatYAML:
		return fileutil.AtomicWriteYAML(path, idx)
	case FormatTOML:
		return fileutil.AtomicWriteTOML(path, idx)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}
