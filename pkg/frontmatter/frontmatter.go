package frontmatter

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/radar2mdx/internal/errors"
)

const delimiter = "---"

var (
	// ErrNoFrontmatter is returned when the input has no closed frontmatter block.
	ErrNoFrontmatter = errors.New("no frontmatter found")

	// ErrInvalidYAML is returned when the frontmatter block fails to decode.
	ErrInvalidYAML = errors.New("invalid YAML in frontmatter")
)

// Parse reads r fully and decodes its frontmatter into a new T.
// The returned body is everything after the closing delimiter line.
func Parse[T any](r io.Reader) (*T, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "reading frontmatter source")
	}

	block, body, err := Split(string(data))
	if err != nil {
		return nil, "", err
	}

	var meta T
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, "", errors.Wrapf(ErrInvalidYAML, "%v", err)
	}

	return &meta, body, nil
}

// Split separates content into the raw frontmatter block and the body.
// It returns ErrNoFrontmatter when content has no opening delimiter line or
// the block is never closed.
func Split(content string) (block, body string, err error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(content, delimiter+"\n") {
		return "", "", ErrNoFrontmatter
	}
	rest := content[len(delimiter)+1:]

	// Empty block: the closing delimiter follows the opening one directly.
	if rest == delimiter || strings.HasPrefix(rest, delimiter+"\n") {
		return "", strings.TrimPrefix(rest[len(delimiter):], "\n"), nil
	}

	if idx := strings.Index(rest, "\n"+delimiter+"\n"); idx >= 0 {
		return rest[:idx], rest[idx+len(delimiter)+2:], nil
	}

	if strings.HasSuffix(rest, "\n"+delimiter) {
		return strings.TrimSuffix(rest, "\n"+delimiter), "", nil
	}

	return "", "", ErrNoFrontmatter
}
