// Package frontmatter parses YAML frontmatter from Markdown and MDX files.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end of the file. The content between the delimiters is decoded with
// gopkg.in/yaml.v3 into the type parameter T; the content after the closing
// delimiter is returned as the body.
//
//	type SkillMeta struct {
//		ID      string   `yaml:"id"`
//		KitTags []string `yaml:"kitTags"`
//	}
//
//	meta, body, err := frontmatter.Parse[SkillMeta](strings.NewReader(content))
//
// Unlike the line-oriented reader in internal/convert, this package
// understands full YAML, so list fields written by the converter decode back
// into slices.
//
// # Errors
//
//   - [ErrNoFrontmatter]: the file does not open with a "---" block that is closed
//   - [ErrInvalidYAML]: the block exists but is not valid YAML
//
// CRLF line endings are normalized to LF before parsing.
package frontmatter
