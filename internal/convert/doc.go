// Package convert turns prototyping-radar markdown items into MDX skill files.
//
// Each file goes through three steps:
//
//   - [ParseDocument] splits the text into a flat key/value frontmatter
//     mapping and a body. Only "key: value" lines are understood; anything
//     else inside the block is dropped, and text without a block becomes
//     body with an empty mapping.
//   - [Normalize] fills the skill fields (id, name, title and the
//     relationship scaffolds) without touching values that are already set.
//   - [Serialize] renders the mapping in a fixed key order followed by the
//     remaining keys sorted by name, then the trimmed body.
//
// [Converter] runs that pipeline over every *.md file of a directory, in
// filename order, writing <slug>.mdx files into a destination directory.
package convert
