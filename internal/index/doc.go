// Package index builds a machine-readable index of converted skill files.
//
// Unlike the convert package, it reads frontmatter as real YAML so list
// fields such as requiresSkills and kitTags come back as lists. Each file
// becomes a [Skill]; problems are collected in a validator.Result instead of
// stopping the build, and the sorted [Index] can be encoded as JSON, YAML or
// TOML.
package index
