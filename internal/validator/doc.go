// Package validator collects the problems found while indexing converted
// skill files and reports them as text or JSON.
//
// A [Result] holds [Issue] values of three severities. Errors stop the index
// from being written; warnings are reported and otherwise ignored.
//
//	result := &validator.Result{}
//	if id == "" {
//		result.AddWarning("id", "missing, using filename", nil).In("figma.mdx")
//	}
package validator
