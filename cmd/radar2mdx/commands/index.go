package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/index"
	"github.com/thoreinstein/radar2mdx/internal/paths"
	"github.com/thoreinstein/radar2mdx/internal/validator"
)

var (
	indexOutput string
	indexFormat string
	indexJSON   bool
)

func init() {
	indexCmd.Flags().StringVarP(&indexOutput, "output", "o", "",
		"write the index to this file instead of stdout")
	indexCmd.Flags().StringVarP(&indexFormat, "format", "f", "",
		"index format: json, yaml, toml (default: from --output extension, else json)")
	indexCmd.Flags().BoolVar(&indexJSON, "json", false,
		"report problems as JSON")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index <dir>",
	Short: "Build an index of converted skill files",
	Long: `Read the .mdx and .md skill files in a directory and write an index of
them, sorted by order and then title.

Each entry carries the skill id, name, title, a description taken from the
first prose paragraph, categoryId and levelId derived from quadrant and ring,
and the relationship lists.

Files without an id or title produce warnings. Files whose frontmatter is not
valid YAML, or whose type is not "skill", are errors and no index is written.`,
	Example: `  # Print a JSON index
  radar2mdx index content/skills

  # Write a TOML index
  radar2mdx index content/skills --output content/skills.toml

See Also: radar2mdx convert`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndex(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
	},
}

// resolveIndexFormat picks the format from --format, then from the output
// file extension.
func resolveIndexFormat(format, output string) (index.Format, error) {
	if format != "" {
		return index.ParseFormat(format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
		if f, err := index.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	return index.FormatJSON, nil
}

func runIndex(ctx context.Context, stdout, stderr io.Writer, dir string) error {
	format, err := resolveIndexFormat(indexFormat, indexOutput)
	if err != nil {
		return errors.NewUserError(err, "Use --format json, yaml or toml")
	}

	idx, result, err := index.Build(ctx, dir)
	if err != nil {
		return errors.NewSystemError(err, "Check that the directory exists and is readable")
	}

	if len(result.Issues) > 0 || indexJSON {
		reportFormat := validator.FormatText
		if indexJSON {
			reportFormat = validator.FormatJSON
		}
		if err := validator.NewReporter(stderr, reportFormat).Report(result); err != nil {
			return err
		}
	}
	if result.HasErrors() {
		return errors.NewUserError(
			errors.Newf("%d skill file(s) rejected", len(result.Errors())),
			"Fix the files listed above and run index again")
	}

	if indexOutput == "" {
		return index.Encode(stdout, idx, format)
	}

	if err := paths.EnsureDir(filepath.Dir(indexOutput), paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(err, "Check that the --output directory can be created")
	}
	if err := index.Write(indexOutput, idx, format); err != nil {
		return errors.NewSystemError(err, "Check that --output is writable")
	}
	fmt.Fprintf(stdout, "Indexed %d skills to %s\n", len(idx.Skills), indexOutput)
	return nil
}
