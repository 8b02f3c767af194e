package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/radar2mdx/internal/config"
	"github.com/thoreinstein/radar2mdx/internal/convert"
	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/logging"
)

var (
	convertSrc    string
	convertOut    string
	convertDryRun bool
	convertJSON   bool
)

func init() {
	convertCmd.Flags().StringVar(&convertSrc, "src", "",
		"directory containing the radar *.md files")
	convertCmd.Flags().StringVar(&convertOut, "out", "",
		"directory to write the .mdx files into (created if missing)")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false,
		"convert without writing any files")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false,
		"print the per-file result as JSON instead of the summary line")
	_ = convertCmd.MarkFlagRequired("src")
	_ = convertCmd.MarkFlagRequired("out")
	_ = convertCmd.MarkFlagDirname("src")
	_ = convertCmd.MarkFlagDirname("out")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert --src <dir> --out <dir>",
	Short: "Convert radar markdown files into MDX skills",
	Long: `Convert every *.md file directly inside --src into <slug>.mdx in --out.

The slug is the filename without its extension. Missing id, name and title
fields default to the slug; requiresSkills and taughtByUnits default to empty
lists and kitTags to the configured tags. Fields already present are kept
as-is. Existing files in --out are overwritten.

Exit codes:
  0 - All files converted
  1 - Invalid flags or configuration
  2 - A file could not be read or written`,
	Example: `  # Convert a radar directory
  radar2mdx convert --src radar/items --out content/skills

  # See what would be written
  radar2mdx convert --src radar/items --out content/skills --dry-run -v

See Also: radar2mdx show, radar2mdx index`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConvert(cmd.Context(), cmd.OutOrStdout(), convertSrc, convertOut)
	},
}

// newConverter builds a Converter from the loaded configuration.
func newConverter(ctx context.Context, cfg *config.Config, dryRun bool) *convert.Converter {
	return convert.New(
		convert.WithLogger(logging.FromContext(ctx)),
		convert.WithKitTags(cfg.KitTags),
		convert.WithOutputExt(cfg.OutputExt),
		convert.WithDryRun(dryRun),
	)
}

func runConvert(ctx context.Context, w io.Writer, src, dst string) error {
	if src == "" || dst == "" {
		return errors.NewUserError(
			errors.Wrap(errors.ErrMissingArgument, "--src and --out are required"),
			"Run: radar2mdx convert --src <dir> --out <dir>")
	}

	result, err := newConverter(ctx, appConfig, convertDryRun).Run(ctx, src, dst)
	if err != nil {
		return convertError(err, result)
	}

	if convertJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(result), "encoding JSON result")
	}

	if convertDryRun {
		fmt.Fprintf(w, "Would write %d skills to %s\n", result.Count(), dst)
		return nil
	}
	fmt.Fprintf(w, "Wrote %d skills to %s\n", result.Count(), dst)
	return nil
}

// convertError maps a failed run to an exit error with a hint for the
// failing operation.
func convertError(err error, result *convert.Result) error {
	var fileErr *convert.FileError
	if !errors.As(err, &fileErr) {
		return errors.NewSystemError(err, "")
	}

	var hint string
	switch fileErr.Op {
	case convert.OpList:
		hint = "Check that --src is an existing, readable directory"
	case convert.OpMkdir:
		hint = "Check that --out can be created as a directory"
	case convert.OpWrite:
		hint = "Check that --out is writable"
	case convert.OpRead:
		hint = "Check that the file is readable UTF-8 text"
	}
	if n := result.Count(); n > 0 {
		hint = fmt.Sprintf("%s (%d file(s) were written before the failure)", hint, n)
	}
	return errors.NewSystemError(err, hint)
}
