package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/radar2mdx/internal/convert"
	"github.com/thoreinstein/radar2mdx/internal/errors"
)

var showSrc string

func init() {
	showCmd.Flags().StringVar(&showSrc, "src", "",
		"pick a file interactively from this directory")
	_ = showCmd.MarkFlagDirname("src")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [file.md]",
	Short: "Print the converted MDX for one radar file",
	Long: `Print the MDX that convert would write for a single radar file, without
writing anything.

With --src and no file argument, pick the file from a fuzzy finder that
previews the converted output.`,
	Example: `  # Preview one file
  radar2mdx show radar/items/figma.md

  # Pick interactively
  radar2mdx show --src radar/items

See Also: radar2mdx convert`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runShow(cmd.Context(), cmd.OutOrStdout(), args[0])
		}
		if showSrc == "" {
			return errors.NewUserError(
				errors.Wrap(errors.ErrMissingArgument, "a file or --src is required"),
				"Run: radar2mdx show <file.md> or radar2mdx show --src <dir>")
		}
		return runShowInteractive(cmd.Context(), cmd.OutOrStdout(), showSrc)
	},
}

func runShow(ctx context.Context, w io.Writer, path string) error {
	out, err := newConverter(ctx, appConfig, true).ConvertFile(path)
	if err != nil {
		return errors.NewSystemError(err, "Check that the file exists and is readable UTF-8 text")
	}
	_, err = w.Write(out.Content)
	return errors.Wrap(err, "writing output")
}

func runShowInteractive(ctx context.Context, w io.Writer, dir string) error {
	sources, err := convert.ListSources(dir)
	if err != nil {
		return errors.NewSystemError(err, "Check that --src is an existing, readable directory")
	}
	if len(sources) == 0 {
		fmt.Fprintf(w, "No %s files found in %s.\n", convert.SourcePattern, dir)
		return nil
	}

	conv := newConverter(ctx, appConfig, true)
	idx, err := fuzzyfinder.Find(
		sources,
		func(i int) string {
			return filepath.Base(sources[i])
		},
		fuzzyfinder.WithHeader("Select a radar item"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			out, err := conv.ConvertFile(sources[i])
			if err != nil {
				return err.Error()
			}
			return string(out.Content)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}

	return runShow(ctx, w, sources[idx])
}
