// Package commands implements the CLI commands for radar2mdx.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/radar2mdx/cmd"
	"github.com/thoreinstein/radar2mdx/internal/config"
	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/logging"
)

// debugEnv raises verbosity when no -v flag is given.
const debugEnv = "RADAR2MDX_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// logFileHandle is the open --log-file, closed by closeLogFile.
var logFileHandle *os.File

// configFile holds the value of the --config flag.
var configFile string

// appConfig is the configuration loaded by initConfig.
var appConfig = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only log errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/radar2mdx/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("radar2mdx version {{.Version}}\n")

	// Errors are printed by HandleError.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, err := config.Load(configFile)
	configLoadErr = err
	if err == nil {
		appConfig = cfg
	}
}

var rootCmd = &cobra.Command{
	Use:   "radar2mdx",
	Short: "Convert prototyping-radar markdown items into MDX skill files",
	Long: `radar2mdx converts a directory of prototyping-radar items (markdown files
with a simple key: value frontmatter block) into MDX skill files.

Every skill gets a stable id, a title and empty relationship lists
(requiresSkills, taughtByUnits) plus default kitTags, ready to be linked
up by hand. Existing output files are overwritten.`,
	Example: `  # Convert a radar directory
  radar2mdx convert --src radar/items --out content/skills

  # Preview one converted file
  radar2mdx show radar/items/figma.md

  # Build a JSON index of the converted skills
  radar2mdx index content/skills --output content/index.json`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if skipsConfigCheck(cmd) {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogFile()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// skipsConfigCheck reports whether cmd runs even when the config file is
// invalid.
func skipsConfigCheck(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "version":
		return true
	case "path":
		return cmd.Parent() == configCmd
	}
	return false
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(
			errors.New("--quiet and --verbose are mutually exclusive"),
			"Use only one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence over the environment.
		if v == 0 {
			switch os.Getenv(debugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format != logging.FormatText && format != logging.FormatJSON {
		return errors.NewUserError(
			errors.Newf("unknown log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}

	handler := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}).Handler()

	closeLogFile()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"),
				"Check that the --log-file directory exists and is writable")
		}
		logFileHandle = f
		handler = logging.NewMultiHandler(handler, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// closeLogFile closes the --log-file opened by setupLogging, if any. Later
// records still reach the primary handler; the file handler's writes fail.
func closeLogFile() {
	if logFileHandle == nil {
		return
	}
	_ = logFileHandle.Close()
	logFileHandle = nil
}

// Execute runs the root command.
func Execute() error {
	// PersistentPostRun is skipped when a command fails.
	defer closeLogFile()
	return rootCmd.Execute()
}

// HandleError prints err and any suggestion it carries to w and returns the
// process exit code.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", red("Error:"), err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Hint:"), exitErr.Suggestion)
	}

	return errors.ExitCode(err)
}
