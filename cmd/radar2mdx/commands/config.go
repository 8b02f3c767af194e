package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/radar2mdx/internal/config"
	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/paths"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect radar2mdx configuration",
	Long: `Inspect the configuration read from config.yaml.

The file is looked up in the current directory, then in
$XDG_CONFIG_HOME/radar2mdx (override with RADAR2MDX_CONFIG_DIR).
Every key can also be set through the environment, e.g.
RADAR2MDX_OUTPUT_EXT=.md.`,
	Example: `  # Print the effective configuration
  radar2mdx config show

  # Print which file was loaded
  radar2mdx config path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShow(cmd.OutOrStdout(), appConfig)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use and the search locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigPath(cmd.OutOrStdout())
	},
}

func runConfigShow(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrap(enc.Close(), "encoding config")
}

func runConfigPath(w io.Writer) error {
	used := viper.ConfigFileUsed()
	if used == "" {
		used = "(none, using defaults)"
	}
	fmt.Fprintf(w, "config file: %s\n", used)
	fmt.Fprintln(w, "search path:")
	fmt.Fprintln(w, "  .")
	fmt.Fprintf(w, "  %s\n", paths.ConfigDir())
	if configLoadErr != nil {
		fmt.Fprintf(w, "error: %v\n", configLoadErr)
	}
	return nil
}
