package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/radar2mdx/internal/config"
)

// resetFlags restores every flag of c and its subcommands to its default so
// package-level command state does not leak between tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// isolate gives the test a private config directory and working directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("RADAR2MDX_CONFIG_DIR", t.TempDir())
	t.Setenv("RADAR2MDX_DEBUG", "")
	t.Chdir(t.TempDir())

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })
}

// execute runs the root command with args and returns what it wrote to
// stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	isolate(t)

	resetFlags(rootCmd)
	appConfig = config.Default()
	configLoadErr = nil

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}
