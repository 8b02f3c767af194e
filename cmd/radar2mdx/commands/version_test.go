package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/radar2mdx/cmd"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "radar2mdx version "+cmd.Version, lines[0])
	assert.Equal(t, "  commit: "+cmd.Commit, lines[1])
	assert.Equal(t, "  built:  "+cmd.Date, lines[2])
	assert.Equal(t, "  go:     "+runtime.Version(), lines[3])
}

func TestVersionCommand_IgnoresInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--config", "/non/existent/config.yaml", "version")
	require.NoError(t, err)
}

func TestVersionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
}
