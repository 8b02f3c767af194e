package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the application's XDG subdirectories.
const AppName = "radar2mdx"

// DefaultDirPerm is the permission for created output directories.
const DefaultDirPerm = 0o755

// ErrInvalidPath indicates the provided path is malformed or invalid.
var ErrInvalidPath = errors.New("invalid path")

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/radar2mdx.
// RADAR2MDX_CONFIG_DIR overrides it.
func ConfigDir() string {
	if dir := os.Getenv("RADAR2MDX_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// EnsureDir creates the directory and any missing parents.
// If perm is 0, DefaultDirPerm is used. It is a no-op for existing directories.
func EnsureDir(path string, perm os.FileMode) error {
	if path == "" || strings.ContainsRune(path, '\x00') {
		return errors.Wrapf(ErrInvalidPath, "%q", path)
	}
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Stem returns the base name of path without its final extension.
// "notes/design.system.md" yields "design.system". A name that is only an
// extension, such as ".md", is returned unchanged.
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// OutputPath joins dir with slug plus ext.
func OutputPath(dir, slug, ext string) string {
	return filepath.Join(dir, slug+ext)
}
