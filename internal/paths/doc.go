// Package paths resolves the filesystem locations radar2mdx works with: its
// XDG config directory, the slug of an input file and the output path that
// slug maps to.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
//
//	paths.ConfigDir()                      // ~/.config/radar2mdx
//	paths.Stem("items-md/figma.md")        // "figma"
//	paths.OutputPath("out", "figma", ".mdx") // "out/figma.mdx"
package paths
