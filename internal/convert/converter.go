package convert

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/thoreinstein/radar2mdx/internal/errors"
	"github.com/thoreinstein/radar2mdx/internal/logging"
	"github.com/thoreinstein/radar2mdx/internal/paths"
	"github.com/thoreinstein/radar2mdx/pkg/fileutil"
)

const (
	// SourcePattern selects input files inside the source directory.
	SourcePattern = "*.md"

	// DefaultOutputExt is appended to each slug to name its output file.
	DefaultOutputExt = ".mdx"

	outputPerm = 0o644
)

// Converter runs the parse, normalize, serialize pipeline over files.
type Converter struct {
	logger    *slog.Logger
	kitTags   []string
	outputExt string
	dryRun    bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for per-file and summary records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithKitTags overrides the kitTags scaffold. An empty slice keeps the default.
func WithKitTags(tags []string) Option {
	return func(c *Converter) {
		if len(tags) > 0 {
			c.kitTags = slices.Clone(tags)
		}
	}
}

// WithOutputExt sets the output file extension, including the leading dot.
func WithOutputExt(ext string) Option {
	return func(c *Converter) {
		if ext != "" {
			c.outputExt = ext
		}
	}
}

// WithDryRun makes Run convert everything but write nothing.
func WithDryRun(dryRun bool) Option {
	return func(c *Converter) {
		c.dryRun = dryRun
	}
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger:    logging.NewDiscard(),
		kitTags:   slices.Clone(DefaultKitTags),
		outputExt: DefaultOutputExt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Output is the converted form of one input file.
type Output struct {
	// Source is the input path.
	Source string
	// Slug is the input filename without its extension.
	Slug string
	// Name is the output filename, Slug plus the output extension.
	Name string
	// Document is the normalized document Content was rendered from.
	Document *Document
	// Content is the rendered MDX.
	Content []byte
}

// ConvertFile reads path and returns its converted output without writing it.
func (c *Converter) ConvertFile(path string) (*Output, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: OpRead, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileError{Op: OpRead, Path: path, Err: ErrInvalidUTF8}
	}

	slug := paths.Stem(path)
	doc := ParseDocument(string(data))
	for _, line := range doc.Dropped {
		c.logger.Log(context.Background(), logging.LevelTrace, "dropped frontmatter line",
			"file", path,
			"line", line)
	}

	Normalize(doc, slug, c.kitTags)

	return &Output{
		Source:   path,
		Slug:     slug,
		Name:     slug + c.outputExt,
		Document: doc,
		Content:  []byte(Serialize(doc)),
	}, nil
}

// FileResult describes one converted file.
type FileResult struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Slug   string `json:"slug"`
	Bytes  int    `json:"bytes"`
}

// Result summarizes a Run.
type Result struct {
	Source      string       `json:"source"`
	Destination string       `json:"destination"`
	DryRun      bool         `json:"dry_run"`
	Files       []FileResult `json:"files"`
}

// Count returns the number of files written, or that would have been
// written in dry-run mode.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Files)
}

// Run converts every file directly inside src matching SourcePattern and
// writes the results into dst, creating dst first if needed.
//
// Files are processed one at a time in filename order and existing outputs
// are overwritten. The first failure stops the run; outputs already written
// are kept and reported in the returned Result alongside the error.
func (c *Converter) Run(ctx context.Context, src, dst string) (*Result, error) {
	result := &Result{
		Source:      src,
		Destination: dst,
		DryRun:      c.dryRun,
		Files:       []FileResult{},
	}

	if !c.dryRun {
		if err := paths.EnsureDir(dst, paths.DefaultDirPerm); err != nil {
			return result, &FileError{Op: OpMkdir, Path: dst, Err: err}
		}
	}

	sources, err := ListSources(src)
	if err != nil {
		return result, err
	}
	c.logger.Debug("selected source files", "src", src, "count", len(sources))

	for _, path := range sources {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrap(err, "conversion interrupted")
		}

		out, err := c.ConvertFile(path)
		if err != nil {
			return result, err
		}

		target := paths.OutputPath(dst, out.Slug, c.outputExt)
		if !c.dryRun {
			if err := fileutil.AtomicWriteFile(target, out.Content, outputPerm); err != nil {
				return result, &FileError{Op: OpWrite, Path: target, Err: err}
			}
		}

		c.logger.Debug("converted",
			"source", path,
			"target", target,
			"fields", len(out.Document.Fields),
			"dry_run", c.dryRun)

		result.Files = append(result.Files, FileResult{
			Source: path,
			Target: target,
			Slug:   out.Slug,
			Bytes:  len(out.Content),
		})
	}

	c.logger.Info("conversion complete",
		"count", result.Count(),
		"dst", dst,
		"dry_run", c.dryRun)

	return result, nil
}

// ListSources returns the paths of the entries directly inside dir whose
// names match SourcePattern, sorted by filename. Directories are skipped.
func ListSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &FileError{Op: OpList, Path: dir, Err: err}
	}

	// os.ReadDir sorts by filename.
	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(SourcePattern, entry.Name()); ok {
			sources = append(sources, filepath.Join(dir, entry.Name()))
		}
	}
	return sources, nil
}
