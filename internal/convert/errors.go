package convert

import (
	"fmt"

	"github.com/thoreinstein/radar2mdx/internal/errors"
)

// ErrInvalidUTF8 indicates an input file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// File operations reported in FileError.Op.
const (
	OpRead  = "read"
	OpWrite = "write"
	OpList  = "list"
	OpMkdir = "mkdir"
)

// FileError records the file operation that failed during a conversion run.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
