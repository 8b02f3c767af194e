package config

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/radar2mdx/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a version other than 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrEmptyKitTag indicates a blank entry in kit_tags.
	ErrEmptyKitTag = errors.New("empty kit tag")

	// ErrInvalidOutputExt indicates an output_ext without a leading dot or
	// containing a path separator.
	ErrInvalidOutputExt = errors.New("invalid output_ext")
)

// Validate checks cfg and returns every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{Field: "version", Value: cfg.Version, Err: ErrUnsupportedVersion})
	}

	for i, tag := range cfg.KitTags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, &FieldError{Field: fmt.Sprintf("kit_tags[%d]", i), Value: tag, Err: ErrEmptyKitTag})
		}
	}

	if ext := cfg.OutputExt; ext != "" && (!strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`)) {
		errs = append(errs, &FieldError{Field: "output_ext", Value: ext, Err: ErrInvalidOutputExt})
	}

	return errs
}

// FieldError ties a validation failure to the offending field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s=%q", e.Err, e.Field, fmt.Sprint(e.Value))
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
