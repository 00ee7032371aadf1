package config

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/internal/render"
	"github.com/thoreinstein/matter/pkg/frontmatter"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidFormat indicates format names no front matter decoder.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidOutput indicates output names no renderer.
	ErrInvalidOutput = errors.New("invalid output")

	// ErrInvalidMaxFileSize indicates max_file_size is not positive.
	ErrInvalidMaxFileSize = errors.New("max_file_size must be positive")
)

// Validate checks a Config for validity.
// Returns nil if valid, or every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{Field: "version", Value: cfg.Version, Err: ErrUnsupportedVersion})
	}

	if _, err := frontmatter.LookupDecoder(cfg.Format); err != nil {
		errs = append(errs, &FieldError{Field: "format", Value: cfg.Format, Err: ErrInvalidFormat})
	}

	if _, err := render.ParseFormat(cfg.Output); err != nil {
		errs = append(errs, &FieldError{Field: "output", Value: cfg.Output, Err: ErrInvalidOutput})
	}

	if cfg.MaxFileSize <= 0 {
		errs = append(errs, &FieldError{Field: "max_file_size", Value: cfg.MaxFileSize, Err: ErrInvalidMaxFileSize})
	}

	return errs
}

// FieldError reports an invalid value for a config key.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
