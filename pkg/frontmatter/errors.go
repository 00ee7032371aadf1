package frontmatter

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for front matter parsing and data access.
var (
	// ErrInvalidKeys indicates a mapping has top-level keys that are not strings.
	ErrInvalidKeys = errors.New("front matter contains keys that are not strings")

	// ErrFrontMatterCanNotBeParsed indicates the delimited block is not valid
	// in the decoder's format.
	ErrFrontMatterCanNotBeParsed = errors.New("front matter can not be parsed")

	// ErrFrontMatterIsNotAnObject indicates the delimited block decoded to
	// something other than a string-keyed mapping.
	ErrFrontMatterIsNotAnObject = errors.New("front matter is not an object")

	// ErrKeyNotFound indicates a key or dot path did not resolve.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownFormat indicates no decoder is registered under a name.
	ErrUnknownFormat = errors.New("unknown front matter format")

	// ErrUnsupportedValue indicates a native Go value has no Value equivalent.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// KeyNotFoundError reports the path of a lookup that did not resolve.
// It matches ErrKeyNotFound with errors.Is.
type KeyNotFoundError struct {
	Path string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("data does not have a key named %q", e.Path)
}

// Is reports whether target is ErrKeyNotFound.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// DecodeError wraps a decoder failure. It matches
// ErrFrontMatterCanNotBeParsed with errors.Is and unwraps to the decoder's
// own error.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("%v: %v", ErrFrontMatterCanNotBeParsed, e.Err)
	}
	return fmt.Sprintf("%v as %s: %v", ErrFrontMatterCanNotBeParsed, e.Format, e.Err)
}

// Is reports whether target is ErrFrontMatterCanNotBeParsed.
func (e *DecodeError) Is(target error) bool {
	return target == ErrFrontMatterCanNotBeParsed
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
