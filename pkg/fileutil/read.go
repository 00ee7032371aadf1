// Package fileutil provides bounded reads of documents from files and
// streams.
package fileutil

import (
	"io"
	"math"
	"os"

	"github.com/thoreinstein/matter/internal/errors"
)

// MaxFileSize is the default maximum number of bytes read (1MB).
// This prevents memory exhaustion from maliciously large files.
const MaxFileSize = 1024 * 1024 // 1MB

// ErrFileTooLarge indicates that the input exceeded the read limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ReadFileWithLimit reads a file of at most limit bytes. A limit of zero or
// less means MaxFileSize.
func ReadFileWithLimit(path string, limit int64) ([]byte, error) {
	limit = effectiveLimit(limit)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast if the size is already known to be too large
	info, err := f.Stat()
	if err == nil && info.Mode().IsRegular() && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%d bytes, limit is %d", info.Size(), limit)
	}

	return ReadAllWithLimit(f, limit)
}

// ReadAllWithLimit reads r to the end, failing with ErrFileTooLarge once more
// than limit bytes arrive. A limit of zero or less means MaxFileSize.
func ReadAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	limit = effectiveLimit(limit)

	// One byte past the limit tells a full read from an oversized one.
	// MaxInt64 is unbounded already and limit+1 would overflow.
	if limit < math.MaxInt64 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "limit is %d bytes", limit)
	}

	return data, nil
}

func effectiveLimit(limit int64) int64 {
	if limit <= 0 {
		return MaxFileSize
	}
	return limit
}
