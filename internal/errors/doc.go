// Package errors provides error handling conventions for the matter CLI.
//
// It re-exports the constructors of github.com/cockroachdb/errors so that
// every error carries a stack trace, defines sentinel errors for common CLI
// failure conditions, an ExitError type for exit code handling, and exit
// code constants following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, matterr.ErrMissingFrontMatter) {
//	    // handle a document without front matter
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [Unwrap] and [As]:
//
//	err := matterr.NewUserError(matterr.ErrInvalidConfig, "Check your config file")
//	var exitErr *matterr.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
