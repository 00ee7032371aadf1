// Package logging provides structured logging for the matter CLI using slog.
//
// Loggers write colorized text to terminals or JSON for machines, and can
// additionally tee every record to a JSON log file. Verbosity flags map to
// levels with [LevelFromVerbosity]; [LevelTrace] sits below debug.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbose),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Commands recover the logger with [FromContext].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	parser := frontmatter.NewParser(frontmatter.WithLogger(logging.ForTest(t)))
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely.
package logging
