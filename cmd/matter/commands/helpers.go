package commands

import (
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/logging"
	"github.com/thoreinstein/matter/internal/render"
	"github.com/thoreinstein/matter/pkg/fileutil"
	"github.com/thoreinstein/matter/pkg/frontmatter"
)

// stdinPath names standard input in FILE arguments.
const stdinPath = "-"

// runner carries what every command needs. Tests build one directly.
type runner struct {
	out    io.Writer
	in     io.Reader
	parser *frontmatter.Parser
	logger *slog.Logger
	output render.Format
	quiet  bool
}

// newRunner resolves flags and config for cmd. outputFlag is the value of
// the command's -o flag, or "" for commands without one.
func newRunner(cmd *cobra.Command, outputFlag string) (*runner, error) {
	logger := logging.FromContext(cmd.Context())

	format := cfg.Format
	if formatFlag != "" {
		format = formatFlag
	}
	decoder, err := frontmatter.LookupDecoder(format)
	if err != nil {
		return nil, errors.NewUserError(err, "Use --format yaml, json or toml")
	}

	output := cfg.Output
	if outputFlag != "" {
		output = outputFlag
	}
	of, err := render.ParseFormat(output)
	if err != nil {
		return nil, errors.NewUserError(err, "Use -o yaml, json or toml")
	}

	return &runner{
		out: cmd.OutOrStdout(),
		in:  cmd.InOrStdin(),
		parser: frontmatter.NewParser(
			frontmatter.WithDecoder(decoder),
			frontmatter.WithLogger(logger),
			frontmatter.WithMaxFileSize(cfg.MaxFileSize),
		),
		logger: logger,
		output: of,
		quiet:  quiet,
	}, nil
}

// load parses the document at path, or standard input for "-".
func (r *runner) load(path string) (frontmatter.Document, error) {
	var (
		doc frontmatter.Document
		err error
	)
	if path == stdinPath {
		doc, err = r.parser.ParseReader(r.in)
	} else {
		doc, err = r.parser.ParseFile(path)
	}
	if err != nil {
		return frontmatter.Document{}, classify(err)
	}
	r.logger.Info("document loaded",
		"path", path,
		"front_matter", doc.HasFrontMatter(),
		"keys", doc.FrontMatter().Data().Len(),
	)
	return doc, nil
}

// loadWithFrontMatter is load for commands that have nothing to do without
// a front matter block.
func (r *runner) loadWithFrontMatter(path string) (frontmatter.Document, error) {
	doc, err := r.load(path)
	if err != nil {
		return doc, err
	}
	if !doc.HasFrontMatter() {
		return doc, errors.NewUserError(
			errors.Wrapf(errors.ErrMissingFrontMatter, "%s", path),
			"The first line must be \"---\" and the block must end with a \"---\" line",
		)
	}
	return doc, nil
}

// classify attaches an exit code and suggestion to a load error.
func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.NewUserError(err, "Check the file path")
	case errors.Is(err, fileutil.ErrFileTooLarge):
		return errors.NewUserError(err, "Raise max_file_size in the config file")
	case errors.Is(err, frontmatter.ErrFrontMatterCanNotBeParsed):
		return errors.NewUserError(err, "Fix the front matter syntax or pick its format with --format")
	case errors.Is(err, frontmatter.ErrFrontMatterIsNotAnObject):
		return errors.NewUserError(err, "Front matter must be a mapping of names to values")
	default:
		return errors.NewSystemError(err, "")
	}
}
