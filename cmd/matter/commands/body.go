package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
)

func init() {
	rootCmd.AddCommand(bodyCmd)
	rootCmd.AddCommand(rawCmd)
}

var bodyCmd = &cobra.Command{
	Use:   "body <file>",
	Short: "Print the document without its front matter",
	Long: `Print everything after the closing delimiter, byte for byte. A document
without front matter is printed whole.

Examples:
  matter body post.md > post.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd, "")
		if err != nil {
			return err
		}
		return runBody(r, args[0])
	},
}

var rawCmd = &cobra.Command{
	Use:   "raw <file>",
	Short: "Print the front matter block as written",
	Long: `Print the front matter block from the opening delimiter up to the start of
the body, byte for byte. "matter raw" followed by "matter body" reproduces
the document.

Examples:
  matter raw post.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd, "")
		if err != nil {
			return err
		}
		return runRaw(r, args[0])
	},
}

func runBody(r *runner, path string) error {
	doc, err := r.load(path)
	if err != nil {
		return err
	}
	return write(r.out, doc.Body().String())
}

func runRaw(r *runner, path string) error {
	doc, err := r.loadWithFrontMatter(path)
	if err != nil {
		return err
	}
	return write(r.out, doc.FrontMatter().Raw().String())
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing output"), "")
	}
	return nil
}
