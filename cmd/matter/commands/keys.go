package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
)

var keysTopLevel bool

func init() {
	keysCmd.Flags().BoolVar(&keysTopLevel, "top-level", false, "list only top-level keys")
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "List the dot paths in the front matter",
	Long: `List every dot path that "matter get" resolves, one per line, in document
order. Keys that contain a dot can not be addressed and are left out.

Examples:
  matter keys post.md
  matter keys post.md --top-level`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd, "")
		if err != nil {
			return err
		}
		return runKeys(r, args[0], keysTopLevel)
	},
}

func runKeys(r *runner, path string, topLevel bool) error {
	doc, err := r.loadWithFrontMatter(path)
	if err != nil {
		return err
	}
	data := doc.FrontMatter().Data()

	keys := data.Paths()
	if topLevel {
		keys = data.Keys()
	}
	for _, k := range keys {
		if _, err := fmt.Fprintln(r.out, k); err != nil {
			return errors.NewSystemError(err, "")
		}
	}
	return nil
}
