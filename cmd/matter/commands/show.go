package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/render"
)

var showOutput string

func init() {
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "", "output format: yaml, json, toml (default from config: yaml)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the decoded front matter",
	Long: `Print all front matter data of a document, keeping the order in which
keys appear. TOML output sorts keys and leaves out null values.

Examples:
  matter show post.md
  matter show post.md -o json
  cat post.md | matter show - -o toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd, showOutput)
		if err != nil {
			return err
		}
		return runShow(r, args[0])
	},
}

func runShow(r *runner, path string) error {
	doc, err := r.loadWithFrontMatter(path)
	if err != nil {
		return err
	}
	if err := render.Data(r.out, doc.FrontMatter().Data(), r.output); err != nil {
		return errors.NewUserError(err, "Try another output format with -o")
	}
	return nil
}
