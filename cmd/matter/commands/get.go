package commands

import (
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/render"
	"github.com/thoreinstein/matter/pkg/frontmatter"
)

var (
	getOutput      string
	getInteractive bool
)

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "output format for lists and mappings: yaml, json, toml")
	getCmd.Flags().BoolVarP(&getInteractive, "interactive", "i", false, "pick the path with a fuzzy finder")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <file> [path]",
	Short: "Print the value at a dot path",
	Long: `Print the front matter value at a dot path such as "head.meta.author".

Strings, numbers and booleans are printed bare; lists and mappings are
encoded with -o. Without a path, -i opens a fuzzy finder over every path
in the document.

Examples:
  matter get post.md title
  matter get post.md head.meta -o json
  matter get post.md -i`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd, getOutput)
		if err != nil {
			return err
		}
		var path string
		if len(args) == 2 {
			path = args[1]
		}
		return runGet(r, args[0], path, getInteractive)
	},
}

// pickPath lets the user choose one of paths. Tests replace it.
var pickPath = func(paths []string, preview func(i int) string) (int, error) {
	return fuzzyfinder.Find(
		paths,
		func(i int) string { return paths[i] },
		fuzzyfinder.WithHeader("Select a front matter path"),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(i)
		}),
	)
}

func runGet(r *runner, file, path string, interactive bool) error {
	doc, err := r.loadWithFrontMatter(file)
	if err != nil {
		return err
	}
	data := doc.FrontMatter().Data()

	if path == "" {
		if !interactive {
			return errors.NewUserError(
				errors.Wrap(errors.ErrInvalidArgument, "no path given"),
				"Pass a path such as \"title\", or use -i to pick one",
			)
		}
		picked, ok, err := r.pick(data)
		if err != nil || !ok {
			return err
		}
		path = picked
	}

	v, err := data.Get(path)
	if err != nil {
		if errors.Is(err, frontmatter.ErrKeyNotFound) {
			return errors.NewUserError(err, "Run: matter keys "+file)
		}
		return err
	}
	r.logger.Debug("value found", "path", path, "kind", v.Kind())

	if err := render.Value(r.out, v, r.output); err != nil {
		return errors.NewUserError(err, "Try another output format with -o")
	}
	return nil
}

// pick asks the user for a path. ok is false when the user aborts.
func (r *runner) pick(data frontmatter.Data) (path string, ok bool, err error) {
	paths := data.Paths()
	if len(paths) == 0 {
		return "", false, errors.NewUserError(
			errors.Wrap(errors.ErrInvalidArgument, "front matter has no keys"), "")
	}

	idx, err := pickPath(paths, func(i int) string {
		v, err := data.Get(paths[i])
		if err != nil {
			return err.Error()
		}
		var b strings.Builder
		if err := render.Value(&b, v, render.FormatYAML); err != nil {
			return err.Error()
		}
		return b.String()
	})
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", false, nil
		}
		return "", false, errors.NewSystemError(errors.Wrap(err, "interactive selection failed"), "")
	}
	return paths[idx], true, nil
}
