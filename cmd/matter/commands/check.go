package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/render"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Report whether files have valid front matter",
	Long: `Check each file for a front matter block and decode it.

A file passes when it starts with a front matter block that decodes to a
mapping. The command exits with status 1 if any file fails.

Examples:
  matter check post.md
  matter check posts/*.md --json
  matter check -q posts/*.md && echo ok`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd, "")
		if err != nil {
			return err
		}
		return runCheck(r, args, checkJSON)
	},
}

func runCheck(r *runner, files []string, asJSON bool) error {
	results := make([]render.CheckResult, 0, len(files))
	failed := 0
	for _, path := range files {
		res := render.CheckResult{Path: path}
		doc, err := r.load(path)
		if err != nil {
			res.Err = err
			if errors.ExitCode(err) == errors.ExitSystem {
				return err
			}
		} else {
			res.HasFrontMatter = doc.HasFrontMatter()
			res.Keys = doc.FrontMatter().Data().Len()
		}
		if !res.OK() {
			failed++
			r.logger.Debug("check failed", "path", path, "reason", res.Status())
		}
		results = append(results, res)
	}

	if !r.quiet {
		if err := render.NewReporter(r.out, asJSON).Report(results); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if failed > 0 {
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}
