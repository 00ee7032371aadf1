package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// CheckResult is the outcome of checking one file.
type CheckResult struct {
	Path           string `json:"path"`
	HasFrontMatter bool   `json:"has_front_matter"`
	Keys           int    `json:"keys"`
	Err            error  `json:"-"`
}

// OK reports whether the file has front matter that parsed.
func (r CheckResult) OK() bool {
	return r.Err == nil && r.HasFrontMatter
}

// Status describes the result in a few words.
func (r CheckResult) Status() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case !r.HasFrontMatter:
		return "no front matter"
	case r.Keys == 1:
		return "1 key"
	default:
		return fmt.Sprintf("%d keys", r.Keys)
	}
}

// Reporter writes check results.
type Reporter struct {
	out  io.Writer
	json bool
}

// NewReporter creates a Reporter writing text, or one JSON document when
// asJSON is set.
func NewReporter(out io.Writer, asJSON bool) *Reporter {
	return &Reporter{out: out, json: asJSON}
}

// Report writes results and a summary line.
func (r *Reporter) Report(results []CheckResult) error {
	if r.json {
		return r.reportJSON(results)
	}

	failed := 0
	for _, res := range results {
		mark := color.GreenString("✓")
		if !res.OK() {
			mark = color.RedString("✗")
			failed++
		}
		fmt.Fprintf(r.out, "%s %s: %s\n", mark, res.Path, res.Status())
	}

	switch {
	case len(results) == 0:
		return nil
	case failed == 0:
		fmt.Fprintln(r.out, color.GreenString("All %d file(s) have front matter", len(results)))
	default:
		fmt.Fprintln(r.out, color.RedString("%d of %d file(s) failed", failed, len(results)))
	}
	return nil
}

type jsonCheckResult struct {
	CheckResult
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (r *Reporter) reportJSON(results []CheckResult) error {
	out := make([]jsonCheckResult, len(results))
	for i, res := range results {
		out[i] = jsonCheckResult{CheckResult: res, OK: res.OK()}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(out), "encoding JSON report")
}
