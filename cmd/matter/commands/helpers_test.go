package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/thoreinstein/matter/internal/logging"
	"github.com/thoreinstein/matter/internal/render"
	"github.com/thoreinstein/matter/pkg/frontmatter"
)

const postFixture = `---
title: Hello
head:
  meta:
    author: Ada
tags: [a, b]
"dotted.key": x
---
# Body

Text.
`

// newTestRunner returns a runner writing to a buffer and logging to t.
func newTestRunner(t *testing.T, output render.Format, opts ...frontmatter.Option) (*runner, *bytes.Buffer) {
	t.Helper()
	noColor(t)

	var out bytes.Buffer
	logger := logging.ForTest(t)
	opts = append([]frontmatter.Option{frontmatter.WithLogger(logger)}, opts...)
	return &runner{
		out:    &out,
		in:     strings.NewReader(""),
		parser: frontmatter.NewParser(opts...),
		logger: logger,
		output: output,
	}, &out
}

// writeFile writes content to name inside a fresh temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func noColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}
