package frontmatter

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/matter/pkg/fileutil"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFile(t *testing.T) {
	path := writeDoc(t, "---\ntitle: Hello\n---\nBody text\n")

	doc, err := ParseFile(path)
	require.NoError(t, err)
	assert.True(t, doc.FrontMatter().Has("title"))
	assert.Equal(t, "Body text\n", doc.Body().String())
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseFile_InvalidFrontMatter(t *testing.T) {
	path := writeDoc(t, "---\n- a\n- b\n---\n")

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFrontMatterIsNotAnObject)
	assert.Contains(t, err.Error(), path)
}

func TestParser_MaxFileSize(t *testing.T) {
	content := "---\ntitle: Hello\n---\n" + strings.Repeat("x", 100)
	path := writeDoc(t, content)

	_, err := NewParser(WithMaxFileSize(64)).ParseFile(path)
	assert.ErrorIs(t, err, fileutil.ErrFileTooLarge)

	_, err = NewParser(WithMaxFileSize(64)).ParseReader(strings.NewReader(content))
	assert.ErrorIs(t, err, fileutil.ErrFileTooLarge)

	doc, err := NewParser(WithMaxFileSize(int64(len(content)))).ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 100, doc.Body().Len())
}

func TestParser_MaxInt64FileSize(t *testing.T) {
	content := "---\ntitle: x\n---\nbody"
	path := writeDoc(t, content)
	p := NewParser(WithMaxFileSize(math.MaxInt64))

	for _, load := range []func() (Document, error){
		func() (Document, error) { return p.ParseFile(path) },
		func() (Document, error) { return p.ParseReader(strings.NewReader(content)) },
	} {
		doc, err := load()
		require.NoError(t, err)
		assert.True(t, doc.HasFrontMatter())
		assert.True(t, doc.FrontMatter().Has("title"))
		assert.Equal(t, "body", doc.Body().String())
	}
}

func TestParser_ParseReader(t *testing.T) {
	doc, err := NewParser().ParseReader(strings.NewReader("---\na: 1\n---\nrest"))
	require.NoError(t, err)
	assert.True(t, doc.FrontMatter().Has("a"))
	assert.Equal(t, "rest", doc.Body().String())
}

func TestParser_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewParser(WithLogger(logger))

	_, err := p.Parse("---\na: 1\nb: 2\n---\nbody")
	require.NoError(t, err)
	_, err = p.Parse("plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &parsed))
	assert.Equal(t, "front matter parsed", parsed["msg"])
	assert.Equal(t, "yaml", parsed["format"])
	assert.Equal(t, float64(2), parsed["keys"])

	var plain map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &plain))
	assert.Equal(t, "no front matter found", plain["msg"])
}
