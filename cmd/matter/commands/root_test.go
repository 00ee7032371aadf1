package commands

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/paths"
	"github.com/thoreinstein/matter/internal/render"
	"github.com/thoreinstein/matter/pkg/fileutil"
	"github.com/thoreinstein/matter/pkg/frontmatter"
)

// execute runs the root command with args against an empty config
// directory and returns its output and exit code.
func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	noColor(t)
	t.Setenv(paths.ConfigDirEnv, t.TempDir())

	verbosity, quiet, logFormat, logFile, formatFlag, configPath = 0, false, "text", "", "", ""
	showOutput, getOutput, getInteractive, keysTopLevel, checkJSON, genDocDir = "", "", false, false, false, ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code = Execute()
	return out.String(), errOut.String(), code
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := []string{"body", "check", "config", "get", "keys", "raw", "show", "version"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("subcommand %q is not registered", name)
		}
	}
	for _, flag := range []string{"verbose", "quiet", "log-format", "log-file", "format", "config"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("--%s persistent flag should be defined", flag)
		}
	}
}

func TestExecute_Get(t *testing.T) {
	path := writeFile(t, "post.md", postFixture)

	stdout, stderr, code := execute(t, "get", path, "head.meta.author")
	assert.Equal(t, errors.ExitSuccess, code, stderr)
	assert.Equal(t, "Ada\n", stdout)
}

func TestExecute_MissingKey(t *testing.T) {
	path := writeFile(t, "post.md", postFixture)

	stdout, stderr, code := execute(t, "get", path, "missing")
	assert.Equal(t, errors.ExitUser, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `Error: data does not have a key named "missing"`)
	assert.Contains(t, stderr, "Suggestion: Run: matter keys "+path)
}

func TestExecute_ShowOutputFlag(t *testing.T) {
	path := writeFile(t, "post.md", "---\ntitle: Hello\n---\n")

	stdout, stderr, code := execute(t, "show", path, "-o", "json")
	require.Equal(t, errors.ExitSuccess, code, stderr)
	assert.Equal(t, "{\n  \"title\": \"Hello\"\n}\n", stdout)
}

func TestExecute_OutputFromEnvironment(t *testing.T) {
	path := writeFile(t, "post.md", "---\ntitle: Hello\n---\n")
	t.Setenv("MATTER_OUTPUT", "json")

	stdout, stderr, code := execute(t, "show", path)
	require.Equal(t, errors.ExitSuccess, code, stderr)
	assert.Equal(t, "{\n  \"title\": \"Hello\"\n}\n", stdout)
}

func TestExecute_FormatFlag(t *testing.T) {
	path := writeFile(t, "post.md", "---\n[site]\nname = \"blog\"\n---\n")

	stdout, stderr, code := execute(t, "--format", "toml", "get", path, "site.name")
	require.Equal(t, errors.ExitSuccess, code, stderr)
	assert.Equal(t, "blog\n", stdout)
}

func TestExecute_UnknownFormat(t *testing.T) {
	path := writeFile(t, "post.md", postFixture)

	_, stderr, code := execute(t, "--format", "ini", "show", path)
	assert.Equal(t, errors.ExitUser, code)
	assert.Contains(t, stderr, "unknown front matter format")
}

func TestExecute_ConfigFileErrors(t *testing.T) {
	path := writeFile(t, "post.md", postFixture)

	t.Run("missing explicit config", func(t *testing.T) {
		_, stderr, code := execute(t, "--config", "/non/existent/config.yaml", "body", path)
		assert.Equal(t, errors.ExitUser, code)
		assert.Contains(t, stderr, "config file not found")
		assert.Contains(t, stderr, "Suggestion:")
	})

	t.Run("invalid config", func(t *testing.T) {
		cfgPath := writeFile(t, "config.yaml", "output: xml\n")
		_, stderr, code := execute(t, "--config", cfgPath, "body", path)
		assert.Equal(t, errors.ExitUser, code)
		assert.Contains(t, stderr, "output: invalid output: xml")
	})

	t.Run("version ignores config", func(t *testing.T) {
		stdout, _, code := execute(t, "--config", "/non/existent/config.yaml", "version")
		assert.Equal(t, errors.ExitSuccess, code)
		assert.Contains(t, stdout, "matter version ")
	})
}

func TestExecute_Check(t *testing.T) {
	good := writeFile(t, "good.md", postFixture)
	none := writeFile(t, "none.md", "text")

	stdout, stderr, code := execute(t, "check", good, none)
	assert.Equal(t, errors.ExitUser, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "1 of 2 file(s) failed")
}

func TestExecute_QuietAndVerbose(t *testing.T) {
	path := writeFile(t, "post.md", postFixture)

	_, stderr, code := execute(t, "-q", "-v", "body", path)
	assert.Equal(t, errors.ExitUser, code)
	assert.Contains(t, stderr, "--quiet with --verbose")
}

func TestExecute_LogFile(t *testing.T) {
	path := writeFile(t, "post.md", postFixture)
	logPath := filepath.Join(t.TempDir(), "matter.log")

	_, stderr, code := execute(t, "--log-file", logPath, "get", path, "title")
	require.Equal(t, errors.ExitSuccess, code, stderr)
	assert.NotContains(t, stderr, "document loaded", "info records stay out of stderr by default")

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), `"msg":"document loaded"`)
	assert.Contains(t, string(logged), `"msg":"front matter parsed"`)
}

func TestExecute_UnknownCommand(t *testing.T) {
	_, stderr, code := execute(t, "frobnicate")
	assert.Equal(t, errors.ExitUser, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  []string
	}{
		{"nil", nil, errors.ExitSuccess, nil},
		{"plain", errors.New("boom"), errors.ExitUser, []string{"Error: boom\n"}},
		{
			"system with suggestion",
			errors.NewSystemError(errors.New("disk"), "Check permissions"),
			errors.ExitSystem,
			[]string{"Error: disk\n", "Suggestion: Check permissions\n"},
		},
		{"code only", errors.NewExitError(nil, errors.ExitUser), errors.ExitUser, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noColor(t)
			var buf bytes.Buffer
			assert.Equal(t, tt.wantCode, ReportError(&buf, tt.err))
			assert.Equal(t, strings.Join(tt.wantOut, ""), buf.String())
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errors.Wrap(fs.ErrNotExist, "reading"), errors.ExitUser},
		{"too large", errors.Wrap(fileutil.ErrFileTooLarge, "reading"), errors.ExitUser},
		{"decode", &frontmatter.DecodeError{Format: "yaml", Err: errors.New("bad")}, errors.ExitUser},
		{"not an object", frontmatter.ErrFrontMatterIsNotAnObject, errors.ExitUser},
		{"anything else", fs.ErrPermission, errors.ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			assert.Equal(t, tt.code, errors.ExitCode(err))
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestRunner_MaxFileSize(t *testing.T) {
	r, _ := newTestRunner(t, render.FormatYAML, frontmatter.WithMaxFileSize(8))
	_, err := r.load(writeFile(t, "big.md", postFixture))
	require.ErrorIs(t, err, fileutil.ErrFileTooLarge)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}
