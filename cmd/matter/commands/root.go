// Package commands implements the CLI commands for matter.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/matter/cmd"
	"github.com/thoreinstein/matter/internal/config"
	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/logging"
	"github.com/thoreinstein/matter/internal/paths"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// formatFlag holds the value of the --format flag.
var formatFlag string

// configPath holds the value of the --config flag.
var configPath string

// cfg is the loaded configuration; configLoadErr is reported by commands
// that need it.
var (
	cfg           = config.Default()
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "",
		"front matter format: yaml, json, toml (default from config: yaml)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ./config.yaml or "+paths.ConfigFile()+")")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("matter version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load(configPath)
	if err != nil {
		configLoadErr = err
		cfg = config.Default()
		return
	}
	configLoadErr = nil
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "matter",
	Short: "Read front matter from text documents",
	Long: `matter splits documents into a front matter block and a body and gives
access to the metadata in the block.

A front matter block starts on the first line of the document with "---"
and ends at the next "---" line. The block is YAML unless --format says
otherwise. Values are addressed with dot paths such as "head.meta.author".

Pass "-" as FILE to read from standard input.`,
	Example: `  # Does every post have front matter?
  matter check posts/*.md

  # Print the title
  matter get post.md title

  # Print all metadata as JSON
  matter show post.md -o json

  # Strip the front matter
  matter body post.md > post.txt`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.Wrap(errors.ErrInvalidArgument, "--quiet with --verbose"),
			"Use either -q or -v, not both")
	}

	level := logging.LevelFromVerbosity(verbosity)
	if quiet {
		level = slog.LevelError
	} else if verbosity == 0 {
		if val, ok := os.LookupEnv("MATTER_DEBUG"); ok {
			switch val {
			case "1", "true":
				level = logging.LevelFromVerbosity(2)
			case "2":
				level = logging.LevelTrace
			}
		}
	}

	lc := logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	}

	if logFile != "" {
		path, err := paths.ExpandHome(logFile)
		if err != nil {
			return errors.NewUserError(err, "failed to resolve log file path")
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		lc.File = f
	}

	logger := logging.New(lc)
	logging.ConfigureColor(cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a config that failed to load, except for commands
// that work without one.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Annotations[skipConfigCheck] != "" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if used := config.FileUsed(); used != "" {
		logging.FromContext(cmd.Context()).Debug("config loaded", "file", used)
	}
	return nil
}

// ReportError writes err and any suggestion to w and returns the process
// exit code for it. An ExitError without an underlying error carries only
// a code; the command has already said what went wrong.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return exitErr.Code
	}

	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
	if exitErr != nil && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Suggestion:"), exitErr.Suggestion)
	}
	return errors.ExitCode(err)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return ReportError(rootCmd.ErrOrStderr(), rootCmd.Execute())
}
