package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/matter/internal/errors"
)

var genDocDir string

var genDocCmd = &cobra.Command{
	Use:         "gen-doc",
	Short:       "Generate Markdown documentation for the CLI",
	Hidden:      true,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if genDocDir == "" {
			return errors.NewUserError(errors.Wrap(errors.ErrInvalidArgument, "output directory is required"),
				"Pass --dir <directory>")
		}

		if err := os.MkdirAll(genDocDir, 0o755); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating output directory"), "")
		}

		// Each page starts with front matter that matter itself can read.
		rootCmd.DisableAutoGenTag = true
		if err := doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "generating markdown"), "")
		}

		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
		}
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	rootCmd.AddCommand(genDocCmd)
}

// filePrepender turns matter_config_get.md into front matter titled
// "matter config get".
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	title := strings.ReplaceAll(strings.TrimSuffix(name, filepath.Ext(name)), "_", " ")

	return fmt.Sprintf(`---
title: %q
description: %q
draft: false
---
`, title, "Reference for "+title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
