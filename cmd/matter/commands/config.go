package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/matter/internal/config"
	"github.com/thoreinstein/matter/internal/errors"
	"github.com/thoreinstein/matter/internal/paths"
)

// skipConfigCheck marks commands that run even when the config file is
// broken.
const skipConfigCheck = "skip-config-check"

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show matter configuration",
	Long: `Show the configuration matter runs with.

Settings come from config.yaml in the current directory or in
` + paths.ConfigDir() + `, and MATTER_* environment variables override them.
Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  matter config

  # Get a specific value
  matter config get format

  # Which file was loaded?
  matter config path

See Also: matter show`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key, after environment overrides.`,
	Example: `  # Default front matter format
  matter config get format

See Also: matter config list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigGet(cmd, args[0])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  # List all configuration
  matter config list

See Also: matter config get`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the configuration file in use",
	Long:        `Print the configuration file matter loaded, or where it looks for one.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfigCheck: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if used := config.FileUsed(); used != "" {
			fmt.Fprintln(cmd.OutOrStdout(), used)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (not found, using defaults)\n", paths.ConfigFile())
		return nil
	},
}

func runConfigGet(cmd *cobra.Command, key string) error {
	if !viper.IsSet(key) {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrInvalidArgument, "unknown config key %q", key),
			"Run: matter config list",
		)
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewSystemError(errors.Wrap(err, "marshaling config"), "")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
