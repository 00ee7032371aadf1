// Package config provides configuration management for matter using Viper.
package config

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/matter/internal/paths"
	"github.com/thoreinstein/matter/pkg/fileutil"
)

// EnvPrefix prefixes environment variables that override config keys,
// such as MATTER_FORMAT.
const EnvPrefix = "MATTER"

// Config represents the top-level configuration structure.
type Config struct {
	Version     int    `mapstructure:"version" yaml:"version"`
	Format      string `mapstructure:"format" yaml:"format"`
	Output      string `mapstructure:"output" yaml:"output"`
	MaxFileSize int64  `mapstructure:"max_file_size" yaml:"max_file_size"`
}

// Default returns the configuration used when no file or environment
// variable says otherwise.
func Default() *Config {
	return &Config{
		Version:     1,
		Format:      "yaml",
		Output:      "yaml",
		MaxFileSize: fileutil.MaxFileSize,
	}
}

// Init resets Viper and installs matter's search paths, environment binding
// and defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.ConfigFileName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("format", d.Format)
	viper.SetDefault("output", d.Output)
	viper.SetDefault("max_file_size", d.MaxFileSize)
}

// Load reads and validates the configuration.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, it searches the default locations and
// falls back to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		expanded, err := paths.ExpandHome(path)
		if err != nil {
			return nil, errors.Wrap(err, "resolving config path")
		}
		viper.SetConfigFile(expanded)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path == "" && errors.As(err, &notFound):
			// No file in the search paths; defaults apply.
		case path != "" && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errors.Join(errs...), "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the config file Load read, or "" if defaults were used.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
