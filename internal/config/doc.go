// Package config loads the matter CLI's own settings.
//
// # Configuration File
//
// The file is config.yaml, found in the current directory or in
// <XDG config home>/matter (see the paths package). Every key is optional:
//
//	version: 1
//	format: yaml          # front matter format: yaml, json, toml
//	output: json          # rendering of show and get: yaml, json, toml
//	max_file_size: 1048576
//
// Environment variables prefixed with MATTER_ override the file, for
// example MATTER_OUTPUT=toml. Command-line flags override both.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load(explicitPath) // "" searches the default locations
//
// # Validation
//
// Load validates what it read; [Validate] can also be called directly and
// returns every problem found:
//
//	for _, err := range config.Validate(cfg) {
//		fmt.Println(err)
//	}
package config
