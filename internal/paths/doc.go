// Package paths resolves the filesystem locations matter reads its own
// configuration from.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. The config file lives at:
//
//	<ConfigHome>/matter/config.yaml
//
// Setting MATTER_CONFIG_DIR replaces the directory, which tests use to keep
// away from the real user configuration.
package paths
