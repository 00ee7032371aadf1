// Package render writes front matter values for the matter CLI.
//
// Mappings and sequences are encoded as YAML, JSON or TOML, keeping the
// order in which keys appeared in the document wherever the format allows.
// Scalars are written as plain text so that shell pipelines get the bare
// value:
//
//	render.Value(os.Stdout, value, render.FormatJSON)
//
// The check report is colorized with fatih/color when the output is a
// terminal.
package render
