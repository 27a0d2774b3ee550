// Package config holds the settings of the conductor tools, read from a TOML
// file and overridden by command-line flags.
//
// Relative file paths in the file are taken relative to the file's own
// directory. Paths given as flags are used as given.
package config
