// Package file provides a TOML file-backed implementation of the
// ConfigStore port.
package file
