// Package script provides the TOML-backed implementation of
// driven.ScriptSource.
//
// The default script is compiled into the binary, so loading it never
// touches the filesystem.
package script
