// Package app wires application dependencies for the CLI.
//
// It resolves the home directory (flag, $BOG_HOME, ~/.bog), reads the
// optional bog.toml found there, and builds the logger, the store and the
// identity service, exposing them via the Wire struct for commands to use.
package app
