// Package model defines the domain types and value objects for the
// cmapgen CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (RGB, Interval, Proportions, Colormap) are transient: they are
// constructed from command-line input, consumed once, and never persisted.
//
// The package also defines exit codes (ExitCode), the error taxonomy
// sentinels, and a custom error type (CLIError) that carries exit codes for
// proper OS process exit handling.
package model
