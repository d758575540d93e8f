// Package config builds and validates the run configuration for the
// cmapgen CLI.
//
// A Config is assembled once, after every command-line flag has been parsed,
// from two sources:
//   - an optional preset file (YAML, or JSON with comments via
//     github.com/tidwall/jsonc)
//   - the -c/-p/-o flags, which replace the matching preset values
//
// The merged value is validated as a whole before any colour is resolved or
// any slot is allocated, so no partially valid state reaches the core.
package config
