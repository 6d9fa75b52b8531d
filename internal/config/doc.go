// Package config loads and validates the application configuration.
//
// Values are gathered from three sources and merged in priority order:
// environment variables, command-line flags, and an optional JSON file,
// with built-in defaults filling any remaining gaps. See
// [GetStructuredConfig] for the entry point.
package config
