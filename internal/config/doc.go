// Package config loads the wrapper settings from a YAML or JSON file with
// MHCWRAP_* environment overrides.
package config
