// Package config loads and validates the logger and cryptographic default settings.
//
// Settings come from an optional YAML file and from CRYPTOUTIL_* environment
// variables, environment values taking precedence.
package config
