// Package config defines the application configuration structures and
// loading logic. Configuration comes from environment variables with the
// SAVOR_ prefix, optionally layered over a local YAML file, and is
// validated before use.
package config
