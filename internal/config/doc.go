// Package config defines the application configuration structures and the
// logic for loading them from environment variables and config files.
package config
