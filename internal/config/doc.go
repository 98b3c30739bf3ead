// Package config loads application configuration from an optional YAML file
// overridden by O3_-prefixed environment variables, with defaults carried in
// struct tags.
package config
