// Package config handles configuration management for cigen.
// It layers embedded TOML defaults, an optional cigen.toml, CIGEN_*
// environment variables and explicit overrides, in that order.
package config
