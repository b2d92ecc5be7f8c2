// Package config handles configuration management for carrierlock.
// Configuration is layered, later layers overriding earlier ones:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/carrierlock/config.toml
//  3. an explicit file given with --config
//  4. CARRIERLOCK_* environment variables
//  5. command-line flag overrides
package config
