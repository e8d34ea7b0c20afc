// Package config provides centralized configuration constants for todowing.
// All default values should be defined here to ensure a single source of truth.
package config

// Storage defaults
const (
	// DefaultBackend stores the collection as a file in the data directory.
	DefaultBackend = "file"

	// DefaultFormat is the encoding of the stored collection.
	DefaultFormat = "json"

	// DefaultKey is the storage key under which the collection lives.
	DefaultKey = "todos"
)

// AppName names the data directory and the config file.
const AppName = "todowing"

// ConfigFileName is the base name of the config file (without extension).
const ConfigFileName = ".todowing"

// EnvPrefix is prepended to every environment override, e.g. TODOWING_DATA_DIR.
const EnvPrefix = "TODOWING"
