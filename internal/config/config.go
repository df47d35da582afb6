// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Storage drivers accepted by [Storage.Driver].
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Defaults applied before any other source.
const (
	DefaultRegistryPath   = "~/.config/media-mirror.json"
	DefaultDataPath       = "~/media-mirror"
	DefaultLogFile        = "~/.cache/media-mirror/mirror.log"
	DefaultBridgeAddress  = "http://localhost:8200"
	DefaultServerAddress  = "localhost:8210"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
)

// StructuredConfig is the top-level configuration container for
// go-media-mirror. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment variables additionally carry the MIRROR_ prefix.
type StructuredConfig struct {
	// App holds process-wide settings: data path and logging.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the registry and mirror backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter configures the media-server bridge client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server configures the status API served by `media-mirror serve`.
	Server Server `envPrefix:"SERVER_"`

	// Workers configures the periodic sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: MIRROR_CONFIG, flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// DataPath is the root directory for per-server mirror documents. When
	// empty the path stored in the registry is used, and when that is empty
	// too, DefaultDataPath.
	// Env: MIRROR_APP_DATA_PATH
	DataPath string `env:"DATA_PATH"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: MIRROR_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where CLI commands write their logs.
	// Env: MIRROR_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups persistence settings.
type Storage struct {
	// Driver is one of DriverFile, DriverSQLite, DriverPostgres.
	// Env: MIRROR_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// RegistryPath is the registry document path for the file driver.
	// Env: MIRROR_STORAGE_REGISTRY_PATH
	RegistryPath string `env:"REGISTRY_PATH"`

	// DB holds the SQL connection settings for the sqlite and postgres
	// drivers.
	DB DB `envPrefix:"DB_"`
}

// DB holds SQL connection settings.
type DB struct {
	// DSN is a SQLite file path or a PostgreSQL connection string.
	// Env: MIRROR_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter configures the bridge client.
type Adapter struct {
	// HTTPAddress is the bridge base URL (e.g. "http://localhost:8200").
	// Env: MIRROR_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every single bridge request.
	// Env: MIRROR_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server configures the status API.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: MIRROR_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers configures background jobs.
type Workers struct {
	// SyncInterval is the delay between two sync passes of the daemon.
	// Env: MIRROR_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, expands and validates the configuration
// in the following priority order (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (values bound by [BindFlags])
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			LogFile:  DefaultLogFile,
		},
		Storage: Storage{
			Driver:       DriverFile,
			RegistryPath: DefaultRegistryPath,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultBridgeAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server:  Server{HTTPAddress: DefaultServerAddress},
		Workers: Workers{SyncInterval: DefaultSyncInterval},
	}
}

// compile-time check that the flag value type satisfies pflag.
var _ pflag.Value = (*NetAddress)(nil)
