// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers for the sync server.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Storage drivers for the origin-local Resource Store.
const (
	LocalDriverSQLite = "sqlite"
	LocalDriverBolt   = "bolt"
	LocalDriverMemory = "memory"
)

// Client push/pull protocols.
const (
	// ProtocolReplace pushes whole collections and merges pulls additively.
	ProtocolReplace = "replace"

	// ProtocolRecord pushes per-record upserts and tombstones and pulls
	// versioned changes since a cursor.
	ProtocolRecord = "record"
)

// StructuredConfig is the top-level configuration container for dcms-sync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix:  prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:        direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds application-level settings: version, origin identity and
	// token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the server repositories and the
	// origin-local Resource Store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the sync server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the client engine tunables.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Origin names this client deployment ("public" or "admin"). It becomes
	// the subject of the client's access token.
	// Env: APP_ORIGIN
	Origin string `env:"ORIGIN" envDefault:"public"`

	// TokenSignKey signs and verifies origin tokens. When empty on the
	// server, the sync API is served without authentication.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of origin tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"dcms-sync"`

	// TokenDuration is the lifetime of a token minted by the client.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`

	// LogFile is where the client writes rotated logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE" envDefault:"dcms-sync-client.log"`

	// Headless makes the client run one refresh and exit instead of showing
	// the dashboard.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Driver selects the server repository: memory, postgres or redis.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER" envDefault:"memory"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the Redis connection settings.
	Redis Redis `envPrefix:"REDIS_"`

	// Local holds the origin-local Resource Store settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the Redis backend.
type Redis struct {
	// URL is a redis:// URL, e.g. "redis://localhost:6379/0".
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`
}

// Local selects and locates the origin-local Resource Store.
type Local struct {
	// Driver is sqlite, bolt or memory.
	// Env: STORAGE_LOCAL_DRIVER
	Driver string `env:"DRIVER" envDefault:"sqlite"`

	// Path is the database file for sqlite and bolt.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH" envDefault:"dcms-local.db"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:3002"`

	// GRPCAddress is the TCP address of the gRPC server; empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Adapter holds the client's connection settings for the sync server.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"http://localhost:3002"`

	// RequestTimeout bounds push and pull requests; zero means unbounded.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Sync holds the client engine tunables.
type Sync struct {
	// Protocol is "replace" or "record".
	// Env: SYNC_PROTOCOL
	Protocol string `env:"PROTOCOL" envDefault:"replace"`

	// ReconnectDelay is the delay of the single reconnect timer.
	// Env: SYNC_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY" envDefault:"5s"`

	// PushDelay is the delay between a local write and the pending push.
	// Env: SYNC_PUSH_DELAY
	PushDelay time.Duration `env:"PUSH_DELAY" envDefault:"100ms"`

	// ProbeTimeout bounds one health probe.
	// Env: SYNC_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT" envDefault:"3s"`

	// PreserveAdminFields keeps the local customerType and centerSkillLevel
	// of customers when merging server data, defaulting them to "tourist" and
	// "beginner" when neither copy has one. Enabled on the admin origin.
	// Env: SYNC_PRESERVE_ADMIN_FIELDS
	PreserveAdminFields bool `env:"PRESERVE_ADMIN_FIELDS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PurgeInterval is how often tombstones are purged; zero disables it.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL" envDefault:"1h"`

	// TombstoneTTL is how long a tombstone is kept before purge.
	// Env: WORKERS_TOMBSTONE_TTL
	TombstoneTTL time.Duration `env:"TOMBSTONE_TTL" envDefault:"720h"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables (with defaults)
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
