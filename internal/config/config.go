// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of the enumerated settings.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	TokensBackendDB    = "db"
	TokensBackendRedis = "redis"

	ImageHostCloudinary = "cloudinary"
	ImageHostS3         = "s3"
)

// StructuredConfig is the top-level configuration container for the
// go-blog-keeper API server. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token keys and lifetimes,
	// password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// reset-token backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// ImageHost holds settings of the external image host used to delete
	// replaced avatars.
	ImageHost ImageHost `envPrefix:"IMAGE_HOST_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session remains valid after
	// issuance. Also used as the max age of the token cookie.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResetTokenDuration is the lifetime of a password-reset token.
	// Env: APP_RESET_TOKEN_DURATION
	ResetTokenDuration time.Duration `env:"RESET_TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Environment is either "development" or "production". Cookies are
	// marked Secure everywhere except development.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsDevelopment reports whether the application runs in local development.
func (a App) IsDevelopment() bool {
	return a.Environment == EnvironmentDevelopment
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// TokensBackend selects where reset tokens live: "db" or "redis".
	// Env: STORAGE_TOKENS_BACKEND
	TokensBackend string `env:"TOKENS_BACKEND"`

	// Redis holds the Redis connection used when TokensBackend is "redis".
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" DSN selects PostgreSQL, "sqlite://" or "file:" selects
	// SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the connection settings of the Redis token store.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`

	// Retention is how long an entry is kept after the token expires, so
	// that late redemptions are reported as expired rather than missing.
	// Env: STORAGE_REDIS_RETENTION
	Retention time.Duration `env:"RETENTION"`
}

// ImageHost holds configuration for the external avatar image host.
type ImageHost struct {
	// Provider is "cloudinary" or "s3".
	// Env: IMAGE_HOST_PROVIDER
	Provider string `env:"PROVIDER"`

	// Timeout bounds every call to the image host.
	// Env: IMAGE_HOST_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	Cloudinary Cloudinary `envPrefix:"CLOUDINARY_"`
	S3         S3         `envPrefix:"S3_"`
}

// Cloudinary holds credentials of a Cloudinary-compatible REST API.
// The same struct is read from the JSON config file.
type Cloudinary struct {
	// Env: IMAGE_HOST_CLOUDINARY_CLOUD_NAME
	CloudName string `env:"CLOUD_NAME" json:"cloud_name"`
	// Env: IMAGE_HOST_CLOUDINARY_API_KEY
	APIKey string `env:"API_KEY" json:"api_key"`
	// Env: IMAGE_HOST_CLOUDINARY_API_SECRET
	APISecret string `env:"API_SECRET" json:"api_secret"`
	// Env: IMAGE_HOST_CLOUDINARY_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`
}

// S3 holds the settings of an S3-compatible bucket storing avatars.
// Object keys are the avatar ids.
type S3 struct {
	// Env: IMAGE_HOST_S3_REGION
	Region string `env:"REGION" json:"region"`
	// Endpoint overrides the AWS endpoint (MinIO, R2 and similar).
	// Env: IMAGE_HOST_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT" json:"endpoint"`
	// Env: IMAGE_HOST_S3_BUCKET
	Bucket string `env:"BUCKET" json:"bucket"`
	// Env: IMAGE_HOST_S3_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY" json:"access_key"`
	// Env: IMAGE_HOST_S3_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" json:"secret_key"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory (never overrides real env)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Defaults are applied to fields left empty by every source.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv(nil).
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
