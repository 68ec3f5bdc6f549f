package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer        = "go-blog-keeper"
	defaultTokenDuration      = 7 * 24 * time.Hour
	defaultResetTokenDuration = 15 * time.Minute
	defaultVersion            = "dev"
	defaultLogLevel           = "debug"

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second

	defaultRedisAddress   = "localhost:6379"
	defaultRedisRetention = time.Hour

	defaultImageHostTimeout  = 10 * time.Second
	defaultCloudinaryBaseURL = "https://api.cloudinary.com"
)

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, defaultTokenDuration)
	setDefault(&cfg.App.ResetTokenDuration, defaultResetTokenDuration)
	setDefault(&cfg.App.PasswordHashCost, bcrypt.DefaultCost)
	setDefault(&cfg.App.Environment, EnvironmentProduction)
	setDefault(&cfg.App.Version, defaultVersion)
	setDefault(&cfg.App.LogLevel, defaultLogLevel)

	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, defaultRequestTimeout)

	setDefault(&cfg.Storage.TokensBackend, TokensBackendDB)
	setDefault(&cfg.Storage.Redis.Address, defaultRedisAddress)
	setDefault(&cfg.Storage.Redis.Retention, defaultRedisRetention)

	setDefault(&cfg.ImageHost.Provider, ImageHostCloudinary)
	setDefault(&cfg.ImageHost.Timeout, defaultImageHostTimeout)
	setDefault(&cfg.ImageHost.Cloudinary.BaseURL, defaultCloudinaryBaseURL)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
