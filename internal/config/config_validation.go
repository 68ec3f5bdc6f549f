// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.ResetTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.Environment != EnvironmentDevelopment && cfg.App.Environment != EnvironmentProduction {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: database uri is required", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.TokensBackend {
	case TokensBackendDB:
	case TokensBackendRedis:
		if cfg.Storage.Redis.Address == "" {
			return fmt.Errorf("%w: redis address is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown tokens backend %q", ErrInvalidStorageConfigs, cfg.Storage.TokensBackend)
	}

	switch cfg.ImageHost.Provider {
	case ImageHostCloudinary, ImageHostS3:
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidImageHostConfigs, cfg.ImageHost.Provider)
	}

	return nil
}
