package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative reset token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.ResetTokenDuration = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown environment",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Environment = "staging" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "file::memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown tokens backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.TokensBackend = "memcached" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "redis backend without address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.TokensBackend = TokensBackendRedis
				cfg.Storage.Redis.Address = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:   "redis backend",
			mutate: func(cfg *StructuredConfig) { cfg.Storage.TokensBackend = TokensBackendRedis },
		},
		{
			name:    "unknown image host",
			mutate:  func(cfg *StructuredConfig) { cfg.ImageHost.Provider = "imgur" },
			wantErr: ErrInvalidImageHostConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := requiredConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
