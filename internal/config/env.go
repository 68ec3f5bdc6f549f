package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a partial config from environ using the env and envPrefix
// tags of [StructuredConfig]. A nil environ means the process environment.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)

	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
