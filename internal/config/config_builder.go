package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from every source in priority
// order. Errors are accumulated and reported once by build.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{sources: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, cfg)
	return b
}

// build merges the sources (later non-zero fields win), fills defaults and
// validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	merged.applyDefaults()
	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

// withDotEnv exports the .env file into the process environment, so it
// only affects a later withEnv(nil).
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	return b.add(parseEnv(environ))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args, os.Stderr))
}

// withJSON loads the file named by the last source that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			path = src.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	return b.add(parseJSON(path))
}
