// Package config provides the configuration loader for weave.
package config

import (
	"errors"
	"io/fs"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/zerr"
)

// envPrefix is the prefix for environment overrides, e.g.
// WEAVE__TARGET_VERSION=17 overrides target_version.
const envPrefix = "WEAVE__"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader by merging a YAML file with
// WEAVE__-prefixed environment variables, environment winning.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, merges and validates the session configuration. A missing file
// is tolerated so a configuration can come entirely from the environment.
func (l *Loader) Load(path string) (*domain.SessionConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to read environment overrides")
	}

	var cfg domain.SessionConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
