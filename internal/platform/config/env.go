// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read through ParseEnv.
const EnvPrefix = "ASSET_REGISTRY_"

// ParseEnv loads configuration from ASSET_REGISTRY_* environment variables.
// Struct tags name the variable without the prefix, e.g. `env:"PORT"`.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// EnvName returns the fully prefixed variable name for key.
func EnvName(key string) string {
	return EnvPrefix + key
}
