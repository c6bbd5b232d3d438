package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads the server configuration and validates it.
// Values resolve as ENV > YAML > env-default tags. The YAML file is
// CONFIG_PATH, or ./config.yaml when that variable is unset; a missing
// default file falls back to ENV and defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadDatabase resolves only the database section from the same sources as
// Load. karaokectl uses it so operator commands do not need the JWT secret
// or any other server-only setting.
func LoadDatabase() (DatabaseConfig, error) {
	var section struct {
		Database DatabaseConfig `yaml:"database"`
	}
	if err := read(&section); err != nil {
		return DatabaseConfig{}, err
	}
	return section.Database, nil
}

func read(dst any) error {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
