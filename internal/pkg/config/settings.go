package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigPathEnv names the environment variable pointing at the optional YAML settings file.
const ConfigPathEnv = "CRYPTOUTIL_CONFIG_PATH"

// Settings is the root of the configuration file.
type Settings struct {
	Logger LoggerSettings `yaml:"logger"`
	Crypto CryptoSettings `yaml:"crypto"`
}

// Validate validates every section.
func (s *Settings) Validate() error {
	if err := s.Logger.Validate(); err != nil {
		return err
	}
	return s.Crypto.Validate()
}

// Load reads settings from the YAML file at path and applies environment overrides.
func Load(path string) (*Settings, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s is not accessible: %w", path, err)
	}

	var settings Settings
	if err := cleanenv.ReadConfig(path, &settings); err != nil {
		return nil, fmt.Errorf("cannot load config file: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// LoadFromEnv reads settings from environment variables and defaults only.
func LoadFromEnv() (*Settings, error) {
	var settings Settings
	if err := cleanenv.ReadEnv(&settings); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// LoadDefault loads the file named by CRYPTOUTIL_CONFIG_PATH when set, and the environment otherwise.
func LoadDefault() (*Settings, error) {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return Load(path)
	}
	return LoadFromEnv()
}
