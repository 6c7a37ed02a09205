package config

import (
	"fmt"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

// relativePath is the config file location below the XDG config directories.
const relativePath = "tictactoe/config.yml"

// Config holds the game settings. RandomSeed 0 seeds the computer players from
// the clock; DisableSpinner turns off the thinking indicator shown in terminals.
type Config struct {
	LogLevel        string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	AllowNamedUsers bool   `yaml:"allow-named-users" env:"TICTACTOE_ALLOW_NAMED_USERS" env-default:"false"`
	RandomSeed      uint64 `yaml:"random-seed" env:"TICTACTOE_RANDOM_SEED" env-default:"0"`
	DisableSpinner  bool   `yaml:"disable-spinner" env:"TICTACTOE_DISABLE_SPINNER" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the config file at path, with environment overrides. An empty path
// reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// DefaultPath returns the first tictactoe/config.yml found in the XDG config
// directories, or an empty string when there is none.
func DefaultPath() string {
	path, err := xdg.SearchConfigFile(relativePath)
	if err != nil {
		return ""
	}

	return path
}
