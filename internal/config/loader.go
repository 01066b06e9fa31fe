package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads the configuration named by CONFIG_PATH, or ./config.yaml when
// CONFIG_PATH is unset. Environment variables override the file and
// env-default tags fill whatever is left. A missing ./config.yaml is fine;
// a missing explicit CONFIG_PATH is an error.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom is Load with an explicit path. An empty path means ./config.yaml
// if it exists.
func LoadFrom(path string) (*Config, error) {
	cfg := defaults()

	if err := read(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// defaults seeds the bool settings that are on unless turned off. cleanenv
// treats a zero field as unset, so an env-default:"true" tag would override
// an explicit false from the file.
func defaults() Config {
	var cfg Config
	cfg.Database.AutoMigrate = true
	cfg.RateLimit.Enabled = true
	cfg.CORS.AllowCredentials = true
	return cfg
}

func read(path string, cfg *Config) error {
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}

// Usage writes the environment variables the server reads, with their defaults.
func Usage(w io.Writer) {
	header := "Environment variables:"
	cleanenv.FUsage(w, &Config{}, &header)()
}
