package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for frogframes.
type Config struct {
	Source SourceConfig `yaml:"source"`
}

// SourceConfig controls where sprite frames are fetched from.
type SourceConfig struct {
	// Base is a directory or an http(s) URL the frame names are resolved against.
	Base           string   `yaml:"base" env:"FROGFRAMES_SOURCE"`
	RequestTimeout Duration `yaml:"request_timeout" env:"FROGFRAMES_REQUEST_TIMEOUT"`
	Concurrency    int      `yaml:"concurrency" env:"FROGFRAMES_CONCURRENCY"`
}

// Duration wraps time.Duration for YAML and env unmarshalling from strings like "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// Defaults returns a Config with sensible default values.
// No timeout and no fan-out cap.
func Defaults() Config {
	return Config{
		Source: SourceConfig{
			Base: "sprites",
		},
	}
}

// Load reads the config file, applies environment overrides and validates.
// Missing file is not an error; defaults are used silently.
func Load() (Config, error) {
	return LoadFrom(configPath())
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Defaults(), fmt.Errorf("parse env: %w", err)
	}

	cfg.Source.Base = strings.TrimSpace(cfg.Source.Base)
	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source.Base) == "" {
		return fmt.Errorf("source.base must not be empty")
	}
	if c.Source.RequestTimeout.Duration < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.Source.RequestTimeout)
	}
	if c.Source.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Source.Concurrency)
	}
	return nil
}

func configPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "frogframes", "config.yml")
}
