// Package config loads the YAML configuration of the complexcalc tool.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/graeme-hill/complexcalc-go/logger"
)

// DSNEnvVar overrides history.dsn when set.
const DSNEnvVar = "COMPLEXCALC_DSN"

type Config struct {
	Log     logger.Config `yaml:"log"`
	History HistoryConfig `yaml:"history"`
	Display DisplayConfig `yaml:"display"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"` // e.g. "user=postgres password=password dbname=complexcalc sslmode=disable"
}

type DisplayConfig struct {
	// Values prints the parsed value next to each COMPLEX_NUMBER token.
	Values bool `yaml:"values"`
}

func Default() *Config {
	return &Config{
		Log: logger.DefaultConfig(),
	}
}

// Load reads path, or returns the defaults when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) Serialize() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) applyEnv() {
	if dsn := os.Getenv(DSNEnvVar); dsn != "" {
		c.History.DSN = dsn
	}
}
