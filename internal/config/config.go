package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration.
type Config struct {
	Port            string `toml:"port"`
	DataDir         string `toml:"data_dir"`
	ImageDir        string `toml:"image_dir"`
	SourceURL       string `toml:"source_url"` // when set, documents come from an upstream store instead of DataDir
	PublicBaseURL   string `toml:"public_base_url"`
	ImageLocale     string `toml:"image_locale"`
	FetchTimeoutSec int    `toml:"fetch_timeout_seconds"`
	MaxRefDepth     int    `toml:"max_ref_depth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:            "8080",
		DataDir:         "data/sets",
		ImageDir:        "data/images",
		PublicBaseURL:   "http://localhost:8080",
		ImageLocale:     "ja",
		FetchTimeoutSec: 10,
		MaxRefDepth:     4,
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is fine (defaults apply). PORT in the environment overrides the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("error decoding config file: %v", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return cfg, nil
}

// FetchTimeout returns the per-fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSec) * time.Second
}
