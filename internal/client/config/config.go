package config

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects which API base URL the client talks to.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Config holds runtime settings for the AnimeFacts CLI.
//
// APIBaseURL is derived from Mode, DevAPIURL and ProdAPIURL by Resolve and
// is the only URL the rest of the client sees.
type Config struct {
	Mode           Mode
	DevAPIURL      string
	ProdAPIURL     string
	APIBaseURL     string
	StoragePath    string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Mode = ModeDevelopment
	c.DevAPIURL = "http://127.0.0.1:5000/api/v1"
	c.ProdAPIURL = ""
	c.StoragePath = ".animefacts/session.db"
	c.LogLevel = "warn"
	c.RequestTimeout = 0
}

// Resolve picks the API base URL for the configured mode. Anything other
// than production uses the development URL.
func (c *Config) Resolve() {
	url := c.DevAPIURL
	if c.Mode == ModeProduction {
		url = c.ProdAPIURL
	}
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(url), "/")
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeDevelopment, ModeProduction)
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("no API base URL configured for %s mode", c.Mode)
	}
	if c.StoragePath == "" {
		return fmt.Errorf("no storage path configured")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("negative request timeout %s", c.RequestTimeout)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON, the dotenv file, the environment and command-line flags, in
// that order, and finally resolves the API base URL.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.Resolve()
	return cfg
}
