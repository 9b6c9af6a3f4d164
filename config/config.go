// Package config provides configuration parsing for qco-uptime.
//
// The config file is optional and every key has a default that
// reproduces the stock behavior. Overrides exist for containers and
// tests where the /proc mount or the session-listing binary live
// somewhere unusual.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultWhoTimeout bounds session-listing command execution when the
// config does not specify a timeout.
const DefaultWhoTimeout = 5 * time.Second

// Config represents the qco-uptime configuration.
type Config struct {
	// Proc holds kernel pseudo-file path overrides.
	Proc ProcConfig `yaml:"proc"`

	// Who holds session-listing command settings.
	Who WhoConfig `yaml:"who"`
}

// ProcConfig holds kernel pseudo-file path overrides.
type ProcConfig struct {
	// Uptime is the path to the uptime pseudo-file.
	Uptime string `yaml:"uptime"`
	// Loadavg is the path to the load-average pseudo-file.
	Loadavg string `yaml:"loadavg"`
}

// WhoConfig holds session-listing command settings.
type WhoConfig struct {
	// Binary is the session-listing command. Relative names are looked
	// up in PATH.
	Binary string `yaml:"binary"`
	// Timeout is a duration string (e.g. "5s") bounding command execution.
	Timeout string `yaml:"timeout"`
}

// DefaultConfig returns a Config populated with the stock paths.
func DefaultConfig() *Config {
	return &Config{
		Proc: ProcConfig{
			Uptime:  "/proc/uptime",
			Loadavg: "/proc/loadavg",
		},
		Who: WhoConfig{
			Binary:  "who",
			Timeout: "5s",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/qco-uptime/config.yaml. Returns "" when the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "qco-uptime", "config.yaml")
}

// Load loads configuration from a YAML file, merging with defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WhoTimeout parses the configured session-listing timeout, falling
// back to DefaultWhoTimeout when unset or invalid.
func (c *Config) WhoTimeout() time.Duration {
	if c.Who.Timeout == "" {
		return DefaultWhoTimeout
	}
	d, err := time.ParseDuration(c.Who.Timeout)
	if err != nil || d <= 0 {
		return DefaultWhoTimeout
	}
	return d
}
