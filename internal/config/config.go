// Package config provides the topsis.yaml configuration file loader for
// the web server and SMTP delivery settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default values for the configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultConfigFile = "topsis.yaml"
	DefaultServerPort = 5000
	DefaultSMTPPort   = 587
)

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port int `yaml:"port,omitempty"`
}

// SMTPConfig holds outbound mail settings. Credentials are usually supplied
// through the environment rather than the file.
type SMTPConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	From     string `yaml:"from,omitempty"`
}

// Config is the top-level configuration loaded from topsis.yaml.
type Config struct {
	Server ServerConfig `yaml:"server,omitempty"`
	SMTP   SMTPConfig   `yaml:"smtp,omitempty"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultServerPort},
		SMTP:   SMTPConfig{Port: DefaultSMTPPort},
	}
}

// Load reads the config file at path (DefaultConfigFile when empty),
// overlays it on the defaults, then applies environment overrides.
// A missing file returns defaults with a nil error; real I/O errors and
// malformed YAML are returned to the caller.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
	} else {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		merge(cfg, &fileCfg)
	}

	cfg.applyEnv()
	return cfg, nil
}

// merge overlays non-zero values from src onto dst.
func merge(dst, src *Config) {
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.SMTP.Host != "" {
		dst.SMTP.Host = src.SMTP.Host
	}
	if src.SMTP.Port != 0 {
		dst.SMTP.Port = src.SMTP.Port
	}
	if src.SMTP.Username != "" {
		dst.SMTP.Username = src.SMTP.Username
	}
	if src.SMTP.Password != "" {
		dst.SMTP.Password = src.SMTP.Password
	}
	if src.SMTP.From != "" {
		dst.SMTP.From = src.SMTP.From
	}
}

// applyEnv overlays environment variables onto the config. The SMTP names
// match the original deployment environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("TOPSIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.SMTP.Port = port
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.SMTP.Password = v
	}
	if v := os.Getenv("SMTP_FROM"); v != "" {
		c.SMTP.From = v
	}
}
