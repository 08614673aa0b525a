// Package config loads codenest settings from .codenest/config.json, an
// optional .env file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const configFile = ".codenest/config.json"

const (
	// DefaultAddr is the interface `codenest serve` binds to.
	DefaultAddr = "localhost"

	// DefaultRowPixels is how many pixels one terminal row stands for when
	// the terminal page reports its scroll offset.
	DefaultRowPixels = 16
)

// Environment variables that override the config file.
const (
	EnvAddr = "CODENEST_ADDR"
	EnvPort = "CODENEST_PORT"
)

// ServeConfig configures the HTTP page.
type ServeConfig struct {
	Addr string `json:"addr,omitempty"`
	Port int    `json:"port,omitempty"`
}

// TerminalConfig configures the terminal page.
type TerminalConfig struct {
	// Mouse enables click and wheel support. Nil means enabled.
	Mouse     *bool `json:"mouse,omitempty"`
	RowPixels int   `json:"row_pixels,omitempty"`
}

// MouseEnabled reports whether mouse support is on.
func (t TerminalConfig) MouseEnabled() bool {
	return t.Mouse == nil || *t.Mouse
}

// Config is the on-disk configuration.
type Config struct {
	Serve    ServeConfig    `json:"serve"`
	Terminal TerminalConfig `json:"terminal"`
}

func (c *Config) applyDefaults() {
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultAddr
	}
	if c.Terminal.RowPixels <= 0 {
		c.Terminal.RowPixels = DefaultRowPixels
	}
}

// Load reads the config from disk. A missing file yields defaults.
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	var cfg Config
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configFile, err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// LoadWithEnv loads the config file, then applies baseDir/.env and the
// process environment on top of it. Variables already set in the
// environment win over .env.
func LoadWithEnv(baseDir string) (*Config, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return nil, err
	}

	envPath := filepath.Join(baseDir, ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	if addr := os.Getenv(EnvAddr); addr != "" {
		cfg.Serve.Addr = addr
	}
	if port := os.Getenv(EnvPort); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 0 || n > 65535 {
			return nil, fmt.Errorf("%s: invalid port %q", EnvPort, port)
		}
		cfg.Serve.Port = n
	}

	return cfg, nil
}
