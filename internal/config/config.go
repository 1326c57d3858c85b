// Package config loads the callcoach application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const defaultBind = "127.0.0.1:3000"

type SiteConfig struct {
	ReadTimeoutSeconds     int `toml:"read_timeout_seconds"`
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds"`
}

// ReadTimeout returns the page server's read header timeout.
func (s SiteConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns how long the page server drains on shutdown.
func (s SiteConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	Bind    string     `toml:"bind"`
	DataDir string     `toml:"data_dir"`
	EnvFile string     `toml:"env_file"`
	Persona string     `toml:"persona"`
	Site    SiteConfig `toml:"site"`
	Log     LogConfig  `toml:"log"`
}

func Default() Config {
	return Config{
		Bind:    defaultBind,
		DataDir: defaultDataDir(),
		EnvFile: ".env",
		Persona: "coldcall",
		Site: SiteConfig{
			ReadTimeoutSeconds:     10,
			ShutdownTimeoutSeconds: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadOrCreate reads the config at path, writing the defaults there first
// if the file does not exist.
func LoadOrCreate(path string) (Config, error) {
	config := Default()

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return config, fmt.Errorf("load config: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return config, fmt.Errorf("create config dir: %w", err)
		}

		configData, err := toml.Marshal(config)
		if err != nil {
			return config, fmt.Errorf("encode default config: %w", err)
		}

		if err := os.WriteFile(path, configData, 0o644); err != nil {
			return config, fmt.Errorf("write default config: %w", err)
		}

		return config, nil
	}

	configData, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	if err := toml.Unmarshal(configData, &config); err != nil {
		return config, fmt.Errorf("parse config %s: %w", path, err)
	}

	return normalize(config), nil
}

func normalize(config Config) Config {
	defaults := Default()

	config.DataDir = expandPath(strings.TrimSpace(config.DataDir))
	config.EnvFile = expandPath(strings.TrimSpace(config.EnvFile))
	config.Bind = strings.TrimSpace(config.Bind)
	config.Persona = strings.TrimSpace(config.Persona)
	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))

	if config.Bind == "" {
		config.Bind = defaultBind
	}
	if config.DataDir == "" {
		config.DataDir = defaults.DataDir
	}
	if config.Persona == "" {
		config.Persona = defaults.Persona
	}
	if config.Site.ReadTimeoutSeconds <= 0 {
		config.Site.ReadTimeoutSeconds = defaults.Site.ReadTimeoutSeconds
	}
	if config.Site.ShutdownTimeoutSeconds <= 0 {
		config.Site.ShutdownTimeoutSeconds = defaults.Site.ShutdownTimeoutSeconds
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	return config
}

func defaultDataDir() string {
	homeDir, _ := os.UserHomeDir()

	if homeDir == "" {
		return ".callcoach"
	}

	return filepath.Join(homeDir, ".callcoach")
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}

	if strings.HasPrefix(path, "~") {
		homeDir, _ := os.UserHomeDir()

		if homeDir != "" {
			trimmed := strings.TrimPrefix(path, "~")
			trimmed = strings.TrimPrefix(trimmed, string(os.PathSeparator))

			return filepath.Join(homeDir, trimmed)
		}
	}

	return path
}
