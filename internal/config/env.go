package config

import (
	"log/slog"
	"strings"

	"github.com/erg0nix/callcoach/internal/env"
)

// ApplyEnv overrides cfg with CALLCOACH_* variables from s.
func ApplyEnv(cfg Config, s env.Snapshot) Config {
	if v := s.Get("CALLCOACH_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := s.Get("CALLCOACH_DATA_DIR"); v != "" {
		cfg.DataDir = expandPath(v)
	}
	if v := s.Get("CALLCOACH_PERSONA"); v != "" {
		cfg.Persona = v
	}
	if v := s.Get("CALLCOACH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if s.Get("CALLCOACH_DEBUG") == "1" {
		cfg.Log.Level = "debug"
	}
	return cfg
}

// SlogLevel maps the configured level name to a slog level. Unknown names
// map to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
