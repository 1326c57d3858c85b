package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/erg0nix/callcoach/internal/env"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}

	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again != cfg {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadOrCreateNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `bind = "  "
data_dir = "~/coach-data"
persona = " closer "

[site]
read_timeout_seconds = 0
shutdown_timeout_seconds = 9

[log]
level = " DEBUG "
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}

	if cfg.Bind != defaultBind {
		t.Errorf("expected default bind, got %q", cfg.Bind)
	}
	if cfg.Persona != "closer" {
		t.Errorf("expected trimmed persona, got %q", cfg.Persona)
	}
	if cfg.Site.ReadTimeoutSeconds != 10 || cfg.Site.ShutdownTimeoutSeconds != 9 {
		t.Errorf("unexpected site config: %+v", cfg.Site)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}

	if home, _ := os.UserHomeDir(); home != "" {
		if want := filepath.Join(home, "coach-data"); cfg.DataDir != want {
			t.Errorf("expected %q, got %q", want, cfg.DataDir)
		}
	}
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("bind = "), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := ApplyEnv(Default(), env.New(map[string]string{
		"CALLCOACH_BIND":    " :8080 ",
		"CALLCOACH_PERSONA": "closer",
		"CALLCOACH_DEBUG":   "1",
	}))

	if cfg.Bind != ":8080" {
		t.Errorf("bind = %q", cfg.Bind)
	}
	if cfg.Persona != "closer" {
		t.Errorf("persona = %q", cfg.Persona)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %q", cfg.Log.Level)
	}

	unchanged := ApplyEnv(Default(), env.New(map[string]string{"CALLCOACH_BIND": "   "}))
	if unchanged != Default() {
		t.Errorf("blank override changed config: %+v", unchanged)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for name, want := range tests {
		if got := (LogConfig{Level: name}).SlogLevel(); got != want {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
}
