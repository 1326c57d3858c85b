package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/erg0nix/callcoach/internal/config"
	"github.com/erg0nix/callcoach/internal/env"
	"github.com/erg0nix/callcoach/internal/persona"
	"github.com/spf13/cobra"
)

type App struct {
	Config     config.Config
	ConfigPath string
	Env        env.Snapshot
	Logger     *slog.Logger
}

func newApp(cmd *cobra.Command) (*App, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	personaName, _ := cmd.Flags().GetString("persona")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if envFile != "" {
		cfg.EnvFile = envFile
	}

	snapshot, err := env.Load(cfg.EnvFile)
	if err != nil {
		return nil, err
	}

	cfg = config.ApplyEnv(cfg, snapshot)
	if personaName != "" {
		cfg.Persona = personaName
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	return &App{
		Config:     cfg,
		ConfigPath: configPath,
		Env:        snapshot,
		Logger:     logger,
	}, nil
}

func (a *App) pidFile() string {
	return filepath.Join(a.Config.DataDir, "server.pid")
}

func (a *App) registry() *persona.Registry {
	return persona.NewRegistry(a.Config.DataDir)
}

// loadPersona loads and validates the configured persona.
func (a *App) loadPersona(name string) (persona.Persona, error) {
	if name == "" {
		name = a.Config.Persona
	}

	p, err := a.registry().Load(name)
	if err != nil {
		return persona.Persona{}, err
	}

	if err := persona.Validate(p); err != nil {
		return persona.Persona{}, fmt.Errorf("persona %s: %w", name, err)
	}

	a.Logger.Debug("loaded persona", "name", name, "display_name", p.Name, "knowledge", len(p.Knowledge))
	return p, nil
}
