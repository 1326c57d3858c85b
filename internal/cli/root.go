package cli

import (
	"net"
	"path/filepath"
	"strings"

	"github.com/erg0nix/callcoach/internal/config"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "callcoach",
		Short:         "Cold calling coach character for the agent framework",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file")
	rootCmd.PersistentFlags().String("env-file", "", "dotenv file read under the process environment (overrides config)")
	rootCmd.PersistentFlags().String("persona", "", "persona to use (overrides config)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newPluginsCmd())
	rootCmd.AddCommand(newPersonasCmd())
	rootCmd.AddCommand(newPersonaCmd())
	rootCmd.AddCommand(newCharacterCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newStopCmd())
	rootCmd.AddCommand(newPsCmd())

	return rootCmd
}

func loadConfig(path string) (config.Config, error) {
	configPath := path
	if configPath == "" {
		configPath = filepath.Join(config.Default().DataDir, "config.toml")
	}
	return config.LoadOrCreate(configPath)
}

// clientAddr turns a listen address into one a local client can dial.
func clientAddr(bind string) string {
	host, port, err := splitHostPort(bind)
	if err != nil || port == "" {
		return bind
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		return "127.0.0.1:" + port
	}
	return bind
}

func splitHostPort(addr string) (string, string, error) {
	if strings.HasPrefix(addr, ":") {
		return "", strings.TrimPrefix(addr, ":"), nil
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", "", err
	}
	return host, port, nil
}
