package cli

import (
	"fmt"
	"path/filepath"

	"github.com/erg0nix/callcoach/internal/persona"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the bundled personas into the data directory for editing",
		RunE:  runInitCmd,
	}
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	if err := persona.EnsureDefaults(app.Config.DataDir); err != nil {
		return fmt.Errorf("write default personas: %w", err)
	}

	dir := filepath.Join(app.Config.DataDir, "personas")
	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("personas ready in ")+styleName.Render(dir))
	return nil
}
