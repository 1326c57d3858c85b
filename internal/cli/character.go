package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erg0nix/callcoach/internal/character"
	"github.com/spf13/cobra"
)

func newCharacterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Print the resolved character for the agent framework",
		RunE:  runCharacterCmd,
	}

	cmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	return cmd
}

func runCharacterCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	format, err := character.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	p, err := app.loadPersona("")
	if err != nil {
		return err
	}

	c := character.Resolve(app.Env, p)
	app.Logger.Debug("resolved character", "name", c.Name, "plugins", c.Plugins)

	var buf bytes.Buffer
	if err := c.Encode(&buf, format); err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("write character: mkdir: %w", err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write character: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), styleSuccess.Render("wrote "+output)+" "+
		styleDim.Render(fmt.Sprintf("(%d plugins)", len(c.Plugins))))
	return nil
}
