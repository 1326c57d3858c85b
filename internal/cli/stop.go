package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/erg0nix/callcoach/internal/site"
	"github.com/spf13/cobra"
)

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the page server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			pid := site.ReadPID(app.pidFile())
			if pid == 0 {
				fmt.Fprintln(out, styleDim.Render("server not running"))
				return nil
			}

			process, err := os.FindProcess(pid)
			if err != nil {
				return fmt.Errorf("stop server: %w", err)
			}

			if err := process.Signal(syscall.SIGTERM); err != nil {
				fmt.Fprintln(out, styleError.Render("server: "+err.Error()))
				return nil
			}

			fmt.Fprintln(out, styleSuccess.Render("stopped server")+" "+stylePID.Render(fmt.Sprintf("pid %d", pid)))
			return nil
		},
	}
}
