package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/erg0nix/callcoach/internal/site"
	"github.com/spf13/cobra"
)

func newPsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ps",
		Short: "Show page server status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			t := newTable("NAME", "STATUS", "PID", "ADDRESS")

			addr := clientAddr(app.Config.Bind)
			pid := site.ReadPID(app.pidFile())
			if pid == 0 {
				t.Row("callcoach", styleError.Render("stopped"), "-", addr)
			} else {
				status := styleSuccess.Render("running")
				if !healthy(cmd.Context(), addr) {
					status = styleWarning.Render("starting")
				}
				t.Row("callcoach", status, fmt.Sprintf("%d", pid), addr)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func healthy(ctx context.Context, addr string) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/healthz", nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
