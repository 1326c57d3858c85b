package cli

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/erg0nix/callcoach/internal/site"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the coach's informational page",
		RunE:  runServeCmd,
	}

	cmd.Flags().Bool("foreground", false, "run server in foreground")
	cmd.Flags().String("bind", "", "bind address (overrides config)")

	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	foreground, _ := cmd.Flags().GetBool("foreground")
	bindOverride, _ := cmd.Flags().GetString("bind")

	if bindOverride != "" {
		app.Config.Bind = bindOverride
	}

	if !foreground {
		return startServer(cmd, app)
	}

	page, err := site.RenderBytes(site.DefaultPage())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return site.Run(ctx, site.Options{
		Bind:            app.Config.Bind,
		PIDFile:         app.pidFile(),
		ReadTimeout:     app.Config.Site.ReadTimeout(),
		ShutdownTimeout: app.Config.Site.ShutdownTimeout(),
		Logger:          app.Logger,
	}, site.NewHandler(page))
}

func startServer(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()

	if pid := site.ReadPID(app.pidFile()); pid != 0 {
		fmt.Fprintln(out, styleDim.Render(fmt.Sprintf("server already running (pid %d)", pid)))
		return nil
	}

	serverCmd := exec.Command(os.Args[0], "serve", "--foreground", "--bind", app.Config.Bind)
	if app.ConfigPath != "" {
		serverCmd.Args = append(serverCmd.Args, "--config", app.ConfigPath)
	}

	dataDir := app.Config.DataDir
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("start server: create data dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, "server.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("start server: open log: %w", err)
	}
	defer logFile.Close()

	serverCmd.Stdout = logFile
	serverCmd.Stderr = logFile
	serverCmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := serverCmd.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	fmt.Fprintln(out,
		styleSuccess.Render("started server")+" "+
			stylePID.Render(fmt.Sprintf("pid %d", serverCmd.Process.Pid))+" "+
			styleDim.Render("http://"+clientAddr(app.Config.Bind)))
	return nil
}
