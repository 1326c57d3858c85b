package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"
)

// Options configures the page server.
type Options struct {
	Bind            string
	PIDFile         string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// NewHandler serves page at "/" and a liveness probe at "/healthz".
func NewHandler(page []byte) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(page)
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}

// Run listens on opts.Bind and serves handler until ctx is done.
func Run(ctx context.Context, opts Options, handler http.Handler) error {
	listener, err := net.Listen("tcp", opts.Bind)
	if err != nil {
		return fmt.Errorf("site: listen %s: %w", opts.Bind, err)
	}
	return Serve(ctx, listener, opts, handler)
}

// Serve serves handler on listener until ctx is done, then drains open
// requests for at most opts.ShutdownTimeout. The listener is closed on return.
func Serve(ctx context.Context, listener net.Listener, opts Options, handler http.Handler) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.PIDFile != "" {
		if err := writePIDFile(opts.PIDFile); err != nil {
			logger.Warn("failed to write PID file", "error", err)
		}
		defer os.Remove(opts.PIDFile)
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: opts.ReadTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	logger.Info("server listening", "address", listener.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("site: serve: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("drain timeout, forcing shutdown", "error", err)
		return server.Close()
	}
	return nil
}
