package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/careermentor/logging"
	"github.com/hupe1980/careermentor/server"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		accessLogs bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web chat UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, handler, err := bootstrap()
			if err != nil {
				return err
			}

			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := &http.Server{
				Addr: addr,
				Handler: server.New(handler, func(o *server.Options) {
					o.Logger = logger
					o.RequestLogging = accessLogs
					o.AllowedOrigins = cfg.Server.AllowedOrigins
				}),
				ReadHeaderTimeout: 5 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("careermentor.listening", "addr", addr)

			return runServer(ctx, srv, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides CAREER_ADDR / PORT)")
	cmd.Flags().BoolVar(&accessLogs, "access-log", false, "log every HTTP request")

	return cmd
}

func runServer(ctx context.Context, srv *http.Server, logger logging.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("careermentor.shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)

		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
