package cli

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"cpu-scheduler-visualizer/api"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				opts.config.Port = port
			}
			if err := opts.config.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := api.NewSchedulerHandlerImpl(opts.config, opts.logger)
			app := api.NewApp(handler, opts.logger)

			ln, err := net.Listen("tcp", opts.config.Addr())
			if err != nil {
				return err
			}
			opts.logger.Info("listening", "addr", ln.Addr().String())

			errCh := make(chan error, 1)
			go func() { errCh <- app.Listener(ln) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			opts.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config)")
	return cmd
}
