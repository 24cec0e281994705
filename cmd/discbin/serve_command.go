package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"discbin/internal/daemon"
	"discbin/internal/logging"
	"discbin/internal/store"
)

// newServeCommand runs the daemon in the foreground, the same wiring as the
// discbind binary but reachable from the CLI for local development.
func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			st, err := store.Open(cfg)
			if err != nil {
				return err
			}

			d, err := daemon.New(cfg, st, logger)
			if err != nil {
				st.Close()
				return err
			}
			defer d.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := d.Start(runCtx); err != nil {
				return err
			}
			<-runCtx.Done()
			return nil
		},
	}
}
