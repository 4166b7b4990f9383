package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/totobolto-dev/trashion-api/internal/monitor"
	"github.com/totobolto-dev/trashion-api/internal/presentation"
)

// monitorCmd runs the background loop without the API, for worker dynos.
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the business-hours monitor loop without the API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, svc, logger, err := newService(cmd)
		if err != nil {
			fatal(err)
		}

		presentation.PrintBanner("monitor")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		m := monitor.New(svc, cfg.ScrapeInterval, monitor.WithLogger(logger))
		if err := m.Run(ctx); err != nil && ctx.Err() == nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}
