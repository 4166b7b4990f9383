package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/totobolto-dev/trashion-api/internal/presentation"
	"github.com/totobolto-dev/trashion-api/pkg/scrape"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the monitor status and latest snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		_, svc, _, err := newService(cmd)
		if err != nil {
			fatal(err)
		}

		ctx := context.Background()
		st, err := svc.Status(ctx)
		if err != nil {
			fatal(err)
		}

		// Show whatever the service can produce; the report copes with nil.
		var snap *scrape.Snapshot
		if current, err := svc.Inventory(ctx); err == nil {
			snap = current
		}

		fmt.Print(presentation.Render(presentation.StatusReport(st, snap)))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
