package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// scrapeCmd runs a single check and prints the result, useful for cron-style
// deployments and manual spot checks.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one inventory check and print the snapshot as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		_, svc, logger, err := newService(cmd)
		if err != nil {
			fatal(err)
		}

		snap, sold, err := svc.Refresh(context.Background())
		if err != nil {
			fatal(err)
		}
		if len(sold) > 0 {
			logger.Info("sold since last check", "ids", sold)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
