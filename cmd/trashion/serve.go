package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpserver "github.com/totobolto-dev/trashion-api/internal/http"
	"github.com/totobolto-dev/trashion-api/internal/monitor"
	"github.com/totobolto-dev/trashion-api/internal/presentation"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the JSON API and, unless --no-monitor is given, the background
monitor loop that checks the storefront during business hours.`,
	Run: func(cmd *cobra.Command, args []string) {
		noMonitor, _ := cmd.Flags().GetBool("no-monitor")

		cfg, svc, logger, err := newService(cmd)
		if err != nil {
			fatal(err)
		}

		presentation.PrintBanner("serve")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if !noMonitor {
			m := monitor.New(svc, cfg.ScrapeInterval, monitor.WithLogger(logger))
			go func() {
				_ = m.Run(ctx)
			}()
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: httpserver.NewHandler(svc),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting API server", "addr", srv.Addr, "url", cfg.URL)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("server error", "err", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())
			cancel()

			// Give outstanding requests a deadline for completion.
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("failed to close server", "err", err)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("no-monitor", false, "Serve the API without the background monitor")
}
