package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	trashion "github.com/totobolto-dev/trashion-api"
	"github.com/totobolto-dev/trashion-api/internal/cli"
	"github.com/totobolto-dev/trashion-api/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "trashion",
	Short: "Trashion is an inventory monitor for the Trashion second-hand storefront",
	Long: `Trashion scrapes the storefront with a headless browser, tracks which items
are on display, detects sold items between checks, and alerts staff so sold
pieces get pulled from the physical racks.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("env-file", "", "Load environment from this file instead of .env")
	rootCmd.PersistentFlags().String("config", "", "Optional YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json or tint")
}

// setup loads config and builds the logger shared by all commands.
// Flags win over environment and file values.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := cli.LoadConfig(envFile, configFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.LogFormat = format
	}

	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

// newService builds the fully wired service for a command.
func newService(cmd *cobra.Command) (config.Config, *trashion.Service, *slog.Logger, error) {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	svc, err := cli.NewService(cfg, logger)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, svc, logger, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
