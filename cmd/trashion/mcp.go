package main

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/totobolto-dev/trashion-api/internal/mcp"
)

// mcpCmd exposes the inventory tools over the Model Context Protocol so
// agent tooling can query the store directly.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve inventory tools over MCP (stdio)",
	Run: func(cmd *cobra.Command, args []string) {
		_, svc, _, err := newService(cmd)
		if err != nil {
			fatal(err)
		}

		if err := mcpserver.NewServer(svc).ServeStdio(); err != nil {
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
