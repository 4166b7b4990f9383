package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	trashion "github.com/totobolto-dev/trashion-api"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trashion",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trashion version %s\n", strings.TrimSpace(trashion.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
