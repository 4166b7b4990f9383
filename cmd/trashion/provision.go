package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/totobolto-dev/trashion-api/pkg/provision"
)

// provisionCmd prepares a host with the browser runtime the scraper needs.
// Steps run in order and the first failure aborts the run; its exit code
// becomes the process exit code.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision the browser runtime for scraping",
	Long: `Runs the provisioning steps that make a headless Chromium available.

The default "playwright" plan uses the Playwright vendor installer; the
"system" plan installs OS-packaged Chromium and its driver via apt-get.
A custom plan can be supplied as a YAML file with --file.`,
	Run: func(cmd *cobra.Command, args []string) {
		planName, _ := cmd.Flags().GetString("plan")
		planFile, _ := cmd.Flags().GetString("file")

		_, logger, err := setup(cmd)
		if err != nil {
			fatal(err)
		}

		var plan provision.Plan
		if planFile != "" {
			plan, err = provision.LoadPlan(planFile)
		} else {
			plan, err = provision.BuiltinPlan(planName)
		}
		if err != nil {
			fatal(err)
		}

		runner := provision.NewRunner(provision.WithLogger(logger))
		if err := runner.Run(context.Background(), plan); err != nil {
			var stepErr *provision.StepError
			if errors.As(err, &stepErr) {
				// The failing tool's own output has already surfaced;
				// propagate its exit code without further commentary.
				os.Exit(stepErr.ExitCode)
			}
			fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().String("plan", provision.PlanPlaywright, "Built-in plan: playwright or system")
	provisionCmd.Flags().String("file", "", "Custom plan YAML file")
}
