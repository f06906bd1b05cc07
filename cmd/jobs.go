// cmd/jobs.go
package cmd

import (
	"github.com/spf13/cobra"
)

// The job-control commands share one grammar between the interactive
// console and the CLI, so flag parsing is left to the router.

var jobsCmd = &cobra.Command{
	Use:   "jobs [-h] [-l] [-v] [-k <range>] [-K] [-i <range>]",
	Short: "List, inspect, and stop background jobs",
	Example: `  # List running jobs
  warden jobs

  # Stop jobs 1, 3, 4, 5, and 7
  warden jobs -k 1,3-5,7`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.newRouter(cmd.OutOrStdout()).Dispatch("jobs", args)
	},
}

var killCmd = &cobra.Command{
	Use:                "kill <id> [<id> ...]",
	Short:              "Stop the jobs with the given ids",
	Example:            "  warden kill 1 3-5",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.newRouter(cmd.OutOrStdout()).Dispatch("kill", args)
	},
}

var renameJobCmd = &cobra.Command{
	Use:                "rename_job <id> <name>",
	Short:              "Rename a job",
	Example:            `  warden rename_job 0 "staging handler"`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.newRouter(cmd.OutOrStdout()).Dispatch("rename_job", args)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd, killCmd, renameJobCmd)
}
