// cmd/console.go
package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warden-sh/warden-cli/internal/console"
	"github.com/warden-sh/warden-cli/internal/tui"
	"github.com/warden-sh/warden-cli/internal/tui/repl"
)

var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"repl"},
	Short:   "Open the interactive Warden console",
	Long: `Opens the interactive console. Jobs launched here live for the
duration of the console session; closing the console stops them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

func runConsole(cmd *cobra.Command) error {
	if !tui.ShouldUseInteractive(noColor) {
		return fmt.Errorf("the console needs an interactive terminal (use the jobs/kill/handler subcommands instead)")
	}

	defer application.registry.Shutdown()

	return repl.Run(repl.Config{
		Version:     Version,
		HistorySize: application.cfg.HistorySize,
		Payloads:    application.factory.PayloadNames(),
		NewRouter: func(out *bytes.Buffer) *console.Router {
			return application.newRouter(out)
		},
	})
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
