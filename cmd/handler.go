// cmd/handler.go
package cmd

import (
	"github.com/spf13/cobra"
)

var handlerCmd = &cobra.Command{
	Use:   "handler -p <payload> -P <port> -H <host> [-x] [-e <encoder>] [-n <name>]",
	Short: "Launch a payload handler as a background job",
	Long: `Assembles and launches a handler job from discrete options. The
payload, host, and port are required; any that are missing are all
reported together. Launched handlers run for the life of the process,
so this is mostly useful inside the interactive console.`,
	Example: `  warden handler -p shell/reverse_tcp -H 10.0.0.1 -P 4444
  warden handler -p shell/bind_tcp -H 10.0.0.5 -P 4444 -e base64 -n "bind shell"`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.newRouter(cmd.OutOrStdout()).Dispatch("handler", args)
	},
}

func init() {
	rootCmd.AddCommand(handlerCmd)
}
