package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pipework/internal/cli"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo engine over HTTP",
	Long: `Exposes the goblin game engine over HTTP:

  POST /process  submit an action
  GET  /ledger   read the recorded history
  GET  /metrics  Prometheus metrics`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")

		opts := cli.ServeOptions{
			Addr:  addr,
			Debug: debug,
			JSON:  jsonMode,
		}
		if err := cli.Serve(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
