package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipework",
	Short: "Pipework is an action/outcome ledger engine",
	Long: `Pipework runs actions through an ordered chain of rules (pipes) and
records every attempt and its outcome in an append-only ledger.

The bundled commands drive the goblin mining demo around the engine.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")
}
