package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/pipework"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pipework",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pipework version %s\n", strings.TrimSpace(pipework.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
