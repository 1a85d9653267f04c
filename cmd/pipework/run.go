package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pipework/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Run a scenario through the demo engine",
	Long: `Runs a scripted sequence of actions through the goblin game engine and
prints the ledger report. Without a scenario file, the built-in
mine/rest/dance walkthrough is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenarioPath, _ := cmd.Flags().GetString("scenario")
		if scenarioPath == "" && len(args) > 0 {
			scenarioPath = args[0]
		}
		debug, _ := cmd.Flags().GetBool("debug")
		jsonMode, _ := cmd.Flags().GetBool("json")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		opts := cli.RunOptions{
			ScenarioPath: scenarioPath,
			Debug:        debug,
			JSON:         jsonMode,
			NoBanner:     noBanner,
		}
		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("scenario", "", "Path to a YAML scenario file")
	runCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")

	// Make 'run' the default when no command is provided.
	rootCmd.Run = runCmd.Run
	rootCmd.Args = runCmd.Args
}
