package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thand-io/console/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// Version does not need a configuration
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		info := common.GetBuildInfo()

		fmt.Printf("Console %s", info.Version)
		if info.GitCommit != "unknown" && len(info.GitCommit) > 0 {
			if len(info.GitCommit) > 8 {
				fmt.Printf(" (git: %s)", info.GitCommit[:8])
			} else {
				fmt.Printf(" (git: %s)", info.GitCommit)
			}
		}
		fmt.Println()
		fmt.Println(mutedStyle.Render(fmt.Sprintf("Built with %s", info.GoVersion)))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
