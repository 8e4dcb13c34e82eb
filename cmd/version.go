package cmd

import (
	"fmt"

	"github.com/ferastyb/weight-and-balance/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wb",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wb v%s\n", version.Version)
		fmt.Println("Aircraft Weight and Balance Calculator")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
