package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at link time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aco",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aco version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
