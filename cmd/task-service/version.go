package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version задается при сборке: -ldflags "-X main.version=v1.2.3"
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "task-service "+version)
	},
}
