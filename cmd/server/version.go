package main

import (
	"fmt"

	"github.com/osa911/clipdesk/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "clipdesk %s\n", version.Info())
	},
}
