package cmd

import (
	"github.com/spf13/cobra"
)

// version is stamped by goreleaser via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lingua version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("lingua %s\n", version)
	},
}
