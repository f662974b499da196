package main

import (
	"os"

	"github.com/cottand/midir/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "midir [subcommand]",
	Short:        "midir: middle-end typing tools for managed-bytecode IRs",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.MinimizeCmd)
}
