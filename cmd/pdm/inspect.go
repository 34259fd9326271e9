package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdInspect)
}

var cmdInspect = &cobra.Command{
	Use:   "inspect <pattern>",
	Short: "Search the process table by name or command-line substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		spin := scanSpinner("Scanning process table...")
		spin.Start()
		matches, err := ctrl.Inspect(cmd.Context(), args[0])
		spin.Stop()
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			printWarning("No processes found matching %q", args[0])
			return nil
		}
		renderProcessTable(matches)
		printSuccess("Found %d matching processes", len(matches))
		return nil
	},
}
