package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/tui"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var cmdTUI = &cobra.Command{
	Use:   "tui <pattern>",
	Short: "Browse matching processes interactively",
	Long:  "Full-screen browser over processes matching the pattern, with per-process selection for termination.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		if err := tui.Run(ctrl, args[0]); err != nil {
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}
