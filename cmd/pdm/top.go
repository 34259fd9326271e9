package main

import (
	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/app"
)

var (
	topSort  string
	topLimit int
)

func init() {
	rootCmd.AddCommand(cmdTop)
	cmdTop.Flags().StringVar(&topSort, "sort", "cpu", "Sort column: cpu or memory")
	cmdTop.Flags().IntVar(&topLimit, "limit", 0, "Number of rows to show (defaults from config)")
}

var cmdTop = &cobra.Command{
	Use:   "top",
	Short: "Show the heaviest processes by CPU or memory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}
		limit := topLimit
		if limit <= 0 {
			limit = cfg.TopLimit
		}

		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		spin := scanSpinner("Sampling process table...")
		spin.Start()
		rows, err := ctrl.Top(cmd.Context(), app.TopParams{SortBy: app.TopSort(topSort), Limit: limit})
		spin.Stop()
		if err != nil {
			return err
		}

		renderProcessTable(rows)
		printSuccess("Top %d processes by %s usage", len(rows), topSort)
		return nil
	},
}
