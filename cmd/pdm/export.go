package main

import (
	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/app"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(cmdExport)
	cmdExport.Flags().StringVar(&exportFormat, "format", "csv", "Export format: csv or json")
	cmdExport.Flags().StringVar(&exportOutput, "output", "", "Output file (defaults to a timestamped name)")
}

var cmdExport = &cobra.Command{
	Use:   "export",
	Short: "Export a full process snapshot to CSV or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig()
		if err != nil {
			return err
		}

		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		res, err := ctrl.Export(cmd.Context(), app.ExportParams{
			Format: exportFormat,
			Path:   exportOutput,
			Dir:    cfg.ExportDir,
		})
		if err != nil {
			return err
		}
		printSuccess("Snapshot exported to %s (%d processes)", res.Path, res.Count)
		return nil
	},
}
