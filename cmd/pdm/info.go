package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdInfo)
}

var cmdInfo = &cobra.Command{
	Use:   "info <pid>",
	Short: "Show a detailed report for one process",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil || pid <= 0 {
			return fmt.Errorf("invalid pid %q", args[0])
		}

		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		d, err := ctrl.Info(cmd.Context(), int32(pid))
		if err != nil {
			return err
		}

		printSuccess("Process information for pid %d", d.PID)
		fmt.Fprintf(os.Stdout, "Name:              %s\n", d.Name)
		fmt.Fprintf(os.Stdout, "User:              %s\n", orDash(d.User))
		fmt.Fprintf(os.Stdout, "CPU usage:         %.1f%%\n", d.CPUPercent)
		fmt.Fprintf(os.Stdout, "Memory usage:      %.1f%%\n", d.MemPercent)
		fmt.Fprintf(os.Stdout, "Threads:           %d\n", d.Threads)
		if !d.CreatedAt.IsZero() {
			fmt.Fprintf(os.Stdout, "Created:           %s\n", d.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintf(os.Stdout, "Executable:        %s\n", orDash(d.Executable))
		fmt.Fprintf(os.Stdout, "Working directory: %s\n", orDash(d.WorkingDir))
		fmt.Fprintf(os.Stdout, "Command line:      %s\n", orDash(d.Cmdline))

		if len(d.Children) > 0 {
			fmt.Fprintf(os.Stdout, "\nChild processes (%d):\n", len(d.Children))
			for _, c := range d.Children {
				fmt.Fprintf(os.Stdout, "  - pid %d: %s\n", c.PID, c.Name)
			}
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
