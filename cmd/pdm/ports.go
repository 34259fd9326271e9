package main

import (
	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
)

var (
	portsListen bool
	portsPID    int
)

func init() {
	rootCmd.AddCommand(cmdPorts)
	cmdPorts.Flags().BoolVar(&portsListen, "listen", false, "Show only listening sockets")
	cmdPorts.Flags().IntVar(&portsPID, "pid", 0, "Show only connections owned by this pid")
}

var cmdPorts = &cobra.Command{
	Use:   "ports",
	Short: "Show network connections and listening ports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		rows, err := ctrl.Ports(cmd.Context(), procs.ConnFilter{
			ListeningOnly: portsListen,
			PID:           int32(portsPID),
		})
		if err != nil {
			return err
		}

		if len(rows) == 0 {
			if portsListen {
				printWarning("No listening ports found")
			} else {
				printWarning("No network connections found")
			}
			return nil
		}

		renderConnTable(rows)
		listening := 0
		for _, r := range rows {
			if r.Status == "LISTEN" {
				listening++
			}
		}
		if listening > 0 {
			printSuccess("Found %d listening ports", listening)
		}
		return nil
	},
}
