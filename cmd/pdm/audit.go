package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdAudit)
}

var cmdAudit = &cobra.Command{
	Use:   "audit",
	Short: "Scan for suspicious processes, zombies and privileged listeners",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		spin := scanSpinner("Auditing process table...")
		spin.Start()
		issues, err := ctrl.Audit(cmd.Context())
		spin.Stop()
		if err != nil {
			return err
		}

		if len(issues) == 0 {
			printSuccess("No suspicious activity found")
			return nil
		}

		renderAuditTable(issues)
		printWarning("Audit flagged %d issue(s)", len(issues))
		return nil
	},
}

func renderAuditTable(issues []app.AuditIssue) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Severity", "PID", "Name", "Reason"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, is := range issues {
		pid := "-"
		if is.PID > 0 {
			pid = strconv.Itoa(int(is.PID))
		}
		table.Append([]string{string(is.Severity), pid, is.Name, is.Reason})
	}
	table.Render()
}
