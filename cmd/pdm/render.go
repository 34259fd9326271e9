package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
	"github.com/evilshxt/pidaemonmanager/internal/services"
)

func printSuccess(format string, args ...any) {
	color.Success.Printf("✓ "+format+"\n", args...)
}

func printError(format string, args ...any) {
	color.Error.Printf("✗ "+format+"\n", args...)
}

func printWarning(format string, args ...any) {
	color.Warn.Printf("⚠ "+format+"\n", args...)
}

func printInfo(format string, args ...any) {
	color.Info.Printf(format+"\n", args...)
}

// scanSpinner shows progress while the process table is enumerated.
func scanSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(os.Stdout))
	s.Suffix = " " + suffix
	return s
}

// truncate cuts on rune boundaries so multibyte command lines stay valid
// UTF-8 in table cells.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func renderProcessTable(rows []procs.Proc) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"PID", "Name", "User", "CPU%", "Memory%", "Command"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, p := range rows {
		table.Append([]string{
			strconv.Itoa(int(p.PID)),
			p.Name,
			p.User,
			fmt.Sprintf("%.1f", p.CPUPercent),
			fmt.Sprintf("%.1f", p.MemPercent),
			truncate(p.Cmdline, 60),
		})
	}
	table.Render()
}

func renderConnTable(rows []procs.Conn) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"PID", "Process", "Protocol", "Local Address", "Remote Address", "Status"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, c := range rows {
		pid := "-"
		if c.PID > 0 {
			pid = strconv.Itoa(int(c.PID))
		}
		table.Append([]string{pid, c.ProcessName, c.Protocol, c.LocalAddr, c.RemoteAddr, c.Status})
	}
	table.Render()
}

func renderUnitTable(units []services.Unit) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Unit", "Load", "Active", "Sub", "Description"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, u := range units {
		table.Append([]string{u.Name, u.LoadState, u.ActiveState, u.SubState, truncate(u.Description, 50)})
	}
	table.Render()
}
