package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdManage)
}

var cmdManage = &cobra.Command{
	Use:   "manage [name]",
	Short: "Resolve a name to a process or a systemd unit and act on it",
	Long: `Looks for a running process named <name>; if one exists, offers to terminate it.
Otherwise looks for a systemd unit <name>.service and offers enable/disable/status.
Prompts for the name when none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, prompter, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		name := ""
		if len(args) == 1 {
			name = strings.TrimSpace(args[0])
		} else {
			name, err = prompter.PromptText("Process or service name:")
			if err != nil {
				return fmt.Errorf("read name: %w", err)
			}
		}
		if name == "" {
			return errors.New("name must not be empty")
		}

		cls, err := ctrl.Resolve(cmd.Context(), name)
		if err != nil {
			return err
		}

		if cls.Kind == app.KindRunningProcess && len(cls.Process.Matches) > 0 {
			renderProcessTable(cls.Process.Matches)
			if len(cls.Process.Matches) > 1 {
				printWarning("%d processes match; acting on pid %d (first exact-name match)", len(cls.Process.Matches), cls.Process.CanonicalPID)
			}
		}

		res, err := ctrl.Act(cmd.Context(), cls)
		if err != nil {
			// Permission refusals and vanished pids are reported, not fatal.
			printError("%v", err)
			return nil
		}
		reportOutcome(name, res)
		return nil
	},
}

func reportOutcome(name string, res app.ActResult) {
	switch res.Outcome {
	case app.OutcomeTerminated:
		printSuccess("Terminated %s (pid %d)", name, res.PID)
	case app.OutcomeLeftRunning:
		fmt.Fprintf(os.Stdout, "Left %s (pid %d) running\n", name, res.PID)
	case app.OutcomeEnabledNow:
		printSuccess("Enabled %s", res.Unit)
	case app.OutcomeAlreadyEnabled:
		fmt.Fprintf(os.Stdout, "%s is already enabled\n", res.Unit)
	case app.OutcomeDisabledNow:
		printSuccess("Disabled %s", res.Unit)
	case app.OutcomeAlreadyDisabled:
		fmt.Fprintf(os.Stdout, "%s is already disabled\n", res.Unit)
	case app.OutcomeStatusReported:
		fmt.Fprintln(os.Stdout, res.StatusText)
	case app.OutcomeInvalidChoice:
		printError("Invalid choice; expected e, d or s")
	case app.OutcomeNoTarget:
		printWarning("No running process or registered unit matches %q", name)
	}
}
