package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/services"
)

func init() {
	rootCmd.AddCommand(cmdServices)
}

var cmdServices = &cobra.Command{
	Use:   "services [action] [name]",
	Short: "List systemd service units or run a lifecycle action on one",
	Long: `With no arguments, lists every service unit the manager knows.
With an action (start|stop|restart|enable|disable|status) and a unit name,
runs the action. The .service suffix is appended when missing.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		if len(args) == 0 {
			units, err := ctrl.Services(cmd.Context())
			if err != nil {
				return err
			}
			if len(units) == 0 {
				printWarning("No services found or access denied")
				return nil
			}
			renderUnitTable(units)
			printSuccess("Found %d services", len(units))
			return nil
		}

		if len(args) != 2 {
			return errors.New("usage: pdm services <start|stop|restart|enable|disable|status> <name>")
		}

		report, err := ctrl.ServiceAction(cmd.Context(), args[0], args[1])
		if err != nil {
			if errors.Is(err, services.ErrPermissionDenied) {
				// The underlying reason is part of the wrapped error text.
				printError("%v", err)
				return nil
			}
			return err
		}
		if report != "" {
			fmt.Fprintln(os.Stdout, report)
			return nil
		}
		printSuccess("%s %s: done", args[0], services.UnitName(args[1]))
		return nil
	},
}
