package main

import (
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/app"
)

var (
	monitorInterval time.Duration
	monitorCount    int
)

func init() {
	rootCmd.AddCommand(cmdMonitor)
	cmdMonitor.Flags().DurationVar(&monitorInterval, "interval", 2*time.Second, "Time between samples")
	cmdMonitor.Flags().IntVar(&monitorCount, "count", 0, "Stop after this many samples (0 = until the process exits)")
}

var cmdMonitor = &cobra.Command{
	Use:   "monitor <pid>",
	Short: "Watch one process, sampling CPU, memory and threads",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pid, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid pid %q: %w", args[0], err)
		}

		ctrl, _, closer, err := controller()
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		printInfo("Watching pid %d every %s, Ctrl+C to stop", pid, monitorInterval)
		err = ctrl.Monitor(ctx, app.MonitorParams{
			PID:      int32(pid),
			Interval: monitorInterval,
			Count:    monitorCount,
		}, func(s app.Sample) {
			fmt.Printf("%s  pid=%d name=%s cpu=%.1f%% mem=%.1f%% threads=%d\n",
				s.At.Format("15:04:05"), s.PID, s.Name, s.CPUPercent, s.MemPercent, s.Threads)
		})
		switch {
		case err == nil:
			printSuccess("Monitoring finished")
		case ctx.Err() != nil:
			printWarning("Monitoring interrupted")
		default:
			return err
		}
		return nil
	},
}
