package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/evilshxt/pidaemonmanager/internal/app"
	"github.com/evilshxt/pidaemonmanager/internal/config"
	"github.com/evilshxt/pidaemonmanager/internal/logging"
	"github.com/evilshxt/pidaemonmanager/internal/procs"
	"github.com/evilshxt/pidaemonmanager/internal/services"
	"github.com/evilshxt/pidaemonmanager/internal/term"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pdm [command]",
	Short: "pdm: process & daemon manager",
	Long:  `pdm resolves a name to a running process or a systemd unit and manages it, and ships a handful of process-table insight commands.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an optional TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// controller assembles the app facade with the live collaborators. The
// returned prompter is the one wired into the app: stdin is buffered, so
// every prompt of an invocation must go through this single instance. The
// closer flushes the audit log file.
func controller() (*app.App, term.Prompter, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, closer, err := logging.New(cfg.AuditLogPath)
	if err != nil {
		return nil, nil, nil, err
	}

	prompter := term.NewConsole(os.Stdin, os.Stdout)
	a := app.New(app.Options{
		Procs:    procs.NewTable(),
		Services: services.NewSystemd(cfg.SystemctlTimeout),
		Prompter: prompter,
		Logger:   logger,
	})
	return a, prompter, closer, nil
}

func loadedConfig() (config.Config, error) {
	return config.Load(configPath)
}
