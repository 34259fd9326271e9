// Package app hosts the resolve-then-act core and the reporting operations
// the CLI and TUI share. Collaborators are injected so every flow runs
// against fakes in tests.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
	"github.com/evilshxt/pidaemonmanager/internal/services"
	"github.com/evilshxt/pidaemonmanager/internal/term"
)

// ProcessTable is the process-table collaborator surface the operations
// need. *procs.Table is the production implementation.
type ProcessTable interface {
	Search(ctx context.Context, pattern string) ([]procs.Proc, error)
	FindExact(ctx context.Context, name string) ([]int32, error)
	Terminate(ctx context.Context, pid int32) error
	Detail(ctx context.Context, pid int32) (procs.Detail, error)
	Snapshot(ctx context.Context) ([]procs.Proc, error)
	Connections(ctx context.Context, filter procs.ConnFilter) ([]procs.Conn, error)
}

// Options wires the collaborators into the controller facade.
type Options struct {
	Procs    ProcessTable
	Services services.Manager
	Prompter term.Prompter
	Logger   zerolog.Logger
}

// App exposes the high-level operations the CLI and TUI reuse.
type App struct {
	procs    ProcessTable
	services services.Manager
	prompt   term.Prompter
	log      zerolog.Logger
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	return &App{
		procs:    opts.Procs,
		services: opts.Services,
		prompt:   opts.Prompter,
		log:      opts.Logger,
	}
}
