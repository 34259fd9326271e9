package app

import (
	"context"
	"strings"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
)

// Inspect lists every process whose name or command line contains pattern.
func (a *App) Inspect(ctx context.Context, pattern string) ([]procs.Proc, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrEmptyQuery
	}
	return a.procs.Search(ctx, pattern)
}

// Info reports the detailed view of one pid, children included.
func (a *App) Info(ctx context.Context, pid int32) (procs.Detail, error) {
	return a.procs.Detail(ctx, pid)
}

// Terminate signals one explicitly selected pid. Used by the TUI, where the
// user picks the process directly instead of going through name resolution.
func (a *App) Terminate(ctx context.Context, pid int32) error {
	if err := a.procs.Terminate(ctx, pid); err != nil {
		return err
	}
	a.log.Info().Str("action", "terminate").Int32("pid", pid).Msg("process terminated")
	return nil
}

// Ports lists network connections, optionally narrowed to one pid or to
// listening sockets.
func (a *App) Ports(ctx context.Context, filter procs.ConnFilter) ([]procs.Conn, error) {
	return a.procs.Connections(ctx, filter)
}
