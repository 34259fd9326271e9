package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/evilshxt/pidaemonmanager/internal/services"
)

// Resolve classifies query as a running process, a registered service unit,
// or nothing. The process table wins: a name that is both running and
// registered as a unit classifies as a running process. The service manager
// is only consulted once no process matched.
func (a *App) Resolve(ctx context.Context, query string) (Classification, error) {
	if strings.TrimSpace(query) == "" {
		return Classification{}, ErrEmptyQuery
	}

	matches, err := a.procs.Search(ctx, query)
	if err != nil {
		return Classification{}, fmt.Errorf("search processes: %w", err)
	}

	pids, err := a.procs.FindExact(ctx, query)
	if err != nil {
		return Classification{}, fmt.Errorf("find process %q: %w", query, err)
	}
	if len(pids) > 0 {
		// Multiple exact matches narrow to the first in enumeration
		// order; the full match list stays available for display.
		return Classification{
			Kind:    KindRunningProcess,
			Query:   query,
			Process: ProcessMatch{CanonicalPID: pids[0], Matches: matches},
		}, nil
	}

	if !a.services.Available(ctx) {
		// No service manager on this host; nothing left to match against.
		return Classification{Kind: KindNotFound, Query: query}, nil
	}

	unit := services.UnitName(query)
	registered, err := a.services.IsRegistered(ctx, unit)
	if err != nil {
		return Classification{}, fmt.Errorf("check unit %s: %w", unit, err)
	}
	if !registered {
		return Classification{Kind: KindNotFound, Query: query}, nil
	}

	enablement, err := a.services.Enablement(ctx, unit)
	if err != nil {
		return Classification{}, fmt.Errorf("read enablement of %s: %w", unit, err)
	}
	return Classification{
		Kind:  KindDaemon,
		Query: query,
		Unit:  DaemonUnit{Name: unit, Enablement: enablement},
	}, nil
}
