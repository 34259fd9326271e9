package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
)

// TopSort selects the resource column top ranks by.
type TopSort string

const (
	TopByCPU    TopSort = "cpu"
	TopByMemory TopSort = "memory"
)

// TopParams configures the top command.
type TopParams struct {
	SortBy TopSort
	Limit  int
}

// Top returns the heaviest processes by CPU or memory share.
func (a *App) Top(ctx context.Context, params TopParams) ([]procs.Proc, error) {
	switch params.SortBy {
	case TopByCPU, TopByMemory:
	default:
		return nil, fmt.Errorf("unknown sort column %q", params.SortBy)
	}
	if params.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", params.Limit)
	}

	rows, err := a.procs.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if params.SortBy == TopByMemory {
			return rows[i].MemPercent > rows[j].MemPercent
		}
		return rows[i].CPUPercent > rows[j].CPUPercent
	})

	if len(rows) > params.Limit {
		rows = rows[:params.Limit]
	}
	return rows, nil
}
