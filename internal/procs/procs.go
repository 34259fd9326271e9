// Package procs wraps the OS process table behind the narrow surface the
// resolver and the reporting commands need.
package procs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

var (
	// ErrProcessGone reports a pid that existed at resolution time but had
	// exited before the signal was delivered.
	ErrProcessGone = errors.New("process no longer running")
	// ErrPermissionDenied reports a signal the kernel refused to deliver.
	ErrPermissionDenied = errors.New("permission denied")
)

// Proc is one process-table row.
type Proc struct {
	PID        int32
	Name       string
	User       string
	Status     string
	CPUPercent float64
	MemPercent float32
	Cmdline    string
}

// Detail extends Proc with the fields the info command reports.
type Detail struct {
	Proc
	Threads    int32
	CreatedAt  time.Time
	Executable string
	WorkingDir string
	Children   []Proc
}

// Table queries the live process table via gopsutil.
type Table struct{}

// NewTable returns the process-table collaborator.
func NewTable() *Table {
	return &Table{}
}

// Search returns every process whose name or command line contains pattern
// (case-sensitive substring). The calling process itself is filtered out so
// a query never matches its own invocation. Rows that vanish or deny access
// mid-enumeration are skipped.
func (t *Table) Search(ctx context.Context, pattern string) ([]Proc, error) {
	all, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	self := int32(os.Getpid())
	matches := make([]Proc, 0, 8)
	for _, p := range all {
		if p.Pid == self {
			continue
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cmdline, _ := p.CmdlineWithContext(ctx)
		if !strings.Contains(name, pattern) && !strings.Contains(cmdline, pattern) {
			continue
		}
		matches = append(matches, t.row(ctx, p, name, cmdline))
	}
	return matches, nil
}

// FindExact returns the pids whose process name equals name, in process
// table enumeration order.
func (t *Table) FindExact(ctx context.Context, name string) ([]int32, error) {
	all, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	self := int32(os.Getpid())
	var pids []int32
	for _, p := range all {
		if p.Pid == self {
			continue
		}
		n, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if n == name {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

// Terminate sends SIGTERM to pid. A pid that already exited maps to
// ErrProcessGone; a refused signal maps to ErrPermissionDenied.
func (t *Table) Terminate(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return fmt.Errorf("pid %d: %w", pid, ErrProcessGone)
	}
	if err := p.TerminateWithContext(ctx); err != nil {
		switch {
		case errors.Is(err, syscall.ESRCH), errors.Is(err, process.ErrorProcessNotRunning):
			return fmt.Errorf("pid %d: %w", pid, ErrProcessGone)
		case errors.Is(err, syscall.EPERM):
			return fmt.Errorf("terminate pid %d: %w", pid, ErrPermissionDenied)
		default:
			return fmt.Errorf("terminate pid %d: %w", pid, err)
		}
	}
	return nil
}

// Detail collects the full report for one pid, children included.
func (t *Table) Detail(ctx context.Context, pid int32) (Detail, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return Detail{}, fmt.Errorf("pid %d: %w", pid, ErrProcessGone)
	}

	name, err := p.NameWithContext(ctx)
	if err != nil {
		if errors.Is(err, syscall.EPERM) {
			return Detail{}, fmt.Errorf("pid %d: %w", pid, ErrPermissionDenied)
		}
		return Detail{}, fmt.Errorf("read pid %d: %w", pid, err)
	}
	cmdline, _ := p.CmdlineWithContext(ctx)

	d := Detail{Proc: t.row(ctx, p, name, cmdline)}
	if n, err := p.NumThreadsWithContext(ctx); err == nil {
		d.Threads = n
	}
	if ms, err := p.CreateTimeWithContext(ctx); err == nil {
		d.CreatedAt = time.UnixMilli(ms)
	}
	d.Executable, _ = p.ExeWithContext(ctx)
	d.WorkingDir, _ = p.CwdWithContext(ctx)

	children, err := p.ChildrenWithContext(ctx)
	if err == nil {
		for _, c := range children {
			cn, err := c.NameWithContext(ctx)
			if err != nil {
				continue
			}
			d.Children = append(d.Children, Proc{PID: c.Pid, Name: cn})
		}
	}
	return d, nil
}

// Snapshot returns every readable process-table row.
func (t *Table) Snapshot(ctx context.Context) ([]Proc, error) {
	all, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	rows := make([]Proc, 0, len(all))
	for _, p := range all {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cmdline, _ := p.CmdlineWithContext(ctx)
		rows = append(rows, t.row(ctx, p, name, cmdline))
	}
	return rows, nil
}

func (t *Table) row(ctx context.Context, p *process.Process, name, cmdline string) Proc {
	row := Proc{PID: p.Pid, Name: name, Cmdline: cmdline}
	row.User, _ = p.UsernameWithContext(ctx)
	if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
		row.Status = st[0]
	}
	row.CPUPercent, _ = p.CPUPercentWithContext(ctx)
	row.MemPercent, _ = p.MemoryPercentWithContext(ctx)
	return row
}
