package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// runner executes one systemctl invocation and reports its streams and
// exit code. Injected so tests never shell out.
type runner func(ctx context.Context, args ...string) (stdout, stderr string, exitCode int, err error)

// Systemd drives units through the systemctl binary, the same transport
// the service manager's own tooling uses.
type Systemd struct {
	run     runner
	timeout time.Duration
}

// NewSystemd returns a Manager backed by systemctl. timeout bounds every
// individual invocation.
func NewSystemd(timeout time.Duration) *Systemd {
	return &Systemd{run: execSystemctl, timeout: timeout}
}

func execSystemctl(ctx context.Context, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, "systemctl", args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return out.String(), errBuf.String(), -1, err
		}
		code = exitErr.ExitCode()
	}
	return out.String(), errBuf.String(), code, nil
}

func (s *Systemd) runCtl(ctx context.Context, args ...string) (string, string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.run(ctx, args...)
}

// Available reports whether systemctl responds on this host.
func (s *Systemd) Available(ctx context.Context) bool {
	_, _, code, err := s.runCtl(ctx, "--version")
	return err == nil && code == 0
}

// IsRegistered reports whether the service manager knows the unit at all.
func (s *Systemd) IsRegistered(ctx context.Context, unit string) (bool, error) {
	out, stderr, _, err := s.runCtl(ctx, "show", "-p", "LoadState", "--value", unit)
	if err != nil {
		return false, fmt.Errorf("systemctl show %s: %w", unit, err)
	}
	if msg := permissionFailure(stderr); msg != "" {
		return false, fmt.Errorf("systemctl show %s: %w: %s", unit, ErrPermissionDenied, msg)
	}
	state := strings.TrimSpace(out)
	return state != "" && state != "not-found", nil
}

// Enablement reads the persisted boot flag of the unit. systemctl exits
// non-zero for disabled units, so only the stdout token matters.
func (s *Systemd) Enablement(ctx context.Context, unit string) (Enablement, error) {
	out, stderr, _, err := s.runCtl(ctx, "is-enabled", unit)
	if err != nil {
		return EnablementUnknown, fmt.Errorf("systemctl is-enabled %s: %w", unit, err)
	}
	if msg := permissionFailure(stderr); msg != "" {
		return EnablementUnknown, fmt.Errorf("systemctl is-enabled %s: %w: %s", unit, ErrPermissionDenied, msg)
	}
	switch strings.TrimSpace(out) {
	case "enabled", "enabled-runtime":
		return Enabled, nil
	case "disabled":
		return Disabled, nil
	default:
		return EnablementUnknown, nil
	}
}

// Enable persists the unit's boot-time start flag.
func (s *Systemd) Enable(ctx context.Context, unit string) error {
	return s.mutate(ctx, "enable", unit)
}

// Disable clears the unit's boot-time start flag.
func (s *Systemd) Disable(ctx context.Context, unit string) error {
	return s.mutate(ctx, "disable", unit)
}

// Start starts the unit now.
func (s *Systemd) Start(ctx context.Context, unit string) error {
	return s.mutate(ctx, "start", unit)
}

// Stop stops the unit now.
func (s *Systemd) Stop(ctx context.Context, unit string) error {
	return s.mutate(ctx, "stop", unit)
}

// Restart restarts the unit.
func (s *Systemd) Restart(ctx context.Context, unit string) error {
	return s.mutate(ctx, "restart", unit)
}

func (s *Systemd) mutate(ctx context.Context, verb, unit string) error {
	_, stderr, code, err := s.runCtl(ctx, verb, unit)
	if err != nil {
		return fmt.Errorf("systemctl %s %s: %w", verb, unit, err)
	}
	if code != 0 {
		reason := strings.TrimSpace(stderr)
		if msg := permissionFailure(stderr); msg != "" {
			return fmt.Errorf("systemctl %s %s: %w: %s", verb, unit, ErrPermissionDenied, msg)
		}
		return fmt.Errorf("systemctl %s %s exited %d: %s", verb, unit, code, reason)
	}
	return nil
}

// Status returns the human-readable unit report. Exit code 3 (unit
// inactive) still produces a report and is not an error.
func (s *Systemd) Status(ctx context.Context, unit string) (string, error) {
	out, stderr, code, err := s.runCtl(ctx, "status", unit, "--no-pager")
	if err != nil {
		return "", fmt.Errorf("systemctl status %s: %w", unit, err)
	}
	if msg := permissionFailure(stderr); msg != "" {
		return "", fmt.Errorf("systemctl status %s: %w: %s", unit, ErrPermissionDenied, msg)
	}
	if code != 0 && code != 3 && strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("systemctl status %s exited %d: %s", unit, code, strings.TrimSpace(stderr))
	}
	return out, nil
}

// List parses `systemctl list-units --type=service`. The --plain and
// --no-legend flags keep output one machine-splittable row per unit.
func (s *Systemd) List(ctx context.Context) ([]Unit, error) {
	out, stderr, code, err := s.runCtl(ctx, "list-units", "--type=service", "--all", "--no-legend", "--plain")
	if err != nil {
		return nil, fmt.Errorf("systemctl list-units: %w", err)
	}
	if code != 0 {
		return nil, fmt.Errorf("systemctl list-units exited %d: %s", code, strings.TrimSpace(stderr))
	}
	return parseUnitList(out), nil
}

func parseUnitList(out string) []Unit {
	var units []Unit
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		u := Unit{
			Name:        fields[0],
			LoadState:   fields[1],
			ActiveState: fields[2],
			SubState:    fields[3],
		}
		if len(fields) > 4 {
			u.Description = strings.Join(fields[4:], " ")
		}
		units = append(units, u)
	}
	return units
}

// permissionFailure extracts the verbatim systemctl denial line, if any.
func permissionFailure(stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		l := strings.ToLower(line)
		if strings.Contains(l, "access denied") ||
			strings.Contains(l, "permission denied") ||
			strings.Contains(l, "authentication required") ||
			strings.Contains(l, "operation not permitted") {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
