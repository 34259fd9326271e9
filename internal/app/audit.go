package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
)

// Severity ranks an audit finding.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// AuditIssue is one flagged process or socket from a security audit pass.
type AuditIssue struct {
	Severity Severity
	PID      int32
	Name     string
	Reason   string
}

// suspiciousIndicators are name and command-line fragments commonly seen in
// malware and remote-access tooling.
var suspiciousIndicators = []string{
	"miner", "trojan", "virus", "malware", "keylogger",
	"ransomware", "backdoor", "rootkit", "exploit", "payload",
	"netcat", "meterpreter",
}

// Audit scans the process table and listening sockets for suspicious
// indicators, zombie processes and privileged listening ports. Issues are
// returned in severity order: critical, then medium, then low.
func (a *App) Audit(ctx context.Context) ([]AuditIssue, error) {
	rows, err := a.procs.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var critical, medium []AuditIssue
	for _, p := range rows {
		haystack := strings.ToLower(p.Name + " " + p.Cmdline)
		for _, ind := range suspiciousIndicators {
			if strings.Contains(haystack, ind) {
				critical = append(critical, AuditIssue{
					Severity: SeverityCritical,
					PID:      p.PID,
					Name:     p.Name,
					Reason:   fmt.Sprintf("name or command line contains %q", ind),
				})
				break
			}
		}
		if p.Status == "zombie" {
			medium = append(medium, AuditIssue{
				Severity: SeverityMedium,
				PID:      p.PID,
				Name:     p.Name,
				Reason:   "zombie process, parent has not reaped it",
			})
		}
	}

	conns, err := a.procs.Connections(ctx, procs.ConnFilter{ListeningOnly: true})
	if err != nil {
		return nil, err
	}
	var low []AuditIssue
	for _, c := range conns {
		if c.LocalPort >= 1024 {
			continue
		}
		low = append(low, AuditIssue{
			Severity: SeverityLow,
			PID:      c.PID,
			Name:     c.ProcessName,
			Reason:   fmt.Sprintf("listening on privileged port %d (%s)", c.LocalPort, c.LocalAddr),
		})
	}

	issues := append(critical, medium...)
	issues = append(issues, low...)
	if len(issues) > 0 {
		a.log.Warn().Int("issues", len(issues)).Msg("audit flagged processes")
	}
	return issues, nil
}
