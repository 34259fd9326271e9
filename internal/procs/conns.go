package procs

import (
	"context"
	"fmt"
	"syscall"

	gnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Conn is one network connection row for the ports report.
type Conn struct {
	PID         int32
	ProcessName string
	Protocol    string
	LocalAddr   string
	LocalPort   uint32
	RemoteAddr  string
	Status      string
}

// ConnFilter narrows the Connections report.
type ConnFilter struct {
	// ListeningOnly keeps only sockets in LISTEN state.
	ListeningOnly bool
	// PID, when > 0, keeps only connections owned by that pid.
	PID int32
}

// Connections lists inet connections, resolving owning process names where
// the kernel exposes them.
func (t *Table) Connections(ctx context.Context, filter ConnFilter) ([]Conn, error) {
	stats, err := gnet.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	names := make(map[int32]string)
	rows := make([]Conn, 0, len(stats))
	for _, st := range stats {
		if filter.PID > 0 && st.Pid != filter.PID {
			continue
		}
		if filter.ListeningOnly && st.Status != "LISTEN" {
			continue
		}

		row := Conn{PID: st.Pid, Status: st.Status, Protocol: "TCP"}
		if st.Type == syscall.SOCK_DGRAM {
			row.Protocol = "UDP"
		}
		if st.Laddr.IP != "" {
			row.LocalAddr = fmt.Sprintf("%s:%d", st.Laddr.IP, st.Laddr.Port)
			row.LocalPort = st.Laddr.Port
		}
		if st.Raddr.IP != "" {
			row.RemoteAddr = fmt.Sprintf("%s:%d", st.Raddr.IP, st.Raddr.Port)
		}
		if st.Pid > 0 {
			name, ok := names[st.Pid]
			if !ok {
				if p, err := process.NewProcessWithContext(ctx, st.Pid); err == nil {
					name, _ = p.NameWithContext(ctx)
				}
				names[st.Pid] = name
			}
			row.ProcessName = name
		}
		rows = append(rows, row)
	}
	return rows, nil
}
