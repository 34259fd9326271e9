package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Inspect(ctx context.Context, pattern string) ([]procs.Proc, error)
	Terminate(ctx context.Context, pid int32) error
}

// Model represents the Bubble Tea state: live matches for one search
// pattern with explicit per-process selection for termination.
type Model struct {
	controller Controller
	pattern    string

	list      list.Model
	processes []procs.Proc

	statusMsg string
	confirm   *procs.Proc

	err     error
	loading bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model for one search pattern.
func New(ctrl Controller, pattern string) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = fmt.Sprintf("Processes matching %q", pattern)
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		pattern:    pattern,
		list:       lst,
		statusMsg:  "Scanning process table…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller, pattern string) error {
	m := New(ctrl, pattern)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return loadProcessesCmd(m.controller, m.pattern)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case processesLoadedMsg:
		m.loading = false
		m.err = nil
		m.processes = msg.processes
		items := make([]list.Item, 0, len(msg.processes))
		for _, proc := range msg.processes {
			items = append(items, processItem{Proc: proc})
		}
		m.list.SetItems(items)
		m.lastUpdated = time.Now()
		m.statusMsg = fmt.Sprintf("%d matching processes. Press r to refresh, t to terminate, q to quit.", len(msg.processes))

	case terminatedMsg:
		m.statusMsg = fmt.Sprintf("Sent SIGTERM to pid %d.", msg.pid)
		m.loading = true
		return m, loadProcessesCmd(m.controller, m.pattern)

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		if m.confirm != nil {
			target := m.confirm
			m.confirm = nil
			if msg.String() == "y" {
				return m, terminateCmd(m.controller, target.PID)
			}
			m.statusMsg = fmt.Sprintf("Left pid %d running.", target.PID)
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadProcessesCmd(m.controller, m.pattern)
		case "t":
			if current := m.currentProcess(); current != nil {
				m.confirm = current
				m.statusMsg = fmt.Sprintf("Terminate %s (pid %d)? y/N", valueOrDash(current.Name), current.PID)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	if m.confirm != nil {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.loading {
		b.WriteString("Loading processes…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil {
		b.WriteString("No matching processes.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if current := m.currentProcess(); current != nil {
		detail := fmt.Sprintf(
			"pid=%d user=%s cpu=%.1f%% mem=%.1f%%\nname=%s\ncmd=%s",
			current.PID,
			valueOrDash(current.User),
			current.CPUPercent,
			current.MemPercent,
			valueOrDash(current.Name),
			current.Cmdline,
		)
		detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(detailStyle.Render(detail))
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r refresh • t terminate highlighted"
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// processItem adapts procs.Proc to the bubbles list item interface.
type processItem struct {
	Proc procs.Proc
}

func (p processItem) Title() string {
	return fmt.Sprintf("[pid=%d] %s", p.Proc.PID, valueOrDash(p.Proc.Name))
}

func (p processItem) Description() string {
	return fmt.Sprintf("user=%s cpu=%.1f%% mem=%.1f%% | %s", valueOrDash(p.Proc.User), p.Proc.CPUPercent, p.Proc.MemPercent, p.Proc.Cmdline)
}

func (p processItem) FilterValue() string {
	return fmt.Sprintf("%d %s %s", p.Proc.PID, p.Proc.Name, p.Proc.Cmdline)
}

func (m *Model) currentProcess() *procs.Proc {
	if len(m.processes) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.processes) {
		return nil
	}
	return &m.processes[idx]
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

type processesLoadedMsg struct {
	processes []procs.Proc
}

type terminatedMsg struct{ pid int32 }

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func loadProcessesCmd(ctrl Controller, pattern string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		matches, err := ctrl.Inspect(ctx, pattern)
		if err != nil {
			return errMsg{err}
		}
		return processesLoadedMsg{processes: matches}
	}
}

func terminateCmd(ctrl Controller, pid int32) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		if err := ctrl.Terminate(ctx, pid); err != nil {
			return errMsg{err}
		}
		return terminatedMsg{pid: pid}
	}
}
