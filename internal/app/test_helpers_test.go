package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
	"github.com/evilshxt/pidaemonmanager/internal/services"
)

// fakeTable scripts the process-table collaborator and records every call.
type fakeTable struct {
	searchResult []procs.Proc
	searchErr    error
	exactResult  []int32
	exactErr     error
	snapshot     []procs.Proc
	detail       procs.Detail
	conns        []procs.Conn

	// detailSeq, when non-empty, scripts successive Detail calls; once
	// drained the fake falls back to detail/detailErr.
	detailSeq []detailResult
	detailErr error

	terminateErr error

	searchCalls    []string
	exactCalls     []string
	terminateCalls []int32
	detailCalls    []int32
}

type detailResult struct {
	detail procs.Detail
	err    error
}

func (f *fakeTable) Search(_ context.Context, pattern string) ([]procs.Proc, error) {
	f.searchCalls = append(f.searchCalls, pattern)
	return f.searchResult, f.searchErr
}

func (f *fakeTable) FindExact(_ context.Context, name string) ([]int32, error) {
	f.exactCalls = append(f.exactCalls, name)
	return f.exactResult, f.exactErr
}

func (f *fakeTable) Terminate(_ context.Context, pid int32) error {
	f.terminateCalls = append(f.terminateCalls, pid)
	return f.terminateErr
}

func (f *fakeTable) Detail(_ context.Context, pid int32) (procs.Detail, error) {
	f.detailCalls = append(f.detailCalls, pid)
	if len(f.detailSeq) > 0 {
		next := f.detailSeq[0]
		f.detailSeq = f.detailSeq[1:]
		return next.detail, next.err
	}
	return f.detail, f.detailErr
}

func (f *fakeTable) Snapshot(_ context.Context) ([]procs.Proc, error) {
	return f.snapshot, nil
}

func (f *fakeTable) Connections(_ context.Context, _ procs.ConnFilter) ([]procs.Conn, error) {
	return f.conns, nil
}

// fakeManager scripts the service manager. Enable/Disable mutate the
// enablement so idempotence across re-resolution is observable.
type fakeManager struct {
	unavailable bool
	registered  bool
	enablement  services.Enablement
	statusText  string

	registeredErr error
	enableErr     error
	disableErr    error
	statusErr     error

	registeredCalls []string
	enablementCalls []string
	enableCalls     []string
	disableCalls    []string
	statusCalls     []string
}

func (f *fakeManager) Available(context.Context) bool { return !f.unavailable }

func (f *fakeManager) IsRegistered(_ context.Context, unit string) (bool, error) {
	f.registeredCalls = append(f.registeredCalls, unit)
	return f.registered, f.registeredErr
}

func (f *fakeManager) Enablement(_ context.Context, unit string) (services.Enablement, error) {
	f.enablementCalls = append(f.enablementCalls, unit)
	return f.enablement, nil
}

func (f *fakeManager) Enable(_ context.Context, unit string) error {
	f.enableCalls = append(f.enableCalls, unit)
	if f.enableErr != nil {
		return f.enableErr
	}
	f.enablement = services.Enabled
	return nil
}

func (f *fakeManager) Disable(_ context.Context, unit string) error {
	f.disableCalls = append(f.disableCalls, unit)
	if f.disableErr != nil {
		return f.disableErr
	}
	f.enablement = services.Disabled
	return nil
}

func (f *fakeManager) Start(context.Context, string) error   { return nil }
func (f *fakeManager) Stop(context.Context, string) error    { return nil }
func (f *fakeManager) Restart(context.Context, string) error { return nil }

func (f *fakeManager) Status(_ context.Context, unit string) (string, error) {
	f.statusCalls = append(f.statusCalls, unit)
	return f.statusText, f.statusErr
}

func (f *fakeManager) List(context.Context) ([]services.Unit, error) { return nil, nil }

// fakePrompter feeds scripted answers and counts how often each prompt ran.
type fakePrompter struct {
	confirmAnswer bool
	choiceAnswer  byte
	textAnswer    string

	confirmCalls int
	choiceCalls  int
	textCalls    int
}

func (f *fakePrompter) PromptText(string) (string, error) {
	f.textCalls++
	return f.textAnswer, nil
}

func (f *fakePrompter) PromptChoice(string) (byte, error) {
	f.choiceCalls++
	return f.choiceAnswer, nil
}

func (f *fakePrompter) ConfirmYesNo(string) (bool, error) {
	f.confirmCalls++
	return f.confirmAnswer, nil
}

func newTestApp(table *fakeTable, mgr *fakeManager, prompter *fakePrompter) *App {
	return New(Options{
		Procs:    table,
		Services: mgr,
		Prompter: prompter,
		Logger:   zerolog.Nop(),
	})
}

func pidList(pids ...int32) []procs.Proc {
	out := make([]procs.Proc, 0, len(pids))
	for _, pid := range pids {
		out = append(out, procs.Proc{PID: pid, Name: fmt.Sprintf("proc-%d", pid)})
	}
	return out
}
