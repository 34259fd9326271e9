package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
	"github.com/evilshxt/pidaemonmanager/internal/services"
)

func daemonClassification(enablement services.Enablement) Classification {
	return Classification{
		Kind:  KindDaemon,
		Query: "sshd",
		Unit:  DaemonUnit{Name: "sshd.service", Enablement: enablement},
	}
}

func TestActTerminateConfirmed(t *testing.T) {
	table := &fakeTable{}
	prompter := &fakePrompter{confirmAnswer: true}
	a := newTestApp(table, &fakeManager{}, prompter)

	cls := Classification{
		Kind:    KindRunningProcess,
		Query:   "nginx",
		Process: ProcessMatch{CanonicalPID: 4421, Matches: pidList(4421)},
	}
	res, err := a.Act(context.Background(), cls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeTerminated {
		t.Fatalf("expected Terminated, got %v", res.Outcome)
	}
	if len(table.terminateCalls) != 1 || table.terminateCalls[0] != 4421 {
		t.Fatalf("expected exactly one terminate call for pid 4421, got %v", table.terminateCalls)
	}
	if prompter.confirmCalls != 1 {
		t.Fatalf("confirm must run exactly once, got %d", prompter.confirmCalls)
	}
}

func TestActTerminateDeclined(t *testing.T) {
	table := &fakeTable{}
	prompter := &fakePrompter{confirmAnswer: false}
	a := newTestApp(table, &fakeManager{}, prompter)

	cls := Classification{
		Kind:    KindRunningProcess,
		Query:   "nginx",
		Process: ProcessMatch{CanonicalPID: 4421},
	}
	res, err := a.Act(context.Background(), cls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeLeftRunning {
		t.Fatalf("expected LeftRunning, got %v", res.Outcome)
	}
	if len(table.terminateCalls) != 0 {
		t.Fatalf("declining must not signal anything: %v", table.terminateCalls)
	}
}

func TestActTerminateProcessGone(t *testing.T) {
	table := &fakeTable{terminateErr: fmt.Errorf("pid 4421: %w", procs.ErrProcessGone)}
	a := newTestApp(table, &fakeManager{}, &fakePrompter{confirmAnswer: true})

	cls := Classification{
		Kind:    KindRunningProcess,
		Query:   "nginx",
		Process: ProcessMatch{CanonicalPID: 4421},
	}
	_, err := a.Act(context.Background(), cls)
	if !errors.Is(err, procs.ErrProcessGone) {
		t.Fatalf("a vanished pid must surface as ErrProcessGone, got %v", err)
	}
}

func TestActTerminatePermissionDenied(t *testing.T) {
	table := &fakeTable{terminateErr: fmt.Errorf("terminate pid 1: %w", procs.ErrPermissionDenied)}
	a := newTestApp(table, &fakeManager{}, &fakePrompter{confirmAnswer: true})

	cls := Classification{
		Kind:    KindRunningProcess,
		Query:   "init",
		Process: ProcessMatch{CanonicalPID: 1},
	}
	_, err := a.Act(context.Background(), cls)
	if !errors.Is(err, procs.ErrPermissionDenied) {
		t.Fatalf("expected permission error to surface, got %v", err)
	}
}

func TestActDaemonEnableAlreadyEnabled(t *testing.T) {
	mgr := &fakeManager{registered: true, enablement: services.Enabled}
	prompter := &fakePrompter{choiceAnswer: 'e'}
	a := newTestApp(&fakeTable{}, mgr, prompter)

	res, err := a.Act(context.Background(), daemonClassification(services.Enabled))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeAlreadyEnabled {
		t.Fatalf("expected AlreadyEnabled, got %v", res.Outcome)
	}
	if len(mgr.enableCalls) != 0 || len(mgr.disableCalls) != 0 {
		t.Fatalf("no-op branch must not mutate: enable=%v disable=%v", mgr.enableCalls, mgr.disableCalls)
	}
}

func TestActDaemonEnableWhenDisabled(t *testing.T) {
	mgr := &fakeManager{registered: true, enablement: services.Disabled}
	prompter := &fakePrompter{choiceAnswer: 'E'}
	a := newTestApp(&fakeTable{}, mgr, prompter)

	res, err := a.Act(context.Background(), daemonClassification(services.Disabled))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeEnabledNow {
		t.Fatalf("expected EnabledNow, got %v", res.Outcome)
	}
	if len(mgr.enableCalls) != 1 || mgr.enableCalls[0] != "sshd.service" {
		t.Fatalf("expected exactly one enable call, got %v", mgr.enableCalls)
	}
}

func TestActDaemonDisableWhenEnabled(t *testing.T) {
	mgr := &fakeManager{registered: true, enablement: services.Enabled}
	prompter := &fakePrompter{choiceAnswer: 'd'}
	a := newTestApp(&fakeTable{}, mgr, prompter)

	res, err := a.Act(context.Background(), daemonClassification(services.Enabled))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeDisabledNow {
		t.Fatalf("expected DisabledNow, got %v", res.Outcome)
	}
	if len(mgr.disableCalls) != 1 {
		t.Fatalf("expected exactly one disable call, got %v", mgr.disableCalls)
	}
}

func TestActDaemonDisableAlreadyDisabled(t *testing.T) {
	mgr := &fakeManager{registered: true, enablement: services.Disabled}
	prompter := &fakePrompter{choiceAnswer: 'D'}
	a := newTestApp(&fakeTable{}, mgr, prompter)

	res, err := a.Act(context.Background(), daemonClassification(services.Disabled))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeAlreadyDisabled {
		t.Fatalf("expected AlreadyDisabled, got %v", res.Outcome)
	}
	if len(mgr.disableCalls) != 0 {
		t.Fatalf("no-op branch must not mutate: %v", mgr.disableCalls)
	}
}

func TestActDaemonStatus(t *testing.T) {
	mgr := &fakeManager{registered: true, enablement: services.Enabled, statusText: "● sshd.service - OpenSSH server\n   Active: active (running)"}
	prompter := &fakePrompter{choiceAnswer: 's'}
	a := newTestApp(&fakeTable{}, mgr, prompter)

	res, err := a.Act(context.Background(), daemonClassification(services.Enabled))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeStatusReported {
		t.Fatalf("expected StatusReported, got %v", res.Outcome)
	}
	if res.StatusText != mgr.statusText {
		t.Fatalf("status report lost: %q", res.StatusText)
	}
	if len(mgr.enableCalls) != 0 || len(mgr.disableCalls) != 0 {
		t.Fatalf("status must not mutate: enable=%v disable=%v", mgr.enableCalls, mgr.disableCalls)
	}
	if len(mgr.statusCalls) != 1 {
		t.Fatalf("expected exactly one status call, got %v", mgr.statusCalls)
	}
}

func TestActDaemonInvalidChoice(t *testing.T) {
	mgr := &fakeManager{registered: true, enablement: services.Enabled}
	prompter := &fakePrompter{choiceAnswer: 'x'}
	a := newTestApp(&fakeTable{}, mgr, prompter)

	res, err := a.Act(context.Background(), daemonClassification(services.Enabled))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeInvalidChoice {
		t.Fatalf("expected InvalidChoice, got %v", res.Outcome)
	}
	if len(mgr.enableCalls)+len(mgr.disableCalls)+len(mgr.statusCalls) != 0 {
		t.Fatalf("invalid choice must not touch the manager")
	}
}

func TestActDaemonEnablePermissionDenied(t *testing.T) {
	denied := fmt.Errorf("systemctl enable sshd.service: %w: Access denied", services.ErrPermissionDenied)
	mgr := &fakeManager{registered: true, enablement: services.Disabled, enableErr: denied}
	a := newTestApp(&fakeTable{}, mgr, &fakePrompter{choiceAnswer: 'e'})

	_, err := a.Act(context.Background(), daemonClassification(services.Disabled))
	if !errors.Is(err, services.ErrPermissionDenied) {
		t.Fatalf("expected permission error to surface verbatim, got %v", err)
	}
}

func TestActNoTarget(t *testing.T) {
	prompter := &fakePrompter{}
	a := newTestApp(&fakeTable{}, &fakeManager{}, prompter)

	res, err := a.Act(context.Background(), Classification{Kind: KindNotFound, Query: "ghostproc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeNoTarget {
		t.Fatalf("expected NoTarget, got %v", res.Outcome)
	}
	if prompter.confirmCalls != 0 || prompter.choiceCalls != 0 {
		t.Fatalf("NotFound must not prompt: %+v", prompter)
	}
}

func TestActDisableThenDisableAgainIsNoOp(t *testing.T) {
	// Second invocation re-resolves, observes the disabled snapshot and
	// reports AlreadyDisabled without another mutating call.
	mgr := &fakeManager{registered: true, enablement: services.Enabled}
	prompter := &fakePrompter{choiceAnswer: 'd'}
	a := newTestApp(&fakeTable{}, mgr, prompter)

	cls, err := a.Resolve(context.Background(), "sshd")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	res, err := a.Act(context.Background(), cls)
	if err != nil {
		t.Fatalf("first act: %v", err)
	}
	if res.Outcome != OutcomeDisabledNow {
		t.Fatalf("first act: expected DisabledNow, got %v", res.Outcome)
	}

	cls, err = a.Resolve(context.Background(), "sshd")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	res, err = a.Act(context.Background(), cls)
	if err != nil {
		t.Fatalf("second act: %v", err)
	}
	if res.Outcome != OutcomeAlreadyDisabled {
		t.Fatalf("second act: expected AlreadyDisabled, got %v", res.Outcome)
	}
	if len(mgr.disableCalls) != 1 {
		t.Fatalf("expected exactly one disable call across both runs, got %v", mgr.disableCalls)
	}
}

func TestDecodeChoice(t *testing.T) {
	cases := map[byte]Choice{
		'e': ChoiceEnable, 'E': ChoiceEnable,
		'd': ChoiceDisable, 'D': ChoiceDisable,
		's': ChoiceStatus, 'S': ChoiceStatus,
		'x': ChoiceInvalid, '1': ChoiceInvalid, 0: ChoiceInvalid,
	}
	for raw, want := range cases {
		if got := decodeChoice(raw); got != want {
			t.Fatalf("decodeChoice(%q) = %v, want %v", raw, got, want)
		}
	}
}
