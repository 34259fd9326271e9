package app

import (
	"errors"

	"github.com/evilshxt/pidaemonmanager/internal/procs"
	"github.com/evilshxt/pidaemonmanager/internal/services"
)

// ErrEmptyQuery rejects a blank name before any collaborator is queried.
var ErrEmptyQuery = errors.New("query must not be empty")

// Kind tags the three resolution states.
type Kind int

const (
	KindNotFound Kind = iota
	KindRunningProcess
	KindDaemon
)

// ProcessMatch is the result of a process-table search. CanonicalPID is the
// first exact-name match in enumeration order; Matches holds the wider
// substring hits shown to the user for information.
type ProcessMatch struct {
	CanonicalPID int32
	Matches      []procs.Proc
}

// DaemonUnit is a read-only snapshot of a registered unit taken at
// classification time.
type DaemonUnit struct {
	Name       string
	Enablement services.Enablement
}

// Classification is the single piece of state threaded from Resolve to Act.
// Exactly one of Process/Unit is meaningful, per Kind.
type Classification struct {
	Kind    Kind
	Query   string
	Process ProcessMatch
	Unit    DaemonUnit
}

// Outcome is the terminal result of one resolve-then-act invocation.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeTerminated
	OutcomeLeftRunning
	OutcomeEnabledNow
	OutcomeAlreadyEnabled
	OutcomeDisabledNow
	OutcomeAlreadyDisabled
	OutcomeStatusReported
	OutcomeInvalidChoice
	OutcomeNoTarget
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTerminated:
		return "terminated"
	case OutcomeLeftRunning:
		return "left running"
	case OutcomeEnabledNow:
		return "enabled"
	case OutcomeAlreadyEnabled:
		return "already enabled"
	case OutcomeDisabledNow:
		return "disabled"
	case OutcomeAlreadyDisabled:
		return "already disabled"
	case OutcomeStatusReported:
		return "status reported"
	case OutcomeInvalidChoice:
		return "invalid choice"
	case OutcomeNoTarget:
		return "no target"
	default:
		return "none"
	}
}

// Choice is the decoded daemon menu selection. Raw input is interpreted
// exactly once; everything unrecognized collapses to ChoiceInvalid.
type Choice int

const (
	ChoiceInvalid Choice = iota
	ChoiceEnable
	ChoiceDisable
	ChoiceStatus
)

func decodeChoice(c byte) Choice {
	switch c {
	case 'e', 'E':
		return ChoiceEnable
	case 'd', 'D':
		return ChoiceDisable
	case 's', 'S':
		return ChoiceStatus
	default:
		return ChoiceInvalid
	}
}
