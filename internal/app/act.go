package app

import (
	"context"
	"fmt"

	"github.com/evilshxt/pidaemonmanager/internal/services"
)

// ActResult is the terminal report of one action.
type ActResult struct {
	Outcome Outcome
	// PID is set for the process branch.
	PID int32
	// Unit is set for the daemon branch.
	Unit string
	// StatusText carries the service manager's report for OutcomeStatusReported.
	StatusText string
}

// Act drives the action state machine for a classification. The prompter is
// consulted at most once (ConfirmYesNo on the process branch, PromptChoice
// on the daemon branch). Mutating collaborator failures — permission
// refusals, a pid gone since resolution — come back as errors with a zero
// outcome; the caller reports them and still exits normally.
func (a *App) Act(ctx context.Context, cls Classification) (ActResult, error) {
	switch cls.Kind {
	case KindRunningProcess:
		return a.actProcess(ctx, cls)
	case KindDaemon:
		return a.actDaemon(ctx, cls)
	default:
		return ActResult{Outcome: OutcomeNoTarget}, nil
	}
}

func (a *App) actProcess(ctx context.Context, cls Classification) (ActResult, error) {
	pid := cls.Process.CanonicalPID
	res := ActResult{PID: pid}

	ok, err := a.prompt.ConfirmYesNo(fmt.Sprintf("Terminate %q (pid %d)?", cls.Query, pid))
	if err != nil {
		return ActResult{}, fmt.Errorf("read confirmation: %w", err)
	}
	if !ok {
		res.Outcome = OutcomeLeftRunning
		return res, nil
	}

	if err := a.procs.Terminate(ctx, pid); err != nil {
		return ActResult{}, err
	}
	a.log.Info().Str("action", "terminate").Str("name", cls.Query).Int32("pid", pid).Msg("process terminated")
	res.Outcome = OutcomeTerminated
	return res, nil
}

func (a *App) actDaemon(ctx context.Context, cls Classification) (ActResult, error) {
	unit := cls.Unit.Name
	res := ActResult{Unit: unit}

	raw, err := a.prompt.PromptChoice(fmt.Sprintf("%s: (e)nable, (d)isable or (s)tatus?", unit))
	if err != nil {
		return ActResult{}, fmt.Errorf("read choice: %w", err)
	}

	switch decodeChoice(raw) {
	case ChoiceEnable:
		if cls.Unit.Enablement == services.Enabled {
			res.Outcome = OutcomeAlreadyEnabled
			return res, nil
		}
		if err := a.services.Enable(ctx, unit); err != nil {
			return ActResult{}, err
		}
		a.log.Info().Str("action", "enable").Str("unit", unit).Msg("unit enabled")
		res.Outcome = OutcomeEnabledNow
		return res, nil

	case ChoiceDisable:
		if cls.Unit.Enablement == services.Disabled {
			res.Outcome = OutcomeAlreadyDisabled
			return res, nil
		}
		if err := a.services.Disable(ctx, unit); err != nil {
			return ActResult{}, err
		}
		a.log.Info().Str("action", "disable").Str("unit", unit).Msg("unit disabled")
		res.Outcome = OutcomeDisabledNow
		return res, nil

	case ChoiceStatus:
		report, err := a.services.Status(ctx, unit)
		if err != nil {
			return ActResult{}, err
		}
		res.Outcome = OutcomeStatusReported
		res.StatusText = report
		return res, nil

	default:
		res.Outcome = OutcomeInvalidChoice
		return res, nil
	}
}
