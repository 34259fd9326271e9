package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/evilshxt/pidaemonmanager/internal/services"
)

// Services lists every unit the service manager knows.
func (a *App) Services(ctx context.Context) ([]services.Unit, error) {
	return a.services.List(ctx)
}

// ServiceAction runs one lifecycle verb against a named unit. The status
// verb returns the manager's report; mutating verbs return an empty string.
func (a *App) ServiceAction(ctx context.Context, action, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyQuery
	}
	unit := services.UnitName(name)

	var err error
	switch action {
	case "start":
		err = a.services.Start(ctx, unit)
	case "stop":
		err = a.services.Stop(ctx, unit)
	case "restart":
		err = a.services.Restart(ctx, unit)
	case "enable":
		err = a.services.Enable(ctx, unit)
	case "disable":
		err = a.services.Disable(ctx, unit)
	case "status":
		return a.services.Status(ctx, unit)
	default:
		return "", fmt.Errorf("unknown service action %q", action)
	}
	if err != nil {
		return "", err
	}
	a.log.Info().Str("action", action).Str("unit", unit).Msg("service action applied")
	return "", nil
}
