// Package services talks to the host service manager (systemd) for unit
// registration, enablement and lifecycle actions.
package services

import (
	"context"
	"errors"
)

// ErrPermissionDenied wraps a service-manager refusal; the underlying
// systemctl stderr is carried verbatim alongside it.
var ErrPermissionDenied = errors.New("permission denied")

// Enablement is the persisted boot-time state of a unit.
type Enablement int

const (
	EnablementUnknown Enablement = iota
	Enabled
	Disabled
)

func (e Enablement) String() string {
	switch e {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Unit is one row of the service listing.
type Unit struct {
	Name        string
	LoadState   string
	ActiveState string
	SubState    string
	Description string
}

// Manager is the service-manager collaborator. The resolver uses
// IsRegistered/Enablement; the action controller uses the rest.
type Manager interface {
	Available(ctx context.Context) bool
	IsRegistered(ctx context.Context, unit string) (bool, error)
	Enablement(ctx context.Context, unit string) (Enablement, error)
	Enable(ctx context.Context, unit string) error
	Disable(ctx context.Context, unit string) error
	Start(ctx context.Context, unit string) error
	Stop(ctx context.Context, unit string) error
	Restart(ctx context.Context, unit string) error
	Status(ctx context.Context, unit string) (string, error)
	List(ctx context.Context) ([]Unit, error)
}

// UnitName appends the service suffix unless the name already carries one.
func UnitName(name string) string {
	const suffix = ".service"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		return name
	}
	return name + suffix
}
