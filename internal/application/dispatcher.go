package application

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("unknown command")

const (
	CommandPreferences = "preferences"
	CommandPostPanel   = "postpanel"
	CommandClearRoles  = "clearroles"
)

type CommandSpec struct {
	Name        string
	Description string
}

var commandSpecs = []CommandSpec{
	{Name: CommandPreferences, Description: "Select communication preference roles"},
	{Name: CommandPostPanel, Description: "Post the preferences panel (owner only)"},
	{Name: CommandClearRoles, Description: "Remove all communication preference roles"},
}

type commandHandler func(ctx context.Context, inv Invocation) Reply

// Dispatcher maps inbound command names and button identifiers to Service
// entry points.
type Dispatcher struct {
	service  *Service
	commands map[string]commandHandler
}

func NewDispatcher(service *Service) *Dispatcher {
	return &Dispatcher{
		service: service,
		commands: map[string]commandHandler{
			CommandPreferences: service.Preferences,
			CommandPostPanel:   service.PostPanel,
			CommandClearRoles:  service.ClearRoles,
		},
	}
}

func (d *Dispatcher) Commands() []CommandSpec {
	return append([]CommandSpec(nil), commandSpecs...)
}

func (d *Dispatcher) HasCommand(name string) bool {
	_, ok := d.commands[name]
	return ok
}

func (d *Dispatcher) Command(ctx context.Context, inv Invocation, name string) (Reply, error) {
	handler, ok := d.commands[name]
	if !ok {
		return Reply{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	return handler(ctx, inv), nil
}

func (d *Dispatcher) Press(ctx context.Context, inv Invocation, customID string) Reply {
	return d.service.Press(ctx, inv, customID)
}
