package application

import (
	"context"
	"fmt"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
)

const (
	msgCancelled      = "❌ Cancelled."
	msgDone           = "👍 All set."
	msgRemovedAll     = "🗑️ Removed all preference roles."
	msgAssignFailed   = "Failed to assign roles."
	msgAddRoleFailed  = "Failed to add role."
	msgRemoveFailed   = "Failed to remove roles."
	msgPackApplied    = "✅ %s applied."
	msgIndividualRole = "✅ Role %s added."
)

// Transition is the result of feeding one action to the Machine.
type Transition struct {
	Action  domain.Action
	State   domain.State
	Payload domain.Payload
	// Err carries the lookup miss for dropped actions and the gateway error
	// for failed ones.
	Err error
}

// Machine is the preference-selection state machine. It keeps no per-user
// state: the current step is encoded in the button a user presses, and each
// action is resolved against the read-only catalog.
type Machine struct {
	catalog  *domain.Catalog
	renderer *Renderer
	gateway  ports.RoleGateway
}

func NewMachine(catalog *domain.Catalog, gateway ports.RoleGateway) *Machine {
	return &Machine{
		catalog:  catalog,
		renderer: NewRenderer(catalog),
		gateway:  gateway,
	}
}

func (m *Machine) Renderer() *Renderer {
	return m.renderer
}

// Start renders the Idle state.
func (m *Machine) Start() Transition {
	return Transition{
		Action:  domain.OpenPreferences(),
		State:   domain.StateIdle,
		Payload: m.renderer.MainMenu(),
	}
}

func (m *Machine) Apply(ctx context.Context, userID domain.UserID, action domain.Action) Transition {
	switch action.Kind {
	case domain.ActionOpenPreferences:
		return m.Start()
	case domain.ActionSelectPack:
		pack, err := m.catalog.Pack(action.Pack)
		if err != nil {
			return dropped(action, err)
		}
		return Transition{Action: action, State: domain.StatePackSelected, Payload: m.renderer.PackDetail(pack)}
	case domain.ActionPickIndividual:
		return Transition{Action: action, State: domain.StatePickingIndividual, Payload: m.renderer.IndividualPicker()}
	case domain.ActionConfirmPack:
		return m.confirmPack(ctx, userID, action)
	case domain.ActionSelectRole:
		return m.selectRole(ctx, userID, action)
	case domain.ActionRemoveAll:
		return m.removeAll(ctx, userID, action)
	case domain.ActionCancel:
		return Transition{Action: action, State: domain.StateCancelled, Payload: m.renderer.Outcome(msgCancelled, true)}
	case domain.ActionDone:
		return Transition{Action: action, State: domain.StateCancelled, Payload: m.renderer.Outcome(msgDone, true)}
	case domain.ActionUnknown:
		return dropped(action, nil)
	default:
		return dropped(action, fmt.Errorf("unhandled action kind %d", action.Kind))
	}
}

// RemoveAll is the command entry point for clearing roles; it shares the
// remove-all transition with the button.
func (m *Machine) RemoveAll(ctx context.Context, userID domain.UserID) Transition {
	return m.removeAll(ctx, userID, domain.RemoveAll())
}

func (m *Machine) confirmPack(ctx context.Context, userID domain.UserID, action domain.Action) Transition {
	pack, err := m.catalog.Pack(action.Pack)
	if err != nil {
		return dropped(action, err)
	}

	if err := m.gateway.AddRoles(ctx, userID, pack.Roles); err != nil {
		return m.failed(action, msgAssignFailed, fmt.Errorf("add pack %q roles: %w", pack.Key, err))
	}

	return Transition{
		Action:  action,
		State:   domain.StateApplied,
		Payload: m.renderer.Granted(fmt.Sprintf(msgPackApplied, pack.Name)),
	}
}

func (m *Machine) selectRole(ctx context.Context, userID domain.UserID, action domain.Action) Transition {
	option, err := m.catalog.Individual(action.Index)
	if err != nil {
		return dropped(action, err)
	}

	if err := m.gateway.AddRoles(ctx, userID, []domain.RoleID{option.Role}); err != nil {
		return m.failed(action, msgAddRoleFailed, fmt.Errorf("add individual %d role: %w", option.Index, err))
	}

	return Transition{
		Action:  action,
		State:   domain.StateRoleAdded,
		Payload: m.renderer.Granted(fmt.Sprintf(msgIndividualRole, option.Label)),
	}
}

func (m *Machine) removeAll(ctx context.Context, userID domain.UserID, action domain.Action) Transition {
	roles := m.catalog.ManagedRoleIDs()
	if len(roles) > 0 {
		if err := m.gateway.RemoveRoles(ctx, userID, roles); err != nil {
			return m.failed(action, msgRemoveFailed, fmt.Errorf("remove managed roles: %w", err))
		}
	}

	return Transition{Action: action, State: domain.StateRemovedAll, Payload: m.renderer.Outcome(msgRemovedAll, true)}
}

func (m *Machine) failed(action domain.Action, message string, err error) Transition {
	return Transition{
		Action:  action,
		State:   domain.StateFailed,
		Payload: m.renderer.Outcome(message, false),
		Err:     err,
	}
}

func dropped(action domain.Action, err error) Transition {
	return Transition{Action: action, State: domain.StateDropped, Err: err}
}
