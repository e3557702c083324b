package domain

type State string

const (
	StateIdle              State = "idle"
	StatePackSelected      State = "pack_selected"
	StatePickingIndividual State = "picking_individual"
	StateApplied           State = "applied"
	StateRoleAdded         State = "role_added"
	StateRemovedAll        State = "removed_all"
	StateCancelled         State = "cancelled"
	StateFailed            State = "failed"

	// StateDropped marks an action that was ignored because it referenced
	// something the catalog does not contain.
	StateDropped State = "dropped"
)

// Terminal reports whether no further transition follows without a fresh
// top-level invocation.
func (s State) Terminal() bool {
	switch s {
	case StateApplied, StateRoleAdded, StateRemovedAll, StateCancelled, StateFailed:
		return true
	default:
		return false
	}
}
