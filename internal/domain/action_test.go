package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want Action
	}{
		{id: "open_preferences", want: OpenPreferences()},
		{id: "pick_individual", want: PickIndividual()},
		{id: "cancel", want: Cancel()},
		{id: "done", want: Done()},
		{id: "remove_all", want: RemoveAll()},
		{id: "pack_autism", want: SelectPack("autism")},
		{id: "pack_night_owls", want: SelectPack("night_owls")},
		{id: "confirm_adhd", want: ConfirmPack("adhd")},
		{id: "role_0", want: SelectRole(0)},
		{id: "role_11", want: SelectRole(11)},
		{id: "remove_pack_autism", want: RemoveAll()},
		{id: "remove_role_3", want: RemoveAll()},
		{id: "pack_", want: Action{Kind: ActionUnknown}},
		{id: "confirm_", want: Action{Kind: ActionUnknown}},
		{id: "role_", want: Action{Kind: ActionUnknown}},
		{id: "role_-1", want: Action{Kind: ActionUnknown}},
		{id: "role_two", want: Action{Kind: ActionUnknown}},
		{id: "role_+3", want: Action{Kind: ActionUnknown}},
		{id: "role_007", want: Action{Kind: ActionUnknown}},
		{id: "role_-0", want: Action{Kind: ActionUnknown}},
		{id: "runtimecfg:nav:main", want: Action{Kind: ActionUnknown}},
		{id: "", want: Action{Kind: ActionUnknown}},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseAction(tc.id))
		})
	}
}

func TestActionIDRoundTrip(t *testing.T) {
	t.Parallel()

	actions := []Action{
		OpenPreferences(),
		SelectPack("autism"),
		PickIndividual(),
		ConfirmPack("night_owls"),
		SelectRole(7),
		Cancel(),
		Done(),
		RemoveAll(),
	}

	for _, action := range actions {
		assert.Equal(t, action, ParseAction(action.ID()), action.ID())
	}

	assert.Empty(t, Action{Kind: ActionUnknown}.ID())
}

func TestStateTerminal(t *testing.T) {
	t.Parallel()

	for _, state := range []State{StateApplied, StateRoleAdded, StateRemovedAll, StateCancelled, StateFailed} {
		assert.True(t, state.Terminal(), state)
	}
	for _, state := range []State{StateIdle, StatePackSelected, StatePickingIndividual, StateDropped} {
		assert.False(t, state.Terminal(), state)
	}
}
