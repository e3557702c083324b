package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, individuals int) *domain.Catalog {
	t.Helper()

	options := make([]domain.IndividualOption, 0, individuals)
	for i := 0; i < individuals; i++ {
		options = append(options, domain.IndividualOption{
			Label: fmt.Sprintf("Option %d", i),
			Role:  domain.RoleID(fmt.Sprintf("9%02d", i)),
		})
	}

	catalog, err := domain.NewCatalog([]domain.Pack{
		{Key: "autism", Name: "Autism Pack", Roles: []domain.RoleID{"101", "102", "103"}},
		{Key: "adhd", Name: "ADHD Pack", Roles: []domain.RoleID{"103", "201"}},
	}, options, domain.Presentation{})
	require.NoError(t, err)

	return catalog
}

func TestMachineSelectPackThenConfirmAddsExactlyPackRoles(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 3)
	for _, pack := range catalog.Packs() {
		pack := pack
		t.Run(string(pack.Key), func(t *testing.T) {
			t.Parallel()

			gateway := mocks.NewMockRoleGateway(t)
			machine := NewMachine(catalog, gateway)

			selected := machine.Apply(context.Background(), "u1", domain.ParseAction("pack_"+string(pack.Key)))
			require.Equal(t, domain.StatePackSelected, selected.State)
			require.Len(t, selected.Payload.Rows, 1)

			confirmID := selected.Payload.Rows[0][0].ID
			assert.Equal(t, "confirm_"+string(pack.Key), confirmID)

			gateway.EXPECT().AddRoles(mock.Anything, domain.UserID("u1"), pack.Roles).Return(nil).Once()

			applied := machine.Apply(context.Background(), "u1", domain.ParseAction(confirmID))
			assert.Equal(t, domain.StateApplied, applied.State)
			assert.Contains(t, applied.Payload.Text, pack.Name+" applied.")
			assert.NoError(t, applied.Err)
		})
	}
}

func TestMachineCancelNeverCallsGateway(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 3)
	gateway := mocks.NewMockRoleGateway(t)
	machine := NewMachine(catalog, gateway)

	for _, id := range []string{"pack_autism", "pick_individual", "cancel", "done"} {
		transition := machine.Apply(context.Background(), "u1", domain.ParseAction(id))
		assert.NotEqual(t, domain.StateFailed, transition.State, id)
	}

	cancelled := machine.Apply(context.Background(), "u1", domain.Cancel())
	assert.Equal(t, domain.StateCancelled, cancelled.State)
	assert.False(t, cancelled.Payload.HasButtons())
	assert.Nil(t, cancelled.Payload.Embed)

	done := machine.Apply(context.Background(), "u1", domain.Done())
	assert.Equal(t, domain.StateCancelled, done.State)
	assert.False(t, done.Payload.HasButtons())

	gateway.AssertNotCalled(t, "AddRoles", mock.Anything, mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "RemoveRoles", mock.Anything, mock.Anything, mock.Anything)
}

func TestMachineRemoveAllTargetsManagedUnion(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 2)
	want := []domain.RoleID{"101", "102", "103", "201", "900", "901"}
	require.Equal(t, want, catalog.ManagedRoleIDs())

	gateway := mocks.NewMockRoleGateway(t)
	machine := NewMachine(catalog, gateway)
	gateway.EXPECT().RemoveRoles(mock.Anything, domain.UserID("u1"), want).Return(nil).Twice()

	fromButton := machine.Apply(context.Background(), "u1", domain.ParseAction("remove_all"))
	fromCommand := machine.RemoveAll(context.Background(), "u1")

	assert.Equal(t, domain.StateRemovedAll, fromButton.State)
	assert.Equal(t, fromButton.Payload, fromCommand.Payload)
	assert.False(t, fromButton.Payload.HasButtons())
}

func TestMachineLegacyRemoveButtonsRemoveWholeUnion(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 2)
	gateway := mocks.NewMockRoleGateway(t)
	machine := NewMachine(catalog, gateway)
	gateway.EXPECT().RemoveRoles(mock.Anything, domain.UserID("u1"), catalog.ManagedRoleIDs()).Return(nil).Twice()

	assert.Equal(t, domain.StateRemovedAll, machine.Apply(context.Background(), "u1", domain.ParseAction("remove_pack_autism")).State)
	assert.Equal(t, domain.StateRemovedAll, machine.Apply(context.Background(), "u1", domain.ParseAction("remove_role_1")).State)
}

func TestMachineSelectRoleAddsExactlyThatRole(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 4)
	gateway := mocks.NewMockRoleGateway(t)
	machine := NewMachine(catalog, gateway)

	gateway.EXPECT().AddRoles(mock.Anything, domain.UserID("u1"), []domain.RoleID{"902"}).Return(nil).Once()

	transition := machine.Apply(context.Background(), "u1", domain.ParseAction("role_2"))
	assert.Equal(t, domain.StateRoleAdded, transition.State)
	assert.Equal(t, "✅ Role Option 2 added.", transition.Payload.Text)
	require.Len(t, transition.Payload.Rows, 1)
	assert.Equal(t, "remove_all", transition.Payload.Rows[0][0].ID)
}

func TestMachineDropsUnresolvedActions(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 2)
	gateway := mocks.NewMockRoleGateway(t)
	machine := NewMachine(catalog, gateway)

	tests := []struct {
		id      string
		wantErr error
	}{
		{id: "pack_nonexistent", wantErr: domain.ErrPackNotFound},
		{id: "confirm_nonexistent", wantErr: domain.ErrPackNotFound},
		{id: "role_7", wantErr: domain.ErrIndividualNotFound},
		{id: "role_abc"},
		{id: "something_else"},
		{id: ""},
	}

	for _, tc := range tests {
		transition := machine.Apply(context.Background(), "u1", domain.ParseAction(tc.id))
		assert.Equal(t, domain.StateDropped, transition.State, tc.id)
		assert.Empty(t, transition.Payload.Rows, tc.id)
		if tc.wantErr != nil {
			assert.ErrorIs(t, transition.Err, tc.wantErr, tc.id)
		}
	}
}

func TestMachineRepeatedConfirmIsIdempotent(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 0)
	gateway := mocks.NewMockRoleGateway(t)
	machine := NewMachine(catalog, gateway)

	gateway.EXPECT().AddRoles(mock.Anything, domain.UserID("u1"), []domain.RoleID{"103", "201"}).Return(nil).Twice()

	first := machine.Apply(context.Background(), "u1", domain.ConfirmPack("adhd"))
	second := machine.Apply(context.Background(), "u1", domain.ConfirmPack("adhd"))

	assert.Equal(t, domain.StateApplied, first.State)
	assert.Equal(t, domain.StateApplied, second.State)
	assert.Equal(t, first.Payload, second.Payload)
}

func TestMachineGatewayErrorsReachFailed(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, 1)
	gatewayErr := errors.New("missing permissions")

	tests := []struct {
		name    string
		action  domain.Action
		setup   func(g *mocks.MockRoleGateway)
		message string
	}{
		{
			name:   "confirm",
			action: domain.ConfirmPack("autism"),
			setup: func(g *mocks.MockRoleGateway) {
				g.EXPECT().AddRoles(mock.Anything, domain.UserID("u1"), mock.Anything).Return(gatewayErr).Once()
			},
			message: "❗ Failed to assign roles.",
		},
		{
			name:   "individual",
			action: domain.SelectRole(0),
			setup: func(g *mocks.MockRoleGateway) {
				g.EXPECT().AddRoles(mock.Anything, domain.UserID("u1"), mock.Anything).Return(gatewayErr).Once()
			},
			message: "❗ Failed to add role.",
		},
		{
			name:   "remove all",
			action: domain.RemoveAll(),
			setup: func(g *mocks.MockRoleGateway) {
				g.EXPECT().RemoveRoles(mock.Anything, domain.UserID("u1"), mock.Anything).Return(gatewayErr).Once()
			},
			message: "❗ Failed to remove roles.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gateway := mocks.NewMockRoleGateway(t)
			tc.setup(gateway)
			machine := NewMachine(catalog, gateway)

			transition := machine.Apply(context.Background(), "u1", tc.action)
			assert.Equal(t, domain.StateFailed, transition.State)
			assert.Equal(t, tc.message, transition.Payload.Text)
			assert.False(t, transition.Payload.HasButtons())
			assert.ErrorIs(t, transition.Err, gatewayErr)
		})
	}
}

func TestMachineRemoveAllWithEmptyCatalogSkipsGateway(t *testing.T) {
	t.Parallel()

	catalog, err := domain.NewCatalog(nil, nil, domain.Presentation{})
	require.NoError(t, err)

	machine := NewMachine(catalog, mocks.NewMockRoleGateway(t))
	transition := machine.RemoveAll(context.Background(), "u1")
	assert.Equal(t, domain.StateRemovedAll, transition.State)
}

func TestMachineOpenPreferencesStartsAtMainMenu(t *testing.T) {
	t.Parallel()

	machine := NewMachine(newTestCatalog(t, 1), mocks.NewMockRoleGateway(t))

	transition := machine.Apply(context.Background(), "u1", domain.ParseAction("open_preferences"))
	assert.Equal(t, domain.StateIdle, transition.State)
	assert.Equal(t, machine.Start().Payload, transition.Payload)
}
