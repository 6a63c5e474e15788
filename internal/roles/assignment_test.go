package roles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thand-io/console/internal/alerts"
	"github.com/thand-io/console/internal/audit"
	"github.com/thand-io/console/internal/models"
	"github.com/thand-io/console/internal/transfer"
)

func itemIDs(pane AssignmentPane) []string {
	ids := make([]string, 0, len(pane.Items))
	for _, item := range pane.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func openStore(t *testing.T) *audit.Store {
	t.Helper()
	store, err := audit.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAssignment_Load(t *testing.T) {
	fake := &fakeRoleClient{roles: testRoles()}
	assignment := NewAssignment(fake, nil, alerts.NewBuffer(5), AssignmentOptions{
		Subject:     "user-1",
		AssignedIDs: []string{"r2"},
		Filter:      "audience.type eq organization",
	})

	require.NoError(t, assignment.Load(context.Background()))
	assert.Equal(t, "audience.type eq organization", fake.lastFilter)

	view := assignment.Snapshot()
	assert.Equal(t, []string{"r1", "r3", "r4"}, itemIDs(view.Available))
	assert.Equal(t, []string{"r2"}, itemIDs(view.Assigned))
	assert.Equal(t, "Application", view.Assigned.Items[0].Type.Text)
	assert.Equal(t, "editor", view.Available.Items[1].Label)
	assert.False(t, view.LoadedAt.IsZero())
}

func TestAssignment_LoadSkipsReservedRoles(t *testing.T) {
	catalog := append(testRoles(),
		models.Role{ID: "r5", DisplayName: "everyone"},
		models.Role{ID: "r6", DisplayName: "system"},
	)
	fake := &fakeRoleClient{roles: catalog}
	assignment := NewAssignment(fake, nil, nil, AssignmentOptions{
		Subject:     "user-1",
		AssignedIDs: []string{"r6"},
	})

	require.NoError(t, assignment.Load(context.Background()))

	view := assignment.Snapshot()
	assert.NotContains(t, itemIDs(view.Available), "r5")
	// Already assigned reserved roles stay visible
	assert.Equal(t, []string{"r6"}, itemIDs(view.Assigned))
}

func TestAssignment_LoadFailure(t *testing.T) {
	buffer := alerts.NewBuffer(5)
	fake := &fakeRoleClient{err: errUnavailable}
	assignment := NewAssignment(fake, nil, buffer, AssignmentOptions{Subject: "user-1"})

	assert.Error(t, assignment.Load(context.Background()))

	raised := buffer.All()
	require.Len(t, raised, 1)
	assert.Equal(t, models.AlertLevelError, raised[0].Level)
	assert.Equal(t, "Role store unavailable", raised[0].Description)
	assert.Empty(t, assignment.Snapshot().Available.Items)
}

func TestAssignment_StaleLoadIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	fake := &fakeRoleClient{roles: testRoles(), release: release}
	assignment := NewAssignment(fake, nil, nil, AssignmentOptions{Subject: "user-1"})

	done := make(chan error, 1)
	go func() {
		done <- assignment.Load(context.Background())
	}()

	assert.Eventually(t, func() bool {
		return assignment.fence.IsCurrent(1)
	}, time.Second, time.Millisecond)

	assignment.Close()
	release <- struct{}{}

	assert.ErrorIs(t, <-done, ErrStaleResponse)
	assert.Empty(t, assignment.Snapshot().Available.Items)
}

func TestAssignment_MoveAndSubmit(t *testing.T) {
	store := openStore(t)
	fake := &fakeRoleClient{roles: testRoles()}
	assignment := NewAssignment(fake, store, nil, AssignmentOptions{
		Subject:     "user-1",
		AssignedIDs: []string{"r2"},
	})
	require.NoError(t, assignment.Load(context.Background()))

	require.NoError(t, assignment.Toggle(transfer.Available, "r1"))
	require.NoError(t, assignment.Toggle(transfer.Available, "r3"))
	assert.ErrorIs(t, assignment.Toggle(transfer.Available, "r2"), transfer.ErrUnknownItem, "r2 is on the assigned side")
	assert.ErrorIs(t, assignment.Toggle(transfer.Side("left"), "r1"), transfer.ErrUnknownSide)

	assignment.Assign()

	require.NoError(t, assignment.Toggle(transfer.Assigned, "r2"))
	assignment.Unassign()

	view := assignment.Snapshot()
	assert.Equal(t, []string{"r4", "r2"}, itemIDs(view.Available))
	assert.Equal(t, []string{"r1", "r3"}, itemIDs(view.Assigned))

	result, err := assignment.Submit(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Roles, 2)
	assert.Equal(t, []string{"r1", "r3"}, result.Added)
	assert.Equal(t, []string{"r2"}, result.Removed)

	events, err := store.List(context.Background(), audit.ListOptions{Type: audit.EventRolesSubmitted})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "user-1", events[0].Subject)
}

func TestAssignment_SearchKeepsHiddenItems(t *testing.T) {
	fake := &fakeRoleClient{roles: testRoles()}
	assignment := NewAssignment(fake, nil, nil, AssignmentOptions{Subject: "user-1"})
	require.NoError(t, assignment.Load(context.Background()))

	require.NoError(t, assignment.Search(transfer.Available, "adm"))
	view := assignment.Snapshot()
	assert.Equal(t, []string{"r1", "r4"}, itemIDs(view.Available))
	assert.Equal(t, 4, view.Available.Total)
	assert.Equal(t, "adm", view.Available.Query)

	require.NoError(t, assignment.ToggleSelectAll(transfer.Available))
	assignment.Assign()

	view = assignment.Snapshot()
	assert.Empty(t, view.Available.Items)
	assert.Equal(t, 2, view.Available.Total)
	assert.Equal(t, []string{"r1", "r4"}, itemIDs(view.Assigned))

	require.NoError(t, assignment.Search(transfer.Available, ""))
	assert.Equal(t, []string{"r2", "r3"}, itemIDs(assignment.Snapshot().Available))
}

func TestAssignment_SubmitEmpty(t *testing.T) {
	assignment := NewAssignment(&fakeRoleClient{}, nil, nil, AssignmentOptions{Subject: "user-1"})
	result, err := assignment.Submit(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Roles)
	assert.Empty(t, result.Roles)
}
