package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_ToCloudEvent(t *testing.T) {
	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	event := Event{
		ID:         "5d8e9c1a-0f7b-4c39-9a63-1b2f3c4d5e6f",
		CreatedAt:  created,
		Type:       EventScriptTemplateSelected,
		Subject:    "app-1",
		InstanceID: "2a7c1e4b-3d5f-4a6b-8c9d-0e1f2a3b4c5d",
		Payload:    map[string]any{"template": "role-based"},
	}

	ce, err := event.ToCloudEvent()
	require.NoError(t, err)

	assert.Equal(t, event.ID, ce.ID())
	assert.Equal(t, CloudEventSource, ce.Source())
	assert.Equal(t, "io.thand.console.script.template_selected", ce.Type())
	assert.Equal(t, "app-1", ce.Subject())
	assert.True(t, created.Equal(ce.Time()))
	assert.Equal(t, event.InstanceID, ce.Extensions()[instanceExtension])

	var data map[string]any
	require.NoError(t, ce.DataAs(&data))
	assert.Equal(t, "role-based", data["template"])

	encoded, err := json.Marshal(ce)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"specversion":"1.0"`)
}

func TestEvent_ToCloudEventWithoutDetails(t *testing.T) {
	ce, err := Event{ID: "e1", Type: EventRolesSubmitted, CreatedAt: time.Now()}.ToCloudEvent()
	require.NoError(t, err)
	assert.Empty(t, ce.Subject())
	assert.Nil(t, ce.Data())
}

func TestEvent_ToCloudEventRequiresID(t *testing.T) {
	_, err := Event{Type: EventRolesSubmitted}.ToCloudEvent()
	assert.Error(t, err)
}

func TestToCloudEvents(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, Event{Type: EventScriptReset, Subject: "app-1", Payload: map[string]any{"step_count": 2}}))
	require.NoError(t, store.Record(ctx, Event{Type: EventRolesSubmitted, Subject: "alice"}))

	events, err := store.List(ctx, ListOptions{})
	require.NoError(t, err)

	converted, err := ToCloudEvents(events)
	require.NoError(t, err)
	require.Len(t, converted, 2)

	for i, ce := range converted {
		assert.Equal(t, events[i].ID, ce.ID())
		assert.NotEmpty(t, ce.Extensions()[instanceExtension])
	}
}
