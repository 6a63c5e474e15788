package audit

import (
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

const (
	CloudEventSource     = "/console"
	cloudEventTypePrefix = "io.thand.console."
	instanceExtension    = "instanceid"
)

// CloudEventType returns the CloudEvents type of an event type.
func CloudEventType(eventType EventType) string {
	return cloudEventTypePrefix + string(eventType)
}

// ToCloudEvent converts a recorded event to a CloudEvent carrying the
// details as JSON data.
func (e Event) ToCloudEvent() (cloudevents.Event, error) {
	event := cloudevents.NewEvent()

	event.SetID(e.ID)
	event.SetSource(CloudEventSource)
	event.SetType(CloudEventType(e.Type))
	event.SetTime(e.CreatedAt)

	if len(e.Subject) > 0 {
		event.SetSubject(e.Subject)
	}

	if len(e.InstanceID) > 0 {
		event.SetExtension(instanceExtension, e.InstanceID)
	}

	if len(e.Payload) > 0 {
		if err := event.SetData(cloudevents.ApplicationJSON, e.Payload); err != nil {
			return event, fmt.Errorf("failed to set event data: %w", err)
		}
	}

	if err := event.Validate(); err != nil {
		return event, fmt.Errorf("invalid cloud event %s: %w", e.ID, err)
	}

	return event, nil
}

// ToCloudEvents converts events in order.
func ToCloudEvents(events []Event) ([]cloudevents.Event, error) {
	converted := make([]cloudevents.Event, 0, len(events))
	for _, event := range events {
		ce, err := event.ToCloudEvent()
		if err != nil {
			return nil, err
		}
		converted = append(converted, ce)
	}
	return converted, nil
}
