package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SCHEME_APPLICATION_SUBMITTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation embedded by concrete events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by this service.
const (
	TypeApplicationSubmitted = "SCHEME_APPLICATION_SUBMITTED"
	TypeSchemeIngested       = "SCHEME_INGESTED"
)

// NewApplicationSubmitted builds the fan-out event for a mock scheme
// application receipt. Consumers live outside this service.
func NewApplicationSubmitted(sessionId, schemeName, applicationId string) Event {
	return BaseEvent{
		Type: TypeApplicationSubmitted,
		Data: map[string]interface{}{
			"session_id":     sessionId,
			"scheme_name":    schemeName,
			"application_id": applicationId,
		},
		OccurredAt: time.Now(),
	}
}
