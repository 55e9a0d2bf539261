package events

import "time"

// Event is the contract every bus message satisfies. The type code
// becomes the NATS subject suffix ("SUBMISSION_APPROVED" publishes on
// events.SUBMISSION_APPROVED).
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used by the domain event
// publisher and reconstructed on the subscriber side.
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
