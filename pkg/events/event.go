package events

import "time"

// Event is the contract every funnel event satisfies: a stable type code
// (e.g. "LEAD_QUALIFIED"), a payload map, and when it happened.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the plain-struct implementation the constructors in this
// package return; consumers reconstruct one from the wire as well.
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
