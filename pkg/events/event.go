package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "cue.emitted").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a generic implementation used when reconstructing events from
// the wire.
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

// CueEmitted is published whenever a coaching cue is accepted and delivered.
type CueEmitted struct {
	CueId      string
	CallId     string
	OwnerId    string
	Text       string
	Source     string
	RagUsed    bool
	OccurredAt time.Time
}

func (e CueEmitted) EventType() string {
	return "cue.emitted"
}

func (e CueEmitted) Payload() map[string]interface{} {
	return map[string]interface{}{
		"cue_id":   e.CueId,
		"call_id":  e.CallId,
		"owner_id": e.OwnerId,
		"text":     e.Text,
		"source":   e.Source,
		"rag_used": e.RagUsed,
	}
}

func (e CueEmitted) Timestamp() time.Time {
	return e.OccurredAt
}
