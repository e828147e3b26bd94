package v1

import "time"

// EventType classifies coordinator events.
type EventType string

const (
	EventTransition     EventType = "transition"
	EventStep           EventType = "step"
	EventSequenceFailed EventType = "sequence_failed"
	EventEmergencyStop  EventType = "emergency_stop"
	EventReset          EventType = "reset"
)

// Event is published on every coordinator state change and sequence step.
type Event struct {
	Time     time.Time `json:"time"`
	Type     EventType `json:"type"`
	Sequence string    `json:"sequence,omitempty"`
	Step     string    `json:"step,omitempty"`
	From     string    `json:"from,omitempty"`
	To       string    `json:"to,omitempty"`
	Message  string    `json:"message,omitempty"`
}
