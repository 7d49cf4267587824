package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

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

func NewUserRegistered(userId, email string) Event {
	return BaseEvent{
		Type: "USER_REGISTERED",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewUserLogin(userId, email string) Event {
	return BaseEvent{
		Type: "USER_LOGIN",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

func NewSessionsClaimed(userId string, claimed int) Event {
	return BaseEvent{
		Type: "SESSIONS_CLAIMED",
		Data: map[string]interface{}{
			"user_id": userId,
			"claimed": claimed,
		},
		OccurredAt: time.Now(),
	}
}

func NewFaqIngested(entries int) Event {
	return BaseEvent{
		Type: "FAQ_INGESTED",
		Data: map[string]interface{}{
			"entries": entries,
		},
		OccurredAt: time.Now(),
	}
}
