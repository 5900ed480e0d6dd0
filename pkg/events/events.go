package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PAGE_PUBLISHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published on the bus.
const (
	TypePagePublished      = "PAGE_PUBLISHED"
	TypePageDeleted        = "PAGE_DELETED"
	TypeMemberInvited      = "MEMBER_INVITED"
	TypeInviteAccepted     = "INVITE_ACCEPTED"
	TypeOnboardingComplete = "ONBOARDING_COMPLETE"
	TypeUserLogin          = "USER_LOGIN"
)

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
