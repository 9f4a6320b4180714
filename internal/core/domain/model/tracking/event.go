package tracking

import (
	"time"

	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"
)

// ErrEventIsNotConstructed indicates an Event was not created via NewEvent.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking event must be created via NewEvent",
)

// Event is one immutable entry in an order's delivery history: a message,
// a free-text location, and the moment it was recorded. Events are only
// ever appended, never edited or reordered.
type Event struct {
	message   string
	location  string
	timestamp time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a tracking event. The message is required; location may
// be empty when the reporter has no position to share.
func NewEvent(message, location string, timestamp time.Time) (Event, error) {
	if message == "" {
		return Event{}, errs.NewValueIsRequiredError("event message")
	}
	if timestamp.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("event timestamp")
	}

	return Event{
		message:   message,
		location:  location,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the event was created via NewEvent.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Message returns the event description.
func (e Event) Message() string {
	return e.message
}

// Location returns the free-text location, possibly empty.
func (e Event) Location() string {
	return e.location
}

// Timestamp returns when the event was recorded.
func (e Event) Timestamp() time.Time {
	return e.timestamp
}
