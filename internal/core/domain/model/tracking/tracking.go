package tracking

import (
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
)

// ErrTrackingIsNotConstructed indicates a Tracking was not created via
// NewTracking or RestoreTracking.
var ErrTrackingIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking must be created via NewTracking or RestoreTracking",
)

// Tracking is the delivery history of a single order. It carries the
// current location, an optional coordinate fix, an optional delivery
// estimate, and an append-only event log. Once the order reaches a
// terminal status the record is frozen and rejects further writes.
type Tracking struct {
	orderID           kernel.UUID
	location          string
	coordinates       *kernel.Location
	estimatedDelivery *time.Time
	events            []Event
	frozen            bool
	updatedAt         time.Time

	isConstructed bool
}

// NewTracking creates an empty tracking record for an order.
func NewTracking(orderID kernel.UUID, now time.Time) (*Tracking, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	return &Tracking{
		orderID:       orderID,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTracking reconstructs a tracking record from persistent storage.
func RestoreTracking(
	orderID kernel.UUID,
	location string,
	coordinates *kernel.Location,
	estimatedDelivery *time.Time,
	events []Event,
	frozen bool,
	updatedAt time.Time,
) (*Tracking, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if coordinates != nil {
		if err := coordinates.Validate(); err != nil {
			return nil, err
		}
	}
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	return &Tracking{
		orderID:           orderID,
		location:          location,
		coordinates:       coordinates,
		estimatedDelivery: estimatedDelivery,
		events:            append([]Event(nil), events...),
		frozen:            frozen,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the tracking record was created via a constructor.
func (t *Tracking) Validate() error {
	if !t.isConstructed {
		return ErrTrackingIsNotConstructed
	}
	return nil
}

// OrderID returns the tracked order's identifier.
func (t *Tracking) OrderID() kernel.UUID {
	return t.orderID
}

// Location returns the most recently reported location text.
func (t *Tracking) Location() string {
	return t.location
}

// Coordinates returns the last coordinate fix, or nil if none was reported.
func (t *Tracking) Coordinates() *kernel.Location {
	return t.coordinates
}

// EstimatedDelivery returns the current delivery estimate, or nil.
func (t *Tracking) EstimatedDelivery() *time.Time {
	return t.estimatedDelivery
}

// Events returns a copy of the event log in append order.
func (t *Tracking) Events() []Event {
	return append([]Event(nil), t.events...)
}

// IsFrozen reports whether the record has stopped accepting writes.
func (t *Tracking) IsFrozen() bool {
	return t.frozen
}

// UpdatedAt returns the time of the last write.
func (t *Tracking) UpdatedAt() time.Time {
	return t.updatedAt
}

// AppendEvent adds an entry to the history and makes its location the
// current one when the event carries a location.
func (t *Tracking) AppendEvent(event Event, now time.Time) error {
	if t.frozen {
		return errs.NewPreconditionFailedError("tracking record is frozen")
	}
	if err := event.Validate(); err != nil {
		return err
	}

	t.events = append(t.events, event)
	if event.Location() != "" {
		t.location = event.Location()
	}
	t.updatedAt = now
	return nil
}

// UpdatePosition records a coordinate fix without adding a history entry.
func (t *Tracking) UpdatePosition(coordinates kernel.Location, now time.Time) error {
	if t.frozen {
		return errs.NewPreconditionFailedError("tracking record is frozen")
	}
	if err := coordinates.Validate(); err != nil {
		return err
	}

	t.coordinates = &coordinates
	t.updatedAt = now
	return nil
}

// SetEstimatedDelivery records or revises the delivery estimate.
func (t *Tracking) SetEstimatedDelivery(estimate time.Time, now time.Time) error {
	if t.frozen {
		return errs.NewPreconditionFailedError("tracking record is frozen")
	}
	if estimate.IsZero() {
		return errs.NewValueIsRequiredError("estimate")
	}

	t.estimatedDelivery = &estimate
	t.updatedAt = now
	return nil
}

// Freeze stops the record from accepting further writes. Called when the
// order reaches a terminal status. Freezing twice is a no-op.
func (t *Tracking) Freeze(now time.Time) {
	if t.frozen {
		return
	}
	t.frozen = true
	t.updatedAt = now
}

// TimeRemaining returns the time until the delivery estimate, clamped at
// zero. It returns zero when no estimate is set or the record is frozen.
func (t *Tracking) TimeRemaining(now time.Time) time.Duration {
	if t.frozen || t.estimatedDelivery == nil {
		return 0
	}
	remaining := t.estimatedDelivery.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
