package services

import (
	"time"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/tracking"
)

// TimelineEntry is one row of the customer-facing tracking timeline.
type TimelineEntry struct {
	Message   string
	Location  string
	Timestamp time.Time
}

// TrackingView is the read model produced by the tracking projector. It
// is derived on every call from the canonical order and tracking record;
// nothing in it is persisted.
type TrackingView struct {
	OrderID           string
	OrderNumber       string
	Status            string
	Progress          int
	CurrentLocation   string
	Coordinates       string
	EstimatedDelivery *time.Time
	TimeRemaining     time.Duration
	Timeline          []TimelineEntry
}

// BuildTrackingView projects an order and its tracking record into a
// progress view. The timeline preserves the append order of the record's
// events; the remaining time clamps to zero in terminal states.
func BuildTrackingView(o *order.Order, tr *tracking.Tracking, now time.Time) TrackingView {
	view := TrackingView{
		OrderID:           o.ID().String(),
		OrderNumber:       o.Number(),
		Status:            o.Status().String(),
		Progress:          Progress(o),
		CurrentLocation:   tr.Location(),
		EstimatedDelivery: tr.EstimatedDelivery(),
		TimeRemaining:     EstimateRemaining(o, tr, now),
	}

	if coords := tr.Coordinates(); coords != nil {
		view.Coordinates = coords.String()
	}

	for _, event := range tr.Events() {
		view.Timeline = append(view.Timeline, TimelineEntry{
			Message:   event.Message(),
			Location:  event.Location(),
			Timestamp: event.Timestamp(),
		})
	}

	return view
}

// EstimateRemaining returns the time until the estimated delivery,
// clamped at zero once the order is terminal.
func EstimateRemaining(o *order.Order, tr *tracking.Tracking, now time.Time) time.Duration {
	if o.Status().IsTerminal() {
		return 0
	}
	return tr.TimeRemaining(now)
}
