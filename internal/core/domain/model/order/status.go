package order

import (
	"fmt"

	"agrimarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed allowed-edge table:
//
//	Pending ──> Confirmed ──> Processing ──> ReadyForPickup ──> InTransit ──> Delivered
//	   │            │             │                │                │
//	   └────────────┴─────────────┴────────────────┴────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. The ReadyForPickup -> InTransit
// edge is never taken directly; it is reserved for pickup confirmation
// (see Order.ConfirmPickup).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at checkout.
	StatusPending

	// StatusConfirmed indicates the farmer or warehouse accepted the order.
	StatusConfirmed

	// StatusProcessing indicates the warehouse is preparing the order.
	StatusProcessing

	// StatusReadyForPickup indicates the order awaits the delivery partner.
	StatusReadyForPickup

	// StatusInTransit indicates the delivery partner confirmed pickup and
	// is carrying the order.
	StatusInTransit

	// StatusDelivered is the terminal success state.
	StatusDelivered

	// StatusCancelled is the terminal cancellation state. Orders are never
	// deleted; cancellation is a status, not a row removal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusProcessing:     "processing",
		StatusReadyForPickup: "ready_for_pickup",
		StatusInTransit:      "in_transit",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusProcessing:     "processing",
		StatusReadyForPickup: "ready_for_pickup",
		StatusInTransit:      "in_transit",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// allowedEdges is the canonical transition table. Cancellation edges are
// present for every non-terminal state; role gating on top of this table
// lives in the Order aggregate.
func allowedEdges() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusProcessing, StatusCancelled},
		StatusProcessing:     {StatusReadyForPickup, StatusCancelled},
		StatusReadyForPickup: {StatusInTransit, StatusCancelled},
		StatusInTransit:      {StatusDelivered, StatusCancelled},
	}
}

// StatusFromString parses the wire form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks the Status is one of the seven defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire form of the status ("ready_for_pickup", ...).
// Safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the edge s -> target exists in the
// allowed-edge table. It says nothing about which roles may take the edge.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedEdges()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition returns the target status if the edge exists, or an
// InvalidTransitionError naming both endpoints.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
