package order

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for the fulfillment pipeline. It owns the
// lifecycle state machine and is the only writer of order state; every
// transition is validated against the allowed-edge table and the acting
// role before anything mutates.
//
// Invariants:
//   - at least one line item, each with positive quantity and unit price
//   - total = subtotal + tax + delivery fee, recomputed server-side
//   - status transitions follow the allowed-edge table in status.go
//   - ReadyForPickup -> InTransit only via ConfirmPickup
//   - version increases by one on every persisted mutation (optimistic
//     concurrency; see the order repository)
type Order struct {
	id           kernel.UUID
	number       string
	customerID   kernel.UUID
	lineItems    []LineItem
	address      Address
	instructions string

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	status        Status
	partnerID     *kernel.UUID
	cancelReason  string
	cancelledFrom Status

	quote Quote

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// transitionRoles maps a lifecycle edge to the roles allowed to take it.
// The ReadyForPickup -> InTransit edge has no entry: it is reserved for
// ConfirmPickup and rejected for every role in TransitionTo.
func transitionRoles(from, to Status) []actor.Role {
	type edge struct{ from, to Status }
	table := map[edge][]actor.Role{
		{StatusPending, StatusConfirmed}:          {actor.RoleFarmer, actor.RoleWarehouse, actor.RoleAdmin},
		{StatusConfirmed, StatusProcessing}:       {actor.RoleWarehouse, actor.RoleAdmin},
		{StatusProcessing, StatusReadyForPickup}:  {actor.RoleWarehouse, actor.RoleAdmin},
		{StatusInTransit, StatusDelivered}:        {actor.RoleDeliveryPartner, actor.RoleAdmin},
		{StatusPending, StatusCancelled}:          {actor.RoleCustomer, actor.RoleFarmer, actor.RoleWarehouse, actor.RoleAdmin},
		{StatusConfirmed, StatusCancelled}:        {actor.RoleCustomer, actor.RoleFarmer, actor.RoleWarehouse, actor.RoleAdmin},
		{StatusProcessing, StatusCancelled}:       {actor.RoleCustomer, actor.RoleFarmer, actor.RoleWarehouse, actor.RoleAdmin},
		{StatusReadyForPickup, StatusCancelled}:   {actor.RoleCustomer, actor.RoleFarmer, actor.RoleWarehouse, actor.RoleAdmin},
		{StatusInTransit, StatusCancelled}:        {actor.RoleAdmin},
	}
	return table[edge{from, to}]
}

// NewOrderNumber mints a human-readable order number ("AM-3F9C21D4").
func NewOrderNumber() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "AM-" + strings.ToUpper(hex.EncodeToString(buf))
}

// NewOrder creates an order at checkout. Line items must be non-empty and
// individually constructed; the monetary breakdown is computed from the
// pricing policy, never taken from the caller. The order starts Pending
// with payment Pending and no partner assigned.
func NewOrder(
	id, customerID kernel.UUID,
	lineItems []LineItem,
	address Address,
	instructions string,
	paymentMethod PaymentMethod,
	policy PricingPolicy,
	now time.Time,
) (*Order, error) {
	o := &Order{
		number:        NewOrderNumber(),
		instructions:  instructions,
		paymentStatus: PaymentPending,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLineItems(lineItems),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	o.quote = policy.Price(o.lineItems, o.paymentMethod)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored quote is
// trusted because it was computed by NewOrder at creation time.
func RestoreOrder(
	id, customerID kernel.UUID,
	number string,
	lineItems []LineItem,
	address Address,
	instructions string,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	partnerID *kernel.UUID,
	cancelReason string,
	cancelledFrom Status,
	quote Quote,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		number:        number,
		instructions:  instructions,
		cancelReason:  cancelReason,
		quote:         quote,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLineItems(lineItems),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order version")
	}
	if status == StatusCancelled {
		if err := cancelledFrom.Validate(); err != nil {
			return nil, err
		}
	}

	o.paymentStatus = paymentStatus
	o.status = status
	o.partnerID = partnerID
	o.cancelledFrom = cancelledFrom
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the ordering customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// LineItems returns a copy of the ordered line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Instructions returns the customer's special instructions, possibly empty.
func (o *Order) Instructions() string {
	return o.instructions
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Partner returns the assigned delivery partner's ID, nil if unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// CancelReason returns the recorded cancellation reason, empty unless
// the order is cancelled.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CancelledFrom returns the status the order held when it was cancelled,
// StatusUnknown while the order is live. Progress views freeze at this
// point instead of dropping to zero.
func (o *Order) CancelledFrom() Status {
	return o.cancelledFrom
}

// Quote returns the server-computed monetary breakdown.
func (o *Order) Quote() Quote {
	return o.quote
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency token. The repository rejects
// an update whose stored version differs (ConflictError).
func (o *Order) Version() int64 {
	return o.version
}

// CollectOnDelivery returns the amount the delivery partner must collect
// at the door: the full total for unpaid cash_on_delivery orders, zero
// otherwise.
func (o *Order) CollectOnDelivery() kernel.Money {
	if o.paymentMethod == PaymentCashOnDelivery && o.paymentStatus == PaymentPending {
		return o.quote.Total
	}
	return kernel.Zero()
}

// TransitionTo applies a role-gated lifecycle transition.
//
// Failure modes:
//   - InvalidTransitionError: the edge is not in the allowed-edge table
//   - ForbiddenError: the edge exists but the acting role may not take it,
//     including ReadyForPickup -> InTransit, which no role may take
//     directly (only ConfirmPickup), and InTransit -> Delivered by a
//     delivery partner other than the assigned one
func (o *Order) TransitionTo(target Status, by actor.Actor, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	action := fmt.Sprintf("transition %s -> %s", o.status, target)
	allowed := transitionRoles(o.status, target)
	if len(allowed) == 0 {
		return errs.NewForbiddenErrorWithCause(
			by.Role().String(), action,
			errors.New("pickup must be confirmed through the pickup verification workflow"),
		)
	}

	permitted := false
	for _, role := range allowed {
		if by.Role() == role {
			permitted = true
			break
		}
	}
	if !permitted {
		return errs.NewForbiddenError(by.Role().String(), action)
	}

	if target == StatusDelivered && by.Role() == actor.RoleDeliveryPartner {
		if o.partnerID == nil || !o.partnerID.IsEqual(by.ID()) {
			return errs.NewForbiddenError(by.Role().String(), "deliver an order assigned to another partner")
		}
	}

	o.status = newStatus
	o.updatedAt = now

	if newStatus == StatusDelivered && o.paymentMethod == PaymentCashOnDelivery &&
		o.paymentStatus == PaymentPending {
		o.paymentStatus = PaymentPaid
	}

	return nil
}

// Cancel moves the order to Cancelled and records the reason. Cancellation
// is irreversible; a paid order is marked refunded.
func (o *Order) Cancel(reason string, by actor.Actor, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	from := o.status
	if err := o.TransitionTo(StatusCancelled, by, now); err != nil {
		return err
	}

	o.cancelReason = reason
	o.cancelledFrom = from
	if o.paymentStatus == PaymentPaid {
		o.paymentStatus = PaymentRefunded
	}
	return nil
}

// AssignPartner attaches a delivery partner. Legal only in Processing or
// ReadyForPickup; reassignment is a conflict, not an overwrite.
func (o *Order) AssignPartner(partnerID kernel.UUID, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.partnerID != nil {
		return errs.NewConflictError("order", "delivery partner already assigned")
	}

	if o.status != StatusProcessing && o.status != StatusReadyForPickup {
		return errs.NewPreconditionFailedError(fmt.Sprintf(
			"partner assignment requires status processing or ready_for_pickup, order is %s", o.status,
		))
	}

	o.partnerID = &partnerID
	o.updatedAt = now
	return nil
}

// ConfirmPickup is the single legal way to take the ReadyForPickup ->
// InTransit edge. Only the assigned partner may confirm, and the order must
// still be ReadyForPickup: if it moved (e.g. the customer cancelled while
// the pickup session was open) the caller gets a ConflictError and must
// re-read.
func (o *Order) ConfirmPickup(partnerID kernel.UUID, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.partnerID == nil || !o.partnerID.IsEqual(partnerID) {
		return errs.NewForbiddenError(
			actor.RoleDeliveryPartner.String(),
			"confirm pickup of an order assigned to another partner",
		)
	}

	if o.status != StatusReadyForPickup {
		return errs.NewConflictError(
			"order",
			fmt.Sprintf("no longer ready for pickup (now %s)", o.status),
		)
	}

	o.status = StatusInTransit
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setLineItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = make([]LineItem, len(items))
	copy(o.lineItems, items)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
