package services

import (
	"time"

	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/pkg/errs"
)

// LineItemView is one order line as a given role is allowed to see it.
// Pricing fields are nil for roles without access to the breakdown.
type LineItemView struct {
	ProductID   string
	ProductName string
	Unit        string
	Quantity    int
	UnitPrice   *kernel.Money
	Total       *kernel.Money
}

// RoleView is the role-restricted slice of one order. Every pointer field
// is nil when the viewing role is not entitled to it; slices are empty
// rather than filtered in place.
type RoleView struct {
	OrderID     string
	OrderNumber string
	Status      string
	Progress    int
	PlacedAt    time.Time

	LineItems []LineItemView

	Subtotal    *kernel.Money
	Tax         *kernel.Money
	DeliveryFee *kernel.Money
	Total       *kernel.Money

	DeliveryAddress string
	DeliveryCity    string
	Instructions    string

	PaymentMethod     string
	PaymentStatus     string
	CollectOnDelivery *kernel.Money

	Revenue *kernel.Money

	PartnerAssigned bool
	CancelReason    string

	Timeline          []TimelineEntry
	EstimatedDelivery *time.Time
}

// Project derives the role-appropriate view of an order. It is a pure
// function: the same order, tracking record, and actor always produce the
// same view, and no field a role is not entitled to ever leaves it. The
// tracking record may be nil when the order has no delivery partner yet.
func Project(o *order.Order, tr *tracking.Tracking, by actor.Actor) (RoleView, error) {
	if err := by.Validate(); err != nil {
		return RoleView{}, err
	}

	base := RoleView{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number(),
		Status:      o.Status().String(),
		Progress:    Progress(o),
		PlacedAt:    o.CreatedAt(),
	}

	switch by.Role() {
	case actor.RoleCustomer:
		return projectCustomer(base, o, tr), nil
	case actor.RoleFarmer:
		return projectFarmer(base, o, by.ID()), nil
	case actor.RoleWarehouse:
		return projectWarehouse(base, o), nil
	case actor.RoleDeliveryPartner:
		return projectPartner(base, o, tr), nil
	case actor.RoleAdmin:
		return projectAdmin(base, o, tr), nil
	default:
		return RoleView{}, errs.NewForbiddenError(by.Role().String(), "view order")
	}
}

// projectCustomer shows the customer everything they bought and paid,
// plus the tracking timeline. Warehouse-internal fields stay out.
func projectCustomer(view RoleView, o *order.Order, tr *tracking.Tracking) RoleView {
	view.LineItems = pricedLineItems(o)
	view.Subtotal, view.Tax, view.DeliveryFee, view.Total = quotePointers(o)
	view.DeliveryAddress = o.Address().String()
	view.DeliveryCity = o.Address().City()
	view.Instructions = o.Instructions()
	view.PaymentMethod = o.PaymentMethod().String()
	view.PaymentStatus = o.PaymentStatus().String()
	view.PartnerAssigned = o.Partner() != nil
	view.CancelReason = o.CancelReason()
	appendTimeline(&view, tr)
	return view
}

// projectFarmer shows only the farmer's own line items and the revenue
// they add up to. The delivery area is exposed at city level only.
func projectFarmer(view RoleView, o *order.Order, farmerID kernel.UUID) RoleView {
	revenue := kernel.Zero()
	for _, li := range o.LineItems() {
		if !li.FarmerID().IsEqual(farmerID) {
			continue
		}
		unitPrice := li.UnitPrice()
		total := li.Total()
		view.LineItems = append(view.LineItems, LineItemView{
			ProductID:   li.ProductID().String(),
			ProductName: li.ProductName(),
			Unit:        li.Unit(),
			Quantity:    li.Quantity(),
			UnitPrice:   &unitPrice,
			Total:       &total,
		})
		revenue = revenue.Add(total)
	}
	view.Revenue = &revenue
	view.DeliveryCity = o.Address().City()
	return view
}

// projectWarehouse shows the fields pickup preparation needs and keeps
// customer payment details out.
func projectWarehouse(view RoleView, o *order.Order) RoleView {
	view.LineItems = unpricedLineItems(o)
	view.Instructions = o.Instructions()
	view.PartnerAssigned = o.Partner() != nil
	view.CancelReason = o.CancelReason()
	return view
}

// projectPartner shows the delivery partner where to go, what to carry,
// what to collect at the door, and the delivery fee they earn. No product
// pricing beyond that.
func projectPartner(view RoleView, o *order.Order, tr *tracking.Tracking) RoleView {
	view.LineItems = unpricedLineItems(o)
	view.DeliveryAddress = o.Address().String()
	view.DeliveryCity = o.Address().City()
	view.Instructions = o.Instructions()
	view.PaymentMethod = o.PaymentMethod().String()
	collect := o.CollectOnDelivery()
	view.CollectOnDelivery = &collect
	fee := o.Quote().DeliveryFee
	view.DeliveryFee = &fee
	view.PartnerAssigned = o.Partner() != nil
	appendTimeline(&view, tr)
	return view
}

func projectAdmin(view RoleView, o *order.Order, tr *tracking.Tracking) RoleView {
	view = projectCustomer(view, o, tr)
	collect := o.CollectOnDelivery()
	view.CollectOnDelivery = &collect
	return view
}

func pricedLineItems(o *order.Order) []LineItemView {
	var items []LineItemView
	for _, li := range o.LineItems() {
		unitPrice := li.UnitPrice()
		total := li.Total()
		items = append(items, LineItemView{
			ProductID:   li.ProductID().String(),
			ProductName: li.ProductName(),
			Unit:        li.Unit(),
			Quantity:    li.Quantity(),
			UnitPrice:   &unitPrice,
			Total:       &total,
		})
	}
	return items
}

func unpricedLineItems(o *order.Order) []LineItemView {
	var items []LineItemView
	for _, li := range o.LineItems() {
		items = append(items, LineItemView{
			ProductID:   li.ProductID().String(),
			ProductName: li.ProductName(),
			Unit:        li.Unit(),
			Quantity:    li.Quantity(),
		})
	}
	return items
}

func quotePointers(o *order.Order) (subtotal, tax, fee, total *kernel.Money) {
	quote := o.Quote()
	return &quote.Subtotal, &quote.Tax, &quote.DeliveryFee, &quote.Total
}

func appendTimeline(view *RoleView, tr *tracking.Tracking) {
	if tr == nil {
		return
	}
	view.EstimatedDelivery = tr.EstimatedDelivery()
	for _, event := range tr.Events() {
		view.Timeline = append(view.Timeline, TimelineEntry{
			Message:   event.Message(),
			Location:  event.Location(),
			Timestamp: event.Timestamp(),
		})
	}
}
