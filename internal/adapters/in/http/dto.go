package http

import (
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/pickup"
	"agrimarket/internal/core/domain/services"
)

// Request bodies. Field-level validation happens here via validator tags;
// business validation happens in the command constructors.

// CartItemRequest is one checkout cart entry.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	CustomerID    string            `json:"customer_id"   validate:"required,uuid"`
	Cart          []CartItemRequest `json:"cart"          validate:"required,min=1,dive"`
	Street        string            `json:"street"        validate:"required"`
	City          string            `json:"city"          validate:"required"`
	PostalCode    string            `json:"postal_code"`
	Phone         string            `json:"phone"         validate:"required"`
	Instructions  string            `json:"instructions"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=cash_on_delivery online"`
}

// TransitionOrderRequest moves an order along its lifecycle.
type TransitionOrderRequest struct {
	Status    string `json:"status"     validate:"required"`
	ActorRole string `json:"actor_role" validate:"required"`
	ActorID   string `json:"actor_id"   validate:"required,uuid"`
}

// CancelOrderRequest cancels an order with a mandatory reason.
type CancelOrderRequest struct {
	Reason    string `json:"reason"     validate:"required"`
	ActorRole string `json:"actor_role" validate:"required"`
	ActorID   string `json:"actor_id"   validate:"required,uuid"`
}

// AssignPartnerRequest attaches a delivery partner to an order.
type AssignPartnerRequest struct {
	PartnerID string `json:"partner_id" validate:"required,uuid"`
}

// PartnerRequest identifies the acting delivery partner for pickup
// session operations that carry no other payload.
type PartnerRequest struct {
	PartnerID string `json:"partner_id" validate:"required,uuid"`
}

// CheckItemRequest toggles one checklist item.
type CheckItemRequest struct {
	PartnerID string `json:"partner_id" validate:"required,uuid"`
	ItemID    string `json:"item_id"    validate:"required"`
	Checked   *bool  `json:"checked"    validate:"required"`
}

// VerifyLineItemRequest records a verdict for one order line.
type VerifyLineItemRequest struct {
	PartnerID     string `json:"partner_id"   validate:"required,uuid"`
	LineItemID    string `json:"line_item_id" validate:"required,uuid"`
	Verified      *bool  `json:"verified"     validate:"required"`
	ConditionNote string `json:"condition_note"`
}

// Responses.

// OrderCreatedResponse returns the identifier minted at checkout.
type OrderCreatedResponse struct {
	OrderID string `json:"order_id"`
}

// SessionResponse is the pickup session state returned by session operations.
type SessionResponse struct {
	SessionID         string   `json:"session_id"`
	OrderID           string   `json:"order_id"`
	Stage             string   `json:"stage"`
	CompletionPercent int      `json:"completion_percent"`
	PhotoRefs         []string `json:"photo_refs,omitempty"`
	SignatureCaptured bool     `json:"signature_captured"`
}

// StageResponse reports the stage reached after an advance or retreat.
type StageResponse struct {
	Stage string `json:"stage"`
}

// PhotoResponse returns the reference of a captured photo.
type PhotoResponse struct {
	PhotoRef string `json:"photo_ref"`
}

// TimelineEntryResponse is one tracking timeline row.
type TimelineEntryResponse struct {
	Message   string    `json:"message"`
	Location  string    `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingViewResponse is the wire form of the tracking progress view.
type TrackingViewResponse struct {
	OrderID              string                  `json:"order_id"`
	OrderNumber          string                  `json:"order_number"`
	Status               string                  `json:"status"`
	Progress             int                     `json:"progress"`
	CurrentLocation      string                  `json:"current_location,omitempty"`
	Coordinates          string                  `json:"coordinates,omitempty"`
	EstimatedDelivery    *time.Time              `json:"estimated_delivery,omitempty"`
	TimeRemainingSeconds int64                   `json:"time_remaining_seconds"`
	Timeline             []TimelineEntryResponse `json:"timeline"`
}

// LineItemViewResponse is one order line as the viewing role sees it.
type LineItemViewResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity"`
	UnitPrice   *string `json:"unit_price,omitempty"`
	Total       *string `json:"total,omitempty"`
}

// RoleViewResponse is the wire form of the role-restricted order view.
// Fields the role is not entitled to are omitted entirely.
type RoleViewResponse struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	PlacedAt    time.Time `json:"placed_at"`

	LineItems []LineItemViewResponse `json:"line_items,omitempty"`

	Subtotal    *string `json:"subtotal,omitempty"`
	Tax         *string `json:"tax,omitempty"`
	DeliveryFee *string `json:"delivery_fee,omitempty"`
	Total       *string `json:"total,omitempty"`

	DeliveryAddress string `json:"delivery_address,omitempty"`
	DeliveryCity    string `json:"delivery_city,omitempty"`
	Instructions    string `json:"instructions,omitempty"`

	PaymentMethod     string  `json:"payment_method,omitempty"`
	PaymentStatus     string  `json:"payment_status,omitempty"`
	CollectOnDelivery *string `json:"collect_on_delivery,omitempty"`

	Revenue *string `json:"revenue,omitempty"`

	PartnerAssigned bool   `json:"partner_assigned"`
	CancelReason    string `json:"cancel_reason,omitempty"`

	Timeline          []TimelineEntryResponse `json:"timeline,omitempty"`
	EstimatedDelivery *time.Time              `json:"estimated_delivery,omitempty"`
}

func sessionResponse(session *pickup.Session) SessionResponse {
	return SessionResponse{
		SessionID:         session.ID().String(),
		OrderID:           session.OrderID().String(),
		Stage:             session.Stage().String(),
		CompletionPercent: session.CompletionPercent(),
		PhotoRefs:         session.PhotoRefs(),
		SignatureCaptured: session.IsSignatureCaptured(),
	}
}

func trackingViewResponse(view services.TrackingView) TrackingViewResponse {
	return TrackingViewResponse{
		OrderID:              view.OrderID,
		OrderNumber:          view.OrderNumber,
		Status:               view.Status,
		Progress:             view.Progress,
		CurrentLocation:      view.CurrentLocation,
		Coordinates:          view.Coordinates,
		EstimatedDelivery:    view.EstimatedDelivery,
		TimeRemainingSeconds: int64(view.TimeRemaining.Seconds()),
		Timeline:             timelineResponse(view.Timeline),
	}
}

func roleViewResponse(view services.RoleView) RoleViewResponse {
	items := make([]LineItemViewResponse, 0, len(view.LineItems))
	for _, li := range view.LineItems {
		items = append(items, LineItemViewResponse{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Unit:        li.Unit,
			Quantity:    li.Quantity,
			UnitPrice:   moneyString(li.UnitPrice),
			Total:       moneyString(li.Total),
		})
	}

	return RoleViewResponse{
		OrderID:           view.OrderID,
		OrderNumber:       view.OrderNumber,
		Status:            view.Status,
		Progress:          view.Progress,
		PlacedAt:          view.PlacedAt,
		LineItems:         items,
		Subtotal:          moneyString(view.Subtotal),
		Tax:               moneyString(view.Tax),
		DeliveryFee:       moneyString(view.DeliveryFee),
		Total:             moneyString(view.Total),
		DeliveryAddress:   view.DeliveryAddress,
		DeliveryCity:      view.DeliveryCity,
		Instructions:      view.Instructions,
		PaymentMethod:     view.PaymentMethod,
		PaymentStatus:     view.PaymentStatus,
		CollectOnDelivery: moneyString(view.CollectOnDelivery),
		Revenue:           moneyString(view.Revenue),
		PartnerAssigned:   view.PartnerAssigned,
		CancelReason:      view.CancelReason,
		Timeline:          timelineResponse(view.Timeline),
		EstimatedDelivery: view.EstimatedDelivery,
	}
}

func timelineResponse(entries []services.TimelineEntry) []TimelineEntryResponse {
	if entries == nil {
		return nil
	}
	out := make([]TimelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TimelineEntryResponse{
			Message:   e.Message,
			Location:  e.Location,
			Timestamp: e.Timestamp,
		})
	}
	return out
}

func moneyString(m *kernel.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}
