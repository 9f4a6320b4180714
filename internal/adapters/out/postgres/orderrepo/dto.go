// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and are loaded with the order; the
// version column backs the optimistic-concurrency check in Update.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"uniqueIndex"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	Status        int        `gorm:"index"`
	PaymentMethod int
	PaymentStatus int
	PartnerID     *uuid.UUID `gorm:"type:uuid;index"`
	CancelReason  string
	CancelledFrom int
	Instructions  string
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(14,2)"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(14,2)"`
	Tax         decimal.Decimal `gorm:"type:numeric(14,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(14,2)"`

	LineItems []LineItemDTO `gorm:"foreignKey:OrderID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
	Phone      string
}

// LineItemDTO represents one ordered product position. Line items are
// written once at checkout and never updated afterwards.
type LineItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	FarmerID  uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Unit      string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := aggregate.LineItems()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: li.ProductID().Bytes(),
			FarmerID:  li.FarmerID().Bytes(),
			Name:      li.ProductName(),
			Unit:      li.Unit(),
			Quantity:  li.Quantity(),
			UnitPrice: li.UnitPrice().Decimal(),
		})
	}

	quote := aggregate.Quote()
	address := aggregate.Address()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		Status:        int(aggregate.Status()),
		PaymentMethod: int(aggregate.PaymentMethod()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		PartnerID:     partnerID,
		CancelReason:  aggregate.CancelReason(),
		CancelledFrom: int(aggregate.CancelledFrom()),
		Instructions:  aggregate.Instructions(),
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Phone:      address.Phone(),
		},
		Subtotal:    quote.Subtotal.Decimal(),
		DeliveryFee: quote.DeliveryFee.Decimal(),
		Tax:         quote.Tax.Decimal(),
		Total:       quote.Total.Decimal(),
		LineItems:   itemDTOs,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		li, itemErr := lineItemToDomain(liDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, li)
	}

	address, err := order.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.PostalCode,
		dto.Address.Phone,
	)
	if err != nil {
		return nil, err
	}

	quote, err := quoteToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Number,
		items,
		address,
		dto.Instructions,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		partnerID,
		dto.CancelReason,
		order.Status(dto.CancelledFrom),
		quote,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, farmerID, dto.Name, dto.Unit, dto.Quantity, unitPrice)
}

func quoteToDomain(dto OrderDTO) (order.Quote, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Quote{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Quote{}, err
	}

	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return order.Quote{}, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Quote{}, err
	}

	return order.Quote{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       total,
	}, nil
}
