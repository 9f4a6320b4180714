// Package trackingrepo provides data transfer objects and mapping functions
// for delivery tracking persistence. A tracking record is keyed by its order
// id; history entries live in an append-only child table.
package trackingrepo

import (
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingDTO represents the database structure for persisting tracking records.
type TrackingDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Location          string
	Latitude          *float64
	Longitude         *float64
	EstimatedDelivery *time.Time
	Frozen            bool
	UpdatedAt         time.Time

	Events []EventDTO `gorm:"foreignKey:OrderID;references:OrderID"`
}

// TableName specifies the database table name for tracking records.
func (TrackingDTO) TableName() string {
	return "tracking_records"
}

// EventDTO represents one timeline entry. Rows are only ever inserted,
// never updated or deleted; the autoincrement id preserves append order.
type EventDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Message   string
	Location  string
	Timestamp time.Time
}

// TableName specifies the database table name for timeline entries.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking domain aggregate to its database representation.
func fromDomain(aggregate *tracking.Tracking) TrackingDTO {
	var latitude, longitude *float64
	if coords := aggregate.Coordinates(); coords != nil {
		lat, lng := coords.Latitude(), coords.Longitude()
		latitude, longitude = &lat, &lng
	}

	events := aggregate.Events()
	eventDTOs := make([]EventDTO, 0, len(events))
	for _, e := range events {
		eventDTOs = append(eventDTOs, EventDTO{
			OrderID:   aggregate.OrderID().Bytes(),
			Message:   e.Message(),
			Location:  e.Location(),
			Timestamp: e.Timestamp(),
		})
	}

	return TrackingDTO{
		OrderID:           aggregate.OrderID().Bytes(),
		Location:          aggregate.Location(),
		Latitude:          latitude,
		Longitude:         longitude,
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		Frozen:            aggregate.IsFrozen(),
		UpdatedAt:         aggregate.UpdatedAt(),
		Events:            eventDTOs,
	}
}

// toDomain converts a database DTO to a tracking domain aggregate.
func toDomain(dto TrackingDTO) (*tracking.Tracking, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var coordinates *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		coords, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		coordinates = &coords
	}

	events := make([]tracking.Event, 0, len(dto.Events))
	for _, eDTO := range dto.Events {
		event, eventErr := tracking.NewEvent(eDTO.Message, eDTO.Location, eDTO.Timestamp)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return tracking.RestoreTracking(
		orderID,
		dto.Location,
		coordinates,
		dto.EstimatedDelivery,
		events,
		dto.Frozen,
		dto.UpdatedAt,
	)
}
