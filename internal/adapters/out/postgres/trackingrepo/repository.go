package trackingrepo

import (
	"context"
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/tracking"
	"agrimarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tracking record and any initial events.
func (r *GormTrackingRepository) Add(ctx context.Context, aggregate *tracking.Tracking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Update saves the current record state and appends any new timeline
// entries. Persisted event rows are never rewritten; only the tail of the
// aggregate's log beyond the stored count is inserted.
func (r *GormTrackingRepository) Update(ctx context.Context, aggregate *tracking.Tracking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&TrackingDTO{}).
		Omit(clause.Associations).
		Where("order_id = ?", dto.OrderID).
		Select("Location", "Latitude", "Longitude", "EstimatedDelivery", "Frozen", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tracking", aggregate.OrderID().String())
	}

	var stored int64
	err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("order_id = ?", dto.OrderID).
		Count(&stored).Error
	if err != nil {
		return err
	}

	if int(stored) < len(dto.Events) {
		tail := dto.Events[stored:]
		if err := r.db.WithContext(ctx).Create(&tail).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Get retrieves the tracking record for an order with its timeline.
func (r *GormTrackingRepository) Get(ctx context.Context, orderID kernel.UUID) (*tracking.Tracking, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto TrackingDTO
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracking_events.id ASC")
		}).
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
