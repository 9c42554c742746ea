package gatepassrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormGatepassRepository implements GatepassRepository using GORM.
type GormGatepassRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormGatepassRepository creates a new GORM gatepass repository.
func NewGormGatepassRepository(db *gorm.DB, tracker aggregateTracker) *GormGatepassRepository {
	return &GormGatepassRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new gatepass to the database.
func (r *GormGatepassRepository) Add(ctx context.Context, aggregate *gatepass.Gatepass) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing gatepass with an optimistic version check. Four
// departments sign the same pass; the version guard makes the slower writer
// fail with a VersionConflictError instead of dropping a signature, and the
// caller retries from a fresh read.
func (r *GormGatepassRepository) Update(ctx context.Context, aggregate *gatepass.Gatepass) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&GatepassDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&GatepassDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("gatepass", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("gatepass", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a gatepass by ID.
func (r *GormGatepassRepository) Get(ctx context.Context, id kernel.UUID) (*gatepass.Gatepass, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GatepassDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("gatepass", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the gatepass opened for a service order.
func (r *GormGatepassRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*gatepass.Gatepass, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto GatepassDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("gatepass", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
