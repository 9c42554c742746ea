package partsflowrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/partsflow"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartsRequestRepository implements PartsRequestRepository using GORM.
type GormPartsRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartsRequestRepository creates a new GORM parts request repository.
func NewGormPartsRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormPartsRequestRepository {
	return &GormPartsRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parts request to the database.
func (r *GormPartsRequestRepository) Add(ctx context.Context, aggregate *partsflow.Request) error {
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

// Update saves an existing parts request with an optimistic version check.
// The stored version must still match the one the aggregate was loaded with;
// a concurrent writer advances it and this update matches zero rows.
func (r *GormPartsRequestRepository) Update(ctx context.Context, aggregate *partsflow.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&RequestDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("parts request", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("parts request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parts request by ID.
func (r *GormPartsRequestRepository) Get(ctx context.Context, id kernel.UUID) (*partsflow.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parts request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every parts request filed for a service order.
func (r *GormPartsRequestRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*partsflow.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Order("requested_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	requests := make([]*partsflow.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
