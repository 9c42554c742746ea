package orderrepo

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM service order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *serviceorder.Order) error {
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

// Update saves an existing service order to the database. Writes every
// column, cleared references included: an order leaving active work must
// persist its technician as NULL. The write is guarded by the aggregate's
// version; a concurrent writer getting there first surfaces as a conflict.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *serviceorder.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders currently in the given lifecycle status.
func (r *GormOrderRepository) GetAllInStatus(
	ctx context.Context,
	status serviceorder.Status,
) ([]*serviceorder.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllScheduledBefore retrieves Scheduled orders whose appointment date lies
// before the cutoff. Walk-ins have no appointment date and are never swept.
func (r *GormOrderRepository) GetAllScheduledBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*serviceorder.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND appointment_date IS NOT NULL AND appointment_date < ?",
			int(serviceorder.Scheduled), cutoff).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*serviceorder.Order, error) {
	orders := make([]*serviceorder.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
