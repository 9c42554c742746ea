package partrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/part"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartRepository implements PartRepository using GORM.
type GormPartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartRepository creates a new GORM part repository.
func NewGormPartRepository(db *gorm.DB, tracker aggregateTracker) *GormPartRepository {
	return &GormPartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog part to the database.
func (r *GormPartRepository) Add(ctx context.Context, aggregate *part.Part) error {
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

// Update saves an existing part to the database.
func (r *GormPartRepository) Update(ctx context.Context, aggregate *part.Part) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a part by ID.
func (r *GormPartRepository) Get(ctx context.Context, id kernel.UUID) (*part.Part, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("part", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DebitOnHand atomically decrements the on-hand quantity by qty. The stock
// guard lives in the WHERE clause, so two concurrent issuances can never both
// succeed on the last units.
func (r *GormPartRepository) DebitOnHand(ctx context.Context, id kernel.UUID, qty int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty")
	}

	result := r.db.WithContext(ctx).Model(&PartDTO{}).
		Where("id = ? AND on_hand >= ?", id.Bytes(), qty).
		UpdateColumn("on_hand", gorm.Expr("on_hand - ?", qty))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&PartDTO{}).
			Where("id = ?", id.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("part", id.String())
		}
		return part.ErrInsufficientStock
	}

	return nil
}
