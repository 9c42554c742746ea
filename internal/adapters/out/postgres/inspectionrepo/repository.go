package inspectionrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormQualityCheckRepository implements QualityCheckRepository using GORM.
type GormQualityCheckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormQualityCheckRepository creates a new GORM quality check repository.
func NewGormQualityCheckRepository(db *gorm.DB, tracker aggregateTracker) *GormQualityCheckRepository {
	return &GormQualityCheckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quality check to the database.
func (r *GormQualityCheckRepository) Add(ctx context.Context, aggregate *inspection.QualityCheck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := checkFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quality check with an optimistic version check.
// Two people sign the same sheet; the version guard keeps the second writer
// from silently overwriting the first.
func (r *GormQualityCheckRepository) Update(ctx context.Context, aggregate *inspection.QualityCheck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := checkFromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&QualityCheckDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&QualityCheckDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("quality check", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("quality check", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quality check by ID.
func (r *GormQualityCheckRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.QualityCheck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QualityCheckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quality check", id.String())
		}
		return nil, err
	}

	return checkToDomain(dto)
}

// GetByOrder retrieves the order's open quality check. Rejected checks stay
// on file but no longer count as open, so a re-inspection opens a fresh one.
func (r *GormQualityCheckRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*inspection.QualityCheck, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	terminal := []int{int(inspection.CheckStatusApproved), int(inspection.CheckStatusRejected)}

	var dto QualityCheckDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status NOT IN ?", orderID.Bytes(), terminal).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quality check", orderID.String())
		}
		return nil, err
	}

	return checkToDomain(dto)
}

// GormRoadTestRepository implements RoadTestRepository using GORM.
type GormRoadTestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRoadTestRepository creates a new GORM road test repository.
func NewGormRoadTestRepository(db *gorm.DB, tracker aggregateTracker) *GormRoadTestRepository {
	return &GormRoadTestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new road test authorization to the database.
func (r *GormRoadTestRepository) Add(ctx context.Context, aggregate *inspection.RoadTest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := roadTestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing road test to the database.
func (r *GormRoadTestRepository) Update(ctx context.Context, aggregate *inspection.RoadTest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := roadTestFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RoadTestDTO{}).
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

// GetByCheck retrieves the road test authorized for a quality check. The
// latest authorization wins when a check loops through several road tests.
func (r *GormRoadTestRepository) GetByCheck(
	ctx context.Context,
	checkID kernel.UUID,
) (*inspection.RoadTest, error) {
	if err := checkID.Validate(); err != nil {
		return nil, err
	}

	var dto RoadTestDTO
	err := r.db.WithContext(ctx).
		Where("check_id = ?", checkID.Bytes()).
		Order("authorized_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("road test", checkID.String())
		}
		return nil, err
	}

	return roadTestToDomain(dto)
}
