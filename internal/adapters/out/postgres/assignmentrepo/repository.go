package assignmentrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
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

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
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

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the order's Assigned or In Progress assignment.
// At most one exists at a time.
func (r *GormAssignmentRepository) GetActiveByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status IN ?", orderID.Bytes(), activeStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByTechnician retrieves the technician's current assignment.
func (r *GormAssignmentRepository) GetActiveByTechnician(
	ctx context.Context,
	technicianID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := technicianID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("technician_id = ? AND status IN ?", technicianID.Bytes(), activeStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assignment", technicianID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every assignment ever made for a service order,
// completed ones included.
func (r *GormAssignmentRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Order("assigned_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func activeStatuses() []int {
	return []int{int(assignment.StatusAssigned), int(assignment.StatusInProgress)}
}
