package technicianrepo

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/technician"
	"autoshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTechnicianRepository implements TechnicianRepository using GORM.
type GormTechnicianRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTechnicianRepository creates a new GORM technician repository.
func NewGormTechnicianRepository(db *gorm.DB, tracker aggregateTracker) *GormTechnicianRepository {
	return &GormTechnicianRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new technician to the database.
func (r *GormTechnicianRepository) Add(ctx context.Context, aggregate *technician.Technician) error {
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

// Update saves an existing technician to the database.
func (r *GormTechnicianRepository) Update(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TechnicianDTO{}).
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

// Get retrieves a technician by ID.
func (r *GormTechnicianRepository) Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TechnicianDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technician", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves every technician free to take an assignment.
func (r *GormTechnicianRepository) GetAllAvailable(ctx context.Context) ([]*technician.Technician, error) {
	var dtos []TechnicianDTO
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "status = ?", int(technician.StatusAvailable)).Error; err != nil {
		return nil, err
	}

	technicians := make([]*technician.Technician, 0, len(dtos))
	for _, dto := range dtos {
		tech, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, tech)
	}

	return technicians, nil
}
