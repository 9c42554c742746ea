package ports

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/technician"
)

// TechnicianRepository defines the persistence contract for technicians.
type TechnicianRepository interface {
	// Add persists a new technician to storage.
	Add(ctx context.Context, aggregate *technician.Technician) error

	// Update persists changes to an existing technician.
	Update(ctx context.Context, aggregate *technician.Technician) error

	// Get retrieves a technician by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*technician.Technician, error)

	// GetAllAvailable retrieves every technician free to take an assignment.
	GetAllAvailable(ctx context.Context) ([]*technician.Technician, error)
}
