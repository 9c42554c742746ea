package ports

import (
	"context"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for work assignments
// and their labor tracking.
type AssignmentRepository interface {
	// Add persists a new assignment to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByOrder retrieves the order's Assigned or In Progress
	// assignment. At most one exists at a time.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByTechnician retrieves the technician's current assignment.
	GetActiveByTechnician(ctx context.Context, technicianID kernel.UUID) (*assignment.Assignment, error)

	// GetAllByOrder retrieves every assignment ever made for a service order,
	// completed ones included. Billing sums labor across them.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error)
}
