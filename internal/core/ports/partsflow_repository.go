package ports

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/partsflow"
)

// PartsRequestRepository defines the persistence contract for parts requests
// and their issuances.
type PartsRequestRepository interface {
	// Add persists a new parts request to storage.
	Add(ctx context.Context, aggregate *partsflow.Request) error

	// Update persists changes to an existing request with an optimistic
	// version check. It fails with errs.ErrVersionConflict when another
	// writer got there first; the caller retries from a fresh read.
	Update(ctx context.Context, aggregate *partsflow.Request) error

	// Get retrieves a parts request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partsflow.Request, error)

	// GetAllByOrder retrieves every parts request filed for a service order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*partsflow.Request, error)
}
