// Package ports defines repository interfaces for the service shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
)

// OrderRepository defines the persistence contract for service order aggregates.
// Provides methods for storing, retrieving, and querying orders by their
// lifecycle status.
type OrderRepository interface {
	// Add persists a new service order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *serviceorder.Order) error

	// Update persists changes to an existing service order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *serviceorder.Order) error

	// Get retrieves a service order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*serviceorder.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status serviceorder.Status) ([]*serviceorder.Order, error)

	// GetAllScheduledBefore retrieves Scheduled orders whose appointment date
	// lies before the cutoff. Used by the stale appointment sweep.
	GetAllScheduledBefore(ctx context.Context, cutoff time.Time) ([]*serviceorder.Order, error)
}
