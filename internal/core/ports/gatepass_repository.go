package ports

import (
	"context"

	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"
)

// GatepassRepository defines the persistence contract for gatepasses.
type GatepassRepository interface {
	// Add persists a new gatepass to storage.
	Add(ctx context.Context, aggregate *gatepass.Gatepass) error

	// Update persists changes to an existing gatepass with an optimistic
	// version check. It fails with errs.ErrVersionConflict when another
	// signer got there first; the caller retries from a fresh read.
	Update(ctx context.Context, aggregate *gatepass.Gatepass) error

	// Get retrieves a gatepass by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*gatepass.Gatepass, error)

	// GetByOrder retrieves the gatepass opened for a service order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*gatepass.Gatepass, error)
}
