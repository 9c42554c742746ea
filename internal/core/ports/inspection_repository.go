package ports

import (
	"context"

	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
)

// QualityCheckRepository defines the persistence contract for quality checks.
type QualityCheckRepository interface {
	// Add persists a new quality check to storage.
	Add(ctx context.Context, aggregate *inspection.QualityCheck) error

	// Update persists changes to an existing check with an optimistic version
	// check. It fails with errs.ErrVersionConflict when another writer got
	// there first; the caller retries from a fresh read.
	Update(ctx context.Context, aggregate *inspection.QualityCheck) error

	// Get retrieves a quality check by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inspection.QualityCheck, error)

	// GetByOrder retrieves the order's open quality check.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*inspection.QualityCheck, error)
}

// RoadTestRepository defines the persistence contract for road tests.
type RoadTestRepository interface {
	// Add persists a new road test authorization to storage.
	Add(ctx context.Context, aggregate *inspection.RoadTest) error

	// Update persists changes to an existing road test.
	Update(ctx context.Context, aggregate *inspection.RoadTest) error

	// GetByCheck retrieves the road test authorized for a quality check.
	GetByCheck(ctx context.Context, checkID kernel.UUID) (*inspection.RoadTest, error)
}
