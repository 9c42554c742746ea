package ports

import (
	"context"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/part"
)

// PartRepository defines the persistence contract for the inventory ledger.
type PartRepository interface {
	// Add persists a new catalog part to storage.
	Add(ctx context.Context, aggregate *part.Part) error

	// Update persists changes to an existing part.
	Update(ctx context.Context, aggregate *part.Part) error

	// Get retrieves a part by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*part.Part, error)

	// DebitOnHand atomically decrements the on-hand quantity by qty. The
	// decrement carries its own stock guard so two concurrent issuances can
	// never both succeed on the last units: it fails with
	// part.ErrInsufficientStock without changing anything when fewer than qty
	// units remain.
	DebitOnHand(ctx context.Context, id kernel.UUID, qty int) error
}
