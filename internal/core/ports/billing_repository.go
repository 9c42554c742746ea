package ports

import (
	"context"
	"time"

	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/kernel"
)

// BillingRepository defines the persistence contract for billing records.
type BillingRepository interface {
	// Add persists a new billing record to storage.
	Add(ctx context.Context, aggregate *billing.Billing) error

	// Update persists changes to an existing billing record.
	Update(ctx context.Context, aggregate *billing.Billing) error

	// Get retrieves a billing record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*billing.Billing, error)

	// GetByOrder retrieves the billing record for a service order, if one
	// exists. A second bill for the same order is never generated.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Billing, error)

	// NextSequence reserves the next billing number sequence for the month
	// containing at. Sequences restart at 1 each month.
	NextSequence(ctx context.Context, at time.Time) (int, error)
}
