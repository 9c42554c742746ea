package queries

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrGetBillingDetailQueryIsNotConstructed = errors.New(
		"GetBillingDetailQuery must be created via NewGetBillingDetailQuery constructor",
	)
)

// GetBillingDetailQuery retrieves the printable bill for a service order:
// header totals, every line item in order, and payment details once paid.
type GetBillingDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBillingDetailQuery creates a query for the order's billing record.
func NewGetBillingDetailQuery(orderID kernel.UUID) (GetBillingDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetBillingDetailQuery{}, err
	}

	return GetBillingDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the billed service order.
func (q GetBillingDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBillingDetailQueryIsNotConstructed if validation fails.
func (q GetBillingDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetBillingDetailQueryIsNotConstructed)
}

// BillingLineResponse is one printed line on the bill.
type BillingLineResponse struct {
	Kind        string
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

// GetBillingDetailQueryResponse is the read model for one bill.
type GetBillingDetailQueryResponse struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	Number            string
	Status            string
	Lines             []BillingLineResponse
	LaborCost         float64
	PartsCost         float64
	Subtotal          float64
	Discount          float64
	WarrantyDeduction float64
	Total             float64
	GeneratedAt       time.Time
	PaymentMethod     string
	PaymentReference  string
	PaidAt            *time.Time
}
