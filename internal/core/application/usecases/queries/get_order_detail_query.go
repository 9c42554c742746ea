package queries

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves everything an advisor needs to answer a
// customer call about one service order: lifecycle status, intake details,
// the working technician and the running totals.
//
// Example:
//
//	query, err := NewGetOrderDetailQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
type GetOrderDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for the given service order.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order being queried.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailQueryIsNotConstructed if validation fails.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// GetOrderDetailQueryResponse is the read model for one service order.
type GetOrderDetailQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	VehicleID      kernel.UUID
	Status         string
	SlipNumber     string
	CustomerNotes  string
	IsWalkIn       bool
	IsWarranty     bool
	WarrantyType   string
	TechnicianName string
	ArrivedAt      *time.Time
	CheckedInAt    *time.Time
	LaborHours     float64
	TotalCost      float64
	BillingNumber  string
}
