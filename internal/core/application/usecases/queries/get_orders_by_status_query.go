// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves every service order currently in one
// lifecycle status. Backs the shop floor board: advisors watch Scheduled,
// the warehouse watches Waiting Parts, the cashier watches For Payment.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(serviceorder.WaitingParts)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersByStatusQuery struct {
	status serviceorder.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
// The status must be a valid lifecycle status.
func NewGetOrdersByStatusQuery(status serviceorder.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the lifecycle status being queried.
func (q GetOrdersByStatusQuery) Status() serviceorder.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// GetOrdersByStatusQueryResponse is one row on the shop floor board.
type GetOrdersByStatusQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	VehicleID    kernel.UUID
	Status       string
	SlipNumber   string
	IsWalkIn     bool
	IsWarranty   bool
	TechnicianID *kernel.UUID
	ArrivedAt    *time.Time
}
