package queries

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrGetInspectionDetailQueryIsNotConstructed = errors.New(
		"GetInspectionDetailQuery must be created via NewGetInspectionDetailQuery constructor",
	)
)

// GetInspectionDetailQuery retrieves the quality check sheet for a service
// order: every checklist item, the verdict, both signatures, and the road
// test record when one was authorized.
type GetInspectionDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInspectionDetailQuery creates a query for the order's quality check.
func NewGetInspectionDetailQuery(orderID kernel.UUID) (GetInspectionDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetInspectionDetailQuery{}, err
	}

	return GetInspectionDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the inspected service order.
func (q GetInspectionDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInspectionDetailQueryIsNotConstructed if validation fails.
func (q GetInspectionDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetInspectionDetailQueryIsNotConstructed)
}

// InspectionItemResponse is one line on the checklist.
type InspectionItemResponse struct {
	Name   string
	Status string
	Notes  string
}

// RoadTestResponse is the road test record attached to the check.
type RoadTestResponse struct {
	AuthorizedBy   kernel.UUID
	AuthorizedAt   time.Time
	RouteCompliant bool
	Results        string
	CompletedAt    *time.Time
}

// GetInspectionDetailQueryResponse is the read model for one quality check.
type GetInspectionDetailQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	Status           string
	OverallStatus    string
	Items            []InspectionItemResponse
	RoadTestRequired bool
	ForemanSigned    bool
	TechnicianSigned bool
	QCPassed         bool
	CreatedAt        time.Time
	CompletedAt      *time.Time
	RoadTest         *RoadTestResponse
}
