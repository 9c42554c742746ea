package ports

import (
	"context"
	"time"

	"autoshop/internal/core/domain/model/kernel"
)

// Event is a notification about a service order lifecycle change, fanned out
// to connected dashboards after the owning transaction commits.
type Event struct {
	Name       string
	OrderID    kernel.UUID
	OccurredAt time.Time
	Data       map[string]any
}

// Event names published by the command handlers.
const (
	EventOrderCreated       = "order.created"
	EventOrderCheckedIn     = "order.checked_in"
	EventOrderCancelled     = "order.cancelled"
	EventTechnicianAssigned = "order.technician_assigned"
	EventPartsRequested     = "parts.requested"
	EventPartsIssued        = "parts.issued"
	EventQualityCheckClosed = "inspection.closed"
	EventRoadTestAuthorized = "inspection.road_test_authorized"
	EventBillingGenerated   = "billing.generated"
	EventPaymentRecorded    = "billing.paid"
	EventVehicleReleased    = "gatepass.released"
)

// EventPublisher fans lifecycle events out to interested listeners. Publish
// must not fail the business operation: implementations log and drop on
// delivery problems.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}
