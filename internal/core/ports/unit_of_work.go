package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// PartRepository returns a PartRepository bound to the current transaction.
	PartRepository() PartRepository

	// PartsRequestRepository returns a PartsRequestRepository bound to the current transaction.
	PartsRequestRepository() PartsRequestRepository

	// TechnicianRepository returns a TechnicianRepository bound to the current transaction.
	TechnicianRepository() TechnicianRepository

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	AssignmentRepository() AssignmentRepository

	// QualityCheckRepository returns a QualityCheckRepository bound to the current transaction.
	QualityCheckRepository() QualityCheckRepository

	// RoadTestRepository returns a RoadTestRepository bound to the current transaction.
	RoadTestRepository() RoadTestRepository

	// BillingRepository returns a BillingRepository bound to the current transaction.
	BillingRepository() BillingRepository

	// GatepassRepository returns a GatepassRepository bound to the current transaction.
	GatepassRepository() GatepassRepository
}
