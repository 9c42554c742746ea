// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"autoshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartRepoFactory provides access to the inventory ledger within a transaction.
	PartRepoFactory interface {
		PartRepository() ports.PartRepository
	}

	// PartsRequestRepoFactory provides access to the parts request repository within a transaction.
	PartsRequestRepoFactory interface {
		PartsRequestRepository() ports.PartsRequestRepository
	}

	// TechnicianRepoFactory provides access to the technician repository within a transaction.
	TechnicianRepoFactory interface {
		TechnicianRepository() ports.TechnicianRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// QualityCheckRepoFactory provides access to the quality check repository within a transaction.
	QualityCheckRepoFactory interface {
		QualityCheckRepository() ports.QualityCheckRepository
	}

	// RoadTestRepoFactory provides access to the road test repository within a transaction.
	RoadTestRepoFactory interface {
		RoadTestRepository() ports.RoadTestRepository
	}

	// BillingRepoFactory provides access to the billing repository within a transaction.
	BillingRepoFactory interface {
		BillingRepository() ports.BillingRepository
	}

	// GatepassRepoFactory provides access to the gatepass repository within a transaction.
	GatepassRepoFactory interface {
		GatepassRepository() ports.GatepassRepository
	}

	// OrderUoW manages transactions for order-only operations such as intake
	// and check-in.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LaborUoW manages transactions for assignment and labor tracking
	// operations that coordinate the order, the technician and the
	// assignment.
	LaborUoW interface {
		TxManager
		OrderRepoFactory
		TechnicianRepoFactory
		AssignmentRepoFactory
	}

	// LaborUoWFactory creates new labor unit of work instances.
	LaborUoWFactory interface {
		Create() LaborUoW
	}

	// PartsUoW manages transactions for the parts reservation and issuance
	// workflow, including the inventory debit.
	PartsUoW interface {
		TxManager
		OrderRepoFactory
		PartRepoFactory
		PartsRequestRepoFactory
		AssignmentRepoFactory
	}

	// PartsUoWFactory creates new parts unit of work instances.
	PartsUoWFactory interface {
		Create() PartsUoW
	}

	// InspectionUoW manages transactions for quality check and road test
	// operations.
	InspectionUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		QualityCheckRepoFactory
		RoadTestRepoFactory
	}

	// InspectionUoWFactory creates new inspection unit of work instances.
	InspectionUoWFactory interface {
		Create() InspectionUoW
	}

	// BillingUoW manages transactions for billing generation and settlement.
	// Generation reads across labor, parts and names; settlement opens the
	// gatepass.
	BillingUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		PartsRequestRepoFactory
		TechnicianRepoFactory
		PartRepoFactory
		BillingRepoFactory
		GatepassRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// GatepassUoW manages transactions for the release gate.
	GatepassUoW interface {
		TxManager
		OrderRepoFactory
		GatepassRepoFactory
	}

	// GatepassUoWFactory creates new gatepass unit of work instances.
	GatepassUoWFactory interface {
		Create() GatepassUoW
	}

	// CancelUoW manages transactions for order cancellation, which cascades
	// into the active assignment, its technician and any open bill.
	CancelUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		TechnicianRepoFactory
		BillingRepoFactory
	}

	// CancelUoWFactory creates new cancellation unit of work instances.
	CancelUoWFactory interface {
		Create() CancelUoW
	}
)
