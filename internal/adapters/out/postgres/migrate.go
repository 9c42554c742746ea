package postgres

import (
	"autoshop/internal/adapters/out/postgres/assignmentrepo"
	"autoshop/internal/adapters/out/postgres/billingrepo"
	"autoshop/internal/adapters/out/postgres/gatepassrepo"
	"autoshop/internal/adapters/out/postgres/inspectionrepo"
	"autoshop/internal/adapters/out/postgres/orderrepo"
	"autoshop/internal/adapters/out/postgres/partrepo"
	"autoshop/internal/adapters/out/postgres/partsflowrepo"
	"autoshop/internal/adapters/out/postgres/technicianrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&partrepo.PartDTO{},
		&partsflowrepo.RequestDTO{},
		&technicianrepo.TechnicianDTO{},
		&assignmentrepo.AssignmentDTO{},
		&inspectionrepo.QualityCheckDTO{},
		&inspectionrepo.RoadTestDTO{},
		&billingrepo.BillingDTO{},
		&billingrepo.LineDTO{},
		&billingrepo.SequenceDTO{},
		&gatepassrepo.GatepassDTO{},
	)
}
