// Package orderrepo provides data transfer objects and mapping functions for
// service order persistence. This package implements the repository pattern
// for the order aggregate, handling the conversion between domain entities
// and database representations.
package orderrepo

import (
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting service order
// aggregates. Indexed by status for the shop floor board and by appointment
// date for the stale appointment sweep.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int       `gorm:"index"`

	AppointmentID     *uuid.UUID `gorm:"type:uuid"`
	IsWalkIn          bool
	SlipNumber        string     `gorm:"type:varchar(64);not null"`
	AppointmentDate   *time.Time `gorm:"index"`
	ServicesRequested []string   `gorm:"serializer:json"`
	CustomerNotes     string     `gorm:"type:text"`

	ArrivedAt   *time.Time
	CheckedInAt *time.Time

	IsWarranty   bool
	WarrantyType string `gorm:"type:varchar(64)"`

	TechnicianID *uuid.UUID `gorm:"type:uuid;index"`
	LaborHours   float64
	TotalCost    float64

	QualityCheckID *uuid.UUID `gorm:"type:uuid"`
	QCCompletedAt  *time.Time
	BillingID      *uuid.UUID `gorm:"type:uuid"`

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for service order entities.
// Overrides GORM's default naming convention to use "service_orders".
func (OrderDTO) TableName() string {
	return "service_orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *serviceorder.Order) OrderDTO {
	intake := order.Intake()

	return OrderDTO{
		ID:                order.ID().Bytes(),
		CustomerID:        order.CustomerID().Bytes(),
		VehicleID:         order.VehicleID().Bytes(),
		Status:            int(order.Status()),
		AppointmentID:     uuidPtr(order.AppointmentID()),
		IsWalkIn:          order.IsWalkIn(),
		SlipNumber:        intake.SlipNumber,
		AppointmentDate:   intake.AppointmentDate,
		ServicesRequested: intake.ServicesRequested,
		CustomerNotes:     intake.CustomerNotes,
		ArrivedAt:         order.ArrivedAt(),
		CheckedInAt:       order.CheckedInAt(),
		IsWarranty:        order.IsWarranty(),
		WarrantyType:      order.WarrantyType(),
		TechnicianID:      uuidPtr(order.Technician()),
		LaborHours:        order.LaborHours(),
		TotalCost:         order.TotalCost(),
		QualityCheckID:    uuidPtr(order.QualityCheck()),
		QCCompletedAt:     order.QCCompletedAt(),
		BillingID:         uuidPtr(order.Billing()),
		Version:           order.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and workflow
// references using RestoreOrder.
func toDomain(dto OrderDTO) (*serviceorder.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	appointmentID, err := kernelPtr(dto.AppointmentID)
	if err != nil {
		return nil, err
	}
	technicianID, err := kernelPtr(dto.TechnicianID)
	if err != nil {
		return nil, err
	}
	qualityCheckID, err := kernelPtr(dto.QualityCheckID)
	if err != nil {
		return nil, err
	}
	billingID, err := kernelPtr(dto.BillingID)
	if err != nil {
		return nil, err
	}

	return serviceorder.RestoreOrder(
		id,
		customerID,
		vehicleID,
		serviceorder.Status(dto.Status),
		appointmentID,
		dto.IsWalkIn,
		serviceorder.Intake{
			SlipNumber:        dto.SlipNumber,
			AppointmentDate:   dto.AppointmentDate,
			ServicesRequested: dto.ServicesRequested,
			CustomerNotes:     dto.CustomerNotes,
		},
		dto.ArrivedAt,
		dto.CheckedInAt,
		dto.IsWarranty,
		dto.WarrantyType,
		technicianID,
		dto.LaborHours,
		dto.TotalCost,
		qualityCheckID,
		dto.QCCompletedAt,
		billingID,
		dto.Version,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
