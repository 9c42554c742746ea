// Package technicianrepo provides data transfer objects and mapping functions
// for technician persistence.
package technicianrepo

import (
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/technician"

	"github.com/google/uuid"
)

// TechnicianDTO represents the database structure for persisting technicians.
type TechnicianDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Skills        []string  `gorm:"serializer:json"`
	Status        int       `gorm:"index"`
	CompletedJobs int
}

// TableName specifies the database table name for technician entities.
// Overrides GORM's default naming convention to use "technicians".
func (TechnicianDTO) TableName() string {
	return "technicians"
}

// fromDomain converts a technician domain aggregate to its database representation.
func fromDomain(tech *technician.Technician) TechnicianDTO {
	return TechnicianDTO{
		ID:            tech.ID().Bytes(),
		Name:          tech.Name(),
		Skills:        tech.Skills(),
		Status:        int(tech.Status()),
		CompletedJobs: tech.CompletedJobs(),
	}
}

// toDomain converts a database DTO to a technician domain aggregate.
func toDomain(dto TechnicianDTO) (*technician.Technician, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return technician.RestoreTechnician(
		id,
		dto.Name,
		dto.Skills,
		technician.Status(dto.Status),
		dto.CompletedJobs,
	)
}
