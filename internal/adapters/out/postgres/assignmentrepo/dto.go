// Package assignmentrepo provides data transfer objects and mapping functions
// for work assignment persistence. Clock-in/out sessions and the
// work-performed log are value collections owned by the assignment, stored
// inline as JSON rather than in child tables.
package assignmentrepo

import (
	"time"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting work
// assignments.
type AssignmentDTO struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID    `gorm:"type:uuid;not null;index"`
	TechnicianID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	AssignedBy     uuid.UUID    `gorm:"type:uuid;not null"`
	Status         int          `gorm:"index"`
	EstimatedHours float64
	ActualHours    float64
	AssignedAt     time.Time    `gorm:"not null"`
	CompletedAt    *time.Time
	Sessions       []SessionDTO `gorm:"serializer:json"`
	WorkPerformed  []string     `gorm:"serializer:json"`
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// SessionDTO is the JSON shape of one clock-in/out session.
type SessionDTO struct {
	ClockIn  time.Time  `json:"clockIn"`
	ClockOut *time.Time `json:"clockOut"`
	Hours    float64    `json:"hours"`
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(a *assignment.Assignment) AssignmentDTO {
	sessions := make([]SessionDTO, 0, len(a.Sessions()))
	for _, session := range a.Sessions() {
		sessions = append(sessions, SessionDTO{
			ClockIn:  session.ClockIn(),
			ClockOut: session.ClockOut(),
			Hours:    session.Hours(),
		})
	}

	return AssignmentDTO{
		ID:             a.ID().Bytes(),
		OrderID:        a.OrderID().Bytes(),
		TechnicianID:   a.TechnicianID().Bytes(),
		AssignedBy:     a.AssignedBy().Bytes(),
		Status:         int(a.Status()),
		EstimatedHours: a.EstimatedHours(),
		ActualHours:    a.ActualHours(),
		AssignedAt:     a.AssignedAt(),
		CompletedAt:    a.CompletedAt(),
		Sessions:       sessions,
		WorkPerformed:  a.WorkPerformed(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	technicianID, err := kernel.UUIDFromBytes(dto.TechnicianID[:])
	if err != nil {
		return nil, err
	}
	assignedBy, err := kernel.UUIDFromBytes(dto.AssignedBy[:])
	if err != nil {
		return nil, err
	}

	sessions := make([]assignment.Session, 0, len(dto.Sessions))
	for _, session := range dto.Sessions {
		sessions = append(sessions, assignment.RestoreSession(
			session.ClockIn,
			session.ClockOut,
			session.Hours,
		))
	}

	return assignment.RestoreAssignment(
		id,
		orderID,
		technicianID,
		assignedBy,
		assignment.Status(dto.Status),
		dto.EstimatedHours,
		dto.ActualHours,
		dto.AssignedAt,
		dto.CompletedAt,
		sessions,
		dto.WorkPerformed,
	)
}
