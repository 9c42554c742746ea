// Package partrepo provides data transfer objects and mapping functions for
// the parts inventory ledger.
package partrepo

import (
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/part"

	"github.com/google/uuid"
)

// PartDTO represents the database structure for persisting catalog parts.
// The SKU carries a unique index so the catalog cannot hold duplicates.
type PartDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	SKU      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	OnHand   int       `gorm:"not null"`
	Price    float64   `gorm:"not null"`
	Supplier string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for part entities.
// Overrides GORM's default naming convention to use "parts".
func (PartDTO) TableName() string {
	return "parts"
}

// fromDomain converts a part domain aggregate to its database representation.
func fromDomain(p *part.Part) PartDTO {
	return PartDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		SKU:      p.SKU(),
		OnHand:   p.OnHand(),
		Price:    p.Price(),
		Supplier: p.Supplier(),
	}
}

// toDomain converts a database DTO to a part domain aggregate.
func toDomain(dto PartDTO) (*part.Part, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return part.RestorePart(id, dto.Name, dto.SKU, dto.OnHand, dto.Price, dto.Supplier)
}
