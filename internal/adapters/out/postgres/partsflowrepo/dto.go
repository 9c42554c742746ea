// Package partsflowrepo provides data transfer objects and mapping functions
// for parts request persistence. The issuance record and both hand-over
// signatures are flattened into the request row: a request owns at most one
// issuance inside the same consistency boundary.
package partsflowrepo

import (
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/partsflow"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting parts requests.
type RequestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TechnicianID uuid.UUID `gorm:"type:uuid;not null;index"`
	PartID       uuid.UUID `gorm:"type:uuid;not null"`
	Quantity     int       `gorm:"not null"`
	Status       int       `gorm:"index"`
	RequestedAt  time.Time `gorm:"not null"`

	IssuanceID       *uuid.UUID `gorm:"type:uuid"`
	IssuanceQuantity int
	UnitPrice        float64
	IssuedAt         *time.Time

	WarehouseSig  SignatureDTO `gorm:"embedded;embeddedPrefix:warehouse_"`
	TechnicianSig SignatureDTO `gorm:"embedded;embeddedPrefix:technician_"`

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for parts request entities.
// Overrides GORM's default naming convention to use "parts_requests".
func (RequestDTO) TableName() string {
	return "parts_requests"
}

// SignatureDTO represents an embedded hand-over signature.
type SignatureDTO struct {
	Signed   bool
	SignedBy *uuid.UUID `gorm:"type:uuid"`
	SignedAt *time.Time
}

func signatureFromDomain(sig kernel.Signature) SignatureDTO {
	if !sig.IsSigned() {
		return SignatureDTO{}
	}

	signedBy := sig.SignedBy().Bytes()
	signedAt := sig.SignedAt()
	return SignatureDTO{
		Signed:   true,
		SignedBy: &signedBy,
		SignedAt: &signedAt,
	}
}

func signatureToDomain(dto SignatureDTO) (kernel.Signature, error) {
	if !dto.Signed || dto.SignedBy == nil || dto.SignedAt == nil {
		return kernel.Signature{}, nil
	}

	signedBy, err := kernel.UUIDFromBytes((*dto.SignedBy)[:])
	if err != nil {
		return kernel.Signature{}, err
	}

	return kernel.RestoreSignature(true, signedBy, *dto.SignedAt), nil
}

// fromDomain converts a parts request aggregate to its database representation.
func fromDomain(request *partsflow.Request) RequestDTO {
	dto := RequestDTO{
		ID:           request.ID().Bytes(),
		OrderID:      request.OrderID().Bytes(),
		TechnicianID: request.TechnicianID().Bytes(),
		PartID:       request.PartID().Bytes(),
		Quantity:     request.Quantity(),
		Status:       int(request.Status()),
		RequestedAt:  request.RequestedAt(),
		Version:      request.Version(),
	}

	if issuance := request.Issuance(); issuance != nil {
		issuanceID := issuance.ID().Bytes()
		dto.IssuanceID = &issuanceID
		dto.IssuanceQuantity = issuance.Quantity()
		dto.UnitPrice = issuance.UnitPrice()
		dto.IssuedAt = issuance.IssuedAt()
		dto.WarehouseSig = signatureFromDomain(issuance.WarehouseSignature())
		dto.TechnicianSig = signatureFromDomain(issuance.TechnicianSignature())
	}

	return dto
}

// toDomain converts a database DTO to a parts request aggregate.
func toDomain(dto RequestDTO) (*partsflow.Request, error) {
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
	partID, err := kernel.UUIDFromBytes(dto.PartID[:])
	if err != nil {
		return nil, err
	}

	var issuance *partsflow.Issuance
	if dto.IssuanceID != nil {
		issuanceID, issErr := kernel.UUIDFromBytes((*dto.IssuanceID)[:])
		if issErr != nil {
			return nil, issErr
		}
		warehouseSig, issErr := signatureToDomain(dto.WarehouseSig)
		if issErr != nil {
			return nil, issErr
		}
		technicianSig, issErr := signatureToDomain(dto.TechnicianSig)
		if issErr != nil {
			return nil, issErr
		}
		issuance = partsflow.RestoreIssuance(
			issuanceID,
			dto.IssuanceQuantity,
			dto.UnitPrice,
			warehouseSig,
			technicianSig,
			dto.IssuedAt,
		)
	}

	return partsflow.RestoreRequest(
		id,
		orderID,
		technicianID,
		partID,
		dto.Quantity,
		partsflow.Status(dto.Status),
		dto.RequestedAt,
		issuance,
		dto.Version,
	)
}
