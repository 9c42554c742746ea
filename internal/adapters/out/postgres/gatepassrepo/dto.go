// Package gatepassrepo provides data transfer objects and mapping functions
// for gatepass persistence. The four signature slots are fixed, so each is
// flattened into its own embedded column group rather than a child table.
package gatepassrepo

import (
	"time"

	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// GatepassDTO represents the database structure for persisting gatepasses.
type GatepassDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BillingID        uuid.UUID `gorm:"type:uuid;not null"`
	WarrantyRequired bool

	CashierSig        SignatureDTO `gorm:"embedded;embeddedPrefix:cashier_"`
	AccountingSig     SignatureDTO `gorm:"embedded;embeddedPrefix:accounting_"`
	WarrantySig       SignatureDTO `gorm:"embedded;embeddedPrefix:warranty_"`
	ServiceManagerSig SignatureDTO `gorm:"embedded;embeddedPrefix:service_manager_"`

	Released   bool
	ReleasedBy *uuid.UUID `gorm:"type:uuid"`
	ReleasedAt *time.Time

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for gatepass entities.
// Overrides GORM's default naming convention to use "gatepasses".
func (GatepassDTO) TableName() string {
	return "gatepasses"
}

// SignatureDTO represents one embedded signature slot.
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

// fromDomain converts a gatepass aggregate to its database representation.
func fromDomain(g *gatepass.Gatepass) GatepassDTO {
	var releasedBy *uuid.UUID
	if id := g.ReleasedBy(); id != nil {
		raw := id.Bytes()
		releasedBy = &raw
	}

	return GatepassDTO{
		ID:                g.ID().Bytes(),
		OrderID:           g.OrderID().Bytes(),
		BillingID:         g.BillingID().Bytes(),
		WarrantyRequired:  g.WarrantyRequired(),
		CashierSig:        signatureFromDomain(g.Signature(gatepass.SlotCashier)),
		AccountingSig:     signatureFromDomain(g.Signature(gatepass.SlotAccounting)),
		WarrantySig:       signatureFromDomain(g.Signature(gatepass.SlotWarranty)),
		ServiceManagerSig: signatureFromDomain(g.Signature(gatepass.SlotServiceManager)),
		Released:          g.Released(),
		ReleasedBy:        releasedBy,
		ReleasedAt:        g.ReleasedAt(),
		Version:           g.Version(),
	}
}

// toDomain converts a database DTO to a gatepass aggregate.
func toDomain(dto GatepassDTO) (*gatepass.Gatepass, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	billingID, err := kernel.UUIDFromBytes(dto.BillingID[:])
	if err != nil {
		return nil, err
	}

	var releasedBy *kernel.UUID
	if dto.ReleasedBy != nil {
		released, relErr := kernel.UUIDFromBytes((*dto.ReleasedBy)[:])
		if relErr != nil {
			return nil, relErr
		}
		releasedBy = &released
	}

	signatures := make(map[gatepass.Slot]kernel.Signature)
	slotDTOs := map[gatepass.Slot]SignatureDTO{
		gatepass.SlotCashier:        dto.CashierSig,
		gatepass.SlotAccounting:     dto.AccountingSig,
		gatepass.SlotWarranty:       dto.WarrantySig,
		gatepass.SlotServiceManager: dto.ServiceManagerSig,
	}
	for slot, sigDTO := range slotDTOs {
		sig, sigErr := signatureToDomain(sigDTO)
		if sigErr != nil {
			return nil, sigErr
		}
		if sig.IsSigned() {
			signatures[slot] = sig
		}
	}

	return gatepass.RestoreGatepass(
		id,
		orderID,
		billingID,
		dto.WarrantyRequired,
		signatures,
		dto.Released,
		releasedBy,
		dto.ReleasedAt,
		dto.Version,
	)
}
