// Package inspectionrepo provides data transfer objects and mapping functions
// for quality check and road test persistence. Checklist items are value
// objects owned by the check, stored inline as JSON; the road test is its own
// aggregate with its own table.
package inspectionrepo

import (
	"time"

	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// QualityCheckDTO represents the database structure for persisting quality
// checks. One open check per order at a time; the order_id index backs the
// GetByOrder lookup.
type QualityCheckDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TechnicianID uuid.UUID `gorm:"type:uuid;not null"`
	ForemanID    uuid.UUID `gorm:"type:uuid;not null"`

	Status           int       `gorm:"index"`
	OverallStatus    int
	Items            []ItemDTO `gorm:"serializer:json"`
	RoadTestRequired bool

	ForemanSig    SignatureDTO `gorm:"embedded;embeddedPrefix:foreman_"`
	TechnicianSig SignatureDTO `gorm:"embedded;embeddedPrefix:technician_"`

	QCPassed    bool
	CreatedAt   time.Time `gorm:"not null"`
	CompletedAt *time.Time

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for quality check entities.
// Overrides GORM's default naming convention to use "quality_checks".
func (QualityCheckDTO) TableName() string {
	return "quality_checks"
}

// ItemDTO is the JSON shape of one checklist item.
type ItemDTO struct {
	Name   string `json:"name"`
	Status int    `json:"status"`
	Notes  string `json:"notes"`
}

// SignatureDTO represents an embedded sign-off.
type SignatureDTO struct {
	Signed   bool
	SignedBy *uuid.UUID `gorm:"type:uuid"`
	SignedAt *time.Time
}

// RoadTestDTO represents the database structure for persisting road tests.
type RoadTestDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CheckID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorizedBy uuid.UUID  `gorm:"type:uuid;not null"`
	AuthorizedAt time.Time  `gorm:"not null"`
	TesterID     *uuid.UUID `gorm:"type:uuid"`

	RouteCompliant bool
	Results        string `gorm:"type:text"`
	CompletedAt    *time.Time
}

// TableName specifies the database table name for road test entities.
// Overrides GORM's default naming convention to use "road_tests".
func (RoadTestDTO) TableName() string {
	return "road_tests"
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

// checkFromDomain converts a quality check aggregate to its database representation.
func checkFromDomain(qc *inspection.QualityCheck) QualityCheckDTO {
	items := make([]ItemDTO, 0, len(qc.Items()))
	for _, item := range qc.Items() {
		items = append(items, ItemDTO{
			Name:   item.Name(),
			Status: int(item.Status()),
			Notes:  item.Notes(),
		})
	}

	return QualityCheckDTO{
		ID:               qc.ID().Bytes(),
		OrderID:          qc.OrderID().Bytes(),
		TechnicianID:     qc.TechnicianID().Bytes(),
		ForemanID:        qc.ForemanID().Bytes(),
		Status:           int(qc.Status()),
		OverallStatus:    int(qc.OverallStatus()),
		Items:            items,
		RoadTestRequired: qc.RoadTestRequired(),
		ForemanSig:       signatureFromDomain(qc.ForemanSignature()),
		TechnicianSig:    signatureFromDomain(qc.TechnicianSignature()),
		QCPassed:         qc.QCPassed(),
		CreatedAt:        qc.CreatedAt(),
		CompletedAt:      qc.CompletedAt(),
		Version:          qc.Version(),
	}
}

// checkToDomain converts a database DTO to a quality check aggregate.
func checkToDomain(dto QualityCheckDTO) (*inspection.QualityCheck, error) {
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
	foremanID, err := kernel.UUIDFromBytes(dto.ForemanID[:])
	if err != nil {
		return nil, err
	}

	foremanSig, err := signatureToDomain(dto.ForemanSig)
	if err != nil {
		return nil, err
	}
	technicianSig, err := signatureToDomain(dto.TechnicianSig)
	if err != nil {
		return nil, err
	}

	items := make([]inspection.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, inspection.RestoreItem(
			item.Name,
			inspection.ItemStatus(item.Status),
			item.Notes,
		))
	}

	return inspection.RestoreQualityCheck(
		id,
		orderID,
		technicianID,
		foremanID,
		inspection.CheckStatus(dto.Status),
		items,
		inspection.OverallStatus(dto.OverallStatus),
		dto.RoadTestRequired,
		foremanSig,
		technicianSig,
		dto.QCPassed,
		dto.CreatedAt,
		dto.CompletedAt,
		dto.Version,
	)
}

// roadTestFromDomain converts a road test aggregate to its database representation.
func roadTestFromDomain(rt *inspection.RoadTest) RoadTestDTO {
	var testerID *uuid.UUID
	if id := rt.TesterID(); id != nil {
		raw := id.Bytes()
		testerID = &raw
	}

	return RoadTestDTO{
		ID:             rt.ID().Bytes(),
		CheckID:        rt.CheckID().Bytes(),
		OrderID:        rt.OrderID().Bytes(),
		AuthorizedBy:   rt.AuthorizedBy().Bytes(),
		AuthorizedAt:   rt.AuthorizedAt(),
		TesterID:       testerID,
		RouteCompliant: rt.RouteCompliant(),
		Results:        rt.Results(),
		CompletedAt:    rt.CompletedAt(),
	}
}

// roadTestToDomain converts a database DTO to a road test aggregate.
func roadTestToDomain(dto RoadTestDTO) (*inspection.RoadTest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	checkID, err := kernel.UUIDFromBytes(dto.CheckID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	authorizedBy, err := kernel.UUIDFromBytes(dto.AuthorizedBy[:])
	if err != nil {
		return nil, err
	}

	var testerID *kernel.UUID
	if dto.TesterID != nil {
		tester, testerErr := kernel.UUIDFromBytes((*dto.TesterID)[:])
		if testerErr != nil {
			return nil, testerErr
		}
		testerID = &tester
	}

	return inspection.RestoreRoadTest(
		id,
		checkID,
		orderID,
		authorizedBy,
		dto.AuthorizedAt,
		testerID,
		dto.RouteCompliant,
		dto.Results,
		dto.CompletedAt,
	)
}
