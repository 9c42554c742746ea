// Package billingrepo provides data transfer objects and mapping functions
// for billing persistence. Line items live in a child table so the printable
// bill keeps its order; the payment is embedded since a bill carries at most
// one.
package billingrepo

import (
	"time"

	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BillingDTO represents the database structure for persisting billing
// records. Both the order reference and the bill number are unique: an order
// is billed once and numbers never repeat.
type BillingDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Number  string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status  int       `gorm:"index"`

	Lines []LineDTO `gorm:"foreignKey:BillingID;constraint:OnDelete:CASCADE"`

	LaborCost         float64
	PartsCost         float64
	Subtotal          float64
	Discount          float64
	WarrantyDeduction float64
	Total             float64
	GeneratedAt       time.Time `gorm:"not null"`

	PaymentMethod     string `gorm:"type:varchar(32)"`
	PaymentReference  string `gorm:"type:varchar(128)"`
	PaymentAmount     float64
	PaymentReceivedBy *uuid.UUID `gorm:"type:uuid"`
	PaymentPaidAt     *time.Time
}

// TableName specifies the database table name for billing entities.
// Overrides GORM's default naming convention to use "billings".
func (BillingDTO) TableName() string {
	return "billings"
}

// LineDTO represents one printed line on the bill.
type LineDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	BillingID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Kind        int       `gorm:"not null"`
	Description string    `gorm:"type:varchar(255);not null"`
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

// TableName specifies the database table name for billing line entities.
// Overrides GORM's default naming convention to use "billing_lines".
func (LineDTO) TableName() string {
	return "billing_lines"
}

// SequenceDTO backs the monthly billing number counter.
type SequenceDTO struct {
	Month string `gorm:"type:varchar(6);primaryKey"`
	Value int    `gorm:"not null"`
}

// TableName specifies the database table name for the sequence counter.
func (SequenceDTO) TableName() string {
	return "billing_sequences"
}

// fromDomain converts a billing aggregate to its database representation.
func fromDomain(b *billing.Billing) BillingDTO {
	billingID := b.ID().Bytes()

	lines := make([]LineDTO, 0, len(b.Lines()))
	for i, line := range b.Lines() {
		lines = append(lines, LineDTO{
			BillingID:   billingID,
			Position:    i,
			Kind:        int(line.Kind()),
			Description: line.Description(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			Amount:      line.Amount(),
		})
	}

	dto := BillingDTO{
		ID:                billingID,
		OrderID:           b.OrderID().Bytes(),
		Number:            b.Number(),
		Status:            int(b.Status()),
		Lines:             lines,
		LaborCost:         b.LaborCost(),
		PartsCost:         b.PartsCost(),
		Subtotal:          b.Subtotal(),
		Discount:          b.Discount(),
		WarrantyDeduction: b.WarrantyDeduction(),
		Total:             b.Total(),
		GeneratedAt:       b.GeneratedAt(),
	}

	if payment := b.Payment(); payment != nil {
		receivedBy := payment.ReceivedBy().Bytes()
		paidAt := payment.PaidAt()
		dto.PaymentMethod = payment.Method()
		dto.PaymentReference = payment.Reference()
		dto.PaymentAmount = payment.Amount()
		dto.PaymentReceivedBy = &receivedBy
		dto.PaymentPaidAt = &paidAt
	}

	return dto
}

// toDomain converts a database DTO to a billing aggregate.
func toDomain(dto BillingDTO) (*billing.Billing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]billing.LineItem, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, billing.RestoreLineItem(
			billing.LineItemKind(line.Kind),
			line.Description,
			line.Quantity,
			line.UnitPrice,
			line.Amount,
		))
	}

	var payment *billing.Payment
	if dto.PaymentReceivedBy != nil && dto.PaymentPaidAt != nil {
		receivedBy, payErr := kernel.UUIDFromBytes((*dto.PaymentReceivedBy)[:])
		if payErr != nil {
			return nil, payErr
		}
		payment = billing.RestorePayment(
			dto.PaymentMethod,
			dto.PaymentReference,
			dto.PaymentAmount,
			receivedBy,
			*dto.PaymentPaidAt,
		)
	}

	return billing.RestoreBilling(
		id,
		orderID,
		dto.Number,
		billing.Status(dto.Status),
		lines,
		dto.LaborCost,
		dto.PartsCost,
		dto.Subtotal,
		dto.Discount,
		dto.WarrantyDeduction,
		dto.Total,
		dto.GeneratedAt,
		payment,
	)
}
