package partsflow

import (
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through the NewRequest factory method.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrAlreadyIssued is returned when issuing a request that has already
	// been issued.
	ErrAlreadyIssued = errors.New("parts already issued")

	// ErrNotReadyForRelease is returned when a technician tries to acknowledge
	// receipt before the warehouse has issued the parts.
	ErrNotReadyForRelease = errors.New("parts not ready for release")
)

// Issuance is the release record created when the warehouse prepares a
// request. It captures the unit price at preparation time and carries the
// warehouse release signature and the technician receipt signature.
type Issuance struct {
	id            kernel.UUID
	quantity      int
	unitPrice     float64
	warehouseSig  kernel.Signature
	technicianSig kernel.Signature
	issuedAt      *time.Time
}

// ID returns the issuance identifier.
func (i Issuance) ID() kernel.UUID {
	return i.id
}

// Quantity returns the issued quantity.
func (i Issuance) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price captured at preparation time.
func (i Issuance) UnitPrice() float64 {
	return i.unitPrice
}

// Total returns quantity times the captured unit price.
func (i Issuance) Total() float64 {
	return float64(i.quantity) * i.unitPrice
}

// WarehouseSignature returns the warehouse release signature slot.
func (i Issuance) WarehouseSignature() kernel.Signature {
	return i.warehouseSig
}

// TechnicianSignature returns the technician receipt signature slot.
func (i Issuance) TechnicianSignature() kernel.Signature {
	return i.technicianSig
}

// IssuedAt returns when the warehouse released the parts, or nil.
func (i Issuance) IssuedAt() *time.Time {
	return i.issuedAt
}

// Request is a technician's parts request for a service order, 1:1 with its
// issuance once prepared. It is the aggregate root of the parts flow: the
// Issued transition is the only place inventory is debited, and the version
// field backs optimistic locking around the signature steps.
type Request struct {
	id           kernel.UUID
	orderID      kernel.UUID
	technicianID kernel.UUID
	partID       kernel.UUID
	quantity     int
	status       Status
	requestedAt  time.Time
	issuance     *Issuance
	version      int

	isConstructed bool
}

// NewRequest creates a parts request in the Requested state.
func NewRequest(id, orderID, technicianID, partID kernel.UUID, quantity int, requestedAt time.Time) (*Request, error) {
	r := &Request{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setTechnicianID(technicianID),
		r.setPartID(partID),
		r.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	r.status = StatusRequested
	r.requestedAt = requestedAt
	return r, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(id, orderID, technicianID, partID kernel.UUID, quantity int,
	status Status, requestedAt time.Time, issuance *Issuance, version int) (*Request, error) {
	r, err := NewRequest(id, orderID, technicianID, partID, quantity, requestedAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status != StatusRequested && issuance == nil {
		return nil, errs.NewValueIsRequiredError("issuance")
	}

	r.status = status
	r.issuance = issuance
	r.version = version
	return r, nil
}

// RestoreIssuance reconstructs an issuance record from persistence.
func RestoreIssuance(id kernel.UUID, quantity int, unitPrice float64,
	warehouseSig, technicianSig kernel.Signature, issuedAt *time.Time) *Issuance {
	return &Issuance{
		id:            id,
		quantity:      quantity,
		unitPrice:     unitPrice,
		warehouseSig:  warehouseSig,
		technicianSig: technicianSig,
		issuedAt:      issuedAt,
	}
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrderID returns the service order this request belongs to.
func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

// TechnicianID returns the requesting technician.
func (r *Request) TechnicianID() kernel.UUID {
	return r.technicianID
}

// PartID returns the requested part.
func (r *Request) PartID() kernel.UUID {
	return r.partID
}

// Quantity returns the requested quantity.
func (r *Request) Quantity() int {
	return r.quantity
}

// Status returns the current flow status.
func (r *Request) Status() Status {
	return r.status
}

// RequestedAt returns when the technician filed the request.
func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

// Issuance returns the issuance record, or nil before preparation.
func (r *Request) Issuance() *Issuance {
	return r.issuance
}

// Version returns the optimistic locking version.
func (r *Request) Version() int {
	return r.version
}

// Prepare confirms stock and creates the issuance shell with the part's unit
// price captured at this moment. The stock check itself happens against the
// inventory ledger before calling this.
func (r *Request) Prepare(issuanceID kernel.UUID, unitPrice float64) error {
	status, err := r.status.TransitionTo(StatusPrepared, "prepare parts")
	if err != nil {
		return err
	}
	if err := issuanceID.Validate(); err != nil {
		return err
	}
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}

	r.status = status
	r.issuance = &Issuance{
		id:        issuanceID,
		quantity:  r.quantity,
		unitPrice: unitPrice,
	}
	return nil
}

// MarkReadyForRelease stages the prepared parts at the release counter.
func (r *Request) MarkReadyForRelease() error {
	status, err := r.status.TransitionTo(StatusReadyForRelease, "mark ready for release")
	if err != nil {
		return err
	}
	r.status = status
	return nil
}

// Issue records the warehouse release signature and moves the request to its
// terminal Issued state. The caller debits the inventory ledger in the same
// transaction. Re-invocation fails with ErrAlreadyIssued.
func (r *Request) Issue(warehouseStaffID kernel.UUID, at time.Time) error {
	if r.status == StatusIssued {
		return ErrAlreadyIssued
	}
	status, err := r.status.TransitionTo(StatusIssued, "issue parts")
	if err != nil {
		return err
	}

	sig, err := kernel.NewSignature(warehouseStaffID, at)
	if err != nil {
		return err
	}

	r.status = status
	r.issuance.warehouseSig = sig
	r.issuance.issuedAt = &at
	return nil
}

// AcknowledgeReceipt records the technician's receipt signature on an already
// issued request. It never touches inventory. Before the warehouse has issued
// it fails with ErrNotReadyForRelease; a second acknowledgment is rejected.
func (r *Request) AcknowledgeReceipt(technicianID kernel.UUID, at time.Time) error {
	if r.status != StatusIssued {
		return ErrNotReadyForRelease
	}
	if r.issuance.technicianSig.IsSigned() {
		return errs.NewInvalidStateError("parts request", "acknowledge receipt", "acknowledged")
	}

	sig, err := kernel.NewSignature(technicianID, at)
	if err != nil {
		return err
	}

	r.issuance.technicianSig = sig
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	r.technicianID = technicianID
	return nil
}

func (r *Request) setPartID(partID kernel.UUID) error {
	if err := partID.Validate(); err != nil {
		return err
	}
	r.partID = partID
	return nil
}

func (r *Request) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}
