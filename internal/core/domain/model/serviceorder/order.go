package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTechnicianAlreadyAssigned is returned when assigning a technician to an
	// order that already carries one.
	ErrTechnicianAlreadyAssigned = errors.New("service order already has an assigned technician")

	// ErrBillingAlreadyAttached guards the at-most-one-billing invariant.
	ErrBillingAlreadyAttached = errors.New("service order already has a billing record")
)

// Intake holds the appointment slip data captured when the order is created:
// the services the customer asked for and any notes taken at the counter.
type Intake struct {
	SlipNumber        string
	AppointmentDate   *time.Time
	ServicesRequested []string
	CustomerNotes     string
}

// Order is the aggregate root for one vehicle's visit through the shop, from
// intake to gated release. It owns the primary status and is the only place
// that status is written; the parts, labor, inspection, billing, and gatepass
// workflows report back through the command handlers which call the
// transition methods below.
//
// Order follows these invariants:
//   - Status transitions follow the closed table in status.go
//   - The technician reference is set only while status implies active work
//   - At most one non-cancelled billing record is ever attached
//   - Can only be created through NewOrder / RestoreOrder
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	vehicleID  kernel.UUID

	status Status

	// appointmentID links back to the originating appointment; nil for walk-ins.
	appointmentID *kernel.UUID
	isWalkIn      bool
	intake        Intake

	arrivedAt   *time.Time
	checkedInAt *time.Time

	isWarranty   bool
	warrantyType string

	// technicianID is the currently working technician; nil outside active work.
	technicianID *kernel.UUID

	laborHours float64
	totalCost  float64

	qualityCheckID *kernel.UUID
	qcCompletedAt  *time.Time
	billingID      *kernel.UUID

	// version backs optimistic locking; several roles touch the same order
	// concurrently (warehouse, foreman, cashier).
	version int

	isConstructed bool
}

// NewOrder creates a Scheduled service order for the given customer and
// vehicle. Appointment conversions pass the originating appointment id and
// slip data; walk-ins pass a nil appointment id and isWalkIn true.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	appointmentID *kernel.UUID,
	isWalkIn bool,
	intake Intake,
) (*Order, error) {
	order := &Order{
		status:        Scheduled,
		isWalkIn:      isWalkIn,
		intake:        intake,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setVehicleID(vehicleID),
		order.setAppointmentID(appointmentID),
	); err != nil {
		return nil, err
	}

	if isWalkIn && appointmentID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("appointmentID",
			errors.New("walk-in orders cannot reference an appointment"))
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// history. The stored status must be valid and consistent with the stored
// technician reference.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vehicleID kernel.UUID,
	status Status,
	appointmentID *kernel.UUID,
	isWalkIn bool,
	intake Intake,
	arrivedAt, checkedInAt *time.Time,
	isWarranty bool,
	warrantyType string,
	technicianID *kernel.UUID,
	laborHours, totalCost float64,
	qualityCheckID *kernel.UUID,
	qcCompletedAt *time.Time,
	billingID *kernel.UUID,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveTechnician(technicianID != nil); err != nil {
		return nil, err
	}

	order, err := NewOrder(id, customerID, vehicleID, appointmentID, isWalkIn, intake)
	if err != nil {
		return nil, err
	}

	order.status = status
	order.arrivedAt = arrivedAt
	order.checkedInAt = checkedInAt
	order.isWarranty = isWarranty
	order.warrantyType = warrantyType
	order.technicianID = technicianID
	order.laborHours = laborHours
	order.totalCost = totalCost
	order.qualityCheckID = qualityCheckID
	order.qcCompletedAt = qcCompletedAt
	order.billingID = billingID
	order.version = version
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VehicleID returns the vehicle reference.
func (o *Order) VehicleID() kernel.UUID {
	return o.vehicleID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AppointmentID returns the originating appointment, nil for walk-ins.
func (o *Order) AppointmentID() *kernel.UUID {
	return o.appointmentID
}

// IsWalkIn reports whether the order was created without an appointment.
func (o *Order) IsWalkIn() bool {
	return o.isWalkIn
}

// Intake returns the captured appointment slip data.
func (o *Order) Intake() Intake {
	return o.intake
}

// ArrivedAt returns the customer arrival time, nil before check-in.
func (o *Order) ArrivedAt() *time.Time {
	return o.arrivedAt
}

// CheckedInAt returns the check-in time, nil before check-in.
func (o *Order) CheckedInAt() *time.Time {
	return o.checkedInAt
}

// IsWarranty reports whether the order was flagged warranty at conversion time.
// The gatepass warranty-officer slot is required exactly when this is true.
func (o *Order) IsWarranty() bool {
	return o.isWarranty
}

// WarrantyType returns the warranty classification, empty when not warranty.
func (o *Order) WarrantyType() string {
	return o.warrantyType
}

// Technician returns the currently assigned technician's ID.
// Returns nil outside active work.
func (o *Order) Technician() *kernel.UUID {
	return o.technicianID
}

// LaborHours returns the accumulated labor hours copied back from tracking.
func (o *Order) LaborHours() float64 {
	return o.laborHours
}

// TotalCost returns the accumulated cost recorded at billing time.
func (o *Order) TotalCost() float64 {
	return o.totalCost
}

// QualityCheck returns the attached quality-check record, nil before inspection.
func (o *Order) QualityCheck() *kernel.UUID {
	return o.qualityCheckID
}

// QCCompletedAt returns the inspection completion time, nil until QC passes.
func (o *Order) QCCompletedAt() *time.Time {
	return o.qcCompletedAt
}

// Billing returns the attached billing record, nil until billing is generated.
func (o *Order) Billing() *kernel.UUID {
	return o.billingID
}

// Version returns the optimistic locking version.
func (o *Order) Version() int {
	return o.version
}

// FlagWarranty marks the order as a warranty service of the given type.
// Only permitted before work completes; the flag drives the gatepass
// warranty-slot requirement.
func (o *Order) FlagWarranty(warrantyType string) error {
	if warrantyType == "" {
		return errs.NewValueIsRequiredError("warrantyType")
	}
	if o.status != Scheduled && o.status != CheckedIn {
		return errs.NewInvalidStateError("service order", "flag warranty", o.status.String())
	}
	o.isWarranty = true
	o.warrantyType = warrantyType
	return nil
}

// CheckIn records the customer's arrival and moves the order to CheckedIn.
func (o *Order) CheckIn(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("arrival time")
	}

	newStatus, err := o.status.TransitionTo(CheckedIn, "check in")
	if err != nil {
		return err
	}

	o.status = newStatus
	o.arrivedAt = &at
	o.checkedInAt = &at
	return nil
}

// AssignTechnician binds a technician to the order and starts active work.
// The availability of the technician is enforced by the assignment workflow;
// here only the status transition and the single-technician rule apply.
func (o *Order) AssignTechnician(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	if o.technicianID != nil {
		return ErrTechnicianAlreadyAssigned
	}

	newStatus, err := o.status.TransitionTo(InProgress, "assign technician")
	if err != nil {
		return err
	}

	o.status = newStatus
	o.technicianID = &technicianID
	return nil
}

// WaitForParts pauses active work until requested parts are issued.
func (o *Order) WaitForParts() error {
	newStatus, err := o.status.TransitionTo(WaitingParts, "wait for parts")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ResumeWork returns a parts-waiting order to active work.
func (o *Order) ResumeWork() error {
	newStatus, err := o.status.TransitionTo(InProgress, "resume work")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SendToQualityCheck ends active work and hands the order to inspection.
// The labor hours copied onto the order are the greater of the assignment's
// actual hours and the tracked worked hours; the technician reference is
// cleared because the status no longer implies active work.
func (o *Order) SendToQualityCheck(laborHours float64) error {
	if laborHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("laborHours",
			fmt.Errorf("%f is negative", laborHours))
	}

	newStatus, err := o.status.TransitionTo(QualityCheck, "send to quality check")
	if err != nil {
		return err
	}

	o.status = newStatus
	o.laborHours = laborHours
	o.technicianID = nil
	return nil
}

// AttachQualityCheck links the inspection record created by the foreman.
func (o *Order) AttachQualityCheck(qualityCheckID kernel.UUID) error {
	if err := qualityCheckID.Validate(); err != nil {
		return err
	}
	if o.status != QualityCheck && o.status != WaitingRoadTest {
		return errs.NewInvalidStateError("service order", "attach quality check", o.status.String())
	}
	o.qualityCheckID = &qualityCheckID
	return nil
}

// RequireRoadTest parks the order until an authorized road test completes.
func (o *Order) RequireRoadTest() error {
	newStatus, err := o.status.TransitionTo(WaitingRoadTest, "require road test")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReturnFromRoadTest puts the order back under inspection for re-review.
func (o *Order) ReturnFromRoadTest() error {
	newStatus, err := o.status.TransitionTo(QualityCheck, "return from road test")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// PassQualityCheck records the dual-signed passing inspection.
func (o *Order) PassQualityCheck(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completion time")
	}

	newStatus, err := o.status.TransitionTo(QCPassed, "pass quality check")
	if err != nil {
		return err
	}

	o.status = newStatus
	o.qcCompletedAt = &at
	return nil
}

// AttachBilling links the generated billing record and completes the order.
// A second billing record is rejected; billing is generated exactly once.
func (o *Order) AttachBilling(billingID kernel.UUID, totalCost float64) error {
	if err := billingID.Validate(); err != nil {
		return err
	}
	if o.billingID != nil {
		return ErrBillingAlreadyAttached
	}
	if totalCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("%f is negative", totalCost))
	}

	newStatus, err := o.status.TransitionTo(Completed, "generate billing")
	if err != nil {
		return err
	}

	o.status = newStatus
	o.billingID = &billingID
	o.totalCost = totalCost
	return nil
}

// MarkForPayment hands the order to the cashier. The billing record's status
// is flipped in lockstep by the command handler.
func (o *Order) MarkForPayment() error {
	newStatus, err := o.status.TransitionTo(ForPayment, "mark for payment")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Pay records that the cashier collected payment.
func (o *Order) Pay() error {
	newStatus, err := o.status.TransitionTo(Paid, "record payment")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Release is the terminal transition: security validated the gatepass and the
// vehicle left the premises.
func (o *Order) Release() error {
	newStatus, err := o.status.TransitionTo(Released, "release vehicle")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons the order explicitly. In-flight sub-records keep their
// state; the order itself is terminal afterwards.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled, "cancel")
	if err != nil {
		return err
	}

	o.status = newStatus
	o.technicianID = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.vehicleID = id
	return nil
}

func (o *Order) setAppointmentID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.appointmentID = id
	return nil
}
