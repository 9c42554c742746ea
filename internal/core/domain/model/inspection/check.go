package inspection

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrCheckIsNotConstructed is returned when a QualityCheck instance was
	// not created through the NewQualityCheck factory method.
	ErrCheckIsNotConstructed = errors.New("QualityCheck must be created via NewQualityCheck constructor")

	// ErrOutOfOrder is returned when the technician tries to counter-sign
	// before the foreman has signed.
	ErrOutOfOrder = errors.New("foreman must sign before the technician counter-signs")
)

// Item is a single inspection line: what was inspected, the result and any
// notes from the foreman.
type Item struct {
	name   string
	status ItemStatus
	notes  string
}

// NewItem creates an inspection item.
func NewItem(name string, status ItemStatus, notes string) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if err := status.Validate(); err != nil {
		return Item{}, err
	}
	return Item{name: name, status: status, notes: notes}, nil
}

// Name returns what was inspected.
func (i Item) Name() string {
	return i.name
}

// Status returns the recorded result.
func (i Item) Status() ItemStatus {
	return i.status
}

// Notes returns the foreman's notes for the line.
func (i Item) Notes() string {
	return i.notes
}

// QualityCheck is the foreman's inspection of a finished repair. The foreman
// records itemized results and an overall verdict, signs first, and the
// assigned technician counter-signs to close the check. The version field
// backs optimistic locking around the two-signature protocol.
type QualityCheck struct {
	id               kernel.UUID
	orderID          kernel.UUID
	technicianID     kernel.UUID
	foremanID        kernel.UUID
	status           CheckStatus
	items            []Item
	overallStatus    OverallStatus
	roadTestRequired bool
	foremanSig       kernel.Signature
	technicianSig    kernel.Signature
	qcPassed         bool
	createdAt        time.Time
	completedAt      *time.Time
	version          int

	isConstructed bool
}

// NewQualityCheck opens a pending check for an order, naming the foreman who
// will inspect and the technician who must counter-sign.
func NewQualityCheck(id, orderID, technicianID, foremanID kernel.UUID, createdAt time.Time) (*QualityCheck, error) {
	qc := &QualityCheck{isConstructed: true}

	if err := errors.Join(
		qc.setID(id),
		qc.setOrderID(orderID),
		qc.setTechnicianID(technicianID),
		qc.setForemanID(foremanID),
	); err != nil {
		return nil, err
	}

	qc.status = CheckStatusPending
	qc.createdAt = createdAt
	return qc, nil
}

// RestoreQualityCheck reconstructs a quality check from persistence.
func RestoreQualityCheck(id, orderID, technicianID, foremanID kernel.UUID,
	status CheckStatus, items []Item, overallStatus OverallStatus, roadTestRequired bool,
	foremanSig, technicianSig kernel.Signature, qcPassed bool,
	createdAt time.Time, completedAt *time.Time, version int) (*QualityCheck, error) {
	qc, err := NewQualityCheck(id, orderID, technicianID, foremanID, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	qc.status = status
	qc.items = items
	qc.overallStatus = overallStatus
	qc.roadTestRequired = roadTestRequired
	qc.foremanSig = foremanSig
	qc.technicianSig = technicianSig
	qc.qcPassed = qcPassed
	qc.completedAt = completedAt
	qc.version = version
	return qc, nil
}

// RestoreItem reconstructs an inspection item from persistence.
func RestoreItem(name string, status ItemStatus, notes string) Item {
	return Item{name: name, status: status, notes: notes}
}

// Validate ensures the QualityCheck instance was properly constructed.
func (qc *QualityCheck) Validate() error {
	if qc == nil || !qc.isConstructed {
		return ErrCheckIsNotConstructed
	}
	return nil
}

// ID returns the check identifier.
func (qc *QualityCheck) ID() kernel.UUID {
	return qc.id
}

// OrderID returns the service order under inspection.
func (qc *QualityCheck) OrderID() kernel.UUID {
	return qc.orderID
}

// TechnicianID returns the technician who must counter-sign.
func (qc *QualityCheck) TechnicianID() kernel.UUID {
	return qc.technicianID
}

// ForemanID returns the foreman running the inspection.
func (qc *QualityCheck) ForemanID() kernel.UUID {
	return qc.foremanID
}

// Status returns the check's lifecycle state.
func (qc *QualityCheck) Status() CheckStatus {
	return qc.status
}

// Items returns the itemized inspection results.
func (qc *QualityCheck) Items() []Item {
	return append([]Item(nil), qc.items...)
}

// OverallStatus returns the foreman's summary verdict.
func (qc *QualityCheck) OverallStatus() OverallStatus {
	return qc.overallStatus
}

// RoadTestRequired reports whether the verdict flagged a road test.
func (qc *QualityCheck) RoadTestRequired() bool {
	return qc.roadTestRequired
}

// ForemanSignature returns the foreman signature slot.
func (qc *QualityCheck) ForemanSignature() kernel.Signature {
	return qc.foremanSig
}

// TechnicianSignature returns the technician counter-signature slot.
func (qc *QualityCheck) TechnicianSignature() kernel.Signature {
	return qc.technicianSig
}

// QCPassed reports whether the closed check passed. It is derived from the
// overall verdict when the technician counter-signs.
func (qc *QualityCheck) QCPassed() bool {
	return qc.qcPassed
}

// CreatedAt returns when the check was opened.
func (qc *QualityCheck) CreatedAt() time.Time {
	return qc.createdAt
}

// CompletedAt returns when both signatures were in place, or nil.
func (qc *QualityCheck) CompletedAt() *time.Time {
	return qc.completedAt
}

// Version returns the optimistic locking version.
func (qc *QualityCheck) Version() int {
	return qc.version
}

// RecordResults replaces the itemized results and the overall verdict. The
// foreman may revise them until signing; a road-test verdict flags the road
// test requirement.
func (qc *QualityCheck) RecordResults(items []Item, overall OverallStatus) error {
	if qc.status != CheckStatusPending {
		return errs.NewInvalidStateError("quality check", "record inspection", qc.status.String())
	}
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if err := overall.Validate(); err != nil {
		return err
	}

	qc.items = append([]Item(nil), items...)
	qc.overallStatus = overall
	qc.roadTestRequired = overall == OverallRequiresRoadTest
	return nil
}

// ClearRoadTestRequirement resets the road-test flag after a completed road
// test so the foreman can record a final verdict.
func (qc *QualityCheck) ClearRoadTestRequirement() {
	qc.roadTestRequired = false
	if qc.overallStatus == OverallRequiresRoadTest {
		qc.overallStatus = OverallUnknown
	}
	qc.items = nil
}

// ForemanSign records the foreman's signature over the recorded results and
// opens the check for the technician counter-signature. Only the foreman who
// owns the check may sign.
func (qc *QualityCheck) ForemanSign(foremanID kernel.UUID, at time.Time) error {
	if !foremanID.IsEqual(qc.foremanID) {
		return errs.NewUnauthorizedError(foremanID.String(), "sign quality check")
	}
	if qc.overallStatus == OverallUnknown {
		return errs.NewInvalidStateError("quality check", "sign quality check", "no verdict recorded")
	}
	if qc.roadTestRequired {
		return errs.NewInvalidStateError("quality check", "sign quality check", "awaiting road test")
	}

	status, err := qc.status.TransitionTo(CheckStatusInProgress, "sign quality check")
	if err != nil {
		return err
	}

	sig, err := kernel.NewSignature(foremanID, at)
	if err != nil {
		return err
	}

	qc.status = status
	qc.foremanSig = sig
	return nil
}

// CounterSign records the assigned technician's counter-signature, derives
// qcPassed from the overall verdict and closes the check as Approved or
// Rejected. Fails with ErrOutOfOrder before the foreman has signed and with
// an unauthorized error for any other technician.
func (qc *QualityCheck) CounterSign(technicianID kernel.UUID, at time.Time) error {
	if !qc.foremanSig.IsSigned() {
		return ErrOutOfOrder
	}
	if !technicianID.IsEqual(qc.technicianID) {
		return errs.NewUnauthorizedError(technicianID.String(), "counter-sign quality check")
	}

	status, err := qc.status.TransitionTo(CheckStatusCompleted, "counter-sign quality check")
	if err != nil {
		return err
	}

	sig, err := kernel.NewSignature(technicianID, at)
	if err != nil {
		return err
	}

	qc.status = status
	qc.technicianSig = sig
	qc.qcPassed = qc.overallStatus == OverallPass
	qc.completedAt = &at

	verdict := CheckStatusRejected
	if qc.qcPassed {
		verdict = CheckStatusApproved
	}
	qc.status, err = qc.status.TransitionTo(verdict, "close quality check")
	return err
}

func (qc *QualityCheck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	qc.id = id
	return nil
}

func (qc *QualityCheck) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	qc.orderID = orderID
	return nil
}

func (qc *QualityCheck) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	qc.technicianID = technicianID
	return nil
}

func (qc *QualityCheck) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return err
	}
	qc.foremanID = foremanID
	return nil
}
