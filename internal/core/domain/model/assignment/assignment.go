package assignment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance
	// was not created through the NewAssignment factory method.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrAlreadyClockedIn is returned when clocking in while an open work
	// session exists.
	ErrAlreadyClockedIn = errors.New("technician already clocked in")

	// ErrNotClockedIn is returned when clocking out without an open work
	// session.
	ErrNotClockedIn = errors.New("technician is not clocked in")
)

// Session is one clock-in/clock-out pair. Hours are derived from the pair and
// rounded to two decimals when the session closes.
type Session struct {
	clockIn  time.Time
	clockOut *time.Time
	hours    float64
}

// ClockIn returns when the session started.
func (s Session) ClockIn() time.Time {
	return s.clockIn
}

// ClockOut returns when the session ended, or nil while it is open.
func (s Session) ClockOut() *time.Time {
	return s.clockOut
}

// Hours returns the session's worked hours, zero while open.
func (s Session) Hours() float64 {
	return s.hours
}

// IsOpen reports whether the session has not been clocked out yet.
func (s Session) IsOpen() bool {
	return s.clockOut == nil
}

// RestoreSession reconstructs a work session from persistence.
func RestoreSession(clockIn time.Time, clockOut *time.Time, hours float64) Session {
	return Session{clockIn: clockIn, clockOut: clockOut, hours: hours}
}

// Assignment is the work handed to a technician for one service order. It
// owns the labor tracking: clock-in/out sessions, the work-performed log and
// the derived worked hours used by billing.
type Assignment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	technicianID   kernel.UUID
	assignedBy     kernel.UUID
	status         Status
	estimatedHours float64
	actualHours    float64
	assignedAt     time.Time
	completedAt    *time.Time
	sessions       []Session
	workPerformed  []string

	isConstructed bool
}

// NewAssignment creates an assignment in the Assigned state.
func NewAssignment(id, orderID, technicianID, assignedBy kernel.UUID,
	estimatedHours float64, assignedAt time.Time) (*Assignment, error) {
	a := &Assignment{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setTechnicianID(technicianID),
		a.setAssignedBy(assignedBy),
		a.setEstimatedHours(estimatedHours),
	); err != nil {
		return nil, err
	}

	a.status = StatusAssigned
	a.assignedAt = assignedAt
	return a, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(id, orderID, technicianID, assignedBy kernel.UUID,
	status Status, estimatedHours, actualHours float64,
	assignedAt time.Time, completedAt *time.Time,
	sessions []Session, workPerformed []string) (*Assignment, error) {
	a, err := NewAssignment(id, orderID, technicianID, assignedBy, estimatedHours, assignedAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	a.status = status
	a.actualHours = actualHours
	a.completedAt = completedAt
	a.sessions = sessions
	a.workPerformed = workPerformed
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the service order being worked.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// TechnicianID returns the assigned technician.
func (a *Assignment) TechnicianID() kernel.UUID {
	return a.technicianID
}

// AssignedBy returns who made the assignment.
func (a *Assignment) AssignedBy() kernel.UUID {
	return a.assignedBy
}

// Status returns the current assignment status.
func (a *Assignment) Status() Status {
	return a.status
}

// EstimatedHours returns the hours estimated at assignment time.
func (a *Assignment) EstimatedHours() float64 {
	return a.estimatedHours
}

// ActualHours returns the hours stated by the technician at completion.
func (a *Assignment) ActualHours() float64 {
	return a.actualHours
}

// AssignedAt returns when the assignment was made.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// CompletedAt returns when the work finished, or nil.
func (a *Assignment) CompletedAt() *time.Time {
	return a.completedAt
}

// Sessions returns the clock-in/out history.
func (a *Assignment) Sessions() []Session {
	return append([]Session(nil), a.sessions...)
}

// WorkPerformed returns the logged work descriptions.
func (a *Assignment) WorkPerformed() []string {
	return append([]string(nil), a.workPerformed...)
}

// IsActive reports whether the assignment still holds the technician.
func (a *Assignment) IsActive() bool {
	return a.status == StatusAssigned || a.status == StatusInProgress
}

// TrackedHours returns the sum of closed session hours.
func (a *Assignment) TrackedHours() float64 {
	var total float64
	for _, s := range a.sessions {
		total += s.hours
	}
	return roundHours(total)
}

// BillableHours returns the hours billing should charge: the larger of the
// technician's stated actual hours and the clock-tracked hours.
func (a *Assignment) BillableHours() float64 {
	return math.Max(a.actualHours, a.TrackedHours())
}

// ClockIn opens a work session. The first clock-in moves the assignment to
// In Progress.
func (a *Assignment) ClockIn(at time.Time) error {
	if a.hasOpenSession() {
		return ErrAlreadyClockedIn
	}

	if a.status == StatusAssigned {
		status, err := a.status.TransitionTo(StatusInProgress, "clock in")
		if err != nil {
			return err
		}
		a.status = status
	} else if a.status != StatusInProgress {
		return errs.NewInvalidStateError("assignment", "clock in", a.status.String())
	}

	a.sessions = append(a.sessions, Session{clockIn: at})
	return nil
}

// ClockOut closes the open work session, derives its hours and logs what was
// done during it.
func (a *Assignment) ClockOut(at time.Time, workPerformed string) error {
	idx := a.openSessionIndex()
	if idx < 0 {
		return ErrNotClockedIn
	}

	session := &a.sessions[idx]
	if at.Before(session.clockIn) {
		return errs.NewValueIsInvalidErrorWithCause("clockOut",
			fmt.Errorf("%s is before clock-in %s", at, session.clockIn))
	}

	session.clockOut = &at
	session.hours = roundHours(at.Sub(session.clockIn).Hours())
	if workPerformed != "" {
		a.workPerformed = append(a.workPerformed, workPerformed)
	}
	return nil
}

// Complete finishes the assignment, auto-closing any open session at the
// completion time and recording the technician's stated actual hours.
func (a *Assignment) Complete(at time.Time, actualHours float64) error {
	status, err := a.status.TransitionTo(StatusCompleted, "complete assignment")
	if err != nil {
		return err
	}
	if actualHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("actualHours",
			fmt.Errorf("%f is negative", actualHours))
	}

	if a.hasOpenSession() {
		if err := a.ClockOut(at, ""); err != nil {
			return err
		}
	}

	a.status = status
	a.actualHours = actualHours
	a.completedAt = &at
	return nil
}

// Cancel abandons the assignment, discarding any open session.
func (a *Assignment) Cancel() error {
	status, err := a.status.TransitionTo(StatusCancelled, "cancel assignment")
	if err != nil {
		return err
	}

	if idx := a.openSessionIndex(); idx >= 0 {
		a.sessions = append(a.sessions[:idx], a.sessions[idx+1:]...)
	}
	a.status = status
	return nil
}

func (a *Assignment) hasOpenSession() bool {
	return a.openSessionIndex() >= 0
}

func (a *Assignment) openSessionIndex() int {
	for i := range a.sessions {
		if a.sessions[i].IsOpen() {
			return i
		}
	}
	return -1
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	a.technicianID = technicianID
	return nil
}

func (a *Assignment) setAssignedBy(assignedBy kernel.UUID) error {
	if err := assignedBy.Validate(); err != nil {
		return err
	}
	a.assignedBy = assignedBy
	return nil
}

func (a *Assignment) setEstimatedHours(estimatedHours float64) error {
	if estimatedHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedHours",
			fmt.Errorf("%f is negative", estimatedHours))
	}
	a.estimatedHours = estimatedHours
	return nil
}
