// Package technician models the shop floor staff a job controller can assign
// work to. A technician is Available or Busy; completed jobs are counted for
// workload reporting.
package technician

import (
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrTechnicianIsNotConstructed is returned when a Technician instance was
	// not created through the NewTechnician factory method.
	ErrTechnicianIsNotConstructed = errors.New("Technician must be created via NewTechnician constructor")

	// ErrTechnicianUnavailable is returned when assigning work to a technician
	// who is already busy on another order.
	ErrTechnicianUnavailable = errors.New("technician is not available")
)

// Status is the technician's availability state.
type Status int

const (
	// StatusUnknown is the default uninitialized state.
	StatusUnknown Status = iota
	// StatusAvailable means the technician can take a new assignment.
	StatusAvailable
	// StatusBusy means the technician is working an active assignment.
	StatusBusy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusAvailable: "Available",
		StatusBusy:      "Busy",
	}
}

// StatusFromString converts a display string to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(s)
}

// Validate checks the status holds a known value.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the display representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Technician is a shop floor worker who can hold at most one active
// assignment at a time.
type Technician struct {
	id            kernel.UUID
	name          string
	skills        []string
	status        Status
	completedJobs int

	isConstructed bool
}

// NewTechnician creates an available technician.
func NewTechnician(id kernel.UUID, name string, skills []string) (*Technician, error) {
	tech := &Technician{isConstructed: true}

	if err := errors.Join(
		tech.setID(id),
		tech.setName(name),
	); err != nil {
		return nil, err
	}

	tech.skills = append([]string(nil), skills...)
	tech.status = StatusAvailable
	return tech, nil
}

// RestoreTechnician reconstructs a technician from persistence.
func RestoreTechnician(id kernel.UUID, name string, skills []string, status Status, completedJobs int) (*Technician, error) {
	tech, err := NewTechnician(id, name, skills)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	tech.status = status
	tech.completedJobs = completedJobs
	return tech, nil
}

// Validate ensures the Technician instance was properly constructed.
func (t *Technician) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTechnicianIsNotConstructed
	}
	return nil
}

// ID returns the technician's unique identifier.
func (t *Technician) ID() kernel.UUID {
	return t.id
}

// Name returns the technician's display name.
func (t *Technician) Name() string {
	return t.name
}

// Skills returns the technician's skill tags.
func (t *Technician) Skills() []string {
	return append([]string(nil), t.skills...)
}

// Status returns the availability state.
func (t *Technician) Status() Status {
	return t.status
}

// CompletedJobs returns the number of assignments completed to date.
func (t *Technician) CompletedJobs() int {
	return t.completedJobs
}

// TakeAssignment marks the technician busy. It fails with
// ErrTechnicianUnavailable if an active assignment already holds them.
func (t *Technician) TakeAssignment() error {
	if t.status != StatusAvailable {
		return ErrTechnicianUnavailable
	}
	t.status = StatusBusy
	return nil
}

// CompleteAssignment releases the technician and counts the finished job.
func (t *Technician) CompleteAssignment() error {
	if t.status != StatusBusy {
		return errs.NewInvalidStateError("technician", "complete assignment", t.status.String())
	}
	t.status = StatusAvailable
	t.completedJobs++
	return nil
}

// ReleaseAssignment frees the technician without counting a completed job,
// used when an assignment is cancelled.
func (t *Technician) ReleaseAssignment() {
	t.status = StatusAvailable
}

func (t *Technician) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Technician) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}
