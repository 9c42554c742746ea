package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrClockOutCommandIsNotConstructed = errors.New(
		"ClockOutCommand must be created via NewClockOutCommand constructor",
	)
)

// ClockOutCommand represents a technician closing their open work session,
// logging what was done during it.
type ClockOutCommand struct { //nolint:recvcheck //using for validation
	technicianID  kernel.UUID
	workPerformed string

	guard guard.ConstructorGuard
}

// NewClockOutCommand creates a command for a technician to clock out.
// workPerformed may be empty for a pure break.
func NewClockOutCommand(technicianID kernel.UUID, workPerformed string) (ClockOutCommand, error) {
	cmd := ClockOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTechnicianID(technicianID); err != nil {
		return ClockOutCommand{}, err
	}

	cmd.workPerformed = workPerformed
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClockOutCommand) Validate() error {
	return c.guard.Validate(ErrClockOutCommandIsNotConstructed)
}

// TechnicianID returns the technician clocking out.
func (c ClockOutCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// WorkPerformed returns the description of work done this session.
func (c ClockOutCommand) WorkPerformed() string {
	return c.workPerformed
}

func (c *ClockOutCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

// ClockOutCommandHandler closes the open work session on the technician's
// active assignment and derives the session's worked hours. Fails with
// assignment.ErrNotClockedIn when no session is open.
type ClockOutCommandHandler struct {
	uowFactory LaborUoWFactory
}

// NewClockOutCommandHandler creates a handler for clock-out.
func NewClockOutCommandHandler(uowFactory LaborUoWFactory) ClockOutCommandHandler {
	return ClockOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clock-out command.
func (h ClockOutCommandHandler) Handle(ctx context.Context, cmd ClockOutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.AssignmentRepository().GetActiveByTechnician(ctx, cmd.TechnicianID())
	if err != nil {
		return err
	}

	if err = record.ClockOut(time.Now(), cmd.WorkPerformed()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
