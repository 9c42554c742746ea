package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrClockInCommandIsNotConstructed = errors.New(
		"ClockInCommand must be created via NewClockInCommand constructor",
	)
)

// ClockInCommand represents a technician starting a work session on their
// active assignment.
type ClockInCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClockInCommand creates a command for a technician to clock in.
func NewClockInCommand(technicianID kernel.UUID) (ClockInCommand, error) {
	cmd := ClockInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTechnicianID(technicianID); err != nil {
		return ClockInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClockInCommand) Validate() error {
	return c.guard.Validate(ErrClockInCommandIsNotConstructed)
}

// TechnicianID returns the technician clocking in.
func (c ClockInCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *ClockInCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

// ClockInCommandHandler opens a work session on the technician's active
// assignment. Fails with assignment.ErrAlreadyClockedIn when a session is
// already open.
type ClockInCommandHandler struct {
	uowFactory LaborUoWFactory
}

// NewClockInCommandHandler creates a handler for clock-in.
func NewClockInCommandHandler(uowFactory LaborUoWFactory) ClockInCommandHandler {
	return ClockInCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clock-in command.
func (h ClockInCommandHandler) Handle(ctx context.Context, cmd ClockInCommand) error {
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

	if err = record.ClockIn(time.Now()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
