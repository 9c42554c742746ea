package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCompleteAssignmentCommandIsNotConstructed = errors.New(
		"CompleteAssignmentCommand must be created via NewCompleteAssignmentCommand constructor",
	)
)

// CompleteAssignmentCommand represents a technician finishing their work:
// the assignment completes, any open session is closed and the technician
// becomes available with one more completed job.
type CompleteAssignmentCommand struct { //nolint:recvcheck //using for validation
	technicianID kernel.UUID
	actualHours  float64

	guard guard.ConstructorGuard
}

// NewCompleteAssignmentCommand creates a command to complete the
// technician's active assignment with their stated actual hours.
func NewCompleteAssignmentCommand(technicianID kernel.UUID, actualHours float64) (CompleteAssignmentCommand, error) {
	cmd := CompleteAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTechnicianID(technicianID),
		cmd.setActualHours(actualHours),
	); err != nil {
		return CompleteAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAssignmentCommandIsNotConstructed)
}

// TechnicianID returns the technician completing their work.
func (c CompleteAssignmentCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// ActualHours returns the technician's stated worked hours.
func (c CompleteAssignmentCommand) ActualHours() float64 {
	return c.actualHours
}

func (c *CompleteAssignmentCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

func (c *CompleteAssignmentCommand) setActualHours(actualHours float64) error {
	if actualHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("actualHours",
			fmt.Errorf("%f is negative", actualHours))
	}
	c.actualHours = actualHours
	return nil
}

// CompleteAssignmentCommandHandler completes the technician's active
// assignment and frees the technician in one transaction.
type CompleteAssignmentCommandHandler struct {
	uowFactory LaborUoWFactory
}

// NewCompleteAssignmentCommandHandler creates a handler for assignment completion.
func NewCompleteAssignmentCommandHandler(uowFactory LaborUoWFactory) CompleteAssignmentCommandHandler {
	return CompleteAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteAssignmentCommand) error {
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

	if err = record.Complete(time.Now(), cmd.ActualHours()); err != nil {
		return err
	}

	tech, err := uow.TechnicianRepository().Get(ctx, cmd.TechnicianID())
	if err != nil {
		return err
	}
	if err = tech.CompleteAssignment(); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}
	if err = uow.TechnicianRepository().Update(ctx, tech); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
