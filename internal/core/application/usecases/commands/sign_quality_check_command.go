package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrSignQualityCheckCommandIsNotConstructed = errors.New(
		"SignQualityCheckCommand must be created via NewSignQualityCheckCommand constructor",
	)
)

// SignQualityCheckCommand represents the foreman signing off their recorded
// inspection, the first signature of the completion protocol.
type SignQualityCheckCommand struct { //nolint:recvcheck //using for validation
	checkID   kernel.UUID
	foremanID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSignQualityCheckCommand creates a command for the foreman signature.
func NewSignQualityCheckCommand(checkID, foremanID kernel.UUID) (SignQualityCheckCommand, error) {
	cmd := SignQualityCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckID(checkID),
		cmd.setForemanID(foremanID),
	); err != nil {
		return SignQualityCheckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignQualityCheckCommand) Validate() error {
	return c.guard.Validate(ErrSignQualityCheckCommandIsNotConstructed)
}

// CheckID returns the check being signed.
func (c SignQualityCheckCommand) CheckID() kernel.UUID {
	return c.checkID
}

// ForemanID returns the signing foreman.
func (c SignQualityCheckCommand) ForemanID() kernel.UUID {
	return c.foremanID
}

func (c *SignQualityCheckCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}
	c.checkID = checkID
	return nil
}

func (c *SignQualityCheckCommand) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return err
	}
	c.foremanID = foremanID
	return nil
}

// SignQualityCheckCommandHandler records the foreman signature, moving the
// check to In Progress so the technician can counter-sign.
type SignQualityCheckCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewSignQualityCheckCommandHandler creates a handler for the foreman
// signature.
func NewSignQualityCheckCommandHandler(uowFactory InspectionUoWFactory) SignQualityCheckCommandHandler {
	return SignQualityCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the foreman signature command.
func (h SignQualityCheckCommandHandler) Handle(ctx context.Context, cmd SignQualityCheckCommand) error {
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

	check, err := uow.QualityCheckRepository().Get(ctx, cmd.CheckID())
	if err != nil {
		return err
	}

	if err = check.ForemanSign(cmd.ForemanID(), time.Now()); err != nil {
		return err
	}

	if err = uow.QualityCheckRepository().Update(ctx, check); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
