package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCounterSignQualityCheckCommandIsNotConstructed = errors.New(
		"CounterSignQualityCheckCommand must be created via NewCounterSignQualityCheckCommand constructor",
	)
)

// CounterSignQualityCheckCommand represents the assigned technician
// counter-signing the foreman's inspection to close the completion protocol.
//
// Example:
//
//	cmd, _ := NewCounterSignQualityCheckCommand(checkID, techID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, inspection.ErrOutOfOrder) {
//	    // foreman has not signed yet
//	}
type CounterSignQualityCheckCommand struct { //nolint:recvcheck //using for validation
	checkID      kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCounterSignQualityCheckCommand creates a command for the technician
// counter-signature.
func NewCounterSignQualityCheckCommand(checkID, technicianID kernel.UUID) (CounterSignQualityCheckCommand, error) {
	cmd := CounterSignQualityCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckID(checkID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return CounterSignQualityCheckCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CounterSignQualityCheckCommand) Validate() error {
	return c.guard.Validate(ErrCounterSignQualityCheckCommandIsNotConstructed)
}

// CheckID returns the check being counter-signed.
func (c CounterSignQualityCheckCommand) CheckID() kernel.UUID {
	return c.checkID
}

// TechnicianID returns the counter-signing technician.
func (c CounterSignQualityCheckCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *CounterSignQualityCheckCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}
	c.checkID = checkID
	return nil
}

func (c *CounterSignQualityCheckCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

// CounterSignQualityCheckCommandHandler records the technician
// counter-signature. The check derives qcPassed from the verdict; on pass the
// order advances to QC Passed with a completion timestamp, on rejection the
// order stays in Quality Check for a fresh inspection after rework.
type CounterSignQualityCheckCommandHandler struct {
	uowFactory InspectionUoWFactory
	publisher  ports.EventPublisher
}

// NewCounterSignQualityCheckCommandHandler creates a handler for the
// technician counter-signature.
func NewCounterSignQualityCheckCommandHandler(uowFactory InspectionUoWFactory, publisher ports.EventPublisher) CounterSignQualityCheckCommandHandler {
	return CounterSignQualityCheckCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the counter-signature command.
func (h CounterSignQualityCheckCommandHandler) Handle(ctx context.Context, cmd CounterSignQualityCheckCommand) error {
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

	now := time.Now()
	if err = check.CounterSign(cmd.TechnicianID(), now); err != nil {
		return err
	}

	order, err := uow.OrderRepository().Get(ctx, check.OrderID())
	if err != nil {
		return err
	}
	if check.QCPassed() {
		if err = order.PassQualityCheck(now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, order); err != nil {
			return err
		}
	}

	if err = uow.QualityCheckRepository().Update(ctx, check); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventQualityCheckClosed,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"passed": check.QCPassed()},
	})
	return nil
}
