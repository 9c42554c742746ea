package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/guard"
)

var (
	ErrSignForIssuedPartsCommandIsNotConstructed = errors.New(
		"SignForIssuedPartsCommand must be created via NewSignForIssuedPartsCommand constructor",
	)
)

// SignForIssuedPartsCommand represents the technician acknowledging receipt
// of issued parts. Acknowledgment only: inventory was already debited at
// issuance.
type SignForIssuedPartsCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSignForIssuedPartsCommand creates a command for the technician receipt
// signature.
func NewSignForIssuedPartsCommand(requestID, technicianID kernel.UUID) (SignForIssuedPartsCommand, error) {
	cmd := SignForIssuedPartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return SignForIssuedPartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignForIssuedPartsCommand) Validate() error {
	return c.guard.Validate(ErrSignForIssuedPartsCommandIsNotConstructed)
}

// RequestID returns the request being acknowledged.
func (c SignForIssuedPartsCommand) RequestID() kernel.UUID {
	return c.requestID
}

// TechnicianID returns the technician signing for the parts.
func (c SignForIssuedPartsCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *SignForIssuedPartsCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *SignForIssuedPartsCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

// SignForIssuedPartsCommandHandler records the technician receipt signature
// and resumes work on the order: Waiting Parts flips back to In Progress once
// the parts are in hand. Fails with partsflow.ErrNotReadyForRelease before
// the warehouse has issued.
type SignForIssuedPartsCommandHandler struct {
	uowFactory PartsUoWFactory
}

// NewSignForIssuedPartsCommandHandler creates a handler for the receipt
// signature.
func NewSignForIssuedPartsCommandHandler(uowFactory PartsUoWFactory) SignForIssuedPartsCommandHandler {
	return SignForIssuedPartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt signature command.
func (h SignForIssuedPartsCommandHandler) Handle(ctx context.Context, cmd SignForIssuedPartsCommand) error {
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

	request, err := uow.PartsRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.AcknowledgeReceipt(cmd.TechnicianID(), time.Now()); err != nil {
		return err
	}

	order, err := uow.OrderRepository().Get(ctx, request.OrderID())
	if err != nil {
		return err
	}
	if order.Status() == serviceorder.WaitingParts {
		if err = order.ResumeWork(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, order); err != nil {
			return err
		}
	}

	if err = uow.PartsRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
