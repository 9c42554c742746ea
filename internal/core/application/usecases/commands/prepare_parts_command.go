package commands

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/guard"
)

var (
	ErrPreparePartsCommandIsNotConstructed = errors.New(
		"PreparePartsCommand must be created via NewPreparePartsCommand constructor",
	)
)

// PreparePartsCommand represents warehouse staff pulling a requested part
// from the shelf: a read-only stock check plus the issuance shell with the
// unit price captured now.
type PreparePartsCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	issuanceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPreparePartsCommand creates a command to prepare a parts request.
func NewPreparePartsCommand(requestID, issuanceID kernel.UUID) (PreparePartsCommand, error) {
	cmd := PreparePartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setIssuanceID(issuanceID),
	); err != nil {
		return PreparePartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PreparePartsCommand) Validate() error {
	return c.guard.Validate(ErrPreparePartsCommandIsNotConstructed)
}

// RequestID returns the request being prepared.
func (c PreparePartsCommand) RequestID() kernel.UUID {
	return c.requestID
}

// IssuanceID returns the identifier for the new issuance record.
func (c PreparePartsCommand) IssuanceID() kernel.UUID {
	return c.issuanceID
}

func (c *PreparePartsCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *PreparePartsCommand) setIssuanceID(issuanceID kernel.UUID) error {
	if err := issuanceID.Validate(); err != nil {
		return err
	}
	c.issuanceID = issuanceID
	return nil
}

// PreparePartsCommandHandler confirms stock for a request and creates its
// issuance shell, parking the order in Waiting Parts. Fails with
// part.ErrInsufficientStock when fewer units are on hand than requested, in
// which case the order keeps working; nothing is debited here.
type PreparePartsCommandHandler struct {
	uowFactory PartsUoWFactory
}

// NewPreparePartsCommandHandler creates a handler for parts preparation.
func NewPreparePartsCommandHandler(uowFactory PartsUoWFactory) PreparePartsCommandHandler {
	return PreparePartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparation command.
func (h PreparePartsCommandHandler) Handle(ctx context.Context, cmd PreparePartsCommand) error {
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

	stocked, err := uow.PartRepository().Get(ctx, request.PartID())
	if err != nil {
		return err
	}

	if err = stocked.CheckAvailability(request.Quantity()); err != nil {
		return err
	}

	if err = request.Prepare(cmd.IssuanceID(), stocked.Price()); err != nil {
		return err
	}

	if err = uow.PartsRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	order, err := uow.OrderRepository().Get(ctx, request.OrderID())
	if err != nil {
		return err
	}
	if order.Status() == serviceorder.InProgress {
		if err = order.WaitForParts(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, order); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
