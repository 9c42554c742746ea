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
	ErrIssuePartsCommandIsNotConstructed = errors.New(
		"IssuePartsCommand must be created via NewIssuePartsCommand constructor",
	)
)

// IssuePartsCommand represents the warehouse releasing staged parts: the
// warehouse signature lands on the issuance and the inventory ledger is
// debited, both in one transaction.
type IssuePartsCommand struct { //nolint:recvcheck //using for validation
	requestID        kernel.UUID
	warehouseStaffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssuePartsCommand creates a command to issue a staged request.
func NewIssuePartsCommand(requestID, warehouseStaffID kernel.UUID) (IssuePartsCommand, error) {
	cmd := IssuePartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setWarehouseStaffID(warehouseStaffID),
	); err != nil {
		return IssuePartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssuePartsCommand) Validate() error {
	return c.guard.Validate(ErrIssuePartsCommandIsNotConstructed)
}

// RequestID returns the request being issued.
func (c IssuePartsCommand) RequestID() kernel.UUID {
	return c.requestID
}

// WarehouseStaffID returns who releases the parts.
func (c IssuePartsCommand) WarehouseStaffID() kernel.UUID {
	return c.warehouseStaffID
}

func (c *IssuePartsCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *IssuePartsCommand) setWarehouseStaffID(warehouseStaffID kernel.UUID) error {
	if err := warehouseStaffID.Validate(); err != nil {
		return err
	}
	c.warehouseStaffID = warehouseStaffID
	return nil
}

// IssuePartsCommandHandler performs the Issued transition: warehouse
// signature plus the single inventory debit. The debit is a conditional
// decrement, so a concurrent issuance of the last units fails with
// part.ErrInsufficientStock and rolls the whole transition back. Re-issuing
// fails with partsflow.ErrAlreadyIssued.
type IssuePartsCommandHandler struct {
	uowFactory PartsUoWFactory
	publisher  ports.EventPublisher
}

// NewIssuePartsCommandHandler creates a handler for parts issuance.
func NewIssuePartsCommandHandler(uowFactory PartsUoWFactory, publisher ports.EventPublisher) IssuePartsCommandHandler {
	return IssuePartsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the issuance command.
func (h IssuePartsCommandHandler) Handle(ctx context.Context, cmd IssuePartsCommand) error {
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

	if err = request.Issue(cmd.WarehouseStaffID(), time.Now()); err != nil {
		return err
	}

	if err = uow.PartRepository().DebitOnHand(ctx, request.PartID(), request.Quantity()); err != nil {
		return err
	}

	if err = uow.PartsRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventPartsIssued,
		OrderID:    request.OrderID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"requestId": request.ID().String()},
	})
	return nil
}
