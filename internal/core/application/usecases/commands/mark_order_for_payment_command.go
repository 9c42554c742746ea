package commands

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrMarkOrderForPaymentCommandIsNotConstructed = errors.New(
		"MarkOrderForPaymentCommand must be created via NewMarkOrderForPaymentCommand constructor",
	)
)

// MarkOrderForPaymentCommand represents the advisor handing the bill to the
// customer for settlement.
type MarkOrderForPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderForPaymentCommand creates a command to move an order to payment.
func NewMarkOrderForPaymentCommand(orderID kernel.UUID) (MarkOrderForPaymentCommand, error) {
	cmd := MarkOrderForPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderForPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderForPaymentCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderForPaymentCommandIsNotConstructed)
}

// OrderID returns the order moving to payment.
func (c MarkOrderForPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderForPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

// MarkOrderForPaymentCommandHandler moves both the order and its bill into
// the ForPayment status in a single transaction.
type MarkOrderForPaymentCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewMarkOrderForPaymentCommandHandler creates a handler for marking orders
// for payment.
func NewMarkOrderForPaymentCommandHandler(uowFactory BillingUoWFactory) MarkOrderForPaymentCommandHandler {
	return MarkOrderForPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle processes the mark for payment command.
func (h MarkOrderForPaymentCommandHandler) Handle(ctx context.Context, cmd MarkOrderForPaymentCommand) error {
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

	order, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	bill, err := uow.BillingRepository().GetByOrder(ctx, order.ID())
	if err != nil {
		return err
	}

	if err = order.MarkForPayment(); err != nil {
		return err
	}
	if err = bill.MarkForPayment(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}
	if err = uow.BillingRepository().Update(ctx, bill); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
