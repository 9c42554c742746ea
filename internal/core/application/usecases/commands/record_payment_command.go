package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
)

// RecordPaymentCommand represents the cashier settling a bill. The amount
// is always the billing total, so the command only carries how the money
// arrived and who took it.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	gatepassID kernel.UUID
	method     string
	reference  string
	receivedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(orderID, gatepassID kernel.UUID,
	method, reference string, receivedBy kernel.UUID) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setGatepassID(gatepassID),
		cmd.setMethod(method),
		cmd.setReference(reference),
		cmd.setReceivedBy(receivedBy),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GatepassID returns the identifier for the gatepass opened by the payment.
func (c RecordPaymentCommand) GatepassID() kernel.UUID {
	return c.gatepassID
}

// Method returns the payment method.
func (c RecordPaymentCommand) Method() string {
	return c.method
}

// Reference returns the external payment reference, if any.
func (c RecordPaymentCommand) Reference() string {
	return c.reference
}

// ReceivedBy returns the cashier who took the payment.
func (c RecordPaymentCommand) ReceivedBy() kernel.UUID {
	return c.receivedBy
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setGatepassID(gatepassID kernel.UUID) error {
	if err := gatepassID.Validate(); err != nil {
		return err
	}
	c.gatepassID = gatepassID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setReference(reference string) error {
	c.reference = reference
	return nil
}

func (c *RecordPaymentCommand) setReceivedBy(receivedBy kernel.UUID) error {
	if err := receivedBy.Validate(); err != nil {
		return err
	}
	c.receivedBy = receivedBy
	return nil
}

// RecordPaymentCommandHandler settles the bill, marks the order paid and
// opens an empty gatepass for the release signature round.
type RecordPaymentCommandHandler struct {
	uowFactory BillingUoWFactory
	publisher  ports.EventPublisher
}

// NewRecordPaymentCommandHandler creates a handler for recording payments.
func NewRecordPaymentCommandHandler(uowFactory BillingUoWFactory,
	publisher ports.EventPublisher) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the record payment command.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	if err = bill.RecordPayment(cmd.Method(), cmd.Reference(), cmd.ReceivedBy(), time.Now()); err != nil {
		return err
	}
	if err = order.Pay(); err != nil {
		return err
	}

	pass, err := gatepass.NewGatepass(cmd.GatepassID(), order.ID(), bill.ID(), order.IsWarranty())
	if err != nil {
		return err
	}

	if err = uow.BillingRepository().Update(ctx, bill); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}
	if err = uow.GatepassRepository().Add(ctx, pass); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventPaymentRecorded,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"method": cmd.Method(), "amount": bill.Total()},
	})
	return nil
}
