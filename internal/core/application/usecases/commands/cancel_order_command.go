package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to abandon a service order. The
// cancellation cascades: an active assignment is cancelled and its technician
// freed, and an unsettled bill is voided.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order with a stated
// reason.
func NewCancelOrderCommand(orderID kernel.UUID, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns why the order was cancelled.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

// CancelOrderCommandHandler cancels an order and unwinds the work attached to
// it inside one transaction.
type CancelOrderCommandHandler struct {
	uowFactory CancelUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command. The active assignment, its
// technician and any open bill are all released in the same transaction as
// the order's terminal transition.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Cancel(); err != nil {
		return err
	}

	active, err := uow.AssignmentRepository().GetActiveByOrder(ctx, order.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if active != nil {
		if err = active.Cancel(); err != nil {
			return err
		}
		if err = uow.AssignmentRepository().Update(ctx, active); err != nil {
			return err
		}

		tech, err := uow.TechnicianRepository().Get(ctx, active.TechnicianID())
		if err != nil {
			return err
		}
		tech.ReleaseAssignment()
		if err = uow.TechnicianRepository().Update(ctx, tech); err != nil {
			return err
		}
	}

	bill, err := uow.BillingRepository().GetByOrder(ctx, order.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if bill != nil && !bill.Status().IsTerminal() {
		if err = bill.Cancel(); err != nil {
			return err
		}
		if err = uow.BillingRepository().Update(ctx, bill); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventOrderCancelled,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"reason": cmd.Reason()},
	})
	return nil
}
