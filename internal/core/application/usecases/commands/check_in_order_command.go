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
	ErrCheckInOrderCommandIsNotConstructed = errors.New(
		"CheckInOrderCommand must be created via NewCheckInOrderCommand constructor",
	)
)

// CheckInOrderCommand represents the advisor recording the vehicle's arrival
// at the shop.
type CheckInOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckInOrderCommand creates a command to check a Scheduled order in.
func NewCheckInOrderCommand(orderID kernel.UUID) (CheckInOrderCommand, error) {
	cmd := CheckInOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CheckInOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckInOrderCommandIsNotConstructed)
}

// OrderID returns the order being checked in.
func (c CheckInOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CheckInOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

// CheckInOrderCommandHandler moves a Scheduled order to Checked In, stamping
// arrival and check-in times.
type CheckInOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCheckInOrderCommandHandler creates a handler for order check-in.
func NewCheckInOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CheckInOrderCommandHandler {
	return CheckInOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the check-in command.
func (h CheckInOrderCommandHandler) Handle(ctx context.Context, cmd CheckInOrderCommand) error {
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

	if err = order.CheckIn(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventOrderCheckedIn,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
	})
	return nil
}
