package commands

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrReturnToAdvisorCommandIsNotConstructed = errors.New(
		"ReturnToAdvisorCommand must be created via NewReturnToAdvisorCommand constructor",
	)

	// ErrNoCompletedWork is returned when returning an order with no
	// completed assignment to bill hours from.
	ErrNoCompletedWork = errors.New("order has no completed assignment")
)

// ReturnToAdvisorCommand represents handing a repaired vehicle back to the
// advisor for quality check: the latest completed assignment's billable hours
// are copied onto the order and the order moves to Quality Check.
type ReturnToAdvisorCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReturnToAdvisorCommand creates a command to send an order to quality
// check.
func NewReturnToAdvisorCommand(orderID kernel.UUID) (ReturnToAdvisorCommand, error) {
	cmd := ReturnToAdvisorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReturnToAdvisorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnToAdvisorCommand) Validate() error {
	return c.guard.Validate(ErrReturnToAdvisorCommandIsNotConstructed)
}

// OrderID returns the order being returned.
func (c ReturnToAdvisorCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReturnToAdvisorCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

// ReturnToAdvisorCommandHandler moves a worked order into Quality Check,
// copying the completed labor hours onto the order for billing.
type ReturnToAdvisorCommandHandler struct {
	uowFactory LaborUoWFactory
}

// NewReturnToAdvisorCommandHandler creates a handler for returning orders to
// the advisor.
func NewReturnToAdvisorCommandHandler(uowFactory LaborUoWFactory) ReturnToAdvisorCommandHandler {
	return ReturnToAdvisorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return command. The order must have at least one
// completed assignment; its billable hours travel with the order.
func (h ReturnToAdvisorCommandHandler) Handle(ctx context.Context, cmd ReturnToAdvisorCommand) error {
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

	records, err := uow.AssignmentRepository().GetAllByOrder(ctx, order.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	var hours float64
	completed := false
	for _, record := range records {
		if record.Status() == assignment.StatusCompleted {
			hours += record.BillableHours()
			completed = true
		}
	}
	if !completed {
		return ErrNoCompletedWork
	}

	if err = order.SendToQualityCheck(hours); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
