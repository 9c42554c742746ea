package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/partsflow"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrRequestPartsCommandIsNotConstructed = errors.New(
		"RequestPartsCommand must be created via NewRequestPartsCommand constructor",
	)
)

// RequestPartsCommand represents a technician asking the warehouse for a part
// while working an order. The requester must hold the order's active
// assignment.
type RequestPartsCommand struct { //nolint:recvcheck //using for validation
	requestID    kernel.UUID
	orderID      kernel.UUID
	technicianID kernel.UUID
	partID       kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

// NewRequestPartsCommand creates a command to file a parts request.
func NewRequestPartsCommand(requestID, orderID, technicianID, partID kernel.UUID, quantity int) (RequestPartsCommand, error) {
	cmd := RequestPartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOrderID(orderID),
		cmd.setTechnicianID(technicianID),
		cmd.setPartID(partID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RequestPartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPartsCommand) Validate() error {
	return c.guard.Validate(ErrRequestPartsCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c RequestPartsCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrderID returns the order needing the part.
func (c RequestPartsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TechnicianID returns the requesting technician.
func (c RequestPartsCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// PartID returns the requested part.
func (c RequestPartsCommand) PartID() kernel.UUID {
	return c.partID
}

// Quantity returns how many units are needed.
func (c RequestPartsCommand) Quantity() int {
	return c.quantity
}

func (c *RequestPartsCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *RequestPartsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestPartsCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

func (c *RequestPartsCommand) setPartID(partID kernel.UUID) error {
	if err := partID.Validate(); err != nil {
		return err
	}
	c.partID = partID
	return nil
}

func (c *RequestPartsCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

// RequestPartsCommandHandler files a parts request. The order keeps working
// until the warehouse confirms stock at preparation time. Requests from
// technicians without the order's active assignment are rejected as
// unauthorized.
type RequestPartsCommandHandler struct {
	uowFactory PartsUoWFactory
	publisher  ports.EventPublisher
}

// NewRequestPartsCommandHandler creates a handler for parts requests.
func NewRequestPartsCommandHandler(uowFactory PartsUoWFactory, publisher ports.EventPublisher) RequestPartsCommandHandler {
	return RequestPartsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the parts request command.
func (h RequestPartsCommandHandler) Handle(ctx context.Context, cmd RequestPartsCommand) error {
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

	active, err := uow.AssignmentRepository().GetActiveByOrder(ctx, order.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewUnauthorizedError(cmd.TechnicianID().String(), "request parts")
		}
		return err
	}
	if !active.TechnicianID().IsEqual(cmd.TechnicianID()) {
		return errs.NewUnauthorizedError(cmd.TechnicianID().String(), "request parts")
	}

	// Verify the part exists before filing the request.
	if _, err = uow.PartRepository().Get(ctx, cmd.PartID()); err != nil {
		return err
	}

	request, err := partsflow.NewRequest(
		cmd.RequestID(), order.ID(), cmd.TechnicianID(), cmd.PartID(),
		cmd.Quantity(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.PartsRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventPartsRequested,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"requestId": request.ID().String(), "quantity": cmd.Quantity()},
	})
	return nil
}
