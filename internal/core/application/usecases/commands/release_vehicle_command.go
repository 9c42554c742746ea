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
	ErrReleaseVehicleCommandIsNotConstructed = errors.New(
		"ReleaseVehicleCommand must be created via NewReleaseVehicleCommand constructor",
	)
)

// ReleaseVehicleCommand represents security handing the vehicle back to the
// customer at the gate. Only a fully signed gatepass lets the vehicle out.
type ReleaseVehicleCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewReleaseVehicleCommand creates a command to release a vehicle.
func NewReleaseVehicleCommand(orderID kernel.UUID, principal kernel.Principal) (ReleaseVehicleCommand, error) {
	cmd := ReleaseVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
	); err != nil {
		return ReleaseVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseVehicleCommand) Validate() error {
	return c.guard.Validate(ErrReleaseVehicleCommandIsNotConstructed)
}

// OrderID returns the order whose vehicle leaves the premises.
func (c ReleaseVehicleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the authenticated security officer.
func (c ReleaseVehicleCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *ReleaseVehicleCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReleaseVehicleCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

// ReleaseVehicleCommandHandler closes the order lifecycle: the gatepass is
// marked released and the order moves to its terminal Released status.
type ReleaseVehicleCommandHandler struct {
	uowFactory GatepassUoWFactory
	publisher  ports.EventPublisher
}

// NewReleaseVehicleCommandHandler creates a handler for vehicle release.
func NewReleaseVehicleCommandHandler(uowFactory GatepassUoWFactory,
	publisher ports.EventPublisher) ReleaseVehicleCommandHandler {
	return ReleaseVehicleCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle processes the release vehicle command.
func (h ReleaseVehicleCommandHandler) Handle(ctx context.Context, cmd ReleaseVehicleCommand) error {
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

	pass, err := uow.GatepassRepository().GetByOrder(ctx, order.ID())
	if err != nil {
		return err
	}

	principal := cmd.Principal()
	if err = pass.Release(principal.UserID(), principal.Role(), time.Now()); err != nil {
		return err
	}
	if err = order.Release(); err != nil {
		return err
	}

	if err = uow.GatepassRepository().Update(ctx, pass); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventVehicleReleased,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"releasedBy": principal.UserID().String()},
	})
	return nil
}
