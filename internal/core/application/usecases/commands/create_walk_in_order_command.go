package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrCreateWalkInOrderCommandIsNotConstructed = errors.New(
		"CreateWalkInOrderCommand must be created via NewCreateWalkInOrderCommand constructor",
	)
)

// CreateWalkInOrderCommand represents a request to open a service order for a
// customer who arrived without an appointment. The order starts Scheduled and
// is checked in separately.
//
// Example:
//
//	cmd, err := NewCreateWalkInOrderCommand(kernel.NewUUID(), customerID, vehicleID,
//	    "SLIP-0042", []string{"oil change"}, "knocking noise at idle")
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open order: %w", err)
//	}
type CreateWalkInOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerID        kernel.UUID
	vehicleID         kernel.UUID
	slipNumber        string
	servicesRequested []string
	customerNotes     string

	guard guard.ConstructorGuard
}

// NewCreateWalkInOrderCommand creates a command to open a walk-in order.
// Requires valid identifiers, a slip number and at least one requested service.
func NewCreateWalkInOrderCommand(orderID, customerID, vehicleID kernel.UUID,
	slipNumber string, servicesRequested []string, customerNotes string) (CreateWalkInOrderCommand, error) {
	cmd := CreateWalkInOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setVehicleID(vehicleID),
		cmd.setSlipNumber(slipNumber),
		cmd.setServicesRequested(servicesRequested),
	); err != nil {
		return CreateWalkInOrderCommand{}, err
	}

	cmd.customerNotes = customerNotes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWalkInOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWalkInOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateWalkInOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the arriving customer.
func (c CreateWalkInOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the vehicle being serviced.
func (c CreateWalkInOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// SlipNumber returns the intake slip number.
func (c CreateWalkInOrderCommand) SlipNumber() string {
	return c.slipNumber
}

// ServicesRequested returns what the customer asked for.
func (c CreateWalkInOrderCommand) ServicesRequested() []string {
	return c.servicesRequested
}

// CustomerNotes returns the free-form complaint notes.
func (c CreateWalkInOrderCommand) CustomerNotes() string {
	return c.customerNotes
}

func (c *CreateWalkInOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateWalkInOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateWalkInOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateWalkInOrderCommand) setSlipNumber(slipNumber string) error {
	if slipNumber == "" {
		return errs.NewValueIsRequiredError("slipNumber")
	}
	c.slipNumber = slipNumber
	return nil
}

func (c *CreateWalkInOrderCommand) setServicesRequested(services []string) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("servicesRequested")
	}
	c.servicesRequested = services
	return nil
}

// CreateWalkInOrderCommandHandler handles walk-in intake: it opens a
// Scheduled order without an appointment reference.
type CreateWalkInOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateWalkInOrderCommandHandler creates a handler for walk-in intake.
func NewCreateWalkInOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateWalkInOrderCommandHandler {
	return CreateWalkInOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the walk-in intake command.
func (h CreateWalkInOrderCommandHandler) Handle(ctx context.Context, cmd CreateWalkInOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	intake := serviceorder.Intake{
		SlipNumber:        cmd.SlipNumber(),
		ServicesRequested: cmd.ServicesRequested(),
		CustomerNotes:     cmd.CustomerNotes(),
	}

	order, err := serviceorder.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.VehicleID(), nil, true, intake)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventOrderCreated,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"walkIn": true},
	})
	return nil
}
