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
	ErrCreateAppointmentOrderCommandIsNotConstructed = errors.New(
		"CreateAppointmentOrderCommand must be created via NewCreateAppointmentOrderCommand constructor",
	)
)

// CreateAppointmentOrderCommand represents a request to convert a confirmed
// appointment into a Scheduled service order.
type CreateAppointmentOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerID        kernel.UUID
	vehicleID         kernel.UUID
	appointmentID     kernel.UUID
	appointmentDate   time.Time
	slipNumber        string
	servicesRequested []string
	customerNotes     string
	isWarranty        bool
	warrantyType      string

	guard guard.ConstructorGuard
}

// NewCreateAppointmentOrderCommand creates a command to convert an
// appointment. Warranty orders must name their warranty type; it drives the
// gatepass warranty slot later.
func NewCreateAppointmentOrderCommand(orderID, customerID, vehicleID, appointmentID kernel.UUID,
	appointmentDate time.Time, slipNumber string, servicesRequested []string,
	customerNotes string, isWarranty bool, warrantyType string) (CreateAppointmentOrderCommand, error) {
	cmd := CreateAppointmentOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setVehicleID(vehicleID),
		cmd.setAppointmentID(appointmentID),
		cmd.setSlipNumber(slipNumber),
		cmd.setServicesRequested(servicesRequested),
		cmd.setWarranty(isWarranty, warrantyType),
	); err != nil {
		return CreateAppointmentOrderCommand{}, err
	}

	cmd.appointmentDate = appointmentDate
	cmd.customerNotes = customerNotes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAppointmentOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateAppointmentOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateAppointmentOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the booked customer.
func (c CreateAppointmentOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the vehicle being serviced.
func (c CreateAppointmentOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// AppointmentID returns the originating appointment.
func (c CreateAppointmentOrderCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// AppointmentDate returns when the customer is expected.
func (c CreateAppointmentOrderCommand) AppointmentDate() time.Time {
	return c.appointmentDate
}

// SlipNumber returns the intake slip number.
func (c CreateAppointmentOrderCommand) SlipNumber() string {
	return c.slipNumber
}

// ServicesRequested returns what was booked.
func (c CreateAppointmentOrderCommand) ServicesRequested() []string {
	return c.servicesRequested
}

// CustomerNotes returns the free-form complaint notes.
func (c CreateAppointmentOrderCommand) CustomerNotes() string {
	return c.customerNotes
}

// IsWarranty reports whether the visit is a warranty claim.
func (c CreateAppointmentOrderCommand) IsWarranty() bool {
	return c.isWarranty
}

// WarrantyType returns the claim type for warranty visits.
func (c CreateAppointmentOrderCommand) WarrantyType() string {
	return c.warrantyType
}

func (c *CreateAppointmentOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateAppointmentOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateAppointmentOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *CreateAppointmentOrderCommand) setAppointmentID(appointmentID kernel.UUID) error {
	if err := appointmentID.Validate(); err != nil {
		return err
	}
	c.appointmentID = appointmentID
	return nil
}

func (c *CreateAppointmentOrderCommand) setSlipNumber(slipNumber string) error {
	if slipNumber == "" {
		return errs.NewValueIsRequiredError("slipNumber")
	}
	c.slipNumber = slipNumber
	return nil
}

func (c *CreateAppointmentOrderCommand) setServicesRequested(services []string) error {
	if len(services) == 0 {
		return errs.NewValueIsRequiredError("servicesRequested")
	}
	c.servicesRequested = services
	return nil
}

func (c *CreateAppointmentOrderCommand) setWarranty(isWarranty bool, warrantyType string) error {
	if isWarranty && warrantyType == "" {
		return errs.NewValueIsRequiredError("warrantyType")
	}
	c.isWarranty = isWarranty
	c.warrantyType = warrantyType
	return nil
}

// CreateAppointmentOrderCommandHandler converts appointments into Scheduled
// service orders, carrying the warranty flag that later gates the release.
type CreateAppointmentOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateAppointmentOrderCommandHandler creates a handler for appointment conversion.
func NewCreateAppointmentOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CreateAppointmentOrderCommandHandler {
	return CreateAppointmentOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the appointment conversion command.
func (h CreateAppointmentOrderCommandHandler) Handle(ctx context.Context, cmd CreateAppointmentOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	appointmentID := cmd.AppointmentID()
	appointmentDate := cmd.AppointmentDate()
	intake := serviceorder.Intake{
		SlipNumber:        cmd.SlipNumber(),
		AppointmentDate:   &appointmentDate,
		ServicesRequested: cmd.ServicesRequested(),
		CustomerNotes:     cmd.CustomerNotes(),
	}

	order, err := serviceorder.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.VehicleID(), &appointmentID, false, intake)
	if err != nil {
		return err
	}
	if cmd.IsWarranty() {
		if err = order.FlagWarranty(cmd.WarrantyType()); err != nil {
			return err
		}
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
		Data:       map[string]any{"walkIn": false, "warranty": cmd.IsWarranty()},
	})
	return nil
}
