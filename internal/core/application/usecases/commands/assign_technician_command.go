package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrAssignTechnicianCommandIsNotConstructed = errors.New(
		"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
	)
)

// AssignTechnicianCommand represents the job controller handing a checked-in
// order to an available technician.
//
// Example:
//
//	cmd, _ := NewAssignTechnicianCommand(orderID, techID, controllerID, 2.5)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, technician.ErrTechnicianUnavailable) {
//	    // pick someone else
//	}
type AssignTechnicianCommand struct { //nolint:recvcheck //using for validation
	assignmentID   kernel.UUID
	orderID        kernel.UUID
	technicianID   kernel.UUID
	assignedBy     kernel.UUID
	estimatedHours float64

	guard guard.ConstructorGuard
}

// NewAssignTechnicianCommand creates a command to assign a technician.
func NewAssignTechnicianCommand(assignmentID, orderID, technicianID, assignedBy kernel.UUID,
	estimatedHours float64) (AssignTechnicianCommand, error) {
	cmd := AssignTechnicianCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setOrderID(orderID),
		cmd.setTechnicianID(technicianID),
		cmd.setAssignedBy(assignedBy),
		cmd.setEstimatedHours(estimatedHours),
	); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}

// AssignmentID returns the identifier for the new assignment.
func (c AssignTechnicianCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OrderID returns the order being assigned.
func (c AssignTechnicianCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TechnicianID returns the chosen technician.
func (c AssignTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

// AssignedBy returns the job controller making the assignment.
func (c AssignTechnicianCommand) AssignedBy() kernel.UUID {
	return c.assignedBy
}

// EstimatedHours returns the controller's labor estimate.
func (c AssignTechnicianCommand) EstimatedHours() float64 {
	return c.estimatedHours
}

func (c *AssignTechnicianCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	c.assignmentID = assignmentID
	return nil
}

func (c *AssignTechnicianCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignTechnicianCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

func (c *AssignTechnicianCommand) setAssignedBy(assignedBy kernel.UUID) error {
	if err := assignedBy.Validate(); err != nil {
		return err
	}
	c.assignedBy = assignedBy
	return nil
}

func (c *AssignTechnicianCommand) setEstimatedHours(estimatedHours float64) error {
	if estimatedHours < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedHours",
			fmt.Errorf("%f is negative", estimatedHours))
	}
	c.estimatedHours = estimatedHours
	return nil
}

// AssignTechnicianCommandHandler assigns an available technician to a
// checked-in order: the order moves to In Progress, the technician goes Busy
// and an Assigned assignment record is opened, all in one transaction.
type AssignTechnicianCommandHandler struct {
	uowFactory LaborUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignTechnicianCommandHandler creates a handler for technician assignment.
func NewAssignTechnicianCommandHandler(uowFactory LaborUoWFactory, publisher ports.EventPublisher) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command. Fails with
// technician.ErrTechnicianUnavailable when the technician is busy.
func (h AssignTechnicianCommandHandler) Handle(ctx context.Context, cmd AssignTechnicianCommand) error {
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

	tech, err := uow.TechnicianRepository().Get(ctx, cmd.TechnicianID())
	if err != nil {
		return err
	}

	if err = tech.TakeAssignment(); err != nil {
		return err
	}
	if err = order.AssignTechnician(tech.ID()); err != nil {
		return err
	}

	record, err := assignment.NewAssignment(
		cmd.AssignmentID(), order.ID(), tech.ID(), cmd.AssignedBy(),
		cmd.EstimatedHours(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}
	if err = uow.TechnicianRepository().Update(ctx, tech); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventTechnicianAssigned,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"technicianId": tech.ID().String()},
	})
	return nil
}
