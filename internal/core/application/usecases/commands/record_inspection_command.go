package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrRecordInspectionCommandIsNotConstructed = errors.New(
		"RecordInspectionCommand must be created via NewRecordInspectionCommand constructor",
	)
)

// InspectionItemInput is one itemized result the foreman records.
type InspectionItemInput struct {
	Name   string
	Status inspection.ItemStatus
	Notes  string
}

// RecordInspectionCommand represents the foreman recording itemized
// inspection results and an overall verdict for an order in quality check.
type RecordInspectionCommand struct { //nolint:recvcheck //using for validation
	checkID   kernel.UUID
	orderID   kernel.UUID
	foremanID kernel.UUID
	items     []InspectionItemInput
	overall   inspection.OverallStatus

	guard guard.ConstructorGuard
}

// NewRecordInspectionCommand creates a command to record inspection results.
// checkID names the quality check to create when the order has none yet.
func NewRecordInspectionCommand(checkID, orderID, foremanID kernel.UUID,
	items []InspectionItemInput, overall inspection.OverallStatus) (RecordInspectionCommand, error) {
	cmd := RecordInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckID(checkID),
		cmd.setOrderID(orderID),
		cmd.setForemanID(foremanID),
		cmd.setItems(items),
		cmd.setOverall(overall),
	); err != nil {
		return RecordInspectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordInspectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordInspectionCommandIsNotConstructed)
}

// CheckID returns the identifier for the quality check.
func (c RecordInspectionCommand) CheckID() kernel.UUID {
	return c.checkID
}

// OrderID returns the order under inspection.
func (c RecordInspectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ForemanID returns the inspecting foreman.
func (c RecordInspectionCommand) ForemanID() kernel.UUID {
	return c.foremanID
}

// Items returns the itemized results.
func (c RecordInspectionCommand) Items() []InspectionItemInput {
	return c.items
}

// Overall returns the summary verdict.
func (c RecordInspectionCommand) Overall() inspection.OverallStatus {
	return c.overall
}

func (c *RecordInspectionCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}
	c.checkID = checkID
	return nil
}

func (c *RecordInspectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordInspectionCommand) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return err
	}
	c.foremanID = foremanID
	return nil
}

func (c *RecordInspectionCommand) setItems(items []InspectionItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

func (c *RecordInspectionCommand) setOverall(overall inspection.OverallStatus) error {
	if err := overall.Validate(); err != nil {
		return err
	}
	c.overall = overall
	return nil
}

// RecordInspectionCommandHandler records inspection results, opening the
// quality check on first use. A Requires Road Test verdict parks the order in
// Waiting Road Test.
type RecordInspectionCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewRecordInspectionCommandHandler creates a handler for recording
// inspections.
func NewRecordInspectionCommandHandler(uowFactory InspectionUoWFactory) RecordInspectionCommandHandler {
	return RecordInspectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record command. The counter-signing technician is
// taken from the order's most recent completed assignment.
func (h RecordInspectionCommandHandler) Handle(ctx context.Context, cmd RecordInspectionCommand) error {
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

	check, err := uow.QualityCheckRepository().GetByOrder(ctx, order.ID())
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		check, err = h.openCheck(ctx, uow, cmd, order.ID())
		created = true
	}
	if err != nil {
		return err
	}

	items := make([]inspection.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := inspection.NewItem(input.Name, input.Status, input.Notes)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	if err = check.RecordResults(items, cmd.Overall()); err != nil {
		return err
	}

	if created {
		if err = order.AttachQualityCheck(check.ID()); err != nil {
			return err
		}
		if err = uow.QualityCheckRepository().Add(ctx, check); err != nil {
			return err
		}
	} else if err = uow.QualityCheckRepository().Update(ctx, check); err != nil {
		return err
	}

	if check.RoadTestRequired() {
		if err = order.RequireRoadTest(); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RecordInspectionCommandHandler) openCheck(ctx context.Context, uow InspectionUoW,
	cmd RecordInspectionCommand, orderID kernel.UUID) (*inspection.QualityCheck, error) {
	records, err := uow.AssignmentRepository().GetAllByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var technicianID *kernel.UUID
	for _, record := range records {
		if record.Status() == assignment.StatusCompleted {
			id := record.TechnicianID()
			technicianID = &id
		}
	}
	if technicianID == nil {
		return nil, ErrNoCompletedWork
	}

	return inspection.NewQualityCheck(cmd.CheckID(), orderID, *technicianID, cmd.ForemanID(), time.Now())
}
