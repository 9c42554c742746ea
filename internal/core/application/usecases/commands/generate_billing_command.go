package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/services"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrGenerateBillingCommandIsNotConstructed = errors.New(
		"GenerateBillingCommand must be created via NewGenerateBillingCommand constructor",
	)
)

// GenerateBillingCommand represents the accounting request to compute the
// bill for an order that passed quality check.
//
// Example:
//
//	cmd, _ := NewGenerateBillingCommand(billingID, orderID, 20, 0)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, billing.ErrAlreadyBilled) {
//	    // bills are never recomputed
//	}
type GenerateBillingCommand struct { //nolint:recvcheck //using for validation
	billingID         kernel.UUID
	orderID           kernel.UUID
	discount          float64
	warrantyDeduction float64

	guard guard.ConstructorGuard
}

// NewGenerateBillingCommand creates a command to generate a bill.
func NewGenerateBillingCommand(billingID, orderID kernel.UUID, discount, warrantyDeduction float64) (GenerateBillingCommand, error) {
	cmd := GenerateBillingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBillingID(billingID),
		cmd.setOrderID(orderID),
		cmd.setDeductions(discount, warrantyDeduction),
	); err != nil {
		return GenerateBillingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateBillingCommand) Validate() error {
	return c.guard.Validate(ErrGenerateBillingCommandIsNotConstructed)
}

// BillingID returns the identifier for the new billing record.
func (c GenerateBillingCommand) BillingID() kernel.UUID {
	return c.billingID
}

// OrderID returns the order being billed.
func (c GenerateBillingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Discount returns the requested discount amount.
func (c GenerateBillingCommand) Discount() float64 {
	return c.discount
}

// WarrantyDeduction returns the warranty-covered amount.
func (c GenerateBillingCommand) WarrantyDeduction() float64 {
	return c.warrantyDeduction
}

func (c *GenerateBillingCommand) setBillingID(billingID kernel.UUID) error {
	if err := billingID.Validate(); err != nil {
		return err
	}
	c.billingID = billingID
	return nil
}

func (c *GenerateBillingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *GenerateBillingCommand) setDeductions(discount, warrantyDeduction float64) error {
	if discount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%f is negative", discount))
	}
	if warrantyDeduction < 0 {
		return errs.NewValueIsInvalidErrorWithCause("warrantyDeduction",
			fmt.Errorf("%f is negative", warrantyDeduction))
	}
	c.discount = discount
	c.warrantyDeduction = warrantyDeduction
	return nil
}

// GenerateBillingCommandHandler computes the bill from completed labor and
// issued parts, attaches it to the order and completes the order. A second
// generation for the same order fails with billing.ErrAlreadyBilled.
type GenerateBillingCommandHandler struct {
	uowFactory BillingUoWFactory
	calculator services.BillingCalculator
	publisher  ports.EventPublisher
}

// NewGenerateBillingCommandHandler creates a handler for billing generation.
func NewGenerateBillingCommandHandler(uowFactory BillingUoWFactory,
	calculator services.BillingCalculator, publisher ports.EventPublisher) GenerateBillingCommandHandler {
	return GenerateBillingCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		publisher:  publisher,
	}
}

// Handle processes the billing generation command.
func (h GenerateBillingCommandHandler) Handle(ctx context.Context, cmd GenerateBillingCommand) error {
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

	existing, err := uow.BillingRepository().GetByOrder(ctx, order.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return billing.ErrAlreadyBilled
	}

	assignments, err := uow.AssignmentRepository().GetAllByOrder(ctx, order.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	requests, err := uow.PartsRequestRepository().GetAllByOrder(ctx, order.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	techNames := make(map[string]string)
	for _, record := range assignments {
		id := record.TechnicianID()
		if _, ok := techNames[id.String()]; ok {
			continue
		}
		tech, err := uow.TechnicianRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		techNames[id.String()] = tech.Name()
	}

	partNames := make(map[string]string)
	for _, request := range requests {
		id := request.PartID()
		if _, ok := partNames[id.String()]; ok {
			continue
		}
		stocked, err := uow.PartRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		partNames[id.String()] = stocked.Name()
	}

	now := time.Now()
	seq, err := uow.BillingRepository().NextSequence(ctx, now)
	if err != nil {
		return err
	}

	bill, err := h.calculator.Calculate(
		cmd.BillingID(), order.ID(), billing.FormatNumber(now, seq),
		assignments, techNames, requests, partNames,
		cmd.Discount(), cmd.WarrantyDeduction(), now)
	if err != nil {
		return err
	}

	if err = order.AttachBilling(bill.ID(), bill.Total()); err != nil {
		return err
	}

	if err = uow.BillingRepository().Add(ctx, bill); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventBillingGenerated,
		OrderID:    order.ID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"number": bill.Number(), "total": bill.Total()},
	})
	return nil
}
