package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/gatepass"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrSignGatepassCommandIsNotConstructed = errors.New(
		"SignGatepassCommand must be created via NewSignGatepassCommand constructor",
	)
)

// SignGatepassCommand represents one department filling its signature slot
// on the gatepass. The signer's role must own the slot being signed.
type SignGatepassCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	slot      gatepass.Slot
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewSignGatepassCommand creates a command to sign a gatepass slot.
func NewSignGatepassCommand(orderID kernel.UUID, slot gatepass.Slot,
	principal kernel.Principal) (SignGatepassCommand, error) {
	cmd := SignGatepassCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSlot(slot),
		cmd.setPrincipal(principal),
	); err != nil {
		return SignGatepassCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignGatepassCommand) Validate() error {
	return c.guard.Validate(ErrSignGatepassCommandIsNotConstructed)
}

// OrderID returns the order whose gatepass is being signed.
func (c SignGatepassCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Slot returns the signature slot being filled.
func (c SignGatepassCommand) Slot() gatepass.Slot {
	return c.slot
}

// Principal returns the authenticated signer.
func (c SignGatepassCommand) Principal() kernel.Principal {
	return c.principal
}

func (c *SignGatepassCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SignGatepassCommand) setSlot(slot gatepass.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	c.slot = slot
	return nil
}

func (c *SignGatepassCommand) setPrincipal(principal kernel.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

// SignGatepassCommandHandler fills a signature slot on the order's gatepass.
type SignGatepassCommandHandler struct {
	uowFactory GatepassUoWFactory
}

// NewSignGatepassCommandHandler creates a handler for gatepass signing.
func NewSignGatepassCommandHandler(uowFactory GatepassUoWFactory) SignGatepassCommandHandler {
	return SignGatepassCommandHandler{uowFactory: uowFactory}
}

// Handle processes the sign gatepass command.
func (h SignGatepassCommandHandler) Handle(ctx context.Context, cmd SignGatepassCommand) error {
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

	pass, err := uow.GatepassRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	principal := cmd.Principal()
	if err = pass.Sign(cmd.Slot(), principal.UserID(), principal.Role(), time.Now()); err != nil {
		return err
	}

	if err = uow.GatepassRepository().Update(ctx, pass); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
