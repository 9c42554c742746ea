package commands

import (
	"context"
	"errors"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/guard"
)

var (
	ErrMarkPartsReadyCommandIsNotConstructed = errors.New(
		"MarkPartsReadyCommand must be created via NewMarkPartsReadyCommand constructor",
	)
)

// MarkPartsReadyCommand represents warehouse staff staging prepared parts at
// the release counter. A pure status flip with no side effects.
type MarkPartsReadyCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPartsReadyCommand creates a command to stage a prepared request.
func NewMarkPartsReadyCommand(requestID kernel.UUID) (MarkPartsReadyCommand, error) {
	cmd := MarkPartsReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestID(requestID); err != nil {
		return MarkPartsReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPartsReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkPartsReadyCommandIsNotConstructed)
}

// RequestID returns the request being staged.
func (c MarkPartsReadyCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *MarkPartsReadyCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

// MarkPartsReadyCommandHandler flips a Prepared request to Ready for Release.
type MarkPartsReadyCommandHandler struct {
	uowFactory PartsUoWFactory
}

// NewMarkPartsReadyCommandHandler creates a handler for staging parts.
func NewMarkPartsReadyCommandHandler(uowFactory PartsUoWFactory) MarkPartsReadyCommandHandler {
	return MarkPartsReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staging command.
func (h MarkPartsReadyCommandHandler) Handle(ctx context.Context, cmd MarkPartsReadyCommand) error {
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

	request, err := uow.PartsRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.MarkReadyForRelease(); err != nil {
		return err
	}

	if err = uow.PartsRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
