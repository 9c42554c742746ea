package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrAuthorizeRoadTestCommandIsNotConstructed = errors.New(
		"AuthorizeRoadTestCommand must be created via NewAuthorizeRoadTestCommand constructor",
	)
)

// AuthorizeRoadTestCommand represents an advisor or service manager
// authorizing the road test a quality check flagged.
type AuthorizeRoadTestCommand struct { //nolint:recvcheck //using for validation
	roadTestID kernel.UUID
	checkID    kernel.UUID
	authorizer kernel.Principal

	guard guard.ConstructorGuard
}

// NewAuthorizeRoadTestCommand creates a command to authorize a road test.
func NewAuthorizeRoadTestCommand(roadTestID, checkID kernel.UUID, authorizer kernel.Principal) (AuthorizeRoadTestCommand, error) {
	cmd := AuthorizeRoadTestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRoadTestID(roadTestID),
		cmd.setCheckID(checkID),
		cmd.setAuthorizer(authorizer),
	); err != nil {
		return AuthorizeRoadTestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthorizeRoadTestCommand) Validate() error {
	return c.guard.Validate(ErrAuthorizeRoadTestCommandIsNotConstructed)
}

// RoadTestID returns the identifier for the new road test.
func (c AuthorizeRoadTestCommand) RoadTestID() kernel.UUID {
	return c.roadTestID
}

// CheckID returns the quality check needing the road test.
func (c AuthorizeRoadTestCommand) CheckID() kernel.UUID {
	return c.checkID
}

// Authorizer returns who authorizes the road test.
func (c AuthorizeRoadTestCommand) Authorizer() kernel.Principal {
	return c.authorizer
}

func (c *AuthorizeRoadTestCommand) setRoadTestID(roadTestID kernel.UUID) error {
	if err := roadTestID.Validate(); err != nil {
		return err
	}
	c.roadTestID = roadTestID
	return nil
}

func (c *AuthorizeRoadTestCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}
	c.checkID = checkID
	return nil
}

func (c *AuthorizeRoadTestCommand) setAuthorizer(authorizer kernel.Principal) error {
	if err := authorizer.Validate(); err != nil {
		return err
	}
	c.authorizer = authorizer
	return nil
}

// AuthorizeRoadTestCommandHandler creates the road test record, the
// authorization the tester needs before driving. Only advisors and service
// managers may authorize.
type AuthorizeRoadTestCommandHandler struct {
	uowFactory InspectionUoWFactory
	publisher  ports.EventPublisher
}

// NewAuthorizeRoadTestCommandHandler creates a handler for road test
// authorization.
func NewAuthorizeRoadTestCommandHandler(uowFactory InspectionUoWFactory, publisher ports.EventPublisher) AuthorizeRoadTestCommandHandler {
	return AuthorizeRoadTestCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the authorization command.
func (h AuthorizeRoadTestCommandHandler) Handle(ctx context.Context, cmd AuthorizeRoadTestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	authorizer := cmd.Authorizer()
	if !authorizer.HasRole(kernel.RoleAdvisor, kernel.RoleServiceManager) {
		return errs.NewUnauthorizedError(authorizer.Role().String(), "authorize road test")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	check, err := uow.QualityCheckRepository().Get(ctx, cmd.CheckID())
	if err != nil {
		return err
	}
	if !check.RoadTestRequired() {
		return errs.NewInvalidStateError("quality check", "authorize road test", check.OverallStatus().String())
	}

	roadTest, err := inspection.NewRoadTest(
		cmd.RoadTestID(), check.ID(), check.OrderID(), authorizer.UserID(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.RoadTestRepository().Add(ctx, roadTest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Name:       ports.EventRoadTestAuthorized,
		OrderID:    check.OrderID(),
		OccurredAt: time.Now(),
		Data:       map[string]any{"roadTestId": roadTest.ID().String()},
	})
	return nil
}
