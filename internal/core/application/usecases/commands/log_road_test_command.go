package commands

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
	"autoshop/internal/pkg/guard"
)

var (
	ErrLogRoadTestCommandIsNotConstructed = errors.New(
		"LogRoadTestCommand must be created via NewLogRoadTestCommand constructor",
	)

	// ErrRoadTestNotAuthorized is returned when logging results without a
	// prior authorization.
	ErrRoadTestNotAuthorized = errors.New("road test has not been authorized")
)

// LogRoadTestCommand represents the tester logging a completed road test
// drive against its authorization.
type LogRoadTestCommand struct { //nolint:recvcheck //using for validation
	checkID        kernel.UUID
	testerID       kernel.UUID
	routeCompliant bool
	results        string

	guard guard.ConstructorGuard
}

// NewLogRoadTestCommand creates a command to log road test results.
func NewLogRoadTestCommand(checkID, testerID kernel.UUID, routeCompliant bool, results string) (LogRoadTestCommand, error) {
	cmd := LogRoadTestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckID(checkID),
		cmd.setTesterID(testerID),
		cmd.setResults(results),
	); err != nil {
		return LogRoadTestCommand{}, err
	}

	cmd.routeCompliant = routeCompliant
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogRoadTestCommand) Validate() error {
	return c.guard.Validate(ErrLogRoadTestCommandIsNotConstructed)
}

// CheckID returns the quality check whose road test is being logged.
func (c LogRoadTestCommand) CheckID() kernel.UUID {
	return c.checkID
}

// TesterID returns who drove the test.
func (c LogRoadTestCommand) TesterID() kernel.UUID {
	return c.testerID
}

// RouteCompliant reports whether the prescribed route was followed.
func (c LogRoadTestCommand) RouteCompliant() bool {
	return c.routeCompliant
}

// Results returns the logged observations.
func (c LogRoadTestCommand) Results() string {
	return c.results
}

func (c *LogRoadTestCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}
	c.checkID = checkID
	return nil
}

func (c *LogRoadTestCommand) setTesterID(testerID kernel.UUID) error {
	if err := testerID.Validate(); err != nil {
		return err
	}
	c.testerID = testerID
	return nil
}

func (c *LogRoadTestCommand) setResults(results string) error {
	if results == "" {
		return errs.NewValueIsRequiredError("results")
	}
	c.results = results
	return nil
}

// LogRoadTestCommandHandler logs the drive and returns the order to quality
// check for the foreman's re-review. Fails with ErrRoadTestNotAuthorized when
// no authorization exists.
type LogRoadTestCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewLogRoadTestCommandHandler creates a handler for road test logging.
func NewLogRoadTestCommandHandler(uowFactory InspectionUoWFactory) LogRoadTestCommandHandler {
	return LogRoadTestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the logging command.
func (h LogRoadTestCommandHandler) Handle(ctx context.Context, cmd LogRoadTestCommand) error {
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

	roadTest, err := uow.RoadTestRepository().GetByCheck(ctx, cmd.CheckID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrRoadTestNotAuthorized
		}
		return err
	}

	if err = roadTest.LogResults(cmd.TesterID(), cmd.RouteCompliant(), cmd.Results(), time.Now()); err != nil {
		return err
	}

	check, err := uow.QualityCheckRepository().Get(ctx, cmd.CheckID())
	if err != nil {
		return err
	}
	check.ClearRoadTestRequirement()

	order, err := uow.OrderRepository().Get(ctx, roadTest.OrderID())
	if err != nil {
		return err
	}
	if err = order.ReturnFromRoadTest(); err != nil {
		return err
	}

	if err = uow.RoadTestRepository().Update(ctx, roadTest); err != nil {
		return err
	}
	if err = uow.QualityCheckRepository().Update(ctx, check); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
