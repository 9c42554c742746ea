package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"autoshop/internal/core/application/usecases/commands"
	"autoshop/internal/core/ports"
	"autoshop/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// noShowReason is recorded on orders cancelled by the sweep.
const noShowReason = "customer did not arrive for the appointment"

// StaleScheduledSweepJob cancels Scheduled orders whose appointment date has
// passed without the customer showing up. Runs on a configurable cron
// schedule, typically hourly.
type StaleScheduledSweepJob struct {
	uowFactory    ports.UnitOfWorkFactory
	cancelHandler commands.CancelOrderCommandHandler
	schedule      string
	maxAge        time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleScheduledSweepJob creates the no-show sweep. maxAge is how long
// past its appointment date a Scheduled order may linger before it is
// cancelled.
func NewStaleScheduledSweepJob(
	uowFactory ports.UnitOfWorkFactory,
	cancelHandler commands.CancelOrderCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleScheduledSweepJob {
	return &StaleScheduledSweepJob{
		uowFactory:    uowFactory,
		cancelHandler: cancelHandler,
		schedule:      schedule,
		maxAge:        maxAge,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "stale_scheduled_sweep_job"),
	}
}

// Start begins the sweep on its configured schedule.
func (j *StaleScheduledSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale scheduled order sweep started",
		"schedule", j.schedule, "maxAge", j.maxAge.String())
	return nil
}

// Stop stops the sweep.
func (j *StaleScheduledSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale scheduled order sweep stopped")
}

func (j *StaleScheduledSweepJob) sweep() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.maxAge)

	orders, err := j.uowFactory.Create().OrderRepository().GetAllScheduledBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed to list orders", "error", err)
		return
	}

	for _, order := range orders {
		cmd, err := commands.NewCancelOrderCommand(order.ID(), noShowReason)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed to build cancel command",
				"orderID", order.ID(), "error", err)
			continue
		}

		if err = j.cancelHandler.Handle(ctx, cmd); err != nil {
			// Another actor may check the order in between the listing and
			// the cancellation; that is not a sweep failure.
			if errors.Is(err, errs.ErrInvalidState) || errors.Is(err, errs.ErrObjectNotFound) ||
			errors.Is(err, errs.ErrVersionConflict) {
				continue
			}
			j.logger.ErrorContext(ctx, "Stale order sweep failed to cancel order",
				"orderID", order.ID(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Cancelled no-show order", "orderID", order.ID())
	}
}
