// Package jobs provides scheduled background tasks for the service shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order lifecycle requires.
//
// # Available Jobs
//
// 1. StaleScheduledSweepJob - Cancels Scheduled orders whose appointment date
// passed without the customer arriving.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, cancelHandler, "0 0 * * * *", 24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a six-field cron expression (seconds included). The
// default "0 0 * * * *" runs at the top of every hour, which is plenty for
// no-show detection.
//
// # Error Handling
//
// Orders that change state between the listing and the cancellation are
// skipped silently; everything else is logged and the sweep moves on to the
// next order.
package jobs
