// Package jobs provides scheduled background tasks for the marketplace service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderEventsRelayJob - publishes order events recorded in the outbox
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay, err := jobs.NewOrderEventsRelayJob(relayHandler, "*/5 * * * * *", 100, logger)
//	jobManager := jobs.NewJobManager(logger, relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick; events stay pending
// until they are published. A failed job start stops any already running jobs.
package jobs
