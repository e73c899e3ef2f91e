// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the fulfillment workflow.
//
// # Available Jobs
//
// 1. StaleSessionJob - Runs every minute and logs sessions that have been open
// longer than the configured threshold, so operators can decide whether to
// finish or cancel them. The job never mutates state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getActiveSessionsHandler, staleSessionAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stale session scan logs query failures and keeps running; a transient
// database error never stops the schedule.
package jobs
