// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the feed-delivery service needs.
//
// # Available Jobs
//
// 1. DeliveryAssignmentJob - Runs every 30 seconds to match the oldest pending
// delivery with the least loaded available driver
// 2. VacationSyncJob - Runs daily at midnight to report drivers whose stored
// status disagrees with the approved vacations covering the day
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(autoAssignHandler, syncHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - The assignment job ignores expected business outcomes (no pending
//     deliveries, no eligible drivers)
//   - The vacation sync job logs all errors since a failed audit hides
//     status drift until the next midnight run
//   - A failed job start stops any already running jobs
package jobs
