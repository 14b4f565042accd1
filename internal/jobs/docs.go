// Package jobs provides scheduled background tasks for the lifecycle engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the logistics portal.
//
// # Available Jobs
//
// 1. OverdueSweepJob - Runs hourly to find parcels and shipments stuck past
// their expected dwell time and raise overdue alerts through the action
// dispatcher.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(overdueParcelsHandler, overdueShipmentsHandler, dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep logs query failures and continues; a failed alert for one entity
// never aborts the rest of the pass.
package jobs
