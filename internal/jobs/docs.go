// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run alongside the console.
//
// # Available Jobs
//
// 1. KitchenReportJob - Periodically logs every order still in flight so
// operators can watch the kitchen load.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(users, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The report spec uses the six-field cron format with a seconds field, so
// sub-minute intervals are possible. The interval is configuration-driven.
//
// # Error Handling
//
// Report failures are logged and the job keeps running; a failed job start
// aborts application startup.
package jobs
