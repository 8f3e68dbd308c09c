// Package jobs provides scheduled background tasks for the delivery tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs never take part in a request; they only read the leg store.
//
// # Available Jobs
//
// 1. StaleDispatchJob - counts legs that have stayed DISPATCHED longer than a
// threshold, logs each one and publishes the counts per leg kind
//
// # Usage
//
//	jobManager := jobs.NewJobManager(staleHandler, metrics, jobs.StaleDispatchSettings{
//		Threshold: 72 * time.Hour,
//		Schedule:  "*/15 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and leaves the previously published counts in place.
// An invalid schedule is reported by StartAll.
package jobs
