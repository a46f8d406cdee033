// Package jobs runs scheduled background tasks of the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled,
// so schedules have six fields:
//
//	jobManager := jobs.NewJobManager(backlogHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderBacklogJob logs how many orders wait in PENDING and IN_PROGRESS.
//
// # Error Handling
//
// A failing run is logged and the next run happens as scheduled.
// An invalid schedule is reported by StartAll, which stops jobs already started.
package jobs
