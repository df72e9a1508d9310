// Package jobs provides scheduled background tasks for the storefront back office.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// UnnotifiedShipmentsJob - every five minutes by default, logs a warning for
// each Shipped order whose tracking notification was never sent (usually
// after a PARTIAL_SUCCESS transition). Operators resend from the order page;
// the job itself never contacts customers.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(unnotifiedHandler, config.UnnotifiedReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
package jobs
