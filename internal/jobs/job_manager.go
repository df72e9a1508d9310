package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	unnotifiedShipmentsJob *UnnotifiedShipmentsJob
}

func NewJobManager(
	unnotifiedReader UnnotifiedShipmentsReader,
	unnotifiedSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		unnotifiedShipmentsJob: NewUnnotifiedShipmentsJob(unnotifiedReader, unnotifiedSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.unnotifiedShipmentsJob.Start(); err != nil {
		return fmt.Errorf("failed to start unnotified shipments job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs, waiting for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.unnotifiedShipmentsJob.Stop()
}
