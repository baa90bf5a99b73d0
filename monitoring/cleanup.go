package monitoring

import (
	"context"
	"fmt"

	"github.com/i3T4AN/Syspulse/share/logger"
)

type CleanupTask struct {
	log     *logger.Logger
	service Service
	days    int64
}

// NewCleanupTask returns a task to cleanup measurements after the configured
// retention period.
func NewCleanupTask(log *logger.Logger, service Service, days int64) *CleanupTask {
	return &CleanupTask{
		log:     log,
		service: service,
		days:    days,
	}
}

func (t *CleanupTask) Run(ctx context.Context) error {
	deletedRecords, err := t.service.DeleteMeasurementsOlderThanDays(ctx, t.days)
	if err != nil {
		return fmt.Errorf("failed to cleanup measurements: %v", err)
	}
	t.log.Debugf("monitoring.CleanupTask: %d measurement records deleted", deletedRecords)
	return nil
}
