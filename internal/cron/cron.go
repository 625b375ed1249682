package cron

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/config"
	robfig "github.com/robfig/cron/v3"
)

// cleanupTimeout bounds one retention run.
const cleanupTimeout = 5 * time.Minute

// StartCleanupTask runs the audit retention job once at startup and then on
// config.AuditCleanupSchedule. Stop the returned scheduler on shutdown.
func StartCleanupTask(auditService *application.AuditService) (*robfig.Cron, error) {
	c := robfig.New(robfig.WithChain(robfig.Recover(robfig.DefaultLogger)))

	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if err := auditService.CleanupOldLogs(ctx, config.AuditRetentionDays); err != nil {
			log.Printf("[cron] audit cleanup failed: %v", err)
		}
	}

	if _, err := c.AddFunc(config.AuditCleanupSchedule, job); err != nil {
		return nil, err
	}
	log.Printf("[cron] audit cleanup scheduled %q (retention: %d days)", config.AuditCleanupSchedule, config.AuditRetentionDays)

	go job()
	c.Start()
	return c, nil
}
