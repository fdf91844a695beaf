package jobs

import (
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/logger"
	fsrepo "clubhub-backend/internal/repository/firestore"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	store  *fsrepo.Store
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *fsrepo.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		config: cfg,
	}
}

// Config exposes the configuration for schedule registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllMaintenanceJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllMaintenanceJobs() {
	jr.PurgeDecidedRequests()
	jr.ReconcileProjectCounts()
}
