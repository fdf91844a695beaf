package jobs

import (
	"context"
	"time"

	"clubhub-backend/internal/logger"
)

// PurgeDecidedRequests deletes membership requests that were approved or
// rejected longer ago than the retention window. Decided requests only exist
// for the audit trail; pending ones are never touched.
func (jr *JobRunner) PurgeDecidedRequests() {
	jr.runWithRecovery("purge-decided-requests", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Retention.DecidedRequestDays)

		deleted, err := jr.store.MembershipRequestRepository.DeleteDecidedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge decided requests", "error", err, "deleted_so_far", deleted)
			return
		}
		logger.Info("Purged decided membership requests", "deleted", deleted, "cutoff", cutoff.Format("2006-01-02"))
	})
}

// ReconcileProjectCounts resyncs each project's member count with the
// membership collection. The document store enforces no referential
// integrity, so counts drift when projects or memberships are edited by
// hand.
func (jr *JobRunner) ReconcileProjectCounts() {
	jr.runWithRecovery("reconcile-project-counts", func() {
		ctx := context.Background()

		projects, err := jr.store.ProjectRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list projects", "error", err)
			return
		}

		fixed := 0
		for _, project := range projects {
			count, err := jr.store.ProjectMembershipRepository.CountByProject(ctx, project.ID)
			if err != nil {
				logger.Error("Failed to count project members", "error", err, "project_id", project.ID)
				continue
			}
			if count == project.Members {
				continue
			}
			if err := jr.store.ProjectRepository.SetMemberCount(ctx, project.ID, count); err != nil {
				logger.Error("Failed to update project member count", "error", err, "project_id", project.ID)
				continue
			}
			logger.Info("Reconciled project member count", "project_id", project.ID, "was", project.Members, "now", count)
			fixed++
		}
		logger.Info("Project count reconciliation finished", "projects", len(projects), "fixed", fixed)
	})
}
