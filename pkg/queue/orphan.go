package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "agent", p.agent, "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs with stale heartbeats and
// re-queues them. A re-queued job keeps its retry count; store writes are
// idempotent, so a re-execution of partially completed work is safe.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().UTC().Add(-p.config.OrphanThreshold)

	orphans, err := p.store.Client().Job.Query().
		Where(
			job.AgentEQ(p.agent),
			job.StatusEQ(job.StatusInProgress),
			job.LastHeartbeatAtNotNil(),
			job.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "agent", p.agent, "count", len(orphans))

	recovered := 0
	for _, j := range orphans {
		if err := p.recoverOrphanedJob(ctx, j); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", j.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob re-queues a single orphaned job.
func (p *WorkerPool) recoverOrphanedJob(ctx context.Context, j *ent.Job) error {
	lastHeartbeat := "unknown"
	if j.LastHeartbeatAt != nil {
		lastHeartbeat = j.LastHeartbeatAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if j.PodID != nil {
		podID = *j.PodID
	}

	err := j.Update().
		SetStatus(job.StatusPending).
		ClearPodID().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue job: %w", err)
	}

	slog.Warn("Orphaned job re-queued",
		"job_id", j.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans re-queues jobs owned by this pod that were in
// progress when the pod previously crashed. Called once during startup,
// before the worker pools begin processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, j := range orphans {
		err := j.Update().
			SetStatus(job.StatusPending).
			ClearPodID().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to re-queue startup orphan",
				"job_id", j.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan re-queued", "job_id", j.ID)
	}

	return nil
}
