package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/store"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// claimPriorities is the claim order: high-priority jobs drain first, FIFO
// within each priority.
var claimPriorities = []job.Priority{job.PriorityHigh, job.PriorityMedium, job.PriorityLow}

// JobRegistry is the subset of Pool used by Worker for cancel registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// Worker is a single queue worker that polls for and processes one agent's
// jobs. Every claimed job passes through the policy engine before execution;
// the worker enforces the decision (defer, skip, DLQ) and performs terminal
// bookkeeping on completion or failure.
type Worker struct {
	id       string
	podID    string
	agent    job.Agent
	store    *store.Store
	orch     *orchestrator.Orchestrator
	config   *config.QueueConfig
	executor JobExecutor
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker for one agent.
func NewWorker(id, podID string, agent job.Agent, st *store.Store, orch *orchestrator.Orchestrator, cfg *config.QueueConfig, executor JobExecutor, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		agent:        agent,
		store:        st,
		orch:         orch,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        w.status,
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID, "agent", w.agent)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) || errors.Is(err, errJobDeferred) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// errJobDeferred signals a claimed job was released back to pending because
// policy said retry_in; the poll interval paces the next claim attempt.
var errJobDeferred = errors.New("job deferred by policy")

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, gates it through policy, and
// executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check per-agent capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkersPerAgent and mitigated by poll jitter).
	activeCount, err := w.store.Client().Job.Query().
		Where(job.AgentEQ(w.agent), job.StatusEQ(job.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentPerAgent {
		return ErrAtCapacity
	}

	// 2. Claim next job
	j, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "job_type", j.JobType, "worker_id", w.id)
	log.Info("Job claimed")

	// 3. Policy gate. The dispatcher evaluated at enqueue time; state may
	//    have moved since, and retries re-enter here with their backoff.
	state, err := w.orch.SnapshotSystemState(ctx)
	if err != nil {
		w.releaseJob(ctx, j.ID)
		return fmt.Errorf("snapshotting system state: %w", err)
	}
	decision := w.orch.Engine().Evaluate(jobPolicyContext(j), state, orchestrator.OverridesFromPayload(j.PolicyOverrides))
	switch decision.Action {
	case policy.ActionRetryIn:
		log.Debug("Job deferred", "delay_sec", decision.DelaySec, "reason", decision.Reason)
		w.releaseJob(ctx, j.ID)
		return errJobDeferred
	case policy.ActionSkip:
		log.Info("Job skipped", "reason", decision.Reason)
		if err := w.store.DeleteJob(ctx, j.ID); err != nil {
			return fmt.Errorf("deleting skipped job: %w", err)
		}
		w.audit(ctx, "job_skipped", map[string]interface{}{
			"job_id":   j.ID,
			"job_type": string(j.JobType),
			"reason":   decision.Reason,
		})
		return nil
	case policy.ActionDLQ:
		log.Warn("Job routed to DLQ before execution", "reason", decision.Reason)
		return w.routeDLQ(ctx, j, decision)
	}

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Create job context with timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// 5. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(j.ID, cancelJob)
	defer w.pool.UnregisterJob(j.ID)

	// 6. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, j.ID)

	// 7. Execute
	execErr := w.executor.Execute(jobCtx, j)

	// 8. Stop heartbeat
	cancelHeartbeat()

	// Terminal bookkeeping runs on a background context: the job context may
	// already be cancelled or past its deadline.
	if execErr == nil {
		if err := w.completeJob(context.Background(), j); err != nil {
			log.Error("Failed to complete job", "error", err)
			return err
		}
		w.recordProcessed()
		log.Info("Job processing complete")
		return nil
	}

	// Shutdown, not failure: release the claim without burning a retry.
	if errors.Is(execErr, context.Canceled) && ctx.Err() != nil {
		log.Info("Job interrupted by shutdown, releasing")
		w.releaseJob(context.Background(), j.ID)
		return nil
	}

	if err := w.handleFailure(context.Background(), j, execErr); err != nil {
		log.Error("Failed to record job failure", "error", err)
		return err
	}
	w.recordProcessed()
	log.Warn("Job failed", "error", execErr)
	return nil
}

// claimNextJob atomically claims the next pending job for this agent using
// FOR UPDATE SKIP LOCKED, draining priorities in order and FIFO within each.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.store.Client().Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var claimed *ent.Job
	for _, priority := range claimPriorities {
		j, err := tx.Job.Query().
			Where(
				job.AgentEQ(w.agent),
				job.StatusEQ(job.StatusPending),
				job.PriorityEQ(priority),
			).
			Order(ent.Asc(job.FieldCreatedAt)).
			Limit(1).
			ForUpdate(sql.WithLockAction(sql.SkipLocked)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to query pending jobs: %w", err)
		}
		claimed = j
		break
	}
	if claimed == nil {
		return nil, ErrNoJobsAvailable
	}

	// Claim: set in_progress, pod_id, and the first heartbeat.
	now := time.Now().UTC()
	claimed, err = claimed.Update().
		SetStatus(job.StatusInProgress).
		SetPodID(w.podID).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// releaseJob returns a claimed job to pending so another poll can pick it up.
// Best-effort: a lost release is recovered by the orphan scan.
func (w *Worker) releaseJob(ctx context.Context, jobID string) {
	err := w.store.Client().Job.UpdateOneID(jobID).
		SetStatus(job.StatusPending).
		ClearPodID().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to release job", "job_id", jobID, "error", err)
	}
}

// completeJob removes the finished job record and audits the completion.
// Completed jobs live on only in the audit log.
func (w *Worker) completeJob(ctx context.Context, j *ent.Job) error {
	if err := w.store.DeleteJob(ctx, j.ID); err != nil {
		return err
	}
	w.audit(ctx, "job_completed", map[string]interface{}{
		"job_id":   j.ID,
		"job_type": string(j.JobType),
		"agent":    string(j.Agent),
	})
	return nil
}

// handleFailure classifies the error, records the attempt, and re-evaluates
// policy: exhausted or terminal failures route to the DLQ, everything else
// stays pending for the next claim to back off on.
func (w *Worker) handleFailure(ctx context.Context, j *ent.Job, execErr error) error {
	errorType := ClassifyError(execErr)
	updated, err := w.store.RecordJobFailure(ctx, j.ID, errorType, execErr.Error(), time.Now().UTC())
	if err != nil {
		return err
	}

	state, err := w.orch.SnapshotSystemState(ctx)
	if err != nil {
		return err
	}
	decision := w.orch.Engine().Evaluate(jobPolicyContext(updated), state, orchestrator.OverridesFromPayload(updated.PolicyOverrides))
	if decision.Action == policy.ActionDLQ {
		return w.routeDLQ(ctx, updated, decision)
	}
	return nil
}

// routeDLQ hands an exhausted job to the orchestrator's DLQ path.
func (w *Worker) routeDLQ(ctx context.Context, j *ent.Job, decision policy.Decision) error {
	_, err := w.orch.HandleDLQ(ctx, orchestrator.DLQRequest{
		JobID:   j.ID,
		JobType: j.JobType,
		Failure: orchestrator.FailureContext{
			ErrorType:      dlqErrorType(j, decision),
			ErrorMessage:   dlqErrorMessage(j, decision),
			RetryCount:     j.RetryCount,
			LastAttemptAt:  j.LastAttemptAt,
			OriginalInputs: j.Inputs,
		},
	})
	return err
}

// dlqErrorType picks the DLQ classification: budget exhaustion comes from the
// decision, everything else from the job's recorded failure.
func dlqErrorType(j *ent.Job, decision policy.Decision) string {
	if decision.Reason == policy.ReasonBudgetExceeded {
		return "budget_exceeded"
	}
	if j.LastErrorType != nil && *j.LastErrorType != "" {
		return *j.LastErrorType
	}
	return "execution_error"
}

func dlqErrorMessage(j *ent.Job, decision policy.Decision) string {
	if j.LastErrorMessage != nil && *j.LastErrorMessage != "" {
		return *j.LastErrorMessage
	}
	return decision.Reason
}

// jobPolicyContext maps an active job record onto the policy engine's view.
func jobPolicyContext(j *ent.Job) policy.JobContext {
	jc := policy.JobContext{
		JobID:      j.ID,
		JobType:    string(j.JobType),
		RetryCount: j.RetryCount,
		VideoCount: len(j.VideoIds),
	}
	if jc.VideoCount == 0 && j.VideoID != nil {
		jc.VideoCount = 1
	}
	if j.LastAttemptAt != nil {
		jc.LastAttemptAt = *j.LastAttemptAt
	}
	if j.LastErrorType != nil {
		jc.ErrorType = *j.LastErrorType
	}
	if j.EstimatedCostUsd != nil {
		jc.EstimatedCostUSD = *j.EstimatedCostUsd
	}
	return jc
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.store.Client().Job.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now().UTC()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// audit appends an audit entry with the agent as actor. Failures are logged,
// not propagated.
func (w *Worker) audit(ctx context.Context, action string, details map[string]interface{}) {
	if _, err := w.store.AppendAudit(ctx, string(w.agent), action, details); err != nil {
		slog.Error("Failed to append audit entry", "action", action, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

func (w *Worker) recordProcessed() {
	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
}
