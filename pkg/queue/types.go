// Package queue provides the per-agent job queue runtime: worker pools that
// claim pending jobs with FOR UPDATE SKIP LOCKED, gate them through the
// policy engine, execute them with heartbeats, and recover orphans.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/autopiloot/autopiloot/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are claimable for the
	// agent.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the agent's concurrent job limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobError classifies a job failure for the policy engine. Executors wrap
// failures with the error-type taxonomy (api_timeout, quota_exceeded,
// invalid_video_id, ...); unwrapped errors classify as execution_error.
type JobError struct {
	Type string
	Err  error
}

func (e *JobError) Error() string {
	return e.Type + ": " + e.Err.Error()
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// NewJobError wraps an error with its policy classification.
func NewJobError(errorType string, err error) *JobError {
	return &JobError{Type: errorType, Err: err}
}

// ClassifyError extracts the policy error type from a failure.
func ClassifyError(err error) string {
	var jobErr *JobError
	if errors.As(err, &jobErr) {
		return jobErr.Type
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "api_timeout"
	}
	return "execution_error"
}

// JobExecutor processes one claimed job. Executors write their results
// progressively through the state store (video transitions, artifacts, cost
// increments); the worker only handles claiming, the policy gate, heartbeat,
// and terminal bookkeeping. A nil return means success.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job) error
}

// PoolHealth contains health information for one agent's worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	Agent            string         `json:"agent"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentJobID  string       `json:"current_job_id,omitempty"`
	JobsProcessed int          `json:"jobs_processed"`
	LastActivity  time.Time    `json:"last_activity"`
}
