package store

import (
	"context"
	"fmt"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
)

// JobInput carries the fields of a new active job record.
type JobInput struct {
	JobID           string
	Agent           job.Agent
	JobType         job.JobType
	Inputs          map[string]interface{}
	PolicyOverrides map[string]interface{}
	Priority        job.Priority
	CreatedBy       string

	// Denormalized for (video_id, operation) idempotency checks.
	VideoID  string
	VideoIDs []string

	EstimatedQuotaUsage int
	EstimatedCostUSD    float64
}

// CreateJob writes a new active job with status=pending. A duplicate job_id
// yields ErrAlreadyExists without touching the existing record — two
// dispatches of the same job_id are equivalent to one.
func (s *Store) CreateJob(ctx context.Context, input JobInput) (*ent.Job, error) {
	create := s.client.Job.Create().
		SetID(input.JobID).
		SetAgent(input.Agent).
		SetJobType(input.JobType).
		SetInputs(input.Inputs).
		SetPriority(input.Priority).
		SetCreatedBy(input.CreatedBy)

	if input.PolicyOverrides != nil {
		create = create.SetPolicyOverrides(input.PolicyOverrides)
	}
	if input.VideoID != "" {
		create = create.SetVideoID(input.VideoID)
	}
	if len(input.VideoIDs) > 0 {
		create = create.SetVideoIds(input.VideoIDs)
	}
	if input.EstimatedQuotaUsage > 0 {
		create = create.SetEstimatedQuotaUsage(input.EstimatedQuotaUsage)
	}
	if input.EstimatedCostUSD > 0 {
		create = create.SetEstimatedCostUsd(input.EstimatedCostUSD)
	}

	j, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("job %s: %w", input.JobID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create job %s: %w", input.JobID, err)
	}
	return j, nil
}

// GetJob returns an active job by ID, or ErrNotFound.
func (s *Store) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return j, nil
}

// DeleteJob removes an active job record. Deleting a missing job is a no-op:
// DLQ routing and completion race benignly with each other.
func (s *Store) DeleteJob(ctx context.Context, jobID string) error {
	err := s.client.Job.DeleteOneID(jobID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete job %s: %w", jobID, err)
	}
	return nil
}

// HasActiveJobForVideo reports whether any active job for the given agent
// already targets the video, enforcing at most one active job per
// (video_id, operation) pair.
func (s *Store) HasActiveJobForVideo(ctx context.Context, agent job.Agent, videoID string) (bool, error) {
	exists, err := s.client.Job.Query().
		Where(
			job.AgentEQ(agent),
			job.VideoIDEQ(videoID),
			job.StatusIn(job.StatusPending, job.StatusInProgress),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check active jobs for video %s: %w", videoID, err)
	}
	return exists, nil
}

// RecordJobFailure increments the retry count and records the failure
// classification for the next policy evaluation.
func (s *Store) RecordJobFailure(ctx context.Context, jobID, errorType, errorMessage string, attemptAt time.Time) (*ent.Job, error) {
	j, err := s.client.Job.UpdateOneID(jobID).
		AddRetryCount(1).
		SetStatus(job.StatusPending).
		SetLastErrorType(errorType).
		SetLastErrorMessage(errorMessage).
		SetLastAttemptAt(attemptAt).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to record failure for job %s: %w", jobID, err)
	}
	return j, nil
}

// CountJobsCreatedBetween returns totals and per-agent/per-type counts for
// jobs created in the window. Active jobs only — completed jobs are deleted,
// so the daily reporter combines this with the audit log.
func (s *Store) CountJobsCreatedBetween(ctx context.Context, since, until time.Time) (total int, byAgent map[job.Agent]int, byType map[job.JobType]int, err error) {
	jobs, err := s.client.Job.Query().
		Where(job.CreatedAtGTE(since), job.CreatedAtLT(until)).
		All(ctx)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	byAgent = make(map[job.Agent]int)
	byType = make(map[job.JobType]int)
	for _, j := range jobs {
		byAgent[j.Agent]++
		byType[j.JobType]++
	}
	return len(jobs), byAgent, byType, nil
}
