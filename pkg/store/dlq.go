package store

import (
	"context"
	"fmt"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
)

// DLQInput carries the fields of a new dead-letter entry.
type DLQInput struct {
	DLQID            string
	OriginalJobID    string
	JobType          dlqentry.JobType
	ErrorType        string
	ErrorMessage     string
	RetryCount       int
	LastAttemptAt    *time.Time
	OriginalInputs   map[string]interface{}
	Severity         dlqentry.Severity
	RecoveryPriority dlqentry.RecoveryPriority
	RecoveryHints    []string
	VideoID          string
	VideoIDs         []string
	CostImpactUSD    *float64
}

// CreateDLQEntry writes a dead-letter entry. Duplicate dlq_id returns the
// existing entry (idempotent routing), never an error.
func (s *Store) CreateDLQEntry(ctx context.Context, input DLQInput) (*ent.DLQEntry, bool, error) {
	create := s.client.DLQEntry.Create().
		SetID(input.DLQID).
		SetOriginalJobID(input.OriginalJobID).
		SetJobType(input.JobType).
		SetErrorType(input.ErrorType).
		SetErrorMessage(input.ErrorMessage).
		SetRetryCount(input.RetryCount).
		SetOriginalInputs(input.OriginalInputs).
		SetSeverity(input.Severity).
		SetRecoveryPriority(input.RecoveryPriority)

	if input.LastAttemptAt != nil {
		create = create.SetLastAttemptAt(*input.LastAttemptAt)
	}
	if len(input.RecoveryHints) > 0 {
		create = create.SetRecoveryHints(input.RecoveryHints)
	}
	if input.VideoID != "" {
		create = create.SetVideoID(input.VideoID)
	}
	if len(input.VideoIDs) > 0 {
		create = create.SetVideoIds(input.VideoIDs)
	}
	if input.CostImpactUSD != nil {
		create = create.SetEstimatedCostImpactUsd(*input.CostImpactUSD)
	}

	entry, err := create.Save(ctx)
	if err == nil {
		return entry, true, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, false, fmt.Errorf("failed to create DLQ entry %s: %w", input.DLQID, err)
	}

	existing, err := s.client.DLQEntry.Get(ctx, input.DLQID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch existing DLQ entry %s: %w", input.DLQID, err)
	}
	return existing, false, nil
}

// GetDLQEntryByOriginalJob returns the DLQ entry routed for a job, or
// ErrNotFound. The dlq_id embeds a routing timestamp, so idempotent routing
// checks by original job ID instead.
func (s *Store) GetDLQEntryByOriginalJob(ctx context.Context, jobID string) (*ent.DLQEntry, error) {
	entry, err := s.client.DLQEntry.Query().
		Where(dlqentry.OriginalJobIDEQ(jobID)).
		Order(ent.Asc(dlqentry.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("dlq entry for job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query DLQ entry for job %s: %w", jobID, err)
	}
	return entry, nil
}

// DLQFilter narrows a DLQ window query.
type DLQFilter struct {
	JobType  string
	Severity string
}

// ListDLQEntriesBetween returns DLQ entries created in [since, until),
// newest first, up to limit, with optional job_type/severity filters.
func (s *Store) ListDLQEntriesBetween(ctx context.Context, since, until time.Time, filter DLQFilter, limit int) ([]*ent.DLQEntry, error) {
	query := s.client.DLQEntry.Query().
		Where(dlqentry.CreatedAtGTE(since), dlqentry.CreatedAtLT(until))

	if filter.JobType != "" {
		query = query.Where(dlqentry.JobTypeEQ(dlqentry.JobType(filter.JobType)))
	}
	if filter.Severity != "" {
		query = query.Where(dlqentry.SeverityEQ(dlqentry.Severity(filter.Severity)))
	}

	entries, err := query.
		Order(ent.Desc(dlqentry.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query DLQ entries: %w", err)
	}
	return entries, nil
}

// ListBudgetDLQEntriesSince returns budget-exceeded transcription entries
// created since the given instant. The daily planner re-enqueues these for
// the new UTC day.
func (s *Store) ListBudgetDLQEntriesSince(ctx context.Context, since time.Time) ([]*ent.DLQEntry, error) {
	entries, err := s.client.DLQEntry.Query().
		Where(
			dlqentry.CreatedAtGTE(since),
			dlqentry.ErrorTypeEQ("budget_exceeded"),
			dlqentry.JobTypeIn(dlqentry.JobTypeSingleVideo, dlqentry.JobTypeBatchTranscribe),
		).
		Order(ent.Asc(dlqentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget DLQ entries: %w", err)
	}
	return entries, nil
}
