package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// Error types that score high severity regardless of retry count.
var highSeverityErrors = map[string]bool{
	"authorization_failed": true,
	"data_corruption":      true,
	"security_violation":   true,
	"system_critical":      true,
}

// Error types that score medium severity: resource exhaustion and
// environment faults, recoverable by an operator.
var mediumSeverityErrors = map[string]bool{
	"quota_exceeded":        true,
	"budget_exceeded":       true,
	"invalid_configuration": true,
	"dependency_failure":    true,
}

// Retry count at which any remaining error escalates to medium severity.
const mediumSeverityRetries = 5

// Real-time job types serve an interactive request and recover with higher
// priority than batch work.
var realtimeJobTypes = map[job.JobType]bool{
	job.JobTypeChannelScrape: true,
	job.JobTypeSingleVideo:   true,
	job.JobTypeSingleSummary: true,
}

// FailureContext describes why a job exhausted its processing.
type FailureContext struct {
	ErrorType      string
	ErrorMessage   string
	RetryCount     int
	LastAttemptAt  *time.Time
	OriginalInputs map[string]interface{}
}

// DLQRequest routes a failed job to the dead-letter queue.
type DLQRequest struct {
	JobID         string
	JobType       job.JobType
	Failure       FailureContext
	RecoveryHints []string
}

// HandleDLQ routes a failed job to the dead-letter queue: scores severity and
// recovery priority, enriches with job metadata, writes the entry, and
// best-effort deletes the active job record. Idempotent: a job already routed
// returns its existing entry.
func (o *Orchestrator) HandleDLQ(ctx context.Context, req DLQRequest) (*ent.DLQEntry, error) {
	existing, err := o.store.GetDLQEntryByOriginalJob(ctx, req.JobID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	severity := Severity(req.Failure.ErrorType, req.Failure.RetryCount)
	priority := RecoveryPriority(severity, req.JobType)

	input := store.DLQInput{
		DLQID:            fmt.Sprintf("%s_%s_%s", req.JobType, req.JobID, timeutil.JobTimestamp(o.now())),
		OriginalJobID:    req.JobID,
		JobType:          dlqentry.JobType(req.JobType),
		ErrorType:        req.Failure.ErrorType,
		ErrorMessage:     req.Failure.ErrorMessage,
		RetryCount:       req.Failure.RetryCount,
		LastAttemptAt:    req.Failure.LastAttemptAt,
		OriginalInputs:   req.Failure.OriginalInputs,
		Severity:         severity,
		RecoveryPriority: priority,
		RecoveryHints:    req.RecoveryHints,
	}
	o.enrichDLQInput(ctx, &input, req)

	entry, created, err := o.store.CreateDLQEntry(ctx, input)
	if err != nil {
		return nil, err
	}

	if created {
		// DLQ create precedes job delete so the failure record survives a
		// crash between the two. Delete failures are logged, not fatal.
		if err := o.store.DeleteJob(ctx, req.JobID); err != nil {
			o.logger.Warn("Failed to delete active job after DLQ routing",
				"job_id", req.JobID,
				"error", err)
		}

		o.audit(ctx, "orchestrator", "job_dlq_routed", map[string]interface{}{
			"dlq_id":            entry.ID,
			"job_id":            req.JobID,
			"job_type":          string(req.JobType),
			"error_type":        req.Failure.ErrorType,
			"severity":          string(severity),
			"recovery_priority": string(priority),
		})
		o.logger.Warn("Job routed to DLQ",
			"job_id", req.JobID,
			"error_type", req.Failure.ErrorType,
			"severity", severity)
	}

	return entry, nil
}

// Severity scores a failure for operator triage.
func Severity(errorType string, retryCount int) dlqentry.Severity {
	switch {
	case highSeverityErrors[errorType]:
		return dlqentry.SeverityHigh
	case mediumSeverityErrors[errorType]:
		return dlqentry.SeverityMedium
	case retryCount >= mediumSeverityRetries:
		return dlqentry.SeverityMedium
	default:
		return dlqentry.SeverityLow
	}
}

// RecoveryPriority derives the recovery ordering from severity and whether
// the job type is real-time or batch.
func RecoveryPriority(severity dlqentry.Severity, jobType job.JobType) dlqentry.RecoveryPriority {
	realtime := realtimeJobTypes[jobType]
	switch {
	case severity == dlqentry.SeverityHigh:
		return dlqentry.RecoveryPriorityUrgent
	case severity == dlqentry.SeverityMedium && realtime:
		return dlqentry.RecoveryPriorityHigh
	case realtime:
		return dlqentry.RecoveryPriorityMedium
	default:
		return dlqentry.RecoveryPriorityLow
	}
}

// enrichDLQInput attaches job-type metadata: affected video IDs and the
// estimated cost impact. The active job record is the primary source; the
// original inputs back-fill when it is already gone.
func (o *Orchestrator) enrichDLQInput(ctx context.Context, input *store.DLQInput, req DLQRequest) {
	if j, err := o.store.GetJob(ctx, req.JobID); err == nil {
		if j.VideoID != nil {
			input.VideoID = *j.VideoID
		}
		input.VideoIDs = j.VideoIds
		if j.EstimatedCostUsd != nil && *j.EstimatedCostUsd > 0 {
			cost := *j.EstimatedCostUsd
			input.CostImpactUSD = &cost
		}
	}

	if input.VideoID == "" {
		if id, ok := req.Failure.OriginalInputs["video_id"].(string); ok {
			input.VideoID = id
		}
	}
	if len(input.VideoIDs) == 0 {
		input.VideoIDs = stringsFromAny(req.Failure.OriginalInputs["video_ids"])
		if len(input.VideoIDs) == 0 && input.VideoID != "" {
			input.VideoIDs = []string{input.VideoID}
		}
	}

	if input.CostImpactUSD == nil && policy.IsTranscriptionJobType(string(req.JobType)) {
		cost := policy.DefaultCostPerVideoUSD * float64(max(len(input.VideoIDs), 1))
		input.CostImpactUSD = &cost
	}
}

// DLQQuery is a predicate query over the dead-letter queue.
type DLQQuery struct {
	WindowHours  int    // 1-720, default 24
	JobType      string
	Severity     string
	VideoID      string // matched in memory against denormalized fields and original inputs
	Limit        int    // 1-500, default 50
	IncludeStats bool
}

// ErrorPattern is one error type's share of the queried window.
type ErrorPattern struct {
	ErrorType string
	Count     int
}

// DLQStats aggregates the queried entries.
type DLQStats struct {
	ByJobType              map[string]int
	BySeverity             map[string]int
	ByErrorType            map[string]int
	ByRecoveryPriority     map[string]int
	MeanProcessingAttempts float64
	TopErrorPatterns       []ErrorPattern
}

// DLQQueryResult is the entries plus optional aggregates.
type DLQQueryResult struct {
	Entries []*ent.DLQEntry
	Stats   *DLQStats
}

// QueryDLQ lists DLQ entries in the window with optional filters. Video-ID
// matching post-filters in memory, so a page can come back short of the
// limit when the filter discards entries.
func (o *Orchestrator) QueryDLQ(ctx context.Context, q DLQQuery) (*DLQQueryResult, error) {
	hours := clamp(q.WindowHours, 1, 720, 24)
	limit := clamp(q.Limit, 1, 500, 50)

	now := o.now()
	entries, err := o.store.ListDLQEntriesBetween(ctx,
		now.Add(-time.Duration(hours)*time.Hour), now,
		store.DLQFilter{JobType: q.JobType, Severity: q.Severity},
		limit,
	)
	if err != nil {
		return nil, err
	}

	if q.VideoID != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if dlqEntryMatchesVideo(e, q.VideoID) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	result := &DLQQueryResult{Entries: entries}
	if q.IncludeStats {
		result.Stats = computeDLQStats(entries)
	}
	return result, nil
}

func dlqEntryMatchesVideo(e *ent.DLQEntry, videoID string) bool {
	if e.VideoID != nil && *e.VideoID == videoID {
		return true
	}
	for _, id := range e.VideoIds {
		if id == videoID {
			return true
		}
	}
	if id, ok := e.OriginalInputs["video_id"].(string); ok && id == videoID {
		return true
	}
	for _, id := range stringsFromAny(e.OriginalInputs["video_ids"]) {
		if id == videoID {
			return true
		}
	}
	return false
}

func computeDLQStats(entries []*ent.DLQEntry) *DLQStats {
	stats := &DLQStats{
		ByJobType:          make(map[string]int),
		BySeverity:         make(map[string]int),
		ByErrorType:        make(map[string]int),
		ByRecoveryPriority: make(map[string]int),
	}
	attempts := 0
	for _, e := range entries {
		stats.ByJobType[string(e.JobType)]++
		stats.BySeverity[string(e.Severity)]++
		stats.ByErrorType[e.ErrorType]++
		stats.ByRecoveryPriority[string(e.RecoveryPriority)]++
		attempts += e.ProcessingAttempts
	}
	if len(entries) > 0 {
		stats.MeanProcessingAttempts = float64(attempts) / float64(len(entries))
	}
	stats.TopErrorPatterns = topErrorPatterns(stats.ByErrorType, 5)
	return stats
}

// topErrorPatterns ranks error types by count, ties broken by name for
// deterministic output.
func topErrorPatterns(byErrorType map[string]int, n int) []ErrorPattern {
	patterns := make([]ErrorPattern, 0, len(byErrorType))
	for errType, count := range byErrorType {
		patterns = append(patterns, ErrorPattern{ErrorType: errType, Count: count})
	}
	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].ErrorType < patterns[j].ErrorType
	})
	if len(patterns) > n {
		patterns = patterns[:n]
	}
	return patterns
}

func clamp(v, lo, hi, def int) int {
	if v == 0 {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func stringsFromAny(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
