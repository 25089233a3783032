package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/store"
	testdb "github.com/autopiloot/autopiloot/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrchestrator(t *testing.T) (*Orchestrator, *store.Store) {
	client := testdb.NewTestClient(t)
	st := store.New(client.Client)
	settings := config.Default()
	settings.Scraper.Handles = []string{"@AlexHormozi"}
	orch := New(st, settings, nil)
	// Fixed clock: duplicate dispatches resolve to the same job ID.
	orch.now = func() time.Time { return time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC) }
	return orch, st
}

func TestDispatchWritesPendingJob(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	result, err := orch.DispatchScraper(ctx,
		ChannelScrape{Channels: []string{"@AlexHormozi"}},
		DispatchOptions{CreatedBy: "scheduler"})
	require.NoError(t, err)
	assert.Equal(t, StatusDispatched, result.Status)
	assert.Equal(t, "channel_scrape_20250301_010000", result.JobID)

	j, err := st.GetJob(ctx, result.JobID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, j.Status)
	assert.Equal(t, job.PriorityHigh, j.Priority)
	assert.Equal(t, "scheduler", j.CreatedBy)

	entries, err := st.ListAuditEntriesBetween(ctx, "job_dispatched",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, result.JobID, entries[0].Details["job_id"])

	t.Run("duplicate dispatch collapses", func(t *testing.T) {
		again, err := orch.DispatchScraper(ctx,
			ChannelScrape{Channels: []string{"@AlexHormozi"}},
			DispatchOptions{CreatedBy: "scheduler"})
		require.NoError(t, err)
		assert.Equal(t, StatusAlreadyDispatched, again.Status)
		assert.Equal(t, result.JobID, again.JobID)
	})

	t.Run("wrong agent for inputs", func(t *testing.T) {
		_, err := orch.DispatchTranscriber(ctx,
			ChannelScrape{Channels: []string{"@AlexHormozi"}},
			DispatchOptions{})
		var invalid *InvalidInputsError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestDispatchSecondActiveJobForVideo(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	first, err := orch.DispatchTranscriber(ctx,
		SingleVideo{VideoID: "dQw4w9WgXcQ"},
		DispatchOptions{CreatedBy: "operator"})
	require.NoError(t, err)
	require.Equal(t, StatusDispatched, first.Status)

	// A minute later the timestamped job ID differs, but the video already
	// has an active transcription job: the dispatch must collapse, not
	// insert a second one.
	orch.now = func() time.Time { return time.Date(2025, 3, 1, 1, 1, 0, 0, time.UTC) }
	second, err := orch.DispatchTranscriber(ctx,
		SingleVideo{VideoID: "dQw4w9WgXcQ"},
		DispatchOptions{CreatedBy: "operator"})
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyDispatched, second.Status)

	_, err = st.GetJob(ctx, first.JobID)
	require.NoError(t, err)

	// Once the first job leaves the active table, the video is dispatchable
	// again.
	require.NoError(t, st.DeleteJob(ctx, first.JobID))
	third, err := orch.DispatchTranscriber(ctx,
		SingleVideo{VideoID: "dQw4w9WgXcQ"},
		DispatchOptions{CreatedBy: "operator"})
	require.NoError(t, err)
	assert.Equal(t, StatusDispatched, third.Status)
	assert.NotEqual(t, first.JobID, third.JobID)
}

func TestDispatchBudgetGate(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	// Default budget is 5.00/day; leave less headroom than one video's
	// estimated 0.50.
	dateKey := orch.now().Format("2006-01-02")
	require.NoError(t, st.AddCost(ctx, dateKey, store.CostTranscription, 4.80))

	result, err := orch.DispatchTranscriber(ctx,
		SingleVideo{VideoID: "dQw4w9WgXcQ"},
		DispatchOptions{CreatedBy: "operator"})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, result.Status)
	assert.Equal(t, policy.ActionDLQ, result.Decision.Action)
	assert.Equal(t, policy.ReasonBudgetExceeded, result.Reason)

	entries, err := st.ListAuditEntriesBetween(ctx, "job_dispatch_rejected",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "single_video", entries[0].Details["job_type"])
}

func TestDispatchQuotaGate(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	// Quota projection windows over audit timestamps, which are server-set,
	// so this test runs against the real clock.
	orch.now = func() time.Time { return time.Now().UTC() }

	// 95% of the 10000-unit daily limit is past the 0.9 dispatch threshold.
	require.NoError(t, st.RecordQuotaUsage(ctx, "scraper", policy.ServiceYouTube, 9500))

	result, err := orch.DispatchScraper(ctx,
		ChannelScrape{Channels: []string{"@AlexHormozi"}},
		DispatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, result.Status)
	assert.Equal(t, policy.ActionRetryIn, result.Decision.Action)
	assert.Positive(t, result.Decision.DelaySec)
}

func TestDispatchSummaryPrerequisite(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	t.Run("unknown video rejected", func(t *testing.T) {
		result, err := orch.DispatchSummarizer(ctx,
			SingleSummary{VideoID: "dQw4w9WgXcQ"},
			DispatchOptions{})
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, result.Status)
		assert.Contains(t, result.Reason, "not found")
	})

	t.Run("discovered video rejected until transcribed", func(t *testing.T) {
		_, err := st.UpsertVideo(ctx, store.VideoInput{
			VideoID:     "dQw4w9WgXcQ",
			URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Title:       "t",
			PublishedAt: time.Now().UTC(),
			ChannelID:   "UCchannel1",
			Source:      video.SourceScrape,
		})
		require.NoError(t, err)

		result, err := orch.DispatchSummarizer(ctx,
			SingleSummary{VideoID: "dQw4w9WgXcQ"},
			DispatchOptions{})
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, result.Status)
		assert.Contains(t, result.Reason, "expected transcribed")
	})
}

func TestHandleDLQRoutesAndDeletesJob(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	dispatched, err := orch.DispatchTranscriber(ctx,
		SingleVideo{VideoID: "dQw4w9WgXcQ"},
		DispatchOptions{CreatedBy: "operator"})
	require.NoError(t, err)
	require.Equal(t, StatusDispatched, dispatched.Status)

	attemptAt := orch.now()
	req := DLQRequest{
		JobID:   dispatched.JobID,
		JobType: job.JobTypeSingleVideo,
		Failure: FailureContext{
			ErrorType:     "quota_exceeded",
			ErrorMessage:  "assemblyai quota exhausted",
			RetryCount:    3,
			LastAttemptAt: &attemptAt,
			OriginalInputs: map[string]interface{}{
				"video_id": "dQw4w9WgXcQ",
			},
		},
	}

	entry, err := orch.HandleDLQ(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, dispatched.JobID, entry.OriginalJobID)
	assert.Equal(t, dlqentry.SeverityMedium, entry.Severity)
	assert.Equal(t, dlqentry.RecoveryPriorityHigh, entry.RecoveryPriority)
	require.NotNil(t, entry.VideoID)
	assert.Equal(t, "dQw4w9WgXcQ", *entry.VideoID)
	require.NotNil(t, entry.EstimatedCostImpactUsd)
	assert.InDelta(t, 0.5, *entry.EstimatedCostImpactUsd, 1e-9)

	_, err = st.GetJob(ctx, dispatched.JobID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	entries, err := st.ListAuditEntriesBetween(ctx, "job_dlq_routed",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	t.Run("re-routing returns the existing entry", func(t *testing.T) {
		again, err := orch.HandleDLQ(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, again.ID)

		entries, err := st.ListAuditEntriesBetween(ctx, "job_dlq_routed",
			time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestPlanDailyRun(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	require.NoError(t, st.UpsertCheckpoint(ctx,
		store.CheckpointKey("youtube_uploads", "@AlexHormozi"),
		time.Date(2025, 2, 28, 15, 0, 0, 0, time.UTC), "vid00000009"))

	// Yesterday's budget-exhausted transcriptions carry over, deduplicated.
	_, _, err := st.CreateDLQEntry(ctx, store.DLQInput{
		DLQID:            "dlq1",
		OriginalJobID:    "job1",
		JobType:          dlqentry.JobTypeBatchTranscribe,
		ErrorType:        "budget_exceeded",
		ErrorMessage:     "budget exceeded",
		Severity:         dlqentry.SeverityMedium,
		RecoveryPriority: dlqentry.RecoveryPriorityLow,
		OriginalInputs:   map[string]interface{}{},
		VideoIDs:         []string{"vid00000001", "vid00000002"},
	})
	require.NoError(t, err)
	_, _, err = st.CreateDLQEntry(ctx, store.DLQInput{
		DLQID:            "dlq2",
		OriginalJobID:    "job2",
		JobType:          dlqentry.JobTypeSingleVideo,
		ErrorType:        "budget_exceeded",
		ErrorMessage:     "budget exceeded",
		Severity:         dlqentry.SeverityMedium,
		RecoveryPriority: dlqentry.RecoveryPriorityHigh,
		OriginalInputs:   map[string]interface{}{},
		VideoID:          "vid00000002",
	})
	require.NoError(t, err)

	// Plan against the real clock: DLQ created_at is server time, and the
	// carry-over window is anchored to "yesterday" relative to now.
	orch.now = func() time.Time { return time.Now().UTC() }

	plan, err := orch.PlanDailyRun(ctx, PlanOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"@AlexHormozi"}, plan.Channels)
	assert.Equal(t, 10, plan.PerChannelLimit)
	assert.Equal(t, []string{"vid00000001", "vid00000002"}, plan.CarryOverVideoIDs)

	cp, ok := plan.Checkpoints["@AlexHormozi"]
	require.True(t, ok)
	assert.Equal(t, "vid00000009", cp.LastProcessedID)

	// 1 channel * 10 per channel + 2 carry-over.
	assert.Equal(t, 12, plan.Estimates.PlannedVideos)
	assert.Equal(t, 100, plan.Estimates.QuotaUnits)

	assert.Equal(t, plan.Windows.Discovery.End, plan.Windows.Transcription.Start)
	assert.Equal(t, plan.Windows.Transcription.End, plan.Windows.Summarization.Start)
	assert.Equal(t, 6*time.Hour, plan.Windows.Summarization.End.Sub(plan.Windows.Discovery.Start))
}

func TestPlanDailyRunWarnings(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	require.NoError(t, st.RecordQuotaUsage(ctx, "scraper", policy.ServiceYouTube, 8500))
	orch.settings.Reliability.Quotas.AssemblyAIDailyLimit = 5
	orch.now = func() time.Time { return time.Now().UTC() }

	plan, err := orch.PlanDailyRun(ctx, PlanOptions{})
	require.NoError(t, err)

	require.Len(t, plan.Warnings, 2)
	assert.Contains(t, plan.Warnings[0], "youtube quota at 85%")
	assert.Contains(t, plan.Warnings[1], "exceed assemblyai daily limit")
}

func TestQueryDLQ(t *testing.T) {
	orch, st := setupOrchestrator(t)
	ctx := context.Background()

	makeEntry := func(dlqID, jobID string, jobType dlqentry.JobType, errorType, videoID string) {
		input := store.DLQInput{
			DLQID:            dlqID,
			OriginalJobID:    jobID,
			JobType:          jobType,
			ErrorType:        errorType,
			ErrorMessage:     errorType,
			Severity:         Severity(errorType, 3),
			RecoveryPriority: RecoveryPriority(Severity(errorType, 3), job.JobType(jobType)),
			OriginalInputs:   map[string]interface{}{},
			VideoID:          videoID,
		}
		_, _, err := st.CreateDLQEntry(ctx, input)
		require.NoError(t, err)
	}

	makeEntry("dlq1", "job1", dlqentry.JobTypeSingleVideo, "quota_exceeded", "vid00000001")
	makeEntry("dlq2", "job2", dlqentry.JobTypeSingleVideo, "quota_exceeded", "vid00000002")
	makeEntry("dlq3", "job3", dlqentry.JobTypeChannelScrape, "timeout", "")

	orch.now = func() time.Time { return time.Now().UTC() }

	t.Run("defaults with stats", func(t *testing.T) {
		result, err := orch.QueryDLQ(ctx, DLQQuery{IncludeStats: true})
		require.NoError(t, err)
		assert.Len(t, result.Entries, 3)
		require.NotNil(t, result.Stats)
		assert.Equal(t, 2, result.Stats.ByErrorType["quota_exceeded"])
		assert.Equal(t, 2, result.Stats.ByJobType["single_video"])
		require.NotEmpty(t, result.Stats.TopErrorPatterns)
		assert.Equal(t, "quota_exceeded", result.Stats.TopErrorPatterns[0].ErrorType)
	})

	t.Run("video filter post-filters in memory", func(t *testing.T) {
		result, err := orch.QueryDLQ(ctx, DLQQuery{VideoID: "vid00000002"})
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "dlq2", result.Entries[0].ID)
	})

	t.Run("severity filter", func(t *testing.T) {
		result, err := orch.QueryDLQ(ctx, DLQQuery{Severity: "low"})
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "dlq3", result.Entries[0].ID)
	})
}
