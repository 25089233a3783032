package store

import (
	"context"
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
	testdb "github.com/autopiloot/autopiloot/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	client := testdb.NewTestClient(t)
	return New(client.Client)
}

func videoInput(videoID string) VideoInput {
	return VideoInput{
		VideoID:     videoID,
		URL:         "https://www.youtube.com/watch?v=" + videoID,
		Title:       "How to scale a business",
		PublishedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		ChannelID:   "UCchannel1",
		DurationSec: 1800,
		Source:      video.SourceScrape,
	}
}

func TestUpsertVideo(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	t.Run("creates with discovered status", func(t *testing.T) {
		v, err := st.UpsertVideo(ctx, videoInput("vid00000001"))
		require.NoError(t, err)
		assert.Equal(t, video.StatusDiscovered, v.Status)
		assert.Equal(t, "How to scale a business", v.Title)
	})

	t.Run("re-upsert refreshes attributes but preserves status", func(t *testing.T) {
		v, err := st.UpsertVideo(ctx, videoInput("vid00000002"))
		require.NoError(t, err)

		_, err = st.TransitionVideoStatus(ctx, v.ID,
			video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
		require.NoError(t, err)

		input := videoInput("vid00000002")
		input.Title = "How to scale a business (updated)"
		input.DurationSec = 2400
		updated, err := st.UpsertVideo(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, "How to scale a business (updated)", updated.Title)
		assert.Equal(t, 2400, updated.DurationSec)
		assert.Equal(t, video.StatusTranscriptionQueued, updated.Status)
		assert.Equal(t, v.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})
}

func TestTransitionVideoStatus(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	_, err := st.UpsertVideo(ctx, videoInput("vid00000001"))
	require.NoError(t, err)

	t.Run("advances when expected status matches", func(t *testing.T) {
		v, err := st.TransitionVideoStatus(ctx, "vid00000001",
			video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
		require.NoError(t, err)
		assert.Equal(t, video.StatusTranscriptionQueued, v.Status)
	})

	t.Run("stale expectation fails without side effects", func(t *testing.T) {
		_, err := st.TransitionVideoStatus(ctx, "vid00000001",
			video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
		require.ErrorIs(t, err, ErrStaleState)

		v, err := st.GetVideo(ctx, "vid00000001")
		require.NoError(t, err)
		assert.Equal(t, video.StatusTranscriptionQueued, v.Status)
	})

	t.Run("missing video", func(t *testing.T) {
		_, err := st.TransitionVideoStatus(ctx, "vid00000099",
			video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListVideosByStatus(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	for _, id := range []string{"vid00000001", "vid00000002", "vid00000003"} {
		_, err := st.UpsertVideo(ctx, videoInput(id))
		require.NoError(t, err)
	}
	_, err := st.TransitionVideoStatus(ctx, "vid00000002",
		video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
	require.NoError(t, err)

	discovered, err := st.ListVideosByStatus(ctx, video.StatusDiscovered, 10)
	require.NoError(t, err)
	require.Len(t, discovered, 2)
	// Oldest first so a capped batch drains in discovery order.
	assert.Equal(t, "vid00000001", discovered[0].ID)
	assert.Equal(t, "vid00000003", discovered[1].ID)

	capped, err := st.ListVideosByStatus(ctx, video.StatusDiscovered, 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "vid00000001", capped[0].ID)
}

func TestCheckpoints(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	key := CheckpointKey("youtube_uploads", "UCchannel1")

	t.Run("missing checkpoint", func(t *testing.T) {
		_, err := st.GetCheckpoint(ctx, key)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("create then advance", func(t *testing.T) {
		first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		require.NoError(t, st.UpsertCheckpoint(ctx, key, first, "vid00000001"))

		cp, err := st.GetCheckpoint(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "vid00000001", cp.LastProcessedID)

		second := first.Add(24 * time.Hour)
		require.NoError(t, st.UpsertCheckpoint(ctx, key, second, "vid00000002"))

		cp, err = st.GetCheckpoint(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "vid00000002", cp.LastProcessedID)
		assert.Equal(t, second.Unix(), cp.LastPublishedAt.Unix())
	})
}

func TestCreateJob(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	input := JobInput{
		JobID:     "single_video_20250301_120000",
		Agent:     job.AgentTranscriber,
		JobType:   job.JobTypeSingleVideo,
		Inputs:    map[string]interface{}{"video_id": "vid00000001"},
		Priority:  job.PriorityMedium,
		CreatedBy: "operator",
		VideoID:   "vid00000001",
	}

	created, err := st.CreateJob(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, created.Status)
	assert.Equal(t, 0, created.RetryCount)

	t.Run("duplicate job_id collapses to the existing record", func(t *testing.T) {
		_, err := st.CreateJob(ctx, input)
		require.ErrorIs(t, err, ErrAlreadyExists)

		j, err := st.GetJob(ctx, input.JobID)
		require.NoError(t, err)
		assert.Equal(t, "operator", j.CreatedBy)
	})

	t.Run("active job blocks a second dispatch for the video", func(t *testing.T) {
		active, err := st.HasActiveJobForVideo(ctx, job.AgentTranscriber, "vid00000001")
		require.NoError(t, err)
		assert.True(t, active)

		active, err = st.HasActiveJobForVideo(ctx, job.AgentSummarizer, "vid00000001")
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("delete frees the video and is idempotent", func(t *testing.T) {
		require.NoError(t, st.DeleteJob(ctx, input.JobID))
		require.NoError(t, st.DeleteJob(ctx, input.JobID))

		active, err := st.HasActiveJobForVideo(ctx, job.AgentTranscriber, "vid00000001")
		require.NoError(t, err)
		assert.False(t, active)
	})
}

func TestRecordJobFailure(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	_, err := st.CreateJob(ctx, JobInput{
		JobID:     "channel_scrape_20250301_010000",
		Agent:     job.AgentScraper,
		JobType:   job.JobTypeChannelScrape,
		Inputs:    map[string]interface{}{"channels": []string{"@hormozi"}},
		Priority:  job.PriorityHigh,
		CreatedBy: "scheduler",
	})
	require.NoError(t, err)

	attemptAt := time.Now().UTC()
	j, err := st.RecordJobFailure(ctx, "channel_scrape_20250301_010000",
		"api_quota_exceeded", "quota exhausted for youtube", attemptAt)
	require.NoError(t, err)
	assert.Equal(t, 1, j.RetryCount)
	assert.Equal(t, job.StatusPending, j.Status)
	require.NotNil(t, j.LastErrorType)
	assert.Equal(t, "api_quota_exceeded", *j.LastErrorType)
	require.NotNil(t, j.LastAttemptAt)

	j, err = st.RecordJobFailure(ctx, "channel_scrape_20250301_010000",
		"timeout", "deadline exceeded", attemptAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, j.RetryCount)

	_, err = st.RecordJobFailure(ctx, "missing_job", "timeout", "x", attemptAt)
	assert.ErrorIs(t, err, ErrNotFound)
}

func dlqInput(dlqID, jobID string, jobType dlqentry.JobType, errorType string) DLQInput {
	return DLQInput{
		DLQID:            dlqID,
		OriginalJobID:    jobID,
		JobType:          jobType,
		ErrorType:        errorType,
		ErrorMessage:     errorType + " after retries",
		RetryCount:       3,
		OriginalInputs:   map[string]interface{}{"video_id": "vid00000001"},
		Severity:         dlqentry.SeverityMedium,
		RecoveryPriority: dlqentry.RecoveryPriorityHigh,
	}
}

func TestCreateDLQEntry(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	input := dlqInput("single_video_job1_20250301_120000", "job1", dlqentry.JobTypeSingleVideo, "quota_exceeded")

	entry, created, err := st.CreateDLQEntry(ctx, input)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "job1", entry.OriginalJobID)

	t.Run("duplicate dlq_id returns the existing entry", func(t *testing.T) {
		dup := input
		dup.ErrorMessage = "a different message"
		again, created, err := st.CreateDLQEntry(ctx, dup)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, entry.ID, again.ID)
		assert.Equal(t, "quota_exceeded after retries", again.ErrorMessage)
	})

	t.Run("lookup by original job", func(t *testing.T) {
		found, err := st.GetDLQEntryByOriginalJob(ctx, "job1")
		require.NoError(t, err)
		assert.Equal(t, entry.ID, found.ID)

		_, err = st.GetDLQEntryByOriginalJob(ctx, "job-unknown")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListDLQEntriesBetween(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	_, _, err := st.CreateDLQEntry(ctx, dlqInput("dlq1", "job1", dlqentry.JobTypeSingleVideo, "quota_exceeded"))
	require.NoError(t, err)
	_, _, err = st.CreateDLQEntry(ctx, dlqInput("dlq2", "job2", dlqentry.JobTypeChannelScrape, "timeout"))
	require.NoError(t, err)

	high := dlqInput("dlq3", "job3", dlqentry.JobTypeSingleVideo, "authorization_failed")
	high.Severity = dlqentry.SeverityHigh
	_, _, err = st.CreateDLQEntry(ctx, high)
	require.NoError(t, err)

	since := time.Now().Add(-time.Hour)
	until := time.Now().Add(time.Hour)

	all, err := st.ListDLQEntriesBetween(ctx, since, until, DLQFilter{}, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byType, err := st.ListDLQEntriesBetween(ctx, since, until, DLQFilter{JobType: "single_video"}, 10)
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	bySeverity, err := st.ListDLQEntriesBetween(ctx, since, until, DLQFilter{Severity: "high"}, 10)
	require.NoError(t, err)
	require.Len(t, bySeverity, 1)
	assert.Equal(t, "dlq3", bySeverity[0].ID)
}

func TestListBudgetDLQEntriesSince(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	budget := dlqInput("dlq1", "job1", dlqentry.JobTypeBatchTranscribe, "budget_exceeded")
	budget.VideoIDs = []string{"vid00000001", "vid00000002"}
	_, _, err := st.CreateDLQEntry(ctx, budget)
	require.NoError(t, err)

	// Budget-exceeded summary jobs do not carry over; only transcription does.
	_, _, err = st.CreateDLQEntry(ctx, dlqInput("dlq2", "job2", dlqentry.JobTypeBatchSummarize, "budget_exceeded"))
	require.NoError(t, err)
	_, _, err = st.CreateDLQEntry(ctx, dlqInput("dlq3", "job3", dlqentry.JobTypeSingleVideo, "quota_exceeded"))
	require.NoError(t, err)

	entries, err := st.ListBudgetDLQEntriesSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dlq1", entries[0].ID)
	assert.Equal(t, []string{"vid00000001", "vid00000002"}, entries[0].VideoIds)
}

func TestDailyCostLedger(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()
	dateKey := "2025-03-01"

	t.Run("missing day reads as zero", func(t *testing.T) {
		dc, err := st.GetDailyCost(ctx, dateKey)
		require.NoError(t, err)
		assert.Zero(t, dc.TotalUsd)
	})

	t.Run("charges accumulate per category", func(t *testing.T) {
		require.NoError(t, st.AddCost(ctx, dateKey, CostTranscription, 1.85))
		require.NoError(t, st.AddCost(ctx, dateKey, CostTranscription, 0.37))
		require.NoError(t, st.AddCost(ctx, dateKey, CostLLM, 0.04))

		dc, err := st.GetDailyCost(ctx, dateKey)
		require.NoError(t, err)
		assert.InDelta(t, 2.22, dc.TranscriptionUsd, 1e-9)
		assert.InDelta(t, 0.04, dc.LlmUsd, 1e-9)
		assert.InDelta(t, 2.26, dc.TotalUsd, 1e-9)
	})

	t.Run("days are independent", func(t *testing.T) {
		dc, err := st.GetDailyCost(ctx, "2025-03-02")
		require.NoError(t, err)
		assert.Zero(t, dc.TotalUsd)
	})
}

func TestCompleteTranscription(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	_, err := st.UpsertVideo(ctx, videoInput("vid00000001"))
	require.NoError(t, err)
	_, err = st.TransitionVideoStatus(ctx, "vid00000001",
		video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
	require.NoError(t, err)

	input := TranscriptInput{
		VideoID:           "vid00000001",
		TranscriptDocRef:  "tr_1",
		TranscriptJSONRef: "tr_1/json",
		Digest:            "abc123",
		CostUSD:           0.37,
	}

	tr, err := st.CompleteTranscription(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "tr_1", tr.TranscriptDocRef)

	v, err := st.GetVideo(ctx, "vid00000001")
	require.NoError(t, err)
	assert.Equal(t, video.StatusTranscribed, v.Status)

	dc, err := st.GetDailyCost(ctx, timeutil.DateKey(time.Now()))
	require.NoError(t, err)
	assert.InDelta(t, 0.37, dc.TranscriptionUsd, 1e-9)

	entries, err := st.ListAuditEntriesBetween(ctx, "transcription_completed",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vid00000001", entries[0].Details["video_id"])

	t.Run("repeat completion is stale", func(t *testing.T) {
		_, err := st.CompleteTranscription(ctx, input)
		assert.ErrorIs(t, err, ErrStaleState)
	})
}

func TestLedgerDateKeyFollowsStoreClock(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	// A completion committed just before UTC midnight charges that day's
	// ledger, not the wall-clock day of the test run.
	st.now = func() time.Time { return time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC) }

	_, err := st.UpsertVideo(ctx, videoInput("vid00000001"))
	require.NoError(t, err)
	_, err = st.TransitionVideoStatus(ctx, "vid00000001",
		video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
	require.NoError(t, err)

	_, err = st.CompleteTranscription(ctx, TranscriptInput{
		VideoID:          "vid00000001",
		TranscriptDocRef: "tr_1",
		Digest:           "abc123",
		CostUSD:          0.37,
	})
	require.NoError(t, err)

	dc, err := st.GetDailyCost(ctx, "2025-03-01")
	require.NoError(t, err)
	assert.InDelta(t, 0.37, dc.TranscriptionUsd, 1e-9)

	next, err := st.GetDailyCost(ctx, "2025-03-02")
	require.NoError(t, err)
	assert.Zero(t, next.TranscriptionUsd)
}

func TestCompleteSummary(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	_, err := st.UpsertVideo(ctx, videoInput("vid00000001"))
	require.NoError(t, err)
	_, err = st.TransitionVideoStatus(ctx, "vid00000001",
		video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
	require.NoError(t, err)
	_, err = st.CompleteTranscription(ctx, TranscriptInput{
		VideoID:          "vid00000001",
		TranscriptDocRef: "tr_1",
		Digest:           "abc123",
	})
	require.NoError(t, err)

	input := SummaryInput{
		VideoID:          "vid00000001",
		Bullets:          []string{"raise prices", "narrow the offer"},
		KeyConcepts:      []string{"pricing"},
		PromptID:         "coach_v1",
		PromptVersion:    "1",
		InputTokens:      1000,
		OutputTokens:     200,
		TranscriptDocRef: "tr_1",
		ZepDocID:         "vid00000001",
		LLMCostUSD:       0.0036,
	}

	sum, err := st.CompleteSummary(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"raise prices", "narrow the offer"}, sum.Bullets)

	v, err := st.GetVideo(ctx, "vid00000001")
	require.NoError(t, err)
	assert.Equal(t, video.StatusSummarized, v.Status)
	require.NotNil(t, v.SummaryDocRef)
	assert.Equal(t, "vid00000001", *v.SummaryDocRef)
	require.NotNil(t, v.ZepDocID)
	assert.Equal(t, "vid00000001", *v.ZepDocID)

	dc, err := st.GetDailyCost(ctx, timeutil.DateKey(time.Now()))
	require.NoError(t, err)
	assert.InDelta(t, 0.0036, dc.LlmUsd, 1e-9)

	t.Run("repeat completion is stale", func(t *testing.T) {
		_, err := st.CompleteSummary(ctx, input)
		assert.ErrorIs(t, err, ErrStaleState)
	})
}

func TestRejectNonBusiness(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	_, err := st.UpsertVideo(ctx, videoInput("vid00000001"))
	require.NoError(t, err)
	_, err = st.TransitionVideoStatus(ctx, "vid00000001",
		video.StatusDiscovered, video.StatusTranscriptionQueued, TransitionExtra{})
	require.NoError(t, err)
	_, err = st.CompleteTranscription(ctx, TranscriptInput{
		VideoID:          "vid00000001",
		TranscriptDocRef: "tr_1",
		Digest:           "abc123",
	})
	require.NoError(t, err)

	require.NoError(t, st.RejectNonBusiness(ctx, "vid00000001", "vlog", "travel vlog, no business content"))

	v, err := st.GetVideo(ctx, "vid00000001")
	require.NoError(t, err)
	assert.Equal(t, video.StatusRejectedNonBusiness, v.Status)
	require.NotNil(t, v.RejectionReason)
	assert.Equal(t, "travel vlog, no business content", *v.RejectionReason)

	// Terminal: no summary was written, and a repeat reject is stale.
	_, err = st.GetSummary(ctx, "vid00000001")
	assert.ErrorIs(t, err, ErrNotFound)
	err = st.RejectNonBusiness(ctx, "vid00000001", "vlog", "again")
	assert.ErrorIs(t, err, ErrStaleState)
}

func TestQuotaProjection(t *testing.T) {
	st := setupStore(t)
	ctx := context.Background()

	require.NoError(t, st.RecordQuotaUsage(ctx, "scraper", "youtube", 100))
	require.NoError(t, st.RecordQuotaUsage(ctx, "scraper", "youtube", 150))
	require.NoError(t, st.RecordQuotaUsage(ctx, "transcriber", "assemblyai", 1))

	since := time.Now().Add(-time.Hour)
	until := time.Now().Add(time.Hour)

	total, err := st.SumQuotaConsumedBetween(ctx, "youtube", since, until)
	require.NoError(t, err)
	assert.Equal(t, 250, total)

	total, err = st.SumQuotaConsumedBetween(ctx, "assemblyai", since, until)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	counts, err := st.CountAuditActionsBetween(ctx, since, until)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["quota_consumed"])
}
