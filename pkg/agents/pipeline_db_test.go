package agents

import (
	"context"
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/observability"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
	testdb "github.com/autopiloot/autopiloot/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The scenario tests drive the executors directly with in-memory job records;
// claiming and retry mechanics are covered by the queue package.

func setupPipeline(t *testing.T) (*store.Store, *config.Settings) {
	client := testdb.NewTestClient(t)
	settings := config.Default()
	settings.Scraper.Handles = []string{"@AlexHormozi"}
	return store.New(client.Client), settings
}

func channelFixture() *FakeChannelSource {
	published := func(day int) time.Time {
		return time.Date(2025, 3, day, 12, 0, 0, 0, time.UTC)
	}
	return &FakeChannelSource{
		Channels: map[string]string{"@AlexHormozi": "UCchannel1"},
		Uploads: map[string][]UploadItem{
			"UCchannel1": {
				{VideoID: "vid00000001", Title: "Pricing", PublishedAt: published(1), DurationSec: 600},
				{VideoID: "vid00000002", Title: "Offers", PublishedAt: published(2), DurationSec: 1200},
				{VideoID: "vid00000003", Title: "Keynote", PublishedAt: published(3), DurationSec: 5400},
			},
		},
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	st, settings := setupPipeline(t)
	ctx := context.Background()

	channels := channelFixture()
	transcription := &FakeTranscription{Result: &TranscriptionResult{
		TranscriptDocRef:  "tr_ref",
		TranscriptJSONRef: "tr_ref/json",
		Digest:            "abc123",
		CostUSD:           0.37,
	}}
	llm := &FakeSummarization{Result: &SummaryResult{
		Bullets:           []string{"raise prices"},
		KeyConcepts:       []string{"pricing"},
		IsBusinessContent: true,
		InputTokens:       1000,
		OutputTokens:      200,
		CostUSD:           0.0036,
	}}
	index := &FakeVectorIndex{}

	scraper := NewScraper(st, settings, channels, nil)
	transcriber := NewTranscriber(st, settings, transcription)
	summarizer := NewSummarizer(st, settings, llm, &FakeTranscriptFetcher{Text: "how to price"}, index)

	// Discovery.
	err := scraper.Execute(ctx, &ent.Job{
		ID:      "channel_scrape_20250304_010000",
		JobType: job.JobTypeChannelScrape,
		Inputs:  map[string]interface{}{"channels": []interface{}{"@AlexHormozi"}},
	})
	require.NoError(t, err)

	discovered, err := st.ListVideosByStatus(ctx, video.StatusDiscovered, 10)
	require.NoError(t, err)
	require.Len(t, discovered, 3)
	assert.Equal(t, video.SourceScrape, discovered[0].Source)

	cp, err := st.GetCheckpoint(ctx, store.CheckpointKey("youtube_uploads", "UCchannel1"))
	require.NoError(t, err)
	assert.Equal(t, "vid00000003", cp.LastProcessedID)

	ytUnits, err := st.SumQuotaConsumedBetween(ctx, policy.ServiceYouTube,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 100, ytUnits)

	// A second scrape resumes from the checkpoint and rediscovers nothing.
	err = scraper.Execute(ctx, &ent.Job{
		ID:      "channel_scrape_20250305_010000",
		JobType: job.JobTypeChannelScrape,
		Inputs:  map[string]interface{}{"channels": []interface{}{"@AlexHormozi"}},
	})
	require.NoError(t, err)
	discovered, err = st.ListVideosByStatus(ctx, video.StatusDiscovered, 10)
	require.NoError(t, err)
	assert.Len(t, discovered, 3)
	assert.Equal(t, 2, channels.ListCalls)

	// Transcription: the 5400s keynote exceeds the 4200s duration gate and is
	// skipped, not failed.
	err = transcriber.Execute(ctx, &ent.Job{
		ID:       "batch_transcribe_20250304_020000",
		JobType:  job.JobTypeBatchTranscribe,
		VideoIds: []string{"vid00000001", "vid00000002", "vid00000003"},
		Inputs:   map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, transcription.Calls)

	transcribed, err := st.ListVideosByStatus(ctx, video.StatusTranscribed, 10)
	require.NoError(t, err)
	assert.Len(t, transcribed, 2)

	skippedVideo, err := st.GetVideo(ctx, "vid00000003")
	require.NoError(t, err)
	assert.Equal(t, video.StatusDiscovered, skippedVideo.Status)

	skipAudits, err := st.ListAuditEntriesBetween(ctx, "video_skipped_too_long",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, skipAudits, 1)
	assert.Equal(t, "vid00000003", skipAudits[0].Details["video_id"])

	costs, err := st.GetDailyCost(ctx, timeutil.DateKey(time.Now()))
	require.NoError(t, err)
	assert.InDelta(t, 0.74, costs.TranscriptionUsd, 1e-9)

	// Summarization.
	err = summarizer.Execute(ctx, &ent.Job{
		ID:       "batch_summarize_20250304_050000",
		JobType:  job.JobTypeBatchSummarize,
		VideoIds: []string{"vid00000001", "vid00000002"},
		Inputs:   map[string]interface{}{},
	})
	require.NoError(t, err)

	summarized, err := st.ListVideosByStatus(ctx, video.StatusSummarized, 10)
	require.NoError(t, err)
	require.Len(t, summarized, 2)
	require.NotNil(t, summarized[0].ZepDocID)
	assert.Equal(t, "zep_vid00000001", *summarized[0].ZepDocID)
	assert.Equal(t, []string{"vid00000001", "vid00000002"}, index.Upserted)

	sum, err := st.GetSummary(ctx, "vid00000001")
	require.NoError(t, err)
	assert.Equal(t, []string{"raise prices"}, sum.Bullets)
	require.Len(t, sum.RagRefs, 2)
	assert.Equal(t, "transcript_blob", sum.RagRefs[0].Type)
	assert.Equal(t, "vector_doc", sum.RagRefs[1].Type)

	costs, err = st.GetDailyCost(ctx, timeutil.DateKey(time.Now()))
	require.NoError(t, err)
	assert.InDelta(t, 0.0072, costs.LlmUsd, 1e-9)

	llmAudits, err := st.ListAuditEntriesBetween(ctx, observability.AuditActionLLMRequest,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	assert.Len(t, llmAudits, 2)

	// Re-runs after orphan recovery no-op on completed videos.
	err = transcriber.Execute(ctx, &ent.Job{
		ID:       "batch_transcribe_20250304_020000",
		JobType:  job.JobTypeBatchTranscribe,
		VideoIds: []string{"vid00000001", "vid00000002"},
		Inputs:   map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, transcription.Calls)
}

func TestPipelineRejectsNonBusinessContent(t *testing.T) {
	st, settings := setupPipeline(t)
	ctx := context.Background()

	_, err := st.UpsertVideo(ctx, store.VideoInput{
		VideoID:     "vid00000001",
		URL:         timeutil.CanonicalURL("vid00000001"),
		Title:       "My morning routine",
		PublishedAt: time.Now().UTC(),
		ChannelID:   "UCchannel1",
		DurationSec: 600,
		Source:      video.SourceScrape,
	})
	require.NoError(t, err)
	_, err = st.TransitionVideoStatus(ctx, "vid00000001",
		video.StatusDiscovered, video.StatusTranscriptionQueued, store.TransitionExtra{})
	require.NoError(t, err)
	_, err = st.CompleteTranscription(ctx, store.TranscriptInput{
		VideoID:          "vid00000001",
		TranscriptDocRef: "tr_ref",
		Digest:           "abc123",
	})
	require.NoError(t, err)

	index := &FakeVectorIndex{}
	summarizer := NewSummarizer(st, settings,
		&FakeSummarization{Result: &SummaryResult{
			IsBusinessContent: false,
			ContentType:       "vlog",
			Reason:            "lifestyle vlog, no business content",
		}},
		&FakeTranscriptFetcher{Text: "woke up at 5am"},
		index)

	err = summarizer.Execute(ctx, &ent.Job{
		ID:      "single_summary_20250304_050000",
		JobType: job.JobTypeSingleSummary,
		Inputs:  map[string]interface{}{"video_id": "vid00000001"},
	})
	require.NoError(t, err)

	v, err := st.GetVideo(ctx, "vid00000001")
	require.NoError(t, err)
	assert.Equal(t, video.StatusRejectedNonBusiness, v.Status)
	require.NotNil(t, v.RejectionReason)
	assert.Equal(t, "lifestyle vlog, no business content", *v.RejectionReason)

	// No summary, no vector-store write.
	_, err = st.GetSummary(ctx, "vid00000001")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, index.Upserted)

	// A repeat run is a no-op, not an error.
	err = summarizer.Execute(ctx, &ent.Job{
		ID:      "single_summary_20250304_060000",
		JobType: job.JobTypeSingleSummary,
		Inputs:  map[string]interface{}{"video_id": "vid00000001"},
	})
	require.NoError(t, err)
}

func TestSheetBackfillDiscovery(t *testing.T) {
	st, settings := setupPipeline(t)
	ctx := context.Background()

	sheets := &FakeSheetSource{URLs: []string{
		"https://www.youtube.com/watch?v=vid00000001",
		"https://youtu.be/vid00000002",
		"not a link",
	}}
	scraper := NewScraper(st, settings, channelFixture(), sheets)

	err := scraper.Execute(ctx, &ent.Job{
		ID:      "sheet_backfill_20250304_010000",
		JobType: job.JobTypeSheetBackfill,
		Inputs:  map[string]interface{}{"sheet_id": "sheet1", "range": "Sheet1!A:D"},
	})
	require.NoError(t, err)

	discovered, err := st.ListVideosByStatus(ctx, video.StatusDiscovered, 10)
	require.NoError(t, err)
	require.Len(t, discovered, 2)
	assert.Equal(t, video.SourceSheet, discovered[0].Source)
	// Sheet rows carry only the link; metadata stays zero until a scrape
	// refreshes it.
	assert.Empty(t, discovered[0].Title)
	assert.Zero(t, discovered[0].DurationSec)

	audits, err := st.ListAuditEntriesBetween(ctx, "discovery_completed",
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, "sheet_backfill", audits[0].Details["mode"])
	assert.EqualValues(t, 2, audits[0].Details["discovered"])
	assert.EqualValues(t, 1, audits[0].Details["skipped"])
}
