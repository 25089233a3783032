package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/schema"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/observability"
	"github.com/autopiloot/autopiloot/pkg/queue"
	"github.com/autopiloot/autopiloot/pkg/store"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// llmTaskSummarize is the LLM task key for summary generation.
const llmTaskSummarize = "summarizer_generate_short"

// Summarizer executes single_summary and batch_summarize jobs: it fetches the
// transcript, runs the summarization call through the business-content gate,
// upserts the vector-index document, and lands summary + status +
// back-references + LLM spend in one transaction. Every LLM call is recorded
// in the audit log for the metrics collector, success or not.
type Summarizer struct {
	store    *store.Store
	settings *config.Settings
	llm      Summarization
	fetcher  TranscriptFetcher
	index    VectorIndex
	logger   *slog.Logger
	now      func() time.Time
}

// NewSummarizer creates the summarizer executor. index may be nil (no vector
// store configured); summaries then carry only the transcript ref.
func NewSummarizer(st *store.Store, settings *config.Settings, llm Summarization, fetcher TranscriptFetcher, index VectorIndex) *Summarizer {
	return &Summarizer{
		store:    st,
		settings: settings,
		llm:      llm,
		fetcher:  fetcher,
		index:    index,
		logger:   slog.Default().With("component", "summarizer"),
		now:      timeutil.NowUTC,
	}
}

// Execute dispatches on the job type.
func (s *Summarizer) Execute(ctx context.Context, j *ent.Job) error {
	switch j.JobType {
	case job.JobTypeSingleSummary:
		videoID := stringFromInputs(j.Inputs, "video_id")
		if videoID == "" && j.VideoID != nil {
			videoID = *j.VideoID
		}
		return s.summarizeOne(ctx, videoID, "")
	case job.JobTypeBatchSummarize:
		return s.executeBatch(ctx, j)
	default:
		return queue.NewJobError("invalid_configuration", fmt.Errorf("summarizer cannot execute %s jobs", j.JobType))
	}
}

func (s *Summarizer) executeBatch(ctx context.Context, j *ent.Job) error {
	videoIDs := j.VideoIds
	if len(videoIDs) == 0 {
		videoIDs = stringsFromInputs(j.Inputs, "video_ids")
	}
	promptOverride := stringFromInputs(j.Inputs, "prompt_override")

	for _, videoID := range videoIDs {
		if err := s.summarizeOne(ctx, videoID, promptOverride); err != nil {
			return err
		}
	}
	return nil
}

func (s *Summarizer) summarizeOne(ctx context.Context, videoID, promptOverride string) error {
	if videoID == "" {
		return queue.NewJobError("invalid_video_id", errors.New("empty video id"))
	}

	v, err := s.store.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return queue.NewJobError("invalid_video_id", err)
		}
		return err
	}

	switch v.Status {
	case video.StatusSummarized, video.StatusRejectedNonBusiness:
		return nil
	case video.StatusTranscribed:
	default:
		return queue.NewJobError("dependency_failure",
			fmt.Errorf("video %s is %s, expected transcribed", videoID, v.Status))
	}

	transcript, err := s.store.GetTranscript(ctx, videoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return queue.NewJobError("dependency_failure", err)
		}
		return err
	}

	fetchCtx, cancelFetch := context.WithTimeout(ctx, s.settings.Queue.APITimeout)
	text, err := s.fetcher.FetchTranscript(fetchCtx, transcript.TranscriptDocRef)
	cancelFetch()
	if err != nil {
		return fmt.Errorf("fetching transcript %s: %w", videoID, err)
	}

	task := s.settings.LLM.Task(llmTaskSummarize)
	promptID := task.PromptID
	if promptOverride != "" {
		promptID = promptOverride
	}

	callCtx, cancelCall := context.WithTimeout(ctx, s.settings.Queue.APITimeout)
	started := s.now()
	result, err := s.llm.Summarize(callCtx, text, v.Title)
	cancelCall()
	s.recordLLMRequest(ctx, task, promptID, started, result, err)
	if err != nil {
		return fmt.Errorf("summarizing %s: %w", videoID, err)
	}

	if !result.IsBusinessContent {
		if err := s.store.RejectNonBusiness(ctx, videoID, result.ContentType, result.Reason); err != nil {
			if errors.Is(err, store.ErrStaleState) {
				return nil
			}
			return err
		}
		s.logger.Info("Video rejected as non-business content",
			"video_id", videoID,
			"content_type", result.ContentType)
		return nil
	}

	zepDocID, ragRefs, err := s.indexSummary(ctx, v, transcript, result)
	if err != nil {
		return err
	}

	_, err = s.store.CompleteSummary(ctx, store.SummaryInput{
		VideoID:          videoID,
		Bullets:          result.Bullets,
		KeyConcepts:      result.KeyConcepts,
		PromptID:         promptID,
		PromptVersion:    task.PromptVersion,
		InputTokens:      result.InputTokens,
		OutputTokens:     result.OutputTokens,
		TranscriptDocRef: transcript.TranscriptDocRef,
		ZepDocID:         zepDocID,
		RAGRefs:          ragRefs,
		LLMCostUSD:       result.CostUSD,
	})
	if errors.Is(err, store.ErrStaleState) {
		return nil
	}
	if err != nil {
		return err
	}

	s.logger.Info("Video summarized", "video_id", videoID, "zep_doc_id", zepDocID)
	return nil
}

// indexSummary upserts the summary into the vector index and assembles the
// ordered retrieval references.
func (s *Summarizer) indexSummary(ctx context.Context, v *ent.Video, transcript *ent.Transcript, result *SummaryResult) (string, []schema.RAGRef, error) {
	ragRefs := []schema.RAGRef{
		{Type: "transcript_blob", Ref: transcript.TranscriptDocRef},
	}
	if s.index == nil {
		return "", ragRefs, nil
	}

	osCfg := s.settings.RAG.OpenSearch
	callCtx, cancel := context.WithTimeout(ctx, s.settings.Queue.APITimeout)
	defer cancel()
	doc, err := s.index.Upsert(callCtx, v.ID, strings.Join(result.Bullets, "\n"), map[string]interface{}{
		"title":         v.Title,
		"channel_id":    v.ChannelID,
		"published_at":  timeutil.FormatISO8601Z(v.PublishedAt),
		"index":         osCfg.Index,
		"hybrid_weight": osCfg.HybridWeight,
	}, result.KeyConcepts)
	if err != nil {
		return "", nil, fmt.Errorf("indexing summary %s: %w", v.ID, err)
	}

	ragRefs = append(ragRefs, schema.RAGRef{Type: "vector_doc", Ref: doc.DocID})
	return doc.DocID, ragRefs, nil
}

// recordLLMRequest projects the call into the audit log for the metrics
// collector. Best-effort.
func (s *Summarizer) recordLLMRequest(ctx context.Context, task config.LLMTaskConfig, promptID string, started time.Time, result *SummaryResult, callErr error) {
	req := observability.LLMRequest{
		Model:     task.Model,
		Task:      llmTaskSummarize,
		PromptID:  promptID,
		LatencyMS: float64(s.now().Sub(started).Milliseconds()),
		Success:   callErr == nil,
		At:        s.now(),
	}
	if result != nil {
		req.InputTokens = result.InputTokens
		req.OutputTokens = result.OutputTokens
		req.CostUSD = result.CostUSD
	}
	if err := observability.RecordLLMRequest(ctx, s.store, "summarizer", req); err != nil {
		s.logger.Warn("Failed to record LLM request", "error", err)
	}
}
