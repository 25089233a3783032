package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/config"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/autopiloot/autopiloot/pkg/queue"
	"github.com/autopiloot/autopiloot/pkg/store"
)

// Transcriber executes single_video and batch_transcribe jobs. Each video
// passes the duration gate, transitions through transcription_queued, and
// lands its transcript, status, and cost-ledger charge in one transaction.
type Transcriber struct {
	store         *store.Store
	settings      *config.Settings
	transcription Transcription
	logger        *slog.Logger
}

// NewTranscriber creates the transcriber executor.
func NewTranscriber(st *store.Store, settings *config.Settings, transcription Transcription) *Transcriber {
	return &Transcriber{
		store:         st,
		settings:      settings,
		transcription: transcription,
		logger:        slog.Default().With("component", "transcriber"),
	}
}

// Execute dispatches on the job type.
func (t *Transcriber) Execute(ctx context.Context, j *ent.Job) error {
	switch j.JobType {
	case job.JobTypeSingleVideo:
		videoID := stringFromInputs(j.Inputs, "video_id")
		if videoID == "" && j.VideoID != nil {
			videoID = *j.VideoID
		}
		return t.transcribeOne(ctx, videoID)
	case job.JobTypeBatchTranscribe:
		return t.executeBatch(ctx, j)
	default:
		return queue.NewJobError("invalid_configuration", fmt.Errorf("transcriber cannot execute %s jobs", j.JobType))
	}
}

// executeBatch transcribes each video in order. A too-long video is skipped
// with an audit entry instead of failing the batch; any other failure aborts
// so the retry resumes where it stopped (completed videos no-op on re-run).
func (t *Transcriber) executeBatch(ctx context.Context, j *ent.Job) error {
	videoIDs := j.VideoIds
	if len(videoIDs) == 0 {
		videoIDs = stringsFromInputs(j.Inputs, "video_ids")
	}

	for _, videoID := range videoIDs {
		err := t.transcribeOne(ctx, videoID)
		if err == nil {
			continue
		}
		var jobErr *queue.JobError
		if errors.As(err, &jobErr) && jobErr.Type == "video_too_long" {
			t.audit(ctx, "video_skipped_too_long", map[string]interface{}{
				"job_id":   j.ID,
				"video_id": videoID,
			})
			t.logger.Warn("Skipping over-length video in batch", "video_id", videoID)
			continue
		}
		return err
	}
	return nil
}

func (t *Transcriber) transcribeOne(ctx context.Context, videoID string) error {
	if videoID == "" {
		return queue.NewJobError("invalid_video_id", errors.New("empty video id"))
	}

	v, err := t.store.GetVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return queue.NewJobError("invalid_video_id", err)
		}
		return err
	}

	switch v.Status {
	case video.StatusTranscribed, video.StatusSummarized, video.StatusRejectedNonBusiness:
		// Already past transcription; a re-run after orphan recovery no-ops.
		return nil
	case video.StatusDiscovered, video.StatusTranscriptionQueued:
	}

	if max := t.settings.Idempotency.MaxVideoDurationSec; v.DurationSec > max {
		return queue.NewJobError("video_too_long",
			fmt.Errorf("video %s is %ds, limit %ds", videoID, v.DurationSec, max))
	}

	if v.Status == video.StatusDiscovered {
		_, err := t.store.TransitionVideoStatus(ctx, videoID, video.StatusDiscovered, video.StatusTranscriptionQueued, store.TransitionExtra{})
		if err != nil && !errors.Is(err, store.ErrStaleState) {
			return err
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, t.settings.Queue.TranscribeTimeout)
	result, err := t.transcription.Transcribe(callCtx, v.URL)
	cancel()
	t.recordQuota(ctx)
	if err != nil {
		return fmt.Errorf("transcribing %s: %w", videoID, err)
	}

	_, err = t.store.CompleteTranscription(ctx, store.TranscriptInput{
		VideoID:           videoID,
		TranscriptDocRef:  result.TranscriptDocRef,
		TranscriptJSONRef: result.TranscriptJSONRef,
		Digest:            result.Digest,
		CostUSD:           result.CostUSD,
	})
	if errors.Is(err, store.ErrStaleState) {
		// A concurrent writer completed this video first.
		return nil
	}
	if err != nil {
		return err
	}

	t.logger.Info("Video transcribed", "video_id", videoID, "cost_usd", result.CostUSD)
	return nil
}

// recordQuota charges one AssemblyAI transcription slot against the daily
// quota, submitted or not: the external call was made either way.
func (t *Transcriber) recordQuota(ctx context.Context) {
	if err := t.store.RecordQuotaUsage(ctx, "transcriber", policy.ServiceAssemblyAI, 1); err != nil {
		t.logger.Warn("Failed to record quota usage", "error", err)
	}
}

func (t *Transcriber) audit(ctx context.Context, action string, details map[string]interface{}) {
	if _, err := t.store.AppendAudit(ctx, "transcriber", action, details); err != nil {
		t.logger.Error("Failed to append audit entry", "action", action, "error", err)
	}
}
