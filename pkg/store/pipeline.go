package store

import (
	"context"
	"fmt"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/schema"
	"github.com/autopiloot/autopiloot/ent/video"
	"github.com/autopiloot/autopiloot/pkg/timeutil"
)

// Composite transactions. Each multi-entity update that pairs a video status
// transition with an artifact or ledger write executes here as a single
// transaction, per the core's consistency contract.

// TranscriptInput carries the artifacts of a completed transcription.
type TranscriptInput struct {
	VideoID           string
	TranscriptDocRef  string
	TranscriptJSONRef string
	Digest            string
	CostUSD           float64
}

// SummaryInput carries the artifacts of a completed summary.
type SummaryInput struct {
	VideoID          string
	Bullets          []string
	KeyConcepts      []string
	PromptID         string
	PromptVersion    string
	InputTokens      int
	OutputTokens     int
	TranscriptDocRef string
	ZepDocID         string
	RAGRefs          []schema.RAGRef
	LLMCostUSD       float64
}

// CompleteTranscription writes the transcript record, advances the video to
// transcribed, and increments the daily cost ledger in one transaction.
func (s *Store) CompleteTranscription(ctx context.Context, input TranscriptInput) (*ent.Transcript, error) {
	var created *ent.Transcript
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		v, err := lockVideo(ctx, tx, input.VideoID)
		if err != nil {
			return err
		}
		if v.Status != video.StatusTranscriptionQueued {
			return fmt.Errorf("video %s is %s, expected transcription_queued: %w", input.VideoID, v.Status, ErrStaleState)
		}

		created, err = tx.Transcript.Create().
			SetID(input.VideoID).
			SetTranscriptDocRef(input.TranscriptDocRef).
			SetTranscriptJSONRef(input.TranscriptJSONRef).
			SetDigest(input.Digest).
			SetCostUsd(input.CostUSD).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create transcript %s: %w", input.VideoID, err)
		}

		if _, err := applyTransition(ctx, v, video.StatusTranscribed, TransitionExtra{}); err != nil {
			return err
		}

		if input.CostUSD > 0 {
			dateKey := timeutil.DateKey(s.now())
			if err := addCostTx(ctx, tx, dateKey, CostTranscription, input.CostUSD); err != nil {
				return err
			}
		}

		return appendAuditTx(ctx, tx, "transcriber", "transcription_completed", map[string]interface{}{
			"video_id": input.VideoID,
			"cost_usd": input.CostUSD,
			"digest":   input.Digest,
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CompleteSummary writes the summary record, advances the video to
// summarized, sets the back-reference fields on the video, and charges the
// LLM spend in one transaction.
func (s *Store) CompleteSummary(ctx context.Context, input SummaryInput) (*ent.Summary, error) {
	var created *ent.Summary
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		v, err := lockVideo(ctx, tx, input.VideoID)
		if err != nil {
			return err
		}
		if v.Status != video.StatusTranscribed {
			return fmt.Errorf("video %s is %s, expected transcribed: %w", input.VideoID, v.Status, ErrStaleState)
		}

		create := tx.Summary.Create().
			SetID(input.VideoID).
			SetBullets(input.Bullets).
			SetKeyConcepts(input.KeyConcepts).
			SetPromptID(input.PromptID).
			SetPromptVersion(input.PromptVersion).
			SetInputTokens(input.InputTokens).
			SetOutputTokens(input.OutputTokens).
			SetTranscriptDocRef(input.TranscriptDocRef)
		if input.ZepDocID != "" {
			create = create.SetZepDocID(input.ZepDocID)
		}
		if len(input.RAGRefs) > 0 {
			create = create.SetRagRefs(input.RAGRefs)
		}
		created, err = create.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create summary %s: %w", input.VideoID, err)
		}

		summaryRef := input.VideoID
		extra := TransitionExtra{SummaryDocRef: &summaryRef}
		if input.ZepDocID != "" {
			extra.ZepDocID = &input.ZepDocID
		}
		if _, err := applyTransition(ctx, v, video.StatusSummarized, extra); err != nil {
			return err
		}

		if input.LLMCostUSD > 0 {
			dateKey := timeutil.DateKey(s.now())
			if err := addCostTx(ctx, tx, dateKey, CostLLM, input.LLMCostUSD); err != nil {
				return err
			}
		}

		return appendAuditTx(ctx, tx, "summarizer", "summary_completed", map[string]interface{}{
			"video_id":   input.VideoID,
			"zep_doc_id": input.ZepDocID,
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RejectNonBusiness marks a transcribed video as rejected_non_business.
// Terminal for the workflow but not an error: no summary, no vector-store
// write, no DLQ entry — just the transition and one audit entry.
func (s *Store) RejectNonBusiness(ctx context.Context, videoID, contentType, reason string) error {
	return s.withTx(ctx, func(tx *ent.Tx) error {
		v, err := lockVideo(ctx, tx, videoID)
		if err != nil {
			return err
		}
		if v.Status != video.StatusTranscribed {
			return fmt.Errorf("video %s is %s, expected transcribed: %w", videoID, v.Status, ErrStaleState)
		}

		if _, err := applyTransition(ctx, v, video.StatusRejectedNonBusiness, TransitionExtra{RejectionReason: &reason}); err != nil {
			return err
		}

		return appendAuditTx(ctx, tx, "summarizer", "video_rejected_non_business", map[string]interface{}{
			"video_id":     videoID,
			"content_type": contentType,
			"reason":       reason,
		})
	})
}

// GetTranscript returns the transcript for a video, or ErrNotFound.
func (s *Store) GetTranscript(ctx context.Context, videoID string) (*ent.Transcript, error) {
	tr, err := s.client.Transcript.Get(ctx, videoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("transcript %s: %w", videoID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transcript %s: %w", videoID, err)
	}
	return tr, nil
}

// GetSummary returns the summary for a video, or ErrNotFound.
func (s *Store) GetSummary(ctx context.Context, videoID string) (*ent.Summary, error) {
	sum, err := s.client.Summary.Get(ctx, videoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("summary %s: %w", videoID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get summary %s: %w", videoID, err)
	}
	return sum, nil
}
