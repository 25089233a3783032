package store

import (
	"context"
	"fmt"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/video"
)

// VideoInput carries the discovery attributes of a video.
type VideoInput struct {
	VideoID     string
	URL         string
	Title       string
	PublishedAt time.Time
	ChannelID   string
	DurationSec int
	Source      video.Source
}

// TransitionExtra carries optional fields written together with a status
// transition.
type TransitionExtra struct {
	SummaryDocRef   *string
	ZepDocID        *string
	RejectionReason *string
}

// GetVideo returns a video by ID, or ErrNotFound.
func (s *Store) GetVideo(ctx context.Context, videoID string) (*ent.Video, error) {
	v, err := s.client.Video.Get(ctx, videoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get video %s: %w", videoID, err)
	}
	return v, nil
}

// UpsertVideo creates a video on first write and refreshes its discovery
// attributes on subsequent writes. created_at and the processing status are
// preserved across upserts; updated_at advances to the commit time.
func (s *Store) UpsertVideo(ctx context.Context, input VideoInput) (*ent.Video, error) {
	v, err := s.client.Video.Create().
		SetID(input.VideoID).
		SetURL(input.URL).
		SetTitle(input.Title).
		SetPublishedAt(input.PublishedAt).
		SetChannelID(input.ChannelID).
		SetDurationSec(input.DurationSec).
		SetSource(input.Source).
		Save(ctx)
	if err == nil {
		return v, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create video %s: %w", input.VideoID, err)
	}

	v, err = s.client.Video.UpdateOneID(input.VideoID).
		SetURL(input.URL).
		SetTitle(input.Title).
		SetPublishedAt(input.PublishedAt).
		SetChannelID(input.ChannelID).
		SetDurationSec(input.DurationSec).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update video %s: %w", input.VideoID, err)
	}
	return v, nil
}

// TransitionVideoStatus advances a video's status in a transaction that
// aborts with ErrStaleState when the current status differs from expected.
// This serializes effects per video: the losing concurrent writer refetches
// and re-evaluates idempotency.
func (s *Store) TransitionVideoStatus(ctx context.Context, videoID string, expected, next video.Status, extra TransitionExtra) (*ent.Video, error) {
	var updated *ent.Video
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		v, err := lockVideo(ctx, tx, videoID)
		if err != nil {
			return err
		}
		if v.Status != expected {
			return fmt.Errorf("video %s is %s, expected %s: %w", videoID, v.Status, expected, ErrStaleState)
		}
		updated, err = applyTransition(ctx, v, next, extra)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// lockVideo fetches a video FOR UPDATE inside a transaction.
func lockVideo(ctx context.Context, tx *ent.Tx, videoID string) (*ent.Video, error) {
	v, err := tx.Video.Query().
		Where(video.IDEQ(videoID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock video %s: %w", videoID, err)
	}
	return v, nil
}

// applyTransition writes the new status plus any extra fields.
func applyTransition(ctx context.Context, v *ent.Video, next video.Status, extra TransitionExtra) (*ent.Video, error) {
	update := v.Update().SetStatus(next)
	if extra.SummaryDocRef != nil {
		update = update.SetSummaryDocRef(*extra.SummaryDocRef)
	}
	if extra.ZepDocID != nil {
		update = update.SetZepDocID(*extra.ZepDocID)
	}
	if extra.RejectionReason != nil {
		update = update.SetRejectionReason(*extra.RejectionReason)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition video %s to %s: %w", v.ID, next, err)
	}
	return updated, nil
}

// CountVideosByStatus returns per-status counts for videos created in the
// given window.
func (s *Store) CountVideosByStatus(ctx context.Context, since, until time.Time) (map[video.Status]int, error) {
	videos, err := s.client.Video.Query().
		Where(video.CreatedAtGTE(since), video.CreatedAtLT(until)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	counts := make(map[video.Status]int)
	for _, v := range videos {
		counts[v.Status]++
	}
	return counts, nil
}

// ListVideosCreatedBetween returns videos created in [since, until) up to
// limit, newest first.
func (s *Store) ListVideosCreatedBetween(ctx context.Context, since, until time.Time, limit int) ([]*ent.Video, error) {
	videos, err := s.client.Video.Query().
		Where(video.CreatedAtGTE(since), video.CreatedAtLT(until)).
		Order(ent.Desc(video.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	return videos, nil
}

// ListVideosByStatus returns up to limit videos in the given status, oldest
// first, for batching work within a run window.
func (s *Store) ListVideosByStatus(ctx context.Context, status video.Status, limit int) ([]*ent.Video, error) {
	videos, err := s.client.Video.Query().
		Where(video.StatusEQ(status)).
		Order(ent.Asc(video.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos by status: %w", err)
	}
	return videos, nil
}
