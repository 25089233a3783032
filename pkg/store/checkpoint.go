package store

import (
	"context"
	"fmt"
	"time"

	"github.com/autopiloot/autopiloot/ent"
)

// CheckpointKey composes the checkpoint key for a (service, scope) pair,
// e.g. CheckpointKey("youtube_uploads", channelID).
func CheckpointKey(service, scope string) string {
	return service + "_" + scope
}

// GetCheckpoint returns the checkpoint for a key, or ErrNotFound when
// discovery has never completed for that scope.
func (s *Store) GetCheckpoint(ctx context.Context, key string) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Get(ctx, key)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("checkpoint %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get checkpoint %s: %w", key, err)
	}
	return cp, nil
}

// UpsertCheckpoint advances the high-water mark for a discovery scope.
// Called after each successful ingest step so progress survives restarts
// and quota exhaustion.
func (s *Store) UpsertCheckpoint(ctx context.Context, key string, lastPublishedAt time.Time, lastProcessedID string) error {
	err := s.client.Checkpoint.Create().
		SetID(key).
		SetLastPublishedAt(lastPublishedAt).
		SetLastProcessedID(lastProcessedID).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return fmt.Errorf("failed to create checkpoint %s: %w", key, err)
	}

	if err := s.client.Checkpoint.UpdateOneID(key).
		SetLastPublishedAt(lastPublishedAt).
		SetLastProcessedID(lastProcessedID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update checkpoint %s: %w", key, err)
	}
	return nil
}
