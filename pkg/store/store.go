// Package store presents the typed state-store interface over the entity
// collections: videos, transcripts, summaries, jobs, DLQ entries,
// checkpoints, the daily cost ledger, and the audit log. Multi-entity
// updates that must be atomic (job enqueue + status transition, transcript +
// status + cost, summary + status + back-references) execute in a single
// transaction here; callers never compose their own.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autopiloot/autopiloot/ent"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates the requested record does not exist. Absence is
	// an expected outcome, never a thrown failure.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a create collided with an existing key.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrStaleState indicates a transactional status transition found a
	// different current status than the caller expected: a concurrent
	// writer won. The loser refetches and re-evaluates idempotency.
	ErrStaleState = errors.New("stale state")
)

// Store is the single typed interface over the entity collections.
type Store struct {
	client *ent.Client

	// now stamps cost-ledger date keys; swappable in tests to pin the
	// attribution day near UTC midnight.
	now func() time.Time
}

// New creates a Store over an Ent client.
func New(client *ent.Client) *Store {
	if client == nil {
		panic("store: nil ent client")
	}
	return &Store{client: client, now: time.Now}
}

// Client exposes the underlying Ent client for the queue runtime's claim
// queries, which need FOR UPDATE SKIP LOCKED.
func (s *Store) Client() *ent.Client {
	return s.client
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
