package store

import (
	"context"
	"fmt"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/auditlog"
	"github.com/google/uuid"
)

// AppendAudit writes an audit entry unconditionally, server-timestamped.
// The audit collection is append-only; entries are never updated.
func (s *Store) AppendAudit(ctx context.Context, actor, action string, details map[string]interface{}) (*ent.AuditLog, error) {
	create := s.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetActor(actor).
		SetAction(action)
	if details != nil {
		create = create.SetDetails(details)
	}

	entry, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}
	return entry, nil
}

// appendAuditTx writes an audit entry inside an existing transaction so the
// entry commits atomically with the state change it records.
func appendAuditTx(ctx context.Context, tx *ent.Tx, actor, action string, details map[string]interface{}) error {
	create := tx.AuditLog.Create().
		SetID(uuid.New().String()).
		SetActor(actor).
		SetAction(action)
	if details != nil {
		create = create.SetDetails(details)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// RecordQuotaUsage appends a quota_consumed entry after a quota-draining
// external call. Counting is at-least-once: a retried call may record twice,
// and the dispatch threshold tolerates the small over-count.
func (s *Store) RecordQuotaUsage(ctx context.Context, actor, service string, units int) error {
	_, err := s.AppendAudit(ctx, actor, "quota_consumed", map[string]interface{}{
		"service": service,
		"units":   units,
	})
	return err
}

// SumQuotaConsumedBetween projects the quota_consumed audit entries for a
// service over a window into a unit total. JSON round-trips numbers as
// float64.
func (s *Store) SumQuotaConsumedBetween(ctx context.Context, service string, since, until time.Time) (int, error) {
	entries, err := s.ListAuditEntriesBetween(ctx, "quota_consumed", since, until, 10000)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range entries {
		if e.Details["service"] != service {
			continue
		}
		switch units := e.Details["units"].(type) {
		case float64:
			total += int(units)
		case int:
			total += units
		}
	}
	return total, nil
}

// ListAuditEntriesBetween returns audit entries for an action in
// [since, until), oldest first, up to limit. Pass an empty action to match
// all entries.
func (s *Store) ListAuditEntriesBetween(ctx context.Context, action string, since, until time.Time, limit int) ([]*ent.AuditLog, error) {
	query := s.client.AuditLog.Query().
		Where(auditlog.CreatedAtGTE(since), auditlog.CreatedAtLT(until))
	if action != "" {
		query = query.Where(auditlog.ActionEQ(action))
	}
	entries, err := query.
		Order(ent.Asc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	return entries, nil
}

// CountAuditActionsBetween returns per-action counts in the window, for the
// daily reporter's job metrics.
func (s *Store) CountAuditActionsBetween(ctx context.Context, since, until time.Time) (map[string]int, error) {
	entries, err := s.client.AuditLog.Query().
		Where(auditlog.CreatedAtGTE(since), auditlog.CreatedAtLT(until)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Action]++
	}
	return counts, nil
}
