package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity — the
// append-only audit trail. Every orchestration-visible action writes exactly
// one entry through the orchestrator's audit logger; no component bypasses
// it. Entries are never updated or deleted.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("actor").
			Immutable().
			Comment("Component that performed the action"),
		field.String("action").
			Immutable().
			Comment("e.g. job_dispatched, job_dlq_routed, llm_request"),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action", "created_at"),
		index.Fields("actor"),
		index.Fields("created_at"),
	}
}
