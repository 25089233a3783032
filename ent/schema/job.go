package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity — the active job queue
// for all three agents. Jobs are created by the dispatchers with a
// timestamp-derived ID (duplicate dispatch collapses to the existing record)
// and are deleted on success or on DLQ routing.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable().
			Comment("{job_type}_{yyyymmdd_hhmmss}; idempotency anchor"),
		field.Enum("agent").
			Values("scraper", "transcriber", "summarizer"),
		field.Enum("job_type").
			Values("channel_scrape", "sheet_backfill", "single_video", "batch_transcribe", "single_summary", "batch_summarize"),
		field.JSON("inputs", map[string]interface{}{}).
			Comment("Typed per job_type; validated at dispatch"),
		field.JSON("policy_overrides", map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.Enum("priority").
			Values("high", "medium", "low").
			Default("medium"),
		field.String("created_by"),
		field.String("video_id").
			Optional().
			Nillable().
			Comment("Denormalized for (video_id, operation) uniqueness checks"),
		field.Strings("video_ids").
			Optional().
			Comment("Denormalized for batch job types"),
		field.String("last_error_type").
			Optional().
			Nillable(),
		field.String("last_error_message").
			Optional().
			Nillable(),
		field.Time("last_attempt_at").
			Optional().
			Nillable(),
		field.Int("estimated_quota_usage").
			Optional().
			Nillable(),
		field.Float("estimated_cost_usd").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent", "status", "created_at"),
		index.Fields("status"),
		index.Fields("job_type"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("video_id"),
	}
}
