package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DLQEntry holds the schema definition for the DLQEntry entity — the
// dead-letter queue. Entries are created when the policy engine routes a job
// to DLQ and are never mutated afterwards.
type DLQEntry struct {
	ent.Schema
}

// Fields of the DLQEntry.
func (DLQEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dlq_id").
			Unique().
			Immutable().
			Comment("{job_type}_{original_job_id}_{timestamp}"),
		field.String("original_job_id").
			Immutable(),
		field.Enum("job_type").
			Values("channel_scrape", "sheet_backfill", "single_video", "batch_transcribe", "single_summary", "batch_summarize").
			Immutable(),
		field.String("error_type").
			Immutable(),
		field.Text("error_message").
			Immutable(),
		field.Int("retry_count").
			Immutable(),
		field.Time("last_attempt_at").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("original_inputs", map[string]interface{}{}).
			Immutable(),
		field.Enum("severity").
			Values("low", "medium", "high").
			Immutable(),
		field.Enum("recovery_priority").
			Values("low", "medium", "high", "urgent").
			Immutable(),
		field.Int("processing_attempts").
			Default(0).
			Immutable(),
		field.Strings("recovery_hints").
			Optional(),
		field.String("video_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Denormalized for DLQ queries"),
		field.Strings("video_ids").
			Optional().
			Comment("Denormalized for batch job types"),
		field.Float("estimated_cost_impact_usd").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			StorageKey("dlq_created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DLQEntry.
func (DLQEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("job_type"),
		index.Fields("severity"),
		index.Fields("original_job_id"),
	}
}
