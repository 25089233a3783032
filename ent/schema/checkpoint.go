package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Checkpoint holds the schema definition for the Checkpoint entity — the
// persisted high-water mark for incremental discovery, keyed by
// "{service}_{scope}" (e.g. "youtube_uploads_{channel_id}"). Upserted by the
// scraper after each successful ingest step so discovery survives restarts
// and quota exhaustion.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("service_scope").
			Unique().
			Immutable(),
		field.Time("last_published_at"),
		field.String("last_processed_id"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
