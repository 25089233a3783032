package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Video holds the schema definition for the Video entity. A video is
// identified by its 11-character YouTube ID and progresses monotonically
// through the processing status machine:
//
//	discovered → transcription_queued → transcribed → summarized
//
// with rejected_non_business as a terminal sideways transition. Videos are
// never deleted.
type Video struct {
	ent.Schema
}

// Fields of the Video.
func (Video) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("video_id").
			Unique().
			Immutable().
			MaxLen(11).
			Comment("11-character YouTube video ID"),
		field.String("url").
			Comment("Canonical watch URL"),
		field.String("title"),
		field.Time("published_at"),
		field.String("channel_id"),
		field.Int("duration_sec").
			NonNegative(),
		field.Enum("source").
			Values("scrape", "sheet"),
		field.Enum("status").
			Values("discovered", "transcription_queued", "transcribed", "summarized", "rejected_non_business").
			Default("discovered"),
		field.String("summary_doc_ref").
			Optional().
			Nillable().
			Comment("Back-reference to the summary artifact"),
		field.String("zep_doc_id").
			Optional().
			Nillable().
			Comment("Back-reference to the vector-store document"),
		field.String("rejection_reason").
			Optional().
			Nillable().
			Comment("Set when status = rejected_non_business"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Video.
func (Video) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("channel_id"),
		index.Fields("source"),
		index.Fields("status", "created_at"),
		index.Fields("created_at"),
	}
}
