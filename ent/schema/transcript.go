package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Transcript holds the schema definition for the Transcript entity.
// Keyed by video_id; created by the transcriber in the same transaction that
// advances the video to `transcribed`. Immutable thereafter.
type Transcript struct {
	ent.Schema
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("video_id").
			Unique().
			Immutable(),
		field.String("transcript_doc_ref").
			Immutable().
			Comment("External blob ID of the plain-text transcript"),
		field.String("transcript_json_ref").
			Immutable().
			Comment("External blob ID of the structured transcript"),
		field.String("digest").
			Immutable().
			Comment("Content digest of the transcript text"),
		field.Float("cost_usd").
			Immutable().
			Comment("Per-call transcription cost"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

