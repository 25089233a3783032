package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Summary holds the schema definition for the Summary entity.
// Keyed by video_id; created by the summarizer in the same transaction that
// advances the video to `summarized`. Immutable thereafter.
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("video_id").
			Unique().
			Immutable(),
		field.Strings("bullets").
			Comment("Actionable business insights"),
		field.Strings("key_concepts"),
		field.String("prompt_id"),
		field.String("prompt_version"),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.String("transcript_doc_ref").
			Comment("Back-reference to the transcript artifact"),
		field.String("zep_doc_id").
			Optional().
			Nillable().
			Comment("Vector-store document ID, when indexed"),
		field.JSON("rag_refs", []RAGRef{}).
			Optional().
			Comment("Ordered retrieval references, each tagged by type"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// RAGRef is a typed pointer to a retrieval artifact.
type RAGRef struct {
	Type string `json:"type"` // transcript_blob, logic_doc, vector_doc
	Ref  string `json:"ref"`
}

