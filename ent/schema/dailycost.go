package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// DailyCost holds the schema definition for the DailyCost entity — the daily
// cost ledger, keyed by UTC date (yyyy-mm-dd). Incremented after any
// confirmed billable external call. Reads by the policy engine use the
// ledger as-of the last commit (at-least-once accounting).
type DailyCost struct {
	ent.Schema
}

// Fields of the DailyCost.
func (DailyCost) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cost_date").
			Unique().
			Immutable().
			Comment("UTC date, yyyy-mm-dd"),
		field.Float("total_usd").
			Default(0),
		field.Float("transcription_usd").
			Default(0),
		field.Float("llm_usd").
			Default(0),
		field.Float("other_usd").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
