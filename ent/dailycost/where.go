// Code generated by ent, DO NOT EDIT.

package dailycost

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldContainsFold(FieldID, id))
}

// TotalUsd applies equality check predicate on the "total_usd" field. It's identical to TotalUsdEQ.
func TotalUsd(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldTotalUsd, v))
}

// TranscriptionUsd applies equality check predicate on the "transcription_usd" field. It's identical to TranscriptionUsdEQ.
func TranscriptionUsd(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldTranscriptionUsd, v))
}

// LlmUsd applies equality check predicate on the "llm_usd" field. It's identical to LlmUsdEQ.
func LlmUsd(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldLlmUsd, v))
}

// OtherUsd applies equality check predicate on the "other_usd" field. It's identical to OtherUsdEQ.
func OtherUsd(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldOtherUsd, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldUpdatedAt, v))
}

// TotalUsdEQ applies the EQ predicate on the "total_usd" field.
func TotalUsdEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldTotalUsd, v))
}

// TotalUsdNEQ applies the NEQ predicate on the "total_usd" field.
func TotalUsdNEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNEQ(FieldTotalUsd, v))
}

// TotalUsdIn applies the In predicate on the "total_usd" field.
func TotalUsdIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldIn(FieldTotalUsd, vs...))
}

// TotalUsdNotIn applies the NotIn predicate on the "total_usd" field.
func TotalUsdNotIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNotIn(FieldTotalUsd, vs...))
}

// TotalUsdGT applies the GT predicate on the "total_usd" field.
func TotalUsdGT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGT(FieldTotalUsd, v))
}

// TotalUsdGTE applies the GTE predicate on the "total_usd" field.
func TotalUsdGTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGTE(FieldTotalUsd, v))
}

// TotalUsdLT applies the LT predicate on the "total_usd" field.
func TotalUsdLT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLT(FieldTotalUsd, v))
}

// TotalUsdLTE applies the LTE predicate on the "total_usd" field.
func TotalUsdLTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLTE(FieldTotalUsd, v))
}

// TranscriptionUsdEQ applies the EQ predicate on the "transcription_usd" field.
func TranscriptionUsdEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldTranscriptionUsd, v))
}

// TranscriptionUsdNEQ applies the NEQ predicate on the "transcription_usd" field.
func TranscriptionUsdNEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNEQ(FieldTranscriptionUsd, v))
}

// TranscriptionUsdIn applies the In predicate on the "transcription_usd" field.
func TranscriptionUsdIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldIn(FieldTranscriptionUsd, vs...))
}

// TranscriptionUsdNotIn applies the NotIn predicate on the "transcription_usd" field.
func TranscriptionUsdNotIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNotIn(FieldTranscriptionUsd, vs...))
}

// TranscriptionUsdGT applies the GT predicate on the "transcription_usd" field.
func TranscriptionUsdGT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGT(FieldTranscriptionUsd, v))
}

// TranscriptionUsdGTE applies the GTE predicate on the "transcription_usd" field.
func TranscriptionUsdGTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGTE(FieldTranscriptionUsd, v))
}

// TranscriptionUsdLT applies the LT predicate on the "transcription_usd" field.
func TranscriptionUsdLT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLT(FieldTranscriptionUsd, v))
}

// TranscriptionUsdLTE applies the LTE predicate on the "transcription_usd" field.
func TranscriptionUsdLTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLTE(FieldTranscriptionUsd, v))
}

// LlmUsdEQ applies the EQ predicate on the "llm_usd" field.
func LlmUsdEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldLlmUsd, v))
}

// LlmUsdNEQ applies the NEQ predicate on the "llm_usd" field.
func LlmUsdNEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNEQ(FieldLlmUsd, v))
}

// LlmUsdIn applies the In predicate on the "llm_usd" field.
func LlmUsdIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldIn(FieldLlmUsd, vs...))
}

// LlmUsdNotIn applies the NotIn predicate on the "llm_usd" field.
func LlmUsdNotIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNotIn(FieldLlmUsd, vs...))
}

// LlmUsdGT applies the GT predicate on the "llm_usd" field.
func LlmUsdGT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGT(FieldLlmUsd, v))
}

// LlmUsdGTE applies the GTE predicate on the "llm_usd" field.
func LlmUsdGTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGTE(FieldLlmUsd, v))
}

// LlmUsdLT applies the LT predicate on the "llm_usd" field.
func LlmUsdLT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLT(FieldLlmUsd, v))
}

// LlmUsdLTE applies the LTE predicate on the "llm_usd" field.
func LlmUsdLTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLTE(FieldLlmUsd, v))
}

// OtherUsdEQ applies the EQ predicate on the "other_usd" field.
func OtherUsdEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldOtherUsd, v))
}

// OtherUsdNEQ applies the NEQ predicate on the "other_usd" field.
func OtherUsdNEQ(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNEQ(FieldOtherUsd, v))
}

// OtherUsdIn applies the In predicate on the "other_usd" field.
func OtherUsdIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldIn(FieldOtherUsd, vs...))
}

// OtherUsdNotIn applies the NotIn predicate on the "other_usd" field.
func OtherUsdNotIn(vs ...float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNotIn(FieldOtherUsd, vs...))
}

// OtherUsdGT applies the GT predicate on the "other_usd" field.
func OtherUsdGT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGT(FieldOtherUsd, v))
}

// OtherUsdGTE applies the GTE predicate on the "other_usd" field.
func OtherUsdGTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGTE(FieldOtherUsd, v))
}

// OtherUsdLT applies the LT predicate on the "other_usd" field.
func OtherUsdLT(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLT(FieldOtherUsd, v))
}

// OtherUsdLTE applies the LTE predicate on the "other_usd" field.
func OtherUsdLTE(v float64) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLTE(FieldOtherUsd, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DailyCost {
	return predicate.DailyCost(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyCost) predicate.DailyCost {
	return predicate.DailyCost(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyCost) predicate.DailyCost {
	return predicate.DailyCost(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyCost) predicate.DailyCost {
	return predicate.DailyCost(sql.NotPredicates(p))
}
