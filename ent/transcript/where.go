// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldID, id))
}

// TranscriptDocRef applies equality check predicate on the "transcript_doc_ref" field. It's identical to TranscriptDocRefEQ.
func TranscriptDocRef(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTranscriptDocRef, v))
}

// TranscriptJSONRef applies equality check predicate on the "transcript_json_ref" field. It's identical to TranscriptJSONRefEQ.
func TranscriptJSONRef(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTranscriptJSONRef, v))
}

// Digest applies equality check predicate on the "digest" field. It's identical to DigestEQ.
func Digest(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldDigest, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// TranscriptDocRefEQ applies the EQ predicate on the "transcript_doc_ref" field.
func TranscriptDocRefEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTranscriptDocRef, v))
}

// TranscriptDocRefNEQ applies the NEQ predicate on the "transcript_doc_ref" field.
func TranscriptDocRefNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTranscriptDocRef, v))
}

// TranscriptDocRefIn applies the In predicate on the "transcript_doc_ref" field.
func TranscriptDocRefIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTranscriptDocRef, vs...))
}

// TranscriptDocRefNotIn applies the NotIn predicate on the "transcript_doc_ref" field.
func TranscriptDocRefNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTranscriptDocRef, vs...))
}

// TranscriptDocRefGT applies the GT predicate on the "transcript_doc_ref" field.
func TranscriptDocRefGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTranscriptDocRef, v))
}

// TranscriptDocRefGTE applies the GTE predicate on the "transcript_doc_ref" field.
func TranscriptDocRefGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTranscriptDocRef, v))
}

// TranscriptDocRefLT applies the LT predicate on the "transcript_doc_ref" field.
func TranscriptDocRefLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTranscriptDocRef, v))
}

// TranscriptDocRefLTE applies the LTE predicate on the "transcript_doc_ref" field.
func TranscriptDocRefLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTranscriptDocRef, v))
}

// TranscriptDocRefContains applies the Contains predicate on the "transcript_doc_ref" field.
func TranscriptDocRefContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldTranscriptDocRef, v))
}

// TranscriptDocRefHasPrefix applies the HasPrefix predicate on the "transcript_doc_ref" field.
func TranscriptDocRefHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldTranscriptDocRef, v))
}

// TranscriptDocRefHasSuffix applies the HasSuffix predicate on the "transcript_doc_ref" field.
func TranscriptDocRefHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldTranscriptDocRef, v))
}

// TranscriptDocRefEqualFold applies the EqualFold predicate on the "transcript_doc_ref" field.
func TranscriptDocRefEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldTranscriptDocRef, v))
}

// TranscriptDocRefContainsFold applies the ContainsFold predicate on the "transcript_doc_ref" field.
func TranscriptDocRefContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldTranscriptDocRef, v))
}

// TranscriptJSONRefEQ applies the EQ predicate on the "transcript_json_ref" field.
func TranscriptJSONRefEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefNEQ applies the NEQ predicate on the "transcript_json_ref" field.
func TranscriptJSONRefNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefIn applies the In predicate on the "transcript_json_ref" field.
func TranscriptJSONRefIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTranscriptJSONRef, vs...))
}

// TranscriptJSONRefNotIn applies the NotIn predicate on the "transcript_json_ref" field.
func TranscriptJSONRefNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTranscriptJSONRef, vs...))
}

// TranscriptJSONRefGT applies the GT predicate on the "transcript_json_ref" field.
func TranscriptJSONRefGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefGTE applies the GTE predicate on the "transcript_json_ref" field.
func TranscriptJSONRefGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefLT applies the LT predicate on the "transcript_json_ref" field.
func TranscriptJSONRefLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefLTE applies the LTE predicate on the "transcript_json_ref" field.
func TranscriptJSONRefLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefContains applies the Contains predicate on the "transcript_json_ref" field.
func TranscriptJSONRefContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefHasPrefix applies the HasPrefix predicate on the "transcript_json_ref" field.
func TranscriptJSONRefHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefHasSuffix applies the HasSuffix predicate on the "transcript_json_ref" field.
func TranscriptJSONRefHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefEqualFold applies the EqualFold predicate on the "transcript_json_ref" field.
func TranscriptJSONRefEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldTranscriptJSONRef, v))
}

// TranscriptJSONRefContainsFold applies the ContainsFold predicate on the "transcript_json_ref" field.
func TranscriptJSONRefContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldTranscriptJSONRef, v))
}

// DigestEQ applies the EQ predicate on the "digest" field.
func DigestEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldDigest, v))
}

// DigestNEQ applies the NEQ predicate on the "digest" field.
func DigestNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldDigest, v))
}

// DigestIn applies the In predicate on the "digest" field.
func DigestIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldDigest, vs...))
}

// DigestNotIn applies the NotIn predicate on the "digest" field.
func DigestNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldDigest, vs...))
}

// DigestGT applies the GT predicate on the "digest" field.
func DigestGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldDigest, v))
}

// DigestGTE applies the GTE predicate on the "digest" field.
func DigestGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldDigest, v))
}

// DigestLT applies the LT predicate on the "digest" field.
func DigestLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldDigest, v))
}

// DigestLTE applies the LTE predicate on the "digest" field.
func DigestLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldDigest, v))
}

// DigestContains applies the Contains predicate on the "digest" field.
func DigestContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldDigest, v))
}

// DigestHasPrefix applies the HasPrefix predicate on the "digest" field.
func DigestHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldDigest, v))
}

// DigestHasSuffix applies the HasSuffix predicate on the "digest" field.
func DigestHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldDigest, v))
}

// DigestEqualFold applies the EqualFold predicate on the "digest" field.
func DigestEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldDigest, v))
}

// DigestContainsFold applies the ContainsFold predicate on the "digest" field.
func DigestContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldDigest, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldCostUsd, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.NotPredicates(p))
}
