// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldID, id))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPromptID, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPromptVersion, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldOutputTokens, v))
}

// TranscriptDocRef applies equality check predicate on the "transcript_doc_ref" field. It's identical to TranscriptDocRefEQ.
func TranscriptDocRef(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTranscriptDocRef, v))
}

// ZepDocID applies equality check predicate on the "zep_doc_id" field. It's identical to ZepDocIDEQ.
func ZepDocID(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldZepDocID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldPromptID, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldPromptVersion, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldOutputTokens, v))
}

// TranscriptDocRefEQ applies the EQ predicate on the "transcript_doc_ref" field.
func TranscriptDocRefEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldTranscriptDocRef, v))
}

// TranscriptDocRefNEQ applies the NEQ predicate on the "transcript_doc_ref" field.
func TranscriptDocRefNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldTranscriptDocRef, v))
}

// TranscriptDocRefIn applies the In predicate on the "transcript_doc_ref" field.
func TranscriptDocRefIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldTranscriptDocRef, vs...))
}

// TranscriptDocRefNotIn applies the NotIn predicate on the "transcript_doc_ref" field.
func TranscriptDocRefNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldTranscriptDocRef, vs...))
}

// TranscriptDocRefGT applies the GT predicate on the "transcript_doc_ref" field.
func TranscriptDocRefGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldTranscriptDocRef, v))
}

// TranscriptDocRefGTE applies the GTE predicate on the "transcript_doc_ref" field.
func TranscriptDocRefGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldTranscriptDocRef, v))
}

// TranscriptDocRefLT applies the LT predicate on the "transcript_doc_ref" field.
func TranscriptDocRefLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldTranscriptDocRef, v))
}

// TranscriptDocRefLTE applies the LTE predicate on the "transcript_doc_ref" field.
func TranscriptDocRefLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldTranscriptDocRef, v))
}

// TranscriptDocRefContains applies the Contains predicate on the "transcript_doc_ref" field.
func TranscriptDocRefContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldTranscriptDocRef, v))
}

// TranscriptDocRefHasPrefix applies the HasPrefix predicate on the "transcript_doc_ref" field.
func TranscriptDocRefHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldTranscriptDocRef, v))
}

// TranscriptDocRefHasSuffix applies the HasSuffix predicate on the "transcript_doc_ref" field.
func TranscriptDocRefHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldTranscriptDocRef, v))
}

// TranscriptDocRefEqualFold applies the EqualFold predicate on the "transcript_doc_ref" field.
func TranscriptDocRefEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldTranscriptDocRef, v))
}

// TranscriptDocRefContainsFold applies the ContainsFold predicate on the "transcript_doc_ref" field.
func TranscriptDocRefContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldTranscriptDocRef, v))
}

// ZepDocIDEQ applies the EQ predicate on the "zep_doc_id" field.
func ZepDocIDEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldZepDocID, v))
}

// ZepDocIDNEQ applies the NEQ predicate on the "zep_doc_id" field.
func ZepDocIDNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldZepDocID, v))
}

// ZepDocIDIn applies the In predicate on the "zep_doc_id" field.
func ZepDocIDIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldZepDocID, vs...))
}

// ZepDocIDNotIn applies the NotIn predicate on the "zep_doc_id" field.
func ZepDocIDNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldZepDocID, vs...))
}

// ZepDocIDGT applies the GT predicate on the "zep_doc_id" field.
func ZepDocIDGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldZepDocID, v))
}

// ZepDocIDGTE applies the GTE predicate on the "zep_doc_id" field.
func ZepDocIDGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldZepDocID, v))
}

// ZepDocIDLT applies the LT predicate on the "zep_doc_id" field.
func ZepDocIDLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldZepDocID, v))
}

// ZepDocIDLTE applies the LTE predicate on the "zep_doc_id" field.
func ZepDocIDLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldZepDocID, v))
}

// ZepDocIDContains applies the Contains predicate on the "zep_doc_id" field.
func ZepDocIDContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldZepDocID, v))
}

// ZepDocIDHasPrefix applies the HasPrefix predicate on the "zep_doc_id" field.
func ZepDocIDHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldZepDocID, v))
}

// ZepDocIDHasSuffix applies the HasSuffix predicate on the "zep_doc_id" field.
func ZepDocIDHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldZepDocID, v))
}

// ZepDocIDIsNil applies the IsNil predicate on the "zep_doc_id" field.
func ZepDocIDIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldZepDocID))
}

// ZepDocIDNotNil applies the NotNil predicate on the "zep_doc_id" field.
func ZepDocIDNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldZepDocID))
}

// ZepDocIDEqualFold applies the EqualFold predicate on the "zep_doc_id" field.
func ZepDocIDEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldZepDocID, v))
}

// ZepDocIDContainsFold applies the ContainsFold predicate on the "zep_doc_id" field.
func ZepDocIDContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldZepDocID, v))
}

// RagRefsIsNil applies the IsNil predicate on the "rag_refs" field.
func RagRefsIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldRagRefs))
}

// RagRefsNotNil applies the NotNil predicate on the "rag_refs" field.
func RagRefsNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldRagRefs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
