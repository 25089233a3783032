// Code generated by ent, DO NOT EDIT.

package video

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldTitle, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldPublishedAt, v))
}

// ChannelID applies equality check predicate on the "channel_id" field. It's identical to ChannelIDEQ.
func ChannelID(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldChannelID, v))
}

// DurationSec applies equality check predicate on the "duration_sec" field. It's identical to DurationSecEQ.
func DurationSec(v int) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldDurationSec, v))
}

// SummaryDocRef applies equality check predicate on the "summary_doc_ref" field. It's identical to SummaryDocRefEQ.
func SummaryDocRef(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldSummaryDocRef, v))
}

// ZepDocID applies equality check predicate on the "zep_doc_id" field. It's identical to ZepDocIDEQ.
func ZepDocID(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldZepDocID, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldRejectionReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldUpdatedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldTitle, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldPublishedAt, v))
}

// ChannelIDEQ applies the EQ predicate on the "channel_id" field.
func ChannelIDEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldChannelID, v))
}

// ChannelIDNEQ applies the NEQ predicate on the "channel_id" field.
func ChannelIDNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldChannelID, v))
}

// ChannelIDIn applies the In predicate on the "channel_id" field.
func ChannelIDIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldChannelID, vs...))
}

// ChannelIDNotIn applies the NotIn predicate on the "channel_id" field.
func ChannelIDNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldChannelID, vs...))
}

// ChannelIDGT applies the GT predicate on the "channel_id" field.
func ChannelIDGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldChannelID, v))
}

// ChannelIDGTE applies the GTE predicate on the "channel_id" field.
func ChannelIDGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldChannelID, v))
}

// ChannelIDLT applies the LT predicate on the "channel_id" field.
func ChannelIDLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldChannelID, v))
}

// ChannelIDLTE applies the LTE predicate on the "channel_id" field.
func ChannelIDLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldChannelID, v))
}

// ChannelIDContains applies the Contains predicate on the "channel_id" field.
func ChannelIDContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldChannelID, v))
}

// ChannelIDHasPrefix applies the HasPrefix predicate on the "channel_id" field.
func ChannelIDHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldChannelID, v))
}

// ChannelIDHasSuffix applies the HasSuffix predicate on the "channel_id" field.
func ChannelIDHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldChannelID, v))
}

// ChannelIDEqualFold applies the EqualFold predicate on the "channel_id" field.
func ChannelIDEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldChannelID, v))
}

// ChannelIDContainsFold applies the ContainsFold predicate on the "channel_id" field.
func ChannelIDContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldChannelID, v))
}

// DurationSecEQ applies the EQ predicate on the "duration_sec" field.
func DurationSecEQ(v int) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldDurationSec, v))
}

// DurationSecNEQ applies the NEQ predicate on the "duration_sec" field.
func DurationSecNEQ(v int) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldDurationSec, v))
}

// DurationSecIn applies the In predicate on the "duration_sec" field.
func DurationSecIn(vs ...int) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldDurationSec, vs...))
}

// DurationSecNotIn applies the NotIn predicate on the "duration_sec" field.
func DurationSecNotIn(vs ...int) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldDurationSec, vs...))
}

// DurationSecGT applies the GT predicate on the "duration_sec" field.
func DurationSecGT(v int) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldDurationSec, v))
}

// DurationSecGTE applies the GTE predicate on the "duration_sec" field.
func DurationSecGTE(v int) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldDurationSec, v))
}

// DurationSecLT applies the LT predicate on the "duration_sec" field.
func DurationSecLT(v int) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldDurationSec, v))
}

// DurationSecLTE applies the LTE predicate on the "duration_sec" field.
func DurationSecLTE(v int) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldDurationSec, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldSource, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldStatus, vs...))
}

// SummaryDocRefEQ applies the EQ predicate on the "summary_doc_ref" field.
func SummaryDocRefEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldSummaryDocRef, v))
}

// SummaryDocRefNEQ applies the NEQ predicate on the "summary_doc_ref" field.
func SummaryDocRefNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldSummaryDocRef, v))
}

// SummaryDocRefIn applies the In predicate on the "summary_doc_ref" field.
func SummaryDocRefIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldSummaryDocRef, vs...))
}

// SummaryDocRefNotIn applies the NotIn predicate on the "summary_doc_ref" field.
func SummaryDocRefNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldSummaryDocRef, vs...))
}

// SummaryDocRefGT applies the GT predicate on the "summary_doc_ref" field.
func SummaryDocRefGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldSummaryDocRef, v))
}

// SummaryDocRefGTE applies the GTE predicate on the "summary_doc_ref" field.
func SummaryDocRefGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldSummaryDocRef, v))
}

// SummaryDocRefLT applies the LT predicate on the "summary_doc_ref" field.
func SummaryDocRefLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldSummaryDocRef, v))
}

// SummaryDocRefLTE applies the LTE predicate on the "summary_doc_ref" field.
func SummaryDocRefLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldSummaryDocRef, v))
}

// SummaryDocRefContains applies the Contains predicate on the "summary_doc_ref" field.
func SummaryDocRefContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldSummaryDocRef, v))
}

// SummaryDocRefHasPrefix applies the HasPrefix predicate on the "summary_doc_ref" field.
func SummaryDocRefHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldSummaryDocRef, v))
}

// SummaryDocRefHasSuffix applies the HasSuffix predicate on the "summary_doc_ref" field.
func SummaryDocRefHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldSummaryDocRef, v))
}

// SummaryDocRefIsNil applies the IsNil predicate on the "summary_doc_ref" field.
func SummaryDocRefIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldSummaryDocRef))
}

// SummaryDocRefNotNil applies the NotNil predicate on the "summary_doc_ref" field.
func SummaryDocRefNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldSummaryDocRef))
}

// SummaryDocRefEqualFold applies the EqualFold predicate on the "summary_doc_ref" field.
func SummaryDocRefEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldSummaryDocRef, v))
}

// SummaryDocRefContainsFold applies the ContainsFold predicate on the "summary_doc_ref" field.
func SummaryDocRefContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldSummaryDocRef, v))
}

// ZepDocIDEQ applies the EQ predicate on the "zep_doc_id" field.
func ZepDocIDEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldZepDocID, v))
}

// ZepDocIDNEQ applies the NEQ predicate on the "zep_doc_id" field.
func ZepDocIDNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldZepDocID, v))
}

// ZepDocIDIn applies the In predicate on the "zep_doc_id" field.
func ZepDocIDIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldZepDocID, vs...))
}

// ZepDocIDNotIn applies the NotIn predicate on the "zep_doc_id" field.
func ZepDocIDNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldZepDocID, vs...))
}

// ZepDocIDGT applies the GT predicate on the "zep_doc_id" field.
func ZepDocIDGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldZepDocID, v))
}

// ZepDocIDGTE applies the GTE predicate on the "zep_doc_id" field.
func ZepDocIDGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldZepDocID, v))
}

// ZepDocIDLT applies the LT predicate on the "zep_doc_id" field.
func ZepDocIDLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldZepDocID, v))
}

// ZepDocIDLTE applies the LTE predicate on the "zep_doc_id" field.
func ZepDocIDLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldZepDocID, v))
}

// ZepDocIDContains applies the Contains predicate on the "zep_doc_id" field.
func ZepDocIDContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldZepDocID, v))
}

// ZepDocIDHasPrefix applies the HasPrefix predicate on the "zep_doc_id" field.
func ZepDocIDHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldZepDocID, v))
}

// ZepDocIDHasSuffix applies the HasSuffix predicate on the "zep_doc_id" field.
func ZepDocIDHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldZepDocID, v))
}

// ZepDocIDIsNil applies the IsNil predicate on the "zep_doc_id" field.
func ZepDocIDIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldZepDocID))
}

// ZepDocIDNotNil applies the NotNil predicate on the "zep_doc_id" field.
func ZepDocIDNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldZepDocID))
}

// ZepDocIDEqualFold applies the EqualFold predicate on the "zep_doc_id" field.
func ZepDocIDEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldZepDocID, v))
}

// ZepDocIDContainsFold applies the ContainsFold predicate on the "zep_doc_id" field.
func ZepDocIDContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldZepDocID, v))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.Video {
	return predicate.Video(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.Video {
	return predicate.Video(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.Video {
	return predicate.Video(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.Video {
	return predicate.Video(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.Video {
	return predicate.Video(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.Video {
	return predicate.Video(sql.FieldContainsFold(FieldRejectionReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Video {
	return predicate.Video(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Video {
	return predicate.Video(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Video) predicate.Video {
	return predicate.Video(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Video) predicate.Video {
	return predicate.Video(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Video) predicate.Video {
	return predicate.Video(sql.NotPredicates(p))
}
