// Code generated by ent, DO NOT EDIT.

package dlqentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldID, id))
}

// OriginalJobID applies equality check predicate on the "original_job_id" field. It's identical to OriginalJobIDEQ.
func OriginalJobID(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldOriginalJobID, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldRetryCount, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldLastAttemptAt, v))
}

// ProcessingAttempts applies equality check predicate on the "processing_attempts" field. It's identical to ProcessingAttemptsEQ.
func ProcessingAttempts(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldProcessingAttempts, v))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldVideoID, v))
}

// EstimatedCostImpactUsd applies equality check predicate on the "estimated_cost_impact_usd" field. It's identical to EstimatedCostImpactUsdEQ.
func EstimatedCostImpactUsd(v float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldEstimatedCostImpactUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// OriginalJobIDEQ applies the EQ predicate on the "original_job_id" field.
func OriginalJobIDEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldOriginalJobID, v))
}

// OriginalJobIDNEQ applies the NEQ predicate on the "original_job_id" field.
func OriginalJobIDNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldOriginalJobID, v))
}

// OriginalJobIDIn applies the In predicate on the "original_job_id" field.
func OriginalJobIDIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldOriginalJobID, vs...))
}

// OriginalJobIDNotIn applies the NotIn predicate on the "original_job_id" field.
func OriginalJobIDNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldOriginalJobID, vs...))
}

// OriginalJobIDGT applies the GT predicate on the "original_job_id" field.
func OriginalJobIDGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldOriginalJobID, v))
}

// OriginalJobIDGTE applies the GTE predicate on the "original_job_id" field.
func OriginalJobIDGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldOriginalJobID, v))
}

// OriginalJobIDLT applies the LT predicate on the "original_job_id" field.
func OriginalJobIDLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldOriginalJobID, v))
}

// OriginalJobIDLTE applies the LTE predicate on the "original_job_id" field.
func OriginalJobIDLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldOriginalJobID, v))
}

// OriginalJobIDContains applies the Contains predicate on the "original_job_id" field.
func OriginalJobIDContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldOriginalJobID, v))
}

// OriginalJobIDHasPrefix applies the HasPrefix predicate on the "original_job_id" field.
func OriginalJobIDHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldOriginalJobID, v))
}

// OriginalJobIDHasSuffix applies the HasSuffix predicate on the "original_job_id" field.
func OriginalJobIDHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldOriginalJobID, v))
}

// OriginalJobIDEqualFold applies the EqualFold predicate on the "original_job_id" field.
func OriginalJobIDEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldOriginalJobID, v))
}

// OriginalJobIDContainsFold applies the ContainsFold predicate on the "original_job_id" field.
func OriginalJobIDContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldOriginalJobID, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v JobType) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v JobType) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...JobType) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...JobType) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldJobType, vs...))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldRetryCount, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldLastAttemptAt))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldSeverity, vs...))
}

// RecoveryPriorityEQ applies the EQ predicate on the "recovery_priority" field.
func RecoveryPriorityEQ(v RecoveryPriority) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldRecoveryPriority, v))
}

// RecoveryPriorityNEQ applies the NEQ predicate on the "recovery_priority" field.
func RecoveryPriorityNEQ(v RecoveryPriority) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldRecoveryPriority, v))
}

// RecoveryPriorityIn applies the In predicate on the "recovery_priority" field.
func RecoveryPriorityIn(vs ...RecoveryPriority) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldRecoveryPriority, vs...))
}

// RecoveryPriorityNotIn applies the NotIn predicate on the "recovery_priority" field.
func RecoveryPriorityNotIn(vs ...RecoveryPriority) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldRecoveryPriority, vs...))
}

// ProcessingAttemptsEQ applies the EQ predicate on the "processing_attempts" field.
func ProcessingAttemptsEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldProcessingAttempts, v))
}

// ProcessingAttemptsNEQ applies the NEQ predicate on the "processing_attempts" field.
func ProcessingAttemptsNEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldProcessingAttempts, v))
}

// ProcessingAttemptsIn applies the In predicate on the "processing_attempts" field.
func ProcessingAttemptsIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldProcessingAttempts, vs...))
}

// ProcessingAttemptsNotIn applies the NotIn predicate on the "processing_attempts" field.
func ProcessingAttemptsNotIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldProcessingAttempts, vs...))
}

// ProcessingAttemptsGT applies the GT predicate on the "processing_attempts" field.
func ProcessingAttemptsGT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldProcessingAttempts, v))
}

// ProcessingAttemptsGTE applies the GTE predicate on the "processing_attempts" field.
func ProcessingAttemptsGTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldProcessingAttempts, v))
}

// ProcessingAttemptsLT applies the LT predicate on the "processing_attempts" field.
func ProcessingAttemptsLT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldProcessingAttempts, v))
}

// ProcessingAttemptsLTE applies the LTE predicate on the "processing_attempts" field.
func ProcessingAttemptsLTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldProcessingAttempts, v))
}

// RecoveryHintsIsNil applies the IsNil predicate on the "recovery_hints" field.
func RecoveryHintsIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldRecoveryHints))
}

// RecoveryHintsNotNil applies the NotNil predicate on the "recovery_hints" field.
func RecoveryHintsNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldRecoveryHints))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDIsNil applies the IsNil predicate on the "video_id" field.
func VideoIDIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldVideoID))
}

// VideoIDNotNil applies the NotNil predicate on the "video_id" field.
func VideoIDNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldVideoID))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldVideoID, v))
}

// VideoIdsIsNil applies the IsNil predicate on the "video_ids" field.
func VideoIdsIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldVideoIds))
}

// VideoIdsNotNil applies the NotNil predicate on the "video_ids" field.
func VideoIdsNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldVideoIds))
}

// EstimatedCostImpactUsdEQ applies the EQ predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdEQ(v float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldEstimatedCostImpactUsd, v))
}

// EstimatedCostImpactUsdNEQ applies the NEQ predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdNEQ(v float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldEstimatedCostImpactUsd, v))
}

// EstimatedCostImpactUsdIn applies the In predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdIn(vs ...float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldEstimatedCostImpactUsd, vs...))
}

// EstimatedCostImpactUsdNotIn applies the NotIn predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdNotIn(vs ...float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldEstimatedCostImpactUsd, vs...))
}

// EstimatedCostImpactUsdGT applies the GT predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdGT(v float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldEstimatedCostImpactUsd, v))
}

// EstimatedCostImpactUsdGTE applies the GTE predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdGTE(v float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldEstimatedCostImpactUsd, v))
}

// EstimatedCostImpactUsdLT applies the LT predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdLT(v float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldEstimatedCostImpactUsd, v))
}

// EstimatedCostImpactUsdLTE applies the LTE predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdLTE(v float64) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldEstimatedCostImpactUsd, v))
}

// EstimatedCostImpactUsdIsNil applies the IsNil predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldEstimatedCostImpactUsd))
}

// EstimatedCostImpactUsdNotNil applies the NotNil predicate on the "estimated_cost_impact_usd" field.
func EstimatedCostImpactUsdNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldEstimatedCostImpactUsd))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.NotPredicates(p))
}
