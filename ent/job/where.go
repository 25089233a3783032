// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryCount, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedBy, v))
}

// VideoID applies equality check predicate on the "video_id" field. It's identical to VideoIDEQ.
func VideoID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldVideoID, v))
}

// LastErrorType applies equality check predicate on the "last_error_type" field. It's identical to LastErrorTypeEQ.
func LastErrorType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastErrorType, v))
}

// LastErrorMessage applies equality check predicate on the "last_error_message" field. It's identical to LastErrorMessageEQ.
func LastErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastErrorMessage, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastAttemptAt, v))
}

// EstimatedQuotaUsage applies equality check predicate on the "estimated_quota_usage" field. It's identical to EstimatedQuotaUsageEQ.
func EstimatedQuotaUsage(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEstimatedQuotaUsage, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v Agent) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v Agent) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...Agent) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...Agent) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAgent, vs...))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v JobType) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v JobType) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...JobType) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...JobType) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldJobType, vs...))
}

// PolicyOverridesIsNil applies the IsNil predicate on the "policy_overrides" field.
func PolicyOverridesIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPolicyOverrides))
}

// PolicyOverridesNotNil applies the NotNil predicate on the "policy_overrides" field.
func PolicyOverridesNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPolicyOverrides))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRetryCount, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPriority, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldCreatedBy, v))
}

// VideoIDEQ applies the EQ predicate on the "video_id" field.
func VideoIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldVideoID, v))
}

// VideoIDNEQ applies the NEQ predicate on the "video_id" field.
func VideoIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldVideoID, v))
}

// VideoIDIn applies the In predicate on the "video_id" field.
func VideoIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldVideoID, vs...))
}

// VideoIDNotIn applies the NotIn predicate on the "video_id" field.
func VideoIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldVideoID, vs...))
}

// VideoIDGT applies the GT predicate on the "video_id" field.
func VideoIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldVideoID, v))
}

// VideoIDGTE applies the GTE predicate on the "video_id" field.
func VideoIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldVideoID, v))
}

// VideoIDLT applies the LT predicate on the "video_id" field.
func VideoIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldVideoID, v))
}

// VideoIDLTE applies the LTE predicate on the "video_id" field.
func VideoIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldVideoID, v))
}

// VideoIDContains applies the Contains predicate on the "video_id" field.
func VideoIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldVideoID, v))
}

// VideoIDHasPrefix applies the HasPrefix predicate on the "video_id" field.
func VideoIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldVideoID, v))
}

// VideoIDHasSuffix applies the HasSuffix predicate on the "video_id" field.
func VideoIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldVideoID, v))
}

// VideoIDIsNil applies the IsNil predicate on the "video_id" field.
func VideoIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldVideoID))
}

// VideoIDNotNil applies the NotNil predicate on the "video_id" field.
func VideoIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldVideoID))
}

// VideoIDEqualFold applies the EqualFold predicate on the "video_id" field.
func VideoIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldVideoID, v))
}

// VideoIDContainsFold applies the ContainsFold predicate on the "video_id" field.
func VideoIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldVideoID, v))
}

// VideoIdsIsNil applies the IsNil predicate on the "video_ids" field.
func VideoIdsIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldVideoIds))
}

// VideoIdsNotNil applies the NotNil predicate on the "video_ids" field.
func VideoIdsNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldVideoIds))
}

// LastErrorTypeEQ applies the EQ predicate on the "last_error_type" field.
func LastErrorTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastErrorType, v))
}

// LastErrorTypeNEQ applies the NEQ predicate on the "last_error_type" field.
func LastErrorTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastErrorType, v))
}

// LastErrorTypeIn applies the In predicate on the "last_error_type" field.
func LastErrorTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastErrorType, vs...))
}

// LastErrorTypeNotIn applies the NotIn predicate on the "last_error_type" field.
func LastErrorTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastErrorType, vs...))
}

// LastErrorTypeGT applies the GT predicate on the "last_error_type" field.
func LastErrorTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastErrorType, v))
}

// LastErrorTypeGTE applies the GTE predicate on the "last_error_type" field.
func LastErrorTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastErrorType, v))
}

// LastErrorTypeLT applies the LT predicate on the "last_error_type" field.
func LastErrorTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastErrorType, v))
}

// LastErrorTypeLTE applies the LTE predicate on the "last_error_type" field.
func LastErrorTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastErrorType, v))
}

// LastErrorTypeContains applies the Contains predicate on the "last_error_type" field.
func LastErrorTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLastErrorType, v))
}

// LastErrorTypeHasPrefix applies the HasPrefix predicate on the "last_error_type" field.
func LastErrorTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLastErrorType, v))
}

// LastErrorTypeHasSuffix applies the HasSuffix predicate on the "last_error_type" field.
func LastErrorTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLastErrorType, v))
}

// LastErrorTypeIsNil applies the IsNil predicate on the "last_error_type" field.
func LastErrorTypeIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastErrorType))
}

// LastErrorTypeNotNil applies the NotNil predicate on the "last_error_type" field.
func LastErrorTypeNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastErrorType))
}

// LastErrorTypeEqualFold applies the EqualFold predicate on the "last_error_type" field.
func LastErrorTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLastErrorType, v))
}

// LastErrorTypeContainsFold applies the ContainsFold predicate on the "last_error_type" field.
func LastErrorTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLastErrorType, v))
}

// LastErrorMessageEQ applies the EQ predicate on the "last_error_message" field.
func LastErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastErrorMessage, v))
}

// LastErrorMessageNEQ applies the NEQ predicate on the "last_error_message" field.
func LastErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastErrorMessage, v))
}

// LastErrorMessageIn applies the In predicate on the "last_error_message" field.
func LastErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastErrorMessage, vs...))
}

// LastErrorMessageNotIn applies the NotIn predicate on the "last_error_message" field.
func LastErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastErrorMessage, vs...))
}

// LastErrorMessageGT applies the GT predicate on the "last_error_message" field.
func LastErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastErrorMessage, v))
}

// LastErrorMessageGTE applies the GTE predicate on the "last_error_message" field.
func LastErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastErrorMessage, v))
}

// LastErrorMessageLT applies the LT predicate on the "last_error_message" field.
func LastErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastErrorMessage, v))
}

// LastErrorMessageLTE applies the LTE predicate on the "last_error_message" field.
func LastErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastErrorMessage, v))
}

// LastErrorMessageContains applies the Contains predicate on the "last_error_message" field.
func LastErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLastErrorMessage, v))
}

// LastErrorMessageHasPrefix applies the HasPrefix predicate on the "last_error_message" field.
func LastErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLastErrorMessage, v))
}

// LastErrorMessageHasSuffix applies the HasSuffix predicate on the "last_error_message" field.
func LastErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLastErrorMessage, v))
}

// LastErrorMessageIsNil applies the IsNil predicate on the "last_error_message" field.
func LastErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastErrorMessage))
}

// LastErrorMessageNotNil applies the NotNil predicate on the "last_error_message" field.
func LastErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastErrorMessage))
}

// LastErrorMessageEqualFold applies the EqualFold predicate on the "last_error_message" field.
func LastErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLastErrorMessage, v))
}

// LastErrorMessageContainsFold applies the ContainsFold predicate on the "last_error_message" field.
func LastErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLastErrorMessage, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastAttemptAt))
}

// EstimatedQuotaUsageEQ applies the EQ predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEstimatedQuotaUsage, v))
}

// EstimatedQuotaUsageNEQ applies the NEQ predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEstimatedQuotaUsage, v))
}

// EstimatedQuotaUsageIn applies the In predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEstimatedQuotaUsage, vs...))
}

// EstimatedQuotaUsageNotIn applies the NotIn predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEstimatedQuotaUsage, vs...))
}

// EstimatedQuotaUsageGT applies the GT predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldEstimatedQuotaUsage, v))
}

// EstimatedQuotaUsageGTE applies the GTE predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldEstimatedQuotaUsage, v))
}

// EstimatedQuotaUsageLT applies the LT predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldEstimatedQuotaUsage, v))
}

// EstimatedQuotaUsageLTE applies the LTE predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldEstimatedQuotaUsage, v))
}

// EstimatedQuotaUsageIsNil applies the IsNil predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldEstimatedQuotaUsage))
}

// EstimatedQuotaUsageNotNil applies the NotNil predicate on the "estimated_quota_usage" field.
func EstimatedQuotaUsageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldEstimatedQuotaUsage))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIsNil applies the IsNil predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldEstimatedCostUsd))
}

// EstimatedCostUsdNotNil applies the NotNil predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldEstimatedCostUsd))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
