// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgent sets the "agent" field.
func (_u *JobUpdate) SetAgent(v job.Agent) *JobUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAgent(v *job.Agent) *JobUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdate) SetJobType(v job.JobType) *JobUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableJobType(v *job.JobType) *JobUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *JobUpdate) SetInputs(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// SetPolicyOverrides sets the "policy_overrides" field.
func (_u *JobUpdate) SetPolicyOverrides(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetPolicyOverrides(v)
	return _u
}

// ClearPolicyOverrides clears the value of the "policy_overrides" field.
func (_u *JobUpdate) ClearPolicyOverrides() *JobUpdate {
	_u.mutation.ClearPolicyOverrides()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdate) SetRetryCount(v int) *JobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRetryCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdate) AddRetryCount(v int) *JobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v job.Priority) *JobUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *job.Priority) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *JobUpdate) SetCreatedBy(v string) *JobUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCreatedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *JobUpdate) SetVideoID(v string) *JobUpdate {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableVideoID(v *string) *JobUpdate {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// ClearVideoID clears the value of the "video_id" field.
func (_u *JobUpdate) ClearVideoID() *JobUpdate {
	_u.mutation.ClearVideoID()
	return _u
}

// SetVideoIds sets the "video_ids" field.
func (_u *JobUpdate) SetVideoIds(v []string) *JobUpdate {
	_u.mutation.SetVideoIds(v)
	return _u
}

// AppendVideoIds appends value to the "video_ids" field.
func (_u *JobUpdate) AppendVideoIds(v []string) *JobUpdate {
	_u.mutation.AppendVideoIds(v)
	return _u
}

// ClearVideoIds clears the value of the "video_ids" field.
func (_u *JobUpdate) ClearVideoIds() *JobUpdate {
	_u.mutation.ClearVideoIds()
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *JobUpdate) SetLastErrorType(v string) *JobUpdate {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastErrorType(v *string) *JobUpdate {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// ClearLastErrorType clears the value of the "last_error_type" field.
func (_u *JobUpdate) ClearLastErrorType() *JobUpdate {
	_u.mutation.ClearLastErrorType()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *JobUpdate) SetLastErrorMessage(v string) *JobUpdate {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *JobUpdate) ClearLastErrorMessage() *JobUpdate {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *JobUpdate) SetLastAttemptAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastAttemptAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *JobUpdate) ClearLastAttemptAt() *JobUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetEstimatedQuotaUsage sets the "estimated_quota_usage" field.
func (_u *JobUpdate) SetEstimatedQuotaUsage(v int) *JobUpdate {
	_u.mutation.ResetEstimatedQuotaUsage()
	_u.mutation.SetEstimatedQuotaUsage(v)
	return _u
}

// SetNillableEstimatedQuotaUsage sets the "estimated_quota_usage" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEstimatedQuotaUsage(v *int) *JobUpdate {
	if v != nil {
		_u.SetEstimatedQuotaUsage(*v)
	}
	return _u
}

// AddEstimatedQuotaUsage adds value to the "estimated_quota_usage" field.
func (_u *JobUpdate) AddEstimatedQuotaUsage(v int) *JobUpdate {
	_u.mutation.AddEstimatedQuotaUsage(v)
	return _u
}

// ClearEstimatedQuotaUsage clears the value of the "estimated_quota_usage" field.
func (_u *JobUpdate) ClearEstimatedQuotaUsage() *JobUpdate {
	_u.mutation.ClearEstimatedQuotaUsage()
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *JobUpdate) SetEstimatedCostUsd(v float64) *JobUpdate {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEstimatedCostUsd(v *float64) *JobUpdate {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *JobUpdate) AddEstimatedCostUsd(v float64) *JobUpdate {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// ClearEstimatedCostUsd clears the value of the "estimated_cost_usd" field.
func (_u *JobUpdate) ClearEstimatedCostUsd() *JobUpdate {
	_u.mutation.ClearEstimatedCostUsd()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *JobUpdate) SetPodID(v string) *JobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePodID(v *string) *JobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *JobUpdate) ClearPodID() *JobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdate) SetLastHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdate) ClearLastHeartbeatAt() *JobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Agent(); ok {
		if err := job.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "Job.agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobType(); ok {
		if err := job.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Job.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(job.FieldAgent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(job.FieldInputs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PolicyOverrides(); ok {
		_spec.SetField(job.FieldPolicyOverrides, field.TypeJSON, value)
	}
	if _u.mutation.PolicyOverridesCleared() {
		_spec.ClearField(job.FieldPolicyOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(job.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(job.FieldVideoID, field.TypeString, value)
	}
	if _u.mutation.VideoIDCleared() {
		_spec.ClearField(job.FieldVideoID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoIds(); ok {
		_spec.SetField(job.FieldVideoIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldVideoIds, value)
		})
	}
	if _u.mutation.VideoIdsCleared() {
		_spec.ClearField(job.FieldVideoIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(job.FieldLastErrorType, field.TypeString, value)
	}
	if _u.mutation.LastErrorTypeCleared() {
		_spec.ClearField(job.FieldLastErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(job.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(job.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(job.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(job.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EstimatedQuotaUsage(); ok {
		_spec.SetField(job.FieldEstimatedQuotaUsage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedQuotaUsage(); ok {
		_spec.AddField(job.FieldEstimatedQuotaUsage, field.TypeInt, value)
	}
	if _u.mutation.EstimatedQuotaUsageCleared() {
		_spec.ClearField(job.FieldEstimatedQuotaUsage, field.TypeInt)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostUsdCleared() {
		_spec.ClearField(job.FieldEstimatedCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetAgent sets the "agent" field.
func (_u *JobUpdateOne) SetAgent(v job.Agent) *JobUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAgent(v *job.Agent) *JobUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobUpdateOne) SetJobType(v job.JobType) *JobUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableJobType(v *job.JobType) *JobUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *JobUpdateOne) SetInputs(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// SetPolicyOverrides sets the "policy_overrides" field.
func (_u *JobUpdateOne) SetPolicyOverrides(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetPolicyOverrides(v)
	return _u
}

// ClearPolicyOverrides clears the value of the "policy_overrides" field.
func (_u *JobUpdateOne) ClearPolicyOverrides() *JobUpdateOne {
	_u.mutation.ClearPolicyOverrides()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdateOne) SetRetryCount(v int) *JobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRetryCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdateOne) AddRetryCount(v int) *JobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v job.Priority) *JobUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *job.Priority) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *JobUpdateOne) SetCreatedBy(v string) *JobUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCreatedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *JobUpdateOne) SetVideoID(v string) *JobUpdateOne {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableVideoID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// ClearVideoID clears the value of the "video_id" field.
func (_u *JobUpdateOne) ClearVideoID() *JobUpdateOne {
	_u.mutation.ClearVideoID()
	return _u
}

// SetVideoIds sets the "video_ids" field.
func (_u *JobUpdateOne) SetVideoIds(v []string) *JobUpdateOne {
	_u.mutation.SetVideoIds(v)
	return _u
}

// AppendVideoIds appends value to the "video_ids" field.
func (_u *JobUpdateOne) AppendVideoIds(v []string) *JobUpdateOne {
	_u.mutation.AppendVideoIds(v)
	return _u
}

// ClearVideoIds clears the value of the "video_ids" field.
func (_u *JobUpdateOne) ClearVideoIds() *JobUpdateOne {
	_u.mutation.ClearVideoIds()
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *JobUpdateOne) SetLastErrorType(v string) *JobUpdateOne {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastErrorType(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// ClearLastErrorType clears the value of the "last_error_type" field.
func (_u *JobUpdateOne) ClearLastErrorType() *JobUpdateOne {
	_u.mutation.ClearLastErrorType()
	return _u
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_u *JobUpdateOne) SetLastErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetLastErrorMessage(v)
	return _u
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLastErrorMessage(*v)
	}
	return _u
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (_u *JobUpdateOne) ClearLastErrorMessage() *JobUpdateOne {
	_u.mutation.ClearLastErrorMessage()
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *JobUpdateOne) SetLastAttemptAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastAttemptAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *JobUpdateOne) ClearLastAttemptAt() *JobUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetEstimatedQuotaUsage sets the "estimated_quota_usage" field.
func (_u *JobUpdateOne) SetEstimatedQuotaUsage(v int) *JobUpdateOne {
	_u.mutation.ResetEstimatedQuotaUsage()
	_u.mutation.SetEstimatedQuotaUsage(v)
	return _u
}

// SetNillableEstimatedQuotaUsage sets the "estimated_quota_usage" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEstimatedQuotaUsage(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetEstimatedQuotaUsage(*v)
	}
	return _u
}

// AddEstimatedQuotaUsage adds value to the "estimated_quota_usage" field.
func (_u *JobUpdateOne) AddEstimatedQuotaUsage(v int) *JobUpdateOne {
	_u.mutation.AddEstimatedQuotaUsage(v)
	return _u
}

// ClearEstimatedQuotaUsage clears the value of the "estimated_quota_usage" field.
func (_u *JobUpdateOne) ClearEstimatedQuotaUsage() *JobUpdateOne {
	_u.mutation.ClearEstimatedQuotaUsage()
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *JobUpdateOne) SetEstimatedCostUsd(v float64) *JobUpdateOne {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEstimatedCostUsd(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *JobUpdateOne) AddEstimatedCostUsd(v float64) *JobUpdateOne {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// ClearEstimatedCostUsd clears the value of the "estimated_cost_usd" field.
func (_u *JobUpdateOne) ClearEstimatedCostUsd() *JobUpdateOne {
	_u.mutation.ClearEstimatedCostUsd()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *JobUpdateOne) SetPodID(v string) *JobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePodID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *JobUpdateOne) ClearPodID() *JobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *JobUpdateOne) SetLastHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *JobUpdateOne) ClearLastHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Agent(); ok {
		if err := job.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "Job.agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobType(); ok {
		if err := job.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Job.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(job.FieldAgent, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(job.FieldInputs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PolicyOverrides(); ok {
		_spec.SetField(job.FieldPolicyOverrides, field.TypeJSON, value)
	}
	if _u.mutation.PolicyOverridesCleared() {
		_spec.ClearField(job.FieldPolicyOverrides, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(job.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(job.FieldVideoID, field.TypeString, value)
	}
	if _u.mutation.VideoIDCleared() {
		_spec.ClearField(job.FieldVideoID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoIds(); ok {
		_spec.SetField(job.FieldVideoIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldVideoIds, value)
		})
	}
	if _u.mutation.VideoIdsCleared() {
		_spec.ClearField(job.FieldVideoIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(job.FieldLastErrorType, field.TypeString, value)
	}
	if _u.mutation.LastErrorTypeCleared() {
		_spec.ClearField(job.FieldLastErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.LastErrorMessage(); ok {
		_spec.SetField(job.FieldLastErrorMessage, field.TypeString, value)
	}
	if _u.mutation.LastErrorMessageCleared() {
		_spec.ClearField(job.FieldLastErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(job.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(job.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EstimatedQuotaUsage(); ok {
		_spec.SetField(job.FieldEstimatedQuotaUsage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedQuotaUsage(); ok {
		_spec.AddField(job.FieldEstimatedQuotaUsage, field.TypeInt, value)
	}
	if _u.mutation.EstimatedQuotaUsageCleared() {
		_spec.ClearField(job.FieldEstimatedQuotaUsage, field.TypeInt)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if _u.mutation.EstimatedCostUsdCleared() {
		_spec.ClearField(job.FieldEstimatedCostUsd, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(job.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(job.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
