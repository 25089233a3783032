// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetAgent sets the "agent" field.
func (_c *JobCreate) SetAgent(v job.Agent) *JobCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *JobCreate) SetJobType(v job.JobType) *JobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *JobCreate) SetInputs(v map[string]interface{}) *JobCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetPolicyOverrides sets the "policy_overrides" field.
func (_c *JobCreate) SetPolicyOverrides(v map[string]interface{}) *JobCreate {
	_c.mutation.SetPolicyOverrides(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *JobCreate) SetRetryCount(v int) *JobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableRetryCount(v *int) *JobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v job.Priority) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *job.Priority) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *JobCreate) SetCreatedBy(v string) *JobCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetVideoID sets the "video_id" field.
func (_c *JobCreate) SetVideoID(v string) *JobCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableVideoID(v *string) *JobCreate {
	if v != nil {
		_c.SetVideoID(*v)
	}
	return _c
}

// SetVideoIds sets the "video_ids" field.
func (_c *JobCreate) SetVideoIds(v []string) *JobCreate {
	_c.mutation.SetVideoIds(v)
	return _c
}

// SetLastErrorType sets the "last_error_type" field.
func (_c *JobCreate) SetLastErrorType(v string) *JobCreate {
	_c.mutation.SetLastErrorType(v)
	return _c
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastErrorType(v *string) *JobCreate {
	if v != nil {
		_c.SetLastErrorType(*v)
	}
	return _c
}

// SetLastErrorMessage sets the "last_error_message" field.
func (_c *JobCreate) SetLastErrorMessage(v string) *JobCreate {
	_c.mutation.SetLastErrorMessage(v)
	return _c
}

// SetNillableLastErrorMessage sets the "last_error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetLastErrorMessage(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *JobCreate) SetLastAttemptAt(v time.Time) *JobCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastAttemptAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetEstimatedQuotaUsage sets the "estimated_quota_usage" field.
func (_c *JobCreate) SetEstimatedQuotaUsage(v int) *JobCreate {
	_c.mutation.SetEstimatedQuotaUsage(v)
	return _c
}

// SetNillableEstimatedQuotaUsage sets the "estimated_quota_usage" field if the given value is not nil.
func (_c *JobCreate) SetNillableEstimatedQuotaUsage(v *int) *JobCreate {
	if v != nil {
		_c.SetEstimatedQuotaUsage(*v)
	}
	return _c
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_c *JobCreate) SetEstimatedCostUsd(v float64) *JobCreate {
	_c.mutation.SetEstimatedCostUsd(v)
	return _c
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_c *JobCreate) SetNillableEstimatedCostUsd(v *float64) *JobCreate {
	if v != nil {
		_c.SetEstimatedCostUsd(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *JobCreate) SetPodID(v string) *JobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *JobCreate) SetNillablePodID(v *string) *JobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *JobCreate) SetLastHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := job.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.Agent(); !ok {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required field "Job.agent"`)}
	}
	if v, ok := _c.mutation.Agent(); ok {
		if err := job.AgentValidator(v); err != nil {
			return &ValidationError{Name: "agent", err: fmt.Errorf(`ent: validator failed for field "Job.agent": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "Job.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := job.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "Job.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Inputs(); !ok {
		return &ValidationError{Name: "inputs", err: errors.New(`ent: missing required field "Job.inputs"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Job.retry_count"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Job.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(job.FieldAgent, field.TypeEnum, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(job.FieldJobType, field.TypeEnum, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(job.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.PolicyOverrides(); ok {
		_spec.SetField(job.FieldPolicyOverrides, field.TypeJSON, value)
		_node.PolicyOverrides = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(job.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(job.FieldVideoID, field.TypeString, value)
		_node.VideoID = &value
	}
	if value, ok := _c.mutation.VideoIds(); ok {
		_spec.SetField(job.FieldVideoIds, field.TypeJSON, value)
		_node.VideoIds = value
	}
	if value, ok := _c.mutation.LastErrorType(); ok {
		_spec.SetField(job.FieldLastErrorType, field.TypeString, value)
		_node.LastErrorType = &value
	}
	if value, ok := _c.mutation.LastErrorMessage(); ok {
		_spec.SetField(job.FieldLastErrorMessage, field.TypeString, value)
		_node.LastErrorMessage = &value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(job.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if value, ok := _c.mutation.EstimatedQuotaUsage(); ok {
		_spec.SetField(job.FieldEstimatedQuotaUsage, field.TypeInt, value)
		_node.EstimatedQuotaUsage = &value
	}
	if value, ok := _c.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(job.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(job.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(job.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
