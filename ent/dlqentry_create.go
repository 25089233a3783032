// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
)

// DLQEntryCreate is the builder for creating a DLQEntry entity.
type DLQEntryCreate struct {
	config
	mutation *DLQEntryMutation
	hooks    []Hook
}

// SetOriginalJobID sets the "original_job_id" field.
func (_c *DLQEntryCreate) SetOriginalJobID(v string) *DLQEntryCreate {
	_c.mutation.SetOriginalJobID(v)
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *DLQEntryCreate) SetJobType(v dlqentry.JobType) *DLQEntryCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *DLQEntryCreate) SetErrorType(v string) *DLQEntryCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DLQEntryCreate) SetErrorMessage(v string) *DLQEntryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *DLQEntryCreate) SetRetryCount(v int) *DLQEntryCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *DLQEntryCreate) SetLastAttemptAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableLastAttemptAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetOriginalInputs sets the "original_inputs" field.
func (_c *DLQEntryCreate) SetOriginalInputs(v map[string]interface{}) *DLQEntryCreate {
	_c.mutation.SetOriginalInputs(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *DLQEntryCreate) SetSeverity(v dlqentry.Severity) *DLQEntryCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetRecoveryPriority sets the "recovery_priority" field.
func (_c *DLQEntryCreate) SetRecoveryPriority(v dlqentry.RecoveryPriority) *DLQEntryCreate {
	_c.mutation.SetRecoveryPriority(v)
	return _c
}

// SetProcessingAttempts sets the "processing_attempts" field.
func (_c *DLQEntryCreate) SetProcessingAttempts(v int) *DLQEntryCreate {
	_c.mutation.SetProcessingAttempts(v)
	return _c
}

// SetNillableProcessingAttempts sets the "processing_attempts" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableProcessingAttempts(v *int) *DLQEntryCreate {
	if v != nil {
		_c.SetProcessingAttempts(*v)
	}
	return _c
}

// SetRecoveryHints sets the "recovery_hints" field.
func (_c *DLQEntryCreate) SetRecoveryHints(v []string) *DLQEntryCreate {
	_c.mutation.SetRecoveryHints(v)
	return _c
}

// SetVideoID sets the "video_id" field.
func (_c *DLQEntryCreate) SetVideoID(v string) *DLQEntryCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableVideoID(v *string) *DLQEntryCreate {
	if v != nil {
		_c.SetVideoID(*v)
	}
	return _c
}

// SetVideoIds sets the "video_ids" field.
func (_c *DLQEntryCreate) SetVideoIds(v []string) *DLQEntryCreate {
	_c.mutation.SetVideoIds(v)
	return _c
}

// SetEstimatedCostImpactUsd sets the "estimated_cost_impact_usd" field.
func (_c *DLQEntryCreate) SetEstimatedCostImpactUsd(v float64) *DLQEntryCreate {
	_c.mutation.SetEstimatedCostImpactUsd(v)
	return _c
}

// SetNillableEstimatedCostImpactUsd sets the "estimated_cost_impact_usd" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableEstimatedCostImpactUsd(v *float64) *DLQEntryCreate {
	if v != nil {
		_c.SetEstimatedCostImpactUsd(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DLQEntryCreate) SetCreatedAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableCreatedAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DLQEntryCreate) SetID(v string) *DLQEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_c *DLQEntryCreate) Mutation() *DLQEntryMutation {
	return _c.mutation
}

// Save creates the DLQEntry in the database.
func (_c *DLQEntryCreate) Save(ctx context.Context) (*DLQEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DLQEntryCreate) SaveX(ctx context.Context) *DLQEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLQEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLQEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DLQEntryCreate) defaults() {
	if _, ok := _c.mutation.ProcessingAttempts(); !ok {
		v := dlqentry.DefaultProcessingAttempts
		_c.mutation.SetProcessingAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dlqentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DLQEntryCreate) check() error {
	if _, ok := _c.mutation.OriginalJobID(); !ok {
		return &ValidationError{Name: "original_job_id", err: errors.New(`ent: missing required field "DLQEntry.original_job_id"`)}
	}
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "DLQEntry.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := dlqentry.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		return &ValidationError{Name: "error_type", err: errors.New(`ent: missing required field "DLQEntry.error_type"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "DLQEntry.error_message"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "DLQEntry.retry_count"`)}
	}
	if _, ok := _c.mutation.OriginalInputs(); !ok {
		return &ValidationError{Name: "original_inputs", err: errors.New(`ent: missing required field "DLQEntry.original_inputs"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "DLQEntry.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := dlqentry.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecoveryPriority(); !ok {
		return &ValidationError{Name: "recovery_priority", err: errors.New(`ent: missing required field "DLQEntry.recovery_priority"`)}
	}
	if v, ok := _c.mutation.RecoveryPriority(); ok {
		if err := dlqentry.RecoveryPriorityValidator(v); err != nil {
			return &ValidationError{Name: "recovery_priority", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.recovery_priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingAttempts(); !ok {
		return &ValidationError{Name: "processing_attempts", err: errors.New(`ent: missing required field "DLQEntry.processing_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DLQEntry.created_at"`)}
	}
	return nil
}

func (_c *DLQEntryCreate) sqlSave(ctx context.Context) (*DLQEntry, error) {
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
			return nil, fmt.Errorf("unexpected DLQEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DLQEntryCreate) createSpec() (*DLQEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DLQEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dlqentry.Table, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OriginalJobID(); ok {
		_spec.SetField(dlqentry.FieldOriginalJobID, field.TypeString, value)
		_node.OriginalJobID = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(dlqentry.FieldJobType, field.TypeEnum, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(dlqentry.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(dlqentry.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(dlqentry.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(dlqentry.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if value, ok := _c.mutation.OriginalInputs(); ok {
		_spec.SetField(dlqentry.FieldOriginalInputs, field.TypeJSON, value)
		_node.OriginalInputs = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(dlqentry.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.RecoveryPriority(); ok {
		_spec.SetField(dlqentry.FieldRecoveryPriority, field.TypeEnum, value)
		_node.RecoveryPriority = value
	}
	if value, ok := _c.mutation.ProcessingAttempts(); ok {
		_spec.SetField(dlqentry.FieldProcessingAttempts, field.TypeInt, value)
		_node.ProcessingAttempts = value
	}
	if value, ok := _c.mutation.RecoveryHints(); ok {
		_spec.SetField(dlqentry.FieldRecoveryHints, field.TypeJSON, value)
		_node.RecoveryHints = value
	}
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(dlqentry.FieldVideoID, field.TypeString, value)
		_node.VideoID = &value
	}
	if value, ok := _c.mutation.VideoIds(); ok {
		_spec.SetField(dlqentry.FieldVideoIds, field.TypeJSON, value)
		_node.VideoIds = value
	}
	if value, ok := _c.mutation.EstimatedCostImpactUsd(); ok {
		_spec.SetField(dlqentry.FieldEstimatedCostImpactUsd, field.TypeFloat64, value)
		_node.EstimatedCostImpactUsd = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dlqentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DLQEntryCreateBulk is the builder for creating many DLQEntry entities in bulk.
type DLQEntryCreateBulk struct {
	config
	err      error
	builders []*DLQEntryCreate
}

// Save creates the DLQEntry entities in the database.
func (_c *DLQEntryCreateBulk) Save(ctx context.Context) ([]*DLQEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DLQEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DLQEntryMutation)
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
func (_c *DLQEntryCreateBulk) SaveX(ctx context.Context) []*DLQEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLQEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLQEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
