// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// DLQEntryUpdate is the builder for updating DLQEntry entities.
type DLQEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DLQEntryMutation
}

// Where appends a list predicates to the DLQEntryUpdate builder.
func (_u *DLQEntryUpdate) Where(ps ...predicate.DLQEntry) *DLQEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecoveryHints sets the "recovery_hints" field.
func (_u *DLQEntryUpdate) SetRecoveryHints(v []string) *DLQEntryUpdate {
	_u.mutation.SetRecoveryHints(v)
	return _u
}

// AppendRecoveryHints appends value to the "recovery_hints" field.
func (_u *DLQEntryUpdate) AppendRecoveryHints(v []string) *DLQEntryUpdate {
	_u.mutation.AppendRecoveryHints(v)
	return _u
}

// ClearRecoveryHints clears the value of the "recovery_hints" field.
func (_u *DLQEntryUpdate) ClearRecoveryHints() *DLQEntryUpdate {
	_u.mutation.ClearRecoveryHints()
	return _u
}

// SetVideoIds sets the "video_ids" field.
func (_u *DLQEntryUpdate) SetVideoIds(v []string) *DLQEntryUpdate {
	_u.mutation.SetVideoIds(v)
	return _u
}

// AppendVideoIds appends value to the "video_ids" field.
func (_u *DLQEntryUpdate) AppendVideoIds(v []string) *DLQEntryUpdate {
	_u.mutation.AppendVideoIds(v)
	return _u
}

// ClearVideoIds clears the value of the "video_ids" field.
func (_u *DLQEntryUpdate) ClearVideoIds() *DLQEntryUpdate {
	_u.mutation.ClearVideoIds()
	return _u
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_u *DLQEntryUpdate) Mutation() *DLQEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DLQEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLQEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DLQEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLQEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DLQEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dlqentry.Table, dlqentry.Columns, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(dlqentry.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryHints(); ok {
		_spec.SetField(dlqentry.FieldRecoveryHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecoveryHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dlqentry.FieldRecoveryHints, value)
		})
	}
	if _u.mutation.RecoveryHintsCleared() {
		_spec.ClearField(dlqentry.FieldRecoveryHints, field.TypeJSON)
	}
	if _u.mutation.VideoIDCleared() {
		_spec.ClearField(dlqentry.FieldVideoID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoIds(); ok {
		_spec.SetField(dlqentry.FieldVideoIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dlqentry.FieldVideoIds, value)
		})
	}
	if _u.mutation.VideoIdsCleared() {
		_spec.ClearField(dlqentry.FieldVideoIds, field.TypeJSON)
	}
	if _u.mutation.EstimatedCostImpactUsdCleared() {
		_spec.ClearField(dlqentry.FieldEstimatedCostImpactUsd, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlqentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DLQEntryUpdateOne is the builder for updating a single DLQEntry entity.
type DLQEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DLQEntryMutation
}

// SetRecoveryHints sets the "recovery_hints" field.
func (_u *DLQEntryUpdateOne) SetRecoveryHints(v []string) *DLQEntryUpdateOne {
	_u.mutation.SetRecoveryHints(v)
	return _u
}

// AppendRecoveryHints appends value to the "recovery_hints" field.
func (_u *DLQEntryUpdateOne) AppendRecoveryHints(v []string) *DLQEntryUpdateOne {
	_u.mutation.AppendRecoveryHints(v)
	return _u
}

// ClearRecoveryHints clears the value of the "recovery_hints" field.
func (_u *DLQEntryUpdateOne) ClearRecoveryHints() *DLQEntryUpdateOne {
	_u.mutation.ClearRecoveryHints()
	return _u
}

// SetVideoIds sets the "video_ids" field.
func (_u *DLQEntryUpdateOne) SetVideoIds(v []string) *DLQEntryUpdateOne {
	_u.mutation.SetVideoIds(v)
	return _u
}

// AppendVideoIds appends value to the "video_ids" field.
func (_u *DLQEntryUpdateOne) AppendVideoIds(v []string) *DLQEntryUpdateOne {
	_u.mutation.AppendVideoIds(v)
	return _u
}

// ClearVideoIds clears the value of the "video_ids" field.
func (_u *DLQEntryUpdateOne) ClearVideoIds() *DLQEntryUpdateOne {
	_u.mutation.ClearVideoIds()
	return _u
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_u *DLQEntryUpdateOne) Mutation() *DLQEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DLQEntryUpdate builder.
func (_u *DLQEntryUpdateOne) Where(ps ...predicate.DLQEntry) *DLQEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DLQEntryUpdateOne) Select(field string, fields ...string) *DLQEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DLQEntry entity.
func (_u *DLQEntryUpdateOne) Save(ctx context.Context) (*DLQEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLQEntryUpdateOne) SaveX(ctx context.Context) *DLQEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DLQEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLQEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DLQEntryUpdateOne) sqlSave(ctx context.Context) (_node *DLQEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(dlqentry.Table, dlqentry.Columns, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DLQEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dlqentry.FieldID)
		for _, f := range fields {
			if !dlqentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dlqentry.FieldID {
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
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(dlqentry.FieldLastAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecoveryHints(); ok {
		_spec.SetField(dlqentry.FieldRecoveryHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecoveryHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dlqentry.FieldRecoveryHints, value)
		})
	}
	if _u.mutation.RecoveryHintsCleared() {
		_spec.ClearField(dlqentry.FieldRecoveryHints, field.TypeJSON)
	}
	if _u.mutation.VideoIDCleared() {
		_spec.ClearField(dlqentry.FieldVideoID, field.TypeString)
	}
	if value, ok := _u.mutation.VideoIds(); ok {
		_spec.SetField(dlqentry.FieldVideoIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dlqentry.FieldVideoIds, value)
		})
	}
	if _u.mutation.VideoIdsCleared() {
		_spec.ClearField(dlqentry.FieldVideoIds, field.TypeJSON)
	}
	if _u.mutation.EstimatedCostImpactUsdCleared() {
		_spec.ClearField(dlqentry.FieldEstimatedCostImpactUsd, field.TypeFloat64)
	}
	_node = &DLQEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlqentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
