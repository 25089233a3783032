// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/dailycost"
	"github.com/autopiloot/autopiloot/ent/predicate"
)

// DailyCostUpdate is the builder for updating DailyCost entities.
type DailyCostUpdate struct {
	config
	hooks    []Hook
	mutation *DailyCostMutation
}

// Where appends a list predicates to the DailyCostUpdate builder.
func (_u *DailyCostUpdate) Where(ps ...predicate.DailyCost) *DailyCostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalUsd sets the "total_usd" field.
func (_u *DailyCostUpdate) SetTotalUsd(v float64) *DailyCostUpdate {
	_u.mutation.ResetTotalUsd()
	_u.mutation.SetTotalUsd(v)
	return _u
}

// SetNillableTotalUsd sets the "total_usd" field if the given value is not nil.
func (_u *DailyCostUpdate) SetNillableTotalUsd(v *float64) *DailyCostUpdate {
	if v != nil {
		_u.SetTotalUsd(*v)
	}
	return _u
}

// AddTotalUsd adds value to the "total_usd" field.
func (_u *DailyCostUpdate) AddTotalUsd(v float64) *DailyCostUpdate {
	_u.mutation.AddTotalUsd(v)
	return _u
}

// SetTranscriptionUsd sets the "transcription_usd" field.
func (_u *DailyCostUpdate) SetTranscriptionUsd(v float64) *DailyCostUpdate {
	_u.mutation.ResetTranscriptionUsd()
	_u.mutation.SetTranscriptionUsd(v)
	return _u
}

// SetNillableTranscriptionUsd sets the "transcription_usd" field if the given value is not nil.
func (_u *DailyCostUpdate) SetNillableTranscriptionUsd(v *float64) *DailyCostUpdate {
	if v != nil {
		_u.SetTranscriptionUsd(*v)
	}
	return _u
}

// AddTranscriptionUsd adds value to the "transcription_usd" field.
func (_u *DailyCostUpdate) AddTranscriptionUsd(v float64) *DailyCostUpdate {
	_u.mutation.AddTranscriptionUsd(v)
	return _u
}

// SetLlmUsd sets the "llm_usd" field.
func (_u *DailyCostUpdate) SetLlmUsd(v float64) *DailyCostUpdate {
	_u.mutation.ResetLlmUsd()
	_u.mutation.SetLlmUsd(v)
	return _u
}

// SetNillableLlmUsd sets the "llm_usd" field if the given value is not nil.
func (_u *DailyCostUpdate) SetNillableLlmUsd(v *float64) *DailyCostUpdate {
	if v != nil {
		_u.SetLlmUsd(*v)
	}
	return _u
}

// AddLlmUsd adds value to the "llm_usd" field.
func (_u *DailyCostUpdate) AddLlmUsd(v float64) *DailyCostUpdate {
	_u.mutation.AddLlmUsd(v)
	return _u
}

// SetOtherUsd sets the "other_usd" field.
func (_u *DailyCostUpdate) SetOtherUsd(v float64) *DailyCostUpdate {
	_u.mutation.ResetOtherUsd()
	_u.mutation.SetOtherUsd(v)
	return _u
}

// SetNillableOtherUsd sets the "other_usd" field if the given value is not nil.
func (_u *DailyCostUpdate) SetNillableOtherUsd(v *float64) *DailyCostUpdate {
	if v != nil {
		_u.SetOtherUsd(*v)
	}
	return _u
}

// AddOtherUsd adds value to the "other_usd" field.
func (_u *DailyCostUpdate) AddOtherUsd(v float64) *DailyCostUpdate {
	_u.mutation.AddOtherUsd(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyCostUpdate) SetUpdatedAt(v time.Time) *DailyCostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyCostMutation object of the builder.
func (_u *DailyCostUpdate) Mutation() *DailyCostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyCostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyCostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyCostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyCostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyCostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailycost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DailyCostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dailycost.Table, dailycost.Columns, sqlgraph.NewFieldSpec(dailycost.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalUsd(); ok {
		_spec.SetField(dailycost.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalUsd(); ok {
		_spec.AddField(dailycost.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TranscriptionUsd(); ok {
		_spec.SetField(dailycost.FieldTranscriptionUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTranscriptionUsd(); ok {
		_spec.AddField(dailycost.FieldTranscriptionUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmUsd(); ok {
		_spec.SetField(dailycost.FieldLlmUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLlmUsd(); ok {
		_spec.AddField(dailycost.FieldLlmUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OtherUsd(); ok {
		_spec.SetField(dailycost.FieldOtherUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOtherUsd(); ok {
		_spec.AddField(dailycost.FieldOtherUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailycost.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailycost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyCostUpdateOne is the builder for updating a single DailyCost entity.
type DailyCostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyCostMutation
}

// SetTotalUsd sets the "total_usd" field.
func (_u *DailyCostUpdateOne) SetTotalUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.ResetTotalUsd()
	_u.mutation.SetTotalUsd(v)
	return _u
}

// SetNillableTotalUsd sets the "total_usd" field if the given value is not nil.
func (_u *DailyCostUpdateOne) SetNillableTotalUsd(v *float64) *DailyCostUpdateOne {
	if v != nil {
		_u.SetTotalUsd(*v)
	}
	return _u
}

// AddTotalUsd adds value to the "total_usd" field.
func (_u *DailyCostUpdateOne) AddTotalUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.AddTotalUsd(v)
	return _u
}

// SetTranscriptionUsd sets the "transcription_usd" field.
func (_u *DailyCostUpdateOne) SetTranscriptionUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.ResetTranscriptionUsd()
	_u.mutation.SetTranscriptionUsd(v)
	return _u
}

// SetNillableTranscriptionUsd sets the "transcription_usd" field if the given value is not nil.
func (_u *DailyCostUpdateOne) SetNillableTranscriptionUsd(v *float64) *DailyCostUpdateOne {
	if v != nil {
		_u.SetTranscriptionUsd(*v)
	}
	return _u
}

// AddTranscriptionUsd adds value to the "transcription_usd" field.
func (_u *DailyCostUpdateOne) AddTranscriptionUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.AddTranscriptionUsd(v)
	return _u
}

// SetLlmUsd sets the "llm_usd" field.
func (_u *DailyCostUpdateOne) SetLlmUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.ResetLlmUsd()
	_u.mutation.SetLlmUsd(v)
	return _u
}

// SetNillableLlmUsd sets the "llm_usd" field if the given value is not nil.
func (_u *DailyCostUpdateOne) SetNillableLlmUsd(v *float64) *DailyCostUpdateOne {
	if v != nil {
		_u.SetLlmUsd(*v)
	}
	return _u
}

// AddLlmUsd adds value to the "llm_usd" field.
func (_u *DailyCostUpdateOne) AddLlmUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.AddLlmUsd(v)
	return _u
}

// SetOtherUsd sets the "other_usd" field.
func (_u *DailyCostUpdateOne) SetOtherUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.ResetOtherUsd()
	_u.mutation.SetOtherUsd(v)
	return _u
}

// SetNillableOtherUsd sets the "other_usd" field if the given value is not nil.
func (_u *DailyCostUpdateOne) SetNillableOtherUsd(v *float64) *DailyCostUpdateOne {
	if v != nil {
		_u.SetOtherUsd(*v)
	}
	return _u
}

// AddOtherUsd adds value to the "other_usd" field.
func (_u *DailyCostUpdateOne) AddOtherUsd(v float64) *DailyCostUpdateOne {
	_u.mutation.AddOtherUsd(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyCostUpdateOne) SetUpdatedAt(v time.Time) *DailyCostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyCostMutation object of the builder.
func (_u *DailyCostUpdateOne) Mutation() *DailyCostMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyCostUpdate builder.
func (_u *DailyCostUpdateOne) Where(ps ...predicate.DailyCost) *DailyCostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyCostUpdateOne) Select(field string, fields ...string) *DailyCostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyCost entity.
func (_u *DailyCostUpdateOne) Save(ctx context.Context) (*DailyCost, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyCostUpdateOne) SaveX(ctx context.Context) *DailyCost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyCostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyCostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyCostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailycost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DailyCostUpdateOne) sqlSave(ctx context.Context) (_node *DailyCost, err error) {
	_spec := sqlgraph.NewUpdateSpec(dailycost.Table, dailycost.Columns, sqlgraph.NewFieldSpec(dailycost.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyCost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailycost.FieldID)
		for _, f := range fields {
			if !dailycost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailycost.FieldID {
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
	if value, ok := _u.mutation.TotalUsd(); ok {
		_spec.SetField(dailycost.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalUsd(); ok {
		_spec.AddField(dailycost.FieldTotalUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TranscriptionUsd(); ok {
		_spec.SetField(dailycost.FieldTranscriptionUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTranscriptionUsd(); ok {
		_spec.AddField(dailycost.FieldTranscriptionUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmUsd(); ok {
		_spec.SetField(dailycost.FieldLlmUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLlmUsd(); ok {
		_spec.AddField(dailycost.FieldLlmUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OtherUsd(); ok {
		_spec.SetField(dailycost.FieldOtherUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOtherUsd(); ok {
		_spec.AddField(dailycost.FieldOtherUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailycost.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DailyCost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailycost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
