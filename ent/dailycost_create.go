// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/dailycost"
)

// DailyCostCreate is the builder for creating a DailyCost entity.
type DailyCostCreate struct {
	config
	mutation *DailyCostMutation
	hooks    []Hook
}

// SetTotalUsd sets the "total_usd" field.
func (_c *DailyCostCreate) SetTotalUsd(v float64) *DailyCostCreate {
	_c.mutation.SetTotalUsd(v)
	return _c
}

// SetNillableTotalUsd sets the "total_usd" field if the given value is not nil.
func (_c *DailyCostCreate) SetNillableTotalUsd(v *float64) *DailyCostCreate {
	if v != nil {
		_c.SetTotalUsd(*v)
	}
	return _c
}

// SetTranscriptionUsd sets the "transcription_usd" field.
func (_c *DailyCostCreate) SetTranscriptionUsd(v float64) *DailyCostCreate {
	_c.mutation.SetTranscriptionUsd(v)
	return _c
}

// SetNillableTranscriptionUsd sets the "transcription_usd" field if the given value is not nil.
func (_c *DailyCostCreate) SetNillableTranscriptionUsd(v *float64) *DailyCostCreate {
	if v != nil {
		_c.SetTranscriptionUsd(*v)
	}
	return _c
}

// SetLlmUsd sets the "llm_usd" field.
func (_c *DailyCostCreate) SetLlmUsd(v float64) *DailyCostCreate {
	_c.mutation.SetLlmUsd(v)
	return _c
}

// SetNillableLlmUsd sets the "llm_usd" field if the given value is not nil.
func (_c *DailyCostCreate) SetNillableLlmUsd(v *float64) *DailyCostCreate {
	if v != nil {
		_c.SetLlmUsd(*v)
	}
	return _c
}

// SetOtherUsd sets the "other_usd" field.
func (_c *DailyCostCreate) SetOtherUsd(v float64) *DailyCostCreate {
	_c.mutation.SetOtherUsd(v)
	return _c
}

// SetNillableOtherUsd sets the "other_usd" field if the given value is not nil.
func (_c *DailyCostCreate) SetNillableOtherUsd(v *float64) *DailyCostCreate {
	if v != nil {
		_c.SetOtherUsd(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DailyCostCreate) SetUpdatedAt(v time.Time) *DailyCostCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DailyCostCreate) SetNillableUpdatedAt(v *time.Time) *DailyCostCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DailyCostCreate) SetID(v string) *DailyCostCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DailyCostMutation object of the builder.
func (_c *DailyCostCreate) Mutation() *DailyCostMutation {
	return _c.mutation
}

// Save creates the DailyCost in the database.
func (_c *DailyCostCreate) Save(ctx context.Context) (*DailyCost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyCostCreate) SaveX(ctx context.Context) *DailyCost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyCostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyCostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyCostCreate) defaults() {
	if _, ok := _c.mutation.TotalUsd(); !ok {
		v := dailycost.DefaultTotalUsd
		_c.mutation.SetTotalUsd(v)
	}
	if _, ok := _c.mutation.TranscriptionUsd(); !ok {
		v := dailycost.DefaultTranscriptionUsd
		_c.mutation.SetTranscriptionUsd(v)
	}
	if _, ok := _c.mutation.LlmUsd(); !ok {
		v := dailycost.DefaultLlmUsd
		_c.mutation.SetLlmUsd(v)
	}
	if _, ok := _c.mutation.OtherUsd(); !ok {
		v := dailycost.DefaultOtherUsd
		_c.mutation.SetOtherUsd(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dailycost.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyCostCreate) check() error {
	if _, ok := _c.mutation.TotalUsd(); !ok {
		return &ValidationError{Name: "total_usd", err: errors.New(`ent: missing required field "DailyCost.total_usd"`)}
	}
	if _, ok := _c.mutation.TranscriptionUsd(); !ok {
		return &ValidationError{Name: "transcription_usd", err: errors.New(`ent: missing required field "DailyCost.transcription_usd"`)}
	}
	if _, ok := _c.mutation.LlmUsd(); !ok {
		return &ValidationError{Name: "llm_usd", err: errors.New(`ent: missing required field "DailyCost.llm_usd"`)}
	}
	if _, ok := _c.mutation.OtherUsd(); !ok {
		return &ValidationError{Name: "other_usd", err: errors.New(`ent: missing required field "DailyCost.other_usd"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DailyCost.updated_at"`)}
	}
	return nil
}

func (_c *DailyCostCreate) sqlSave(ctx context.Context) (*DailyCost, error) {
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
			return nil, fmt.Errorf("unexpected DailyCost.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DailyCostCreate) createSpec() (*DailyCost, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyCost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailycost.Table, sqlgraph.NewFieldSpec(dailycost.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TotalUsd(); ok {
		_spec.SetField(dailycost.FieldTotalUsd, field.TypeFloat64, value)
		_node.TotalUsd = value
	}
	if value, ok := _c.mutation.TranscriptionUsd(); ok {
		_spec.SetField(dailycost.FieldTranscriptionUsd, field.TypeFloat64, value)
		_node.TranscriptionUsd = value
	}
	if value, ok := _c.mutation.LlmUsd(); ok {
		_spec.SetField(dailycost.FieldLlmUsd, field.TypeFloat64, value)
		_node.LlmUsd = value
	}
	if value, ok := _c.mutation.OtherUsd(); ok {
		_spec.SetField(dailycost.FieldOtherUsd, field.TypeFloat64, value)
		_node.OtherUsd = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dailycost.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DailyCostCreateBulk is the builder for creating many DailyCost entities in bulk.
type DailyCostCreateBulk struct {
	config
	err      error
	builders []*DailyCostCreate
}

// Save creates the DailyCost entities in the database.
func (_c *DailyCostCreateBulk) Save(ctx context.Context) ([]*DailyCost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyCost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyCostMutation)
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
func (_c *DailyCostCreateBulk) SaveX(ctx context.Context) []*DailyCost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyCostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyCostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
