// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/transcript"
)

// TranscriptCreate is the builder for creating a Transcript entity.
type TranscriptCreate struct {
	config
	mutation *TranscriptMutation
	hooks    []Hook
}

// SetTranscriptDocRef sets the "transcript_doc_ref" field.
func (_c *TranscriptCreate) SetTranscriptDocRef(v string) *TranscriptCreate {
	_c.mutation.SetTranscriptDocRef(v)
	return _c
}

// SetTranscriptJSONRef sets the "transcript_json_ref" field.
func (_c *TranscriptCreate) SetTranscriptJSONRef(v string) *TranscriptCreate {
	_c.mutation.SetTranscriptJSONRef(v)
	return _c
}

// SetDigest sets the "digest" field.
func (_c *TranscriptCreate) SetDigest(v string) *TranscriptCreate {
	_c.mutation.SetDigest(v)
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *TranscriptCreate) SetCostUsd(v float64) *TranscriptCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptCreate) SetCreatedAt(v time.Time) *TranscriptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableCreatedAt(v *time.Time) *TranscriptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptCreate) SetID(v string) *TranscriptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TranscriptMutation object of the builder.
func (_c *TranscriptCreate) Mutation() *TranscriptMutation {
	return _c.mutation
}

// Save creates the Transcript in the database.
func (_c *TranscriptCreate) Save(ctx context.Context) (*Transcript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptCreate) SaveX(ctx context.Context) *Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcript.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptCreate) check() error {
	if _, ok := _c.mutation.TranscriptDocRef(); !ok {
		return &ValidationError{Name: "transcript_doc_ref", err: errors.New(`ent: missing required field "Transcript.transcript_doc_ref"`)}
	}
	if _, ok := _c.mutation.TranscriptJSONRef(); !ok {
		return &ValidationError{Name: "transcript_json_ref", err: errors.New(`ent: missing required field "Transcript.transcript_json_ref"`)}
	}
	if _, ok := _c.mutation.Digest(); !ok {
		return &ValidationError{Name: "digest", err: errors.New(`ent: missing required field "Transcript.digest"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "Transcript.cost_usd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transcript.created_at"`)}
	}
	return nil
}

func (_c *TranscriptCreate) sqlSave(ctx context.Context) (*Transcript, error) {
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
			return nil, fmt.Errorf("unexpected Transcript.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptCreate) createSpec() (*Transcript, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcript.Table, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TranscriptDocRef(); ok {
		_spec.SetField(transcript.FieldTranscriptDocRef, field.TypeString, value)
		_node.TranscriptDocRef = value
	}
	if value, ok := _c.mutation.TranscriptJSONRef(); ok {
		_spec.SetField(transcript.FieldTranscriptJSONRef, field.TypeString, value)
		_node.TranscriptJSONRef = value
	}
	if value, ok := _c.mutation.Digest(); ok {
		_spec.SetField(transcript.FieldDigest, field.TypeString, value)
		_node.Digest = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(transcript.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcript.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TranscriptCreateBulk is the builder for creating many Transcript entities in bulk.
type TranscriptCreateBulk struct {
	config
	err      error
	builders []*TranscriptCreate
}

// Save creates the Transcript entities in the database.
func (_c *TranscriptCreateBulk) Save(ctx context.Context) ([]*Transcript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptMutation)
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
func (_c *TranscriptCreateBulk) SaveX(ctx context.Context) []*Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
