// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/schema"
	"github.com/autopiloot/autopiloot/ent/summary"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
}

// SetBullets sets the "bullets" field.
func (_c *SummaryCreate) SetBullets(v []string) *SummaryCreate {
	_c.mutation.SetBullets(v)
	return _c
}

// SetKeyConcepts sets the "key_concepts" field.
func (_c *SummaryCreate) SetKeyConcepts(v []string) *SummaryCreate {
	_c.mutation.SetKeyConcepts(v)
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *SummaryCreate) SetPromptID(v string) *SummaryCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *SummaryCreate) SetPromptVersion(v string) *SummaryCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *SummaryCreate) SetInputTokens(v int) *SummaryCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *SummaryCreate) SetOutputTokens(v int) *SummaryCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetTranscriptDocRef sets the "transcript_doc_ref" field.
func (_c *SummaryCreate) SetTranscriptDocRef(v string) *SummaryCreate {
	_c.mutation.SetTranscriptDocRef(v)
	return _c
}

// SetZepDocID sets the "zep_doc_id" field.
func (_c *SummaryCreate) SetZepDocID(v string) *SummaryCreate {
	_c.mutation.SetZepDocID(v)
	return _c
}

// SetNillableZepDocID sets the "zep_doc_id" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableZepDocID(v *string) *SummaryCreate {
	if v != nil {
		_c.SetZepDocID(*v)
	}
	return _c
}

// SetRagRefs sets the "rag_refs" field.
func (_c *SummaryCreate) SetRagRefs(v []schema.RAGRef) *SummaryCreate {
	_c.mutation.SetRagRefs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCreate) SetCreatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCreatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryCreate) SetID(v string) *SummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SummaryMutation object of the builder.
func (_c *SummaryCreate) Mutation() *SummaryMutation {
	return _c.mutation
}

// Save creates the Summary in the database.
func (_c *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCreate) check() error {
	if _, ok := _c.mutation.Bullets(); !ok {
		return &ValidationError{Name: "bullets", err: errors.New(`ent: missing required field "Summary.bullets"`)}
	}
	if _, ok := _c.mutation.KeyConcepts(); !ok {
		return &ValidationError{Name: "key_concepts", err: errors.New(`ent: missing required field "Summary.key_concepts"`)}
	}
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "Summary.prompt_id"`)}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "Summary.prompt_version"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Summary.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Summary.output_tokens"`)}
	}
	if _, ok := _c.mutation.TranscriptDocRef(); !ok {
		return &ValidationError{Name: "transcript_doc_ref", err: errors.New(`ent: missing required field "Summary.transcript_doc_ref"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Summary.created_at"`)}
	}
	return nil
}

func (_c *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
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
			return nil, fmt.Errorf("unexpected Summary.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Bullets(); ok {
		_spec.SetField(summary.FieldBullets, field.TypeJSON, value)
		_node.Bullets = value
	}
	if value, ok := _c.mutation.KeyConcepts(); ok {
		_spec.SetField(summary.FieldKeyConcepts, field.TypeJSON, value)
		_node.KeyConcepts = value
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(summary.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(summary.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(summary.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(summary.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TranscriptDocRef(); ok {
		_spec.SetField(summary.FieldTranscriptDocRef, field.TypeString, value)
		_node.TranscriptDocRef = value
	}
	if value, ok := _c.mutation.ZepDocID(); ok {
		_spec.SetField(summary.FieldZepDocID, field.TypeString, value)
		_node.ZepDocID = &value
	}
	if value, ok := _c.mutation.RagRefs(); ok {
		_spec.SetField(summary.FieldRagRefs, field.TypeJSON, value)
		_node.RagRefs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
}

// Save creates the Summary entities in the database.
func (_c *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
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
func (_c *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
