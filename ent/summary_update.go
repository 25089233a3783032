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
	"github.com/autopiloot/autopiloot/ent/predicate"
	"github.com/autopiloot/autopiloot/ent/schema"
	"github.com/autopiloot/autopiloot/ent/summary"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBullets sets the "bullets" field.
func (_u *SummaryUpdate) SetBullets(v []string) *SummaryUpdate {
	_u.mutation.SetBullets(v)
	return _u
}

// AppendBullets appends value to the "bullets" field.
func (_u *SummaryUpdate) AppendBullets(v []string) *SummaryUpdate {
	_u.mutation.AppendBullets(v)
	return _u
}

// SetKeyConcepts sets the "key_concepts" field.
func (_u *SummaryUpdate) SetKeyConcepts(v []string) *SummaryUpdate {
	_u.mutation.SetKeyConcepts(v)
	return _u
}

// AppendKeyConcepts appends value to the "key_concepts" field.
func (_u *SummaryUpdate) AppendKeyConcepts(v []string) *SummaryUpdate {
	_u.mutation.AppendKeyConcepts(v)
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *SummaryUpdate) SetPromptID(v string) *SummaryUpdate {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillablePromptID(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SummaryUpdate) SetPromptVersion(v string) *SummaryUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillablePromptVersion(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *SummaryUpdate) SetInputTokens(v int) *SummaryUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableInputTokens(v *int) *SummaryUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *SummaryUpdate) AddInputTokens(v int) *SummaryUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *SummaryUpdate) SetOutputTokens(v int) *SummaryUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableOutputTokens(v *int) *SummaryUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *SummaryUpdate) AddOutputTokens(v int) *SummaryUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTranscriptDocRef sets the "transcript_doc_ref" field.
func (_u *SummaryUpdate) SetTranscriptDocRef(v string) *SummaryUpdate {
	_u.mutation.SetTranscriptDocRef(v)
	return _u
}

// SetNillableTranscriptDocRef sets the "transcript_doc_ref" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableTranscriptDocRef(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetTranscriptDocRef(*v)
	}
	return _u
}

// SetZepDocID sets the "zep_doc_id" field.
func (_u *SummaryUpdate) SetZepDocID(v string) *SummaryUpdate {
	_u.mutation.SetZepDocID(v)
	return _u
}

// SetNillableZepDocID sets the "zep_doc_id" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableZepDocID(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetZepDocID(*v)
	}
	return _u
}

// ClearZepDocID clears the value of the "zep_doc_id" field.
func (_u *SummaryUpdate) ClearZepDocID() *SummaryUpdate {
	_u.mutation.ClearZepDocID()
	return _u
}

// SetRagRefs sets the "rag_refs" field.
func (_u *SummaryUpdate) SetRagRefs(v []schema.RAGRef) *SummaryUpdate {
	_u.mutation.SetRagRefs(v)
	return _u
}

// AppendRagRefs appends value to the "rag_refs" field.
func (_u *SummaryUpdate) AppendRagRefs(v []schema.RAGRef) *SummaryUpdate {
	_u.mutation.AppendRagRefs(v)
	return _u
}

// ClearRagRefs clears the value of the "rag_refs" field.
func (_u *SummaryUpdate) ClearRagRefs() *SummaryUpdate {
	_u.mutation.ClearRagRefs()
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdate) Mutation() *SummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Bullets(); ok {
		_spec.SetField(summary.FieldBullets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBullets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldBullets, value)
		})
	}
	if value, ok := _u.mutation.KeyConcepts(); ok {
		_spec.SetField(summary.FieldKeyConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldKeyConcepts, value)
		})
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(summary.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(summary.FieldPromptVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(summary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(summary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(summary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(summary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranscriptDocRef(); ok {
		_spec.SetField(summary.FieldTranscriptDocRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.ZepDocID(); ok {
		_spec.SetField(summary.FieldZepDocID, field.TypeString, value)
	}
	if _u.mutation.ZepDocIDCleared() {
		_spec.ClearField(summary.FieldZepDocID, field.TypeString)
	}
	if value, ok := _u.mutation.RagRefs(); ok {
		_spec.SetField(summary.FieldRagRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRagRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldRagRefs, value)
		})
	}
	if _u.mutation.RagRefsCleared() {
		_spec.ClearField(summary.FieldRagRefs, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetBullets sets the "bullets" field.
func (_u *SummaryUpdateOne) SetBullets(v []string) *SummaryUpdateOne {
	_u.mutation.SetBullets(v)
	return _u
}

// AppendBullets appends value to the "bullets" field.
func (_u *SummaryUpdateOne) AppendBullets(v []string) *SummaryUpdateOne {
	_u.mutation.AppendBullets(v)
	return _u
}

// SetKeyConcepts sets the "key_concepts" field.
func (_u *SummaryUpdateOne) SetKeyConcepts(v []string) *SummaryUpdateOne {
	_u.mutation.SetKeyConcepts(v)
	return _u
}

// AppendKeyConcepts appends value to the "key_concepts" field.
func (_u *SummaryUpdateOne) AppendKeyConcepts(v []string) *SummaryUpdateOne {
	_u.mutation.AppendKeyConcepts(v)
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *SummaryUpdateOne) SetPromptID(v string) *SummaryUpdateOne {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillablePromptID(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SummaryUpdateOne) SetPromptVersion(v string) *SummaryUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillablePromptVersion(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *SummaryUpdateOne) SetInputTokens(v int) *SummaryUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableInputTokens(v *int) *SummaryUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *SummaryUpdateOne) AddInputTokens(v int) *SummaryUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *SummaryUpdateOne) SetOutputTokens(v int) *SummaryUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableOutputTokens(v *int) *SummaryUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *SummaryUpdateOne) AddOutputTokens(v int) *SummaryUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTranscriptDocRef sets the "transcript_doc_ref" field.
func (_u *SummaryUpdateOne) SetTranscriptDocRef(v string) *SummaryUpdateOne {
	_u.mutation.SetTranscriptDocRef(v)
	return _u
}

// SetNillableTranscriptDocRef sets the "transcript_doc_ref" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableTranscriptDocRef(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetTranscriptDocRef(*v)
	}
	return _u
}

// SetZepDocID sets the "zep_doc_id" field.
func (_u *SummaryUpdateOne) SetZepDocID(v string) *SummaryUpdateOne {
	_u.mutation.SetZepDocID(v)
	return _u
}

// SetNillableZepDocID sets the "zep_doc_id" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableZepDocID(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetZepDocID(*v)
	}
	return _u
}

// ClearZepDocID clears the value of the "zep_doc_id" field.
func (_u *SummaryUpdateOne) ClearZepDocID() *SummaryUpdateOne {
	_u.mutation.ClearZepDocID()
	return _u
}

// SetRagRefs sets the "rag_refs" field.
func (_u *SummaryUpdateOne) SetRagRefs(v []schema.RAGRef) *SummaryUpdateOne {
	_u.mutation.SetRagRefs(v)
	return _u
}

// AppendRagRefs appends value to the "rag_refs" field.
func (_u *SummaryUpdateOne) AppendRagRefs(v []schema.RAGRef) *SummaryUpdateOne {
	_u.mutation.AppendRagRefs(v)
	return _u
}

// ClearRagRefs clears the value of the "rag_refs" field.
func (_u *SummaryUpdateOne) ClearRagRefs() *SummaryUpdateOne {
	_u.mutation.ClearRagRefs()
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdateOne) Mutation() *SummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summary entity.
func (_u *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
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
	if value, ok := _u.mutation.Bullets(); ok {
		_spec.SetField(summary.FieldBullets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBullets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldBullets, value)
		})
	}
	if value, ok := _u.mutation.KeyConcepts(); ok {
		_spec.SetField(summary.FieldKeyConcepts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyConcepts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldKeyConcepts, value)
		})
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(summary.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(summary.FieldPromptVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(summary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(summary.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(summary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(summary.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TranscriptDocRef(); ok {
		_spec.SetField(summary.FieldTranscriptDocRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.ZepDocID(); ok {
		_spec.SetField(summary.FieldZepDocID, field.TypeString, value)
	}
	if _u.mutation.ZepDocIDCleared() {
		_spec.ClearField(summary.FieldZepDocID, field.TypeString)
	}
	if value, ok := _u.mutation.RagRefs(); ok {
		_spec.SetField(summary.FieldRagRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRagRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldRagRefs, value)
		})
	}
	if _u.mutation.RagRefsCleared() {
		_spec.ClearField(summary.FieldRagRefs, field.TypeJSON)
	}
	_node = &Summary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
