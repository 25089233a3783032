// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autopiloot/autopiloot/ent/video"
)

// VideoCreate is the builder for creating a Video entity.
type VideoCreate struct {
	config
	mutation *VideoMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *VideoCreate) SetURL(v string) *VideoCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *VideoCreate) SetTitle(v string) *VideoCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *VideoCreate) SetPublishedAt(v time.Time) *VideoCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetChannelID sets the "channel_id" field.
func (_c *VideoCreate) SetChannelID(v string) *VideoCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetDurationSec sets the "duration_sec" field.
func (_c *VideoCreate) SetDurationSec(v int) *VideoCreate {
	_c.mutation.SetDurationSec(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *VideoCreate) SetSource(v video.Source) *VideoCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VideoCreate) SetStatus(v video.Status) *VideoCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VideoCreate) SetNillableStatus(v *video.Status) *VideoCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSummaryDocRef sets the "summary_doc_ref" field.
func (_c *VideoCreate) SetSummaryDocRef(v string) *VideoCreate {
	_c.mutation.SetSummaryDocRef(v)
	return _c
}

// SetNillableSummaryDocRef sets the "summary_doc_ref" field if the given value is not nil.
func (_c *VideoCreate) SetNillableSummaryDocRef(v *string) *VideoCreate {
	if v != nil {
		_c.SetSummaryDocRef(*v)
	}
	return _c
}

// SetZepDocID sets the "zep_doc_id" field.
func (_c *VideoCreate) SetZepDocID(v string) *VideoCreate {
	_c.mutation.SetZepDocID(v)
	return _c
}

// SetNillableZepDocID sets the "zep_doc_id" field if the given value is not nil.
func (_c *VideoCreate) SetNillableZepDocID(v *string) *VideoCreate {
	if v != nil {
		_c.SetZepDocID(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *VideoCreate) SetRejectionReason(v string) *VideoCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *VideoCreate) SetNillableRejectionReason(v *string) *VideoCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VideoCreate) SetCreatedAt(v time.Time) *VideoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VideoCreate) SetNillableCreatedAt(v *time.Time) *VideoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VideoCreate) SetUpdatedAt(v time.Time) *VideoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VideoCreate) SetNillableUpdatedAt(v *time.Time) *VideoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VideoCreate) SetID(v string) *VideoCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VideoMutation object of the builder.
func (_c *VideoCreate) Mutation() *VideoMutation {
	return _c.mutation
}

// Save creates the Video in the database.
func (_c *VideoCreate) Save(ctx context.Context) (*Video, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VideoCreate) SaveX(ctx context.Context) *Video {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VideoCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := video.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := video.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := video.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VideoCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Video.url"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Video.title"`)}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`ent: missing required field "Video.published_at"`)}
	}
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "Video.channel_id"`)}
	}
	if _, ok := _c.mutation.DurationSec(); !ok {
		return &ValidationError{Name: "duration_sec", err: errors.New(`ent: missing required field "Video.duration_sec"`)}
	}
	if v, ok := _c.mutation.DurationSec(); ok {
		if err := video.DurationSecValidator(v); err != nil {
			return &ValidationError{Name: "duration_sec", err: fmt.Errorf(`ent: validator failed for field "Video.duration_sec": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Video.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := video.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Video.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Video.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := video.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Video.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Video.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Video.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := video.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Video.id": %w`, err)}
		}
	}
	return nil
}

func (_c *VideoCreate) sqlSave(ctx context.Context) (*Video, error) {
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
			return nil, fmt.Errorf("unexpected Video.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VideoCreate) createSpec() (*Video, *sqlgraph.CreateSpec) {
	var (
		_node = &Video{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(video.Table, sqlgraph.NewFieldSpec(video.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(video.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(video.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if value, ok := _c.mutation.ChannelID(); ok {
		_spec.SetField(video.FieldChannelID, field.TypeString, value)
		_node.ChannelID = value
	}
	if value, ok := _c.mutation.DurationSec(); ok {
		_spec.SetField(video.FieldDurationSec, field.TypeInt, value)
		_node.DurationSec = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(video.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(video.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SummaryDocRef(); ok {
		_spec.SetField(video.FieldSummaryDocRef, field.TypeString, value)
		_node.SummaryDocRef = &value
	}
	if value, ok := _c.mutation.ZepDocID(); ok {
		_spec.SetField(video.FieldZepDocID, field.TypeString, value)
		_node.ZepDocID = &value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(video.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(video.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(video.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// VideoCreateBulk is the builder for creating many Video entities in bulk.
type VideoCreateBulk struct {
	config
	err      error
	builders []*VideoCreate
}

// Save creates the Video entities in the database.
func (_c *VideoCreateBulk) Save(ctx context.Context) ([]*Video, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Video, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VideoMutation)
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
func (_c *VideoCreateBulk) SaveX(ctx context.Context) []*Video {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VideoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VideoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
