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
	"github.com/autopiloot/autopiloot/ent/predicate"
	"github.com/autopiloot/autopiloot/ent/video"
)

// VideoUpdate is the builder for updating Video entities.
type VideoUpdate struct {
	config
	hooks    []Hook
	mutation *VideoMutation
}

// Where appends a list predicates to the VideoUpdate builder.
func (_u *VideoUpdate) Where(ps ...predicate.Video) *VideoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *VideoUpdate) SetURL(v string) *VideoUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableURL(v *string) *VideoUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *VideoUpdate) SetTitle(v string) *VideoUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableTitle(v *string) *VideoUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *VideoUpdate) SetPublishedAt(v time.Time) *VideoUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *VideoUpdate) SetNillablePublishedAt(v *time.Time) *VideoUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *VideoUpdate) SetChannelID(v string) *VideoUpdate {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableChannelID(v *string) *VideoUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *VideoUpdate) SetDurationSec(v int) *VideoUpdate {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableDurationSec(v *int) *VideoUpdate {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *VideoUpdate) AddDurationSec(v int) *VideoUpdate {
	_u.mutation.AddDurationSec(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *VideoUpdate) SetSource(v video.Source) *VideoUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableSource(v *video.Source) *VideoUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VideoUpdate) SetStatus(v video.Status) *VideoUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableStatus(v *video.Status) *VideoUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummaryDocRef sets the "summary_doc_ref" field.
func (_u *VideoUpdate) SetSummaryDocRef(v string) *VideoUpdate {
	_u.mutation.SetSummaryDocRef(v)
	return _u
}

// SetNillableSummaryDocRef sets the "summary_doc_ref" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableSummaryDocRef(v *string) *VideoUpdate {
	if v != nil {
		_u.SetSummaryDocRef(*v)
	}
	return _u
}

// ClearSummaryDocRef clears the value of the "summary_doc_ref" field.
func (_u *VideoUpdate) ClearSummaryDocRef() *VideoUpdate {
	_u.mutation.ClearSummaryDocRef()
	return _u
}

// SetZepDocID sets the "zep_doc_id" field.
func (_u *VideoUpdate) SetZepDocID(v string) *VideoUpdate {
	_u.mutation.SetZepDocID(v)
	return _u
}

// SetNillableZepDocID sets the "zep_doc_id" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableZepDocID(v *string) *VideoUpdate {
	if v != nil {
		_u.SetZepDocID(*v)
	}
	return _u
}

// ClearZepDocID clears the value of the "zep_doc_id" field.
func (_u *VideoUpdate) ClearZepDocID() *VideoUpdate {
	_u.mutation.ClearZepDocID()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *VideoUpdate) SetRejectionReason(v string) *VideoUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *VideoUpdate) SetNillableRejectionReason(v *string) *VideoUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *VideoUpdate) ClearRejectionReason() *VideoUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VideoUpdate) SetUpdatedAt(v time.Time) *VideoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VideoMutation object of the builder.
func (_u *VideoUpdate) Mutation() *VideoMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VideoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VideoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VideoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := video.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VideoUpdate) check() error {
	if v, ok := _u.mutation.DurationSec(); ok {
		if err := video.DurationSecValidator(v); err != nil {
			return &ValidationError{Name: "duration_sec", err: fmt.Errorf(`ent: validator failed for field "Video.duration_sec": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := video.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Video.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := video.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Video.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VideoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(video.Table, video.Columns, sqlgraph.NewFieldSpec(video.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(video.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(video.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(video.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(video.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(video.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(video.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(video.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SummaryDocRef(); ok {
		_spec.SetField(video.FieldSummaryDocRef, field.TypeString, value)
	}
	if _u.mutation.SummaryDocRefCleared() {
		_spec.ClearField(video.FieldSummaryDocRef, field.TypeString)
	}
	if value, ok := _u.mutation.ZepDocID(); ok {
		_spec.SetField(video.FieldZepDocID, field.TypeString, value)
	}
	if _u.mutation.ZepDocIDCleared() {
		_spec.ClearField(video.FieldZepDocID, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(video.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(video.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(video.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{video.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VideoUpdateOne is the builder for updating a single Video entity.
type VideoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VideoMutation
}

// SetURL sets the "url" field.
func (_u *VideoUpdateOne) SetURL(v string) *VideoUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableURL(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *VideoUpdateOne) SetTitle(v string) *VideoUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableTitle(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *VideoUpdateOne) SetPublishedAt(v time.Time) *VideoUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillablePublishedAt(v *time.Time) *VideoUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *VideoUpdateOne) SetChannelID(v string) *VideoUpdateOne {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableChannelID(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *VideoUpdateOne) SetDurationSec(v int) *VideoUpdateOne {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableDurationSec(v *int) *VideoUpdateOne {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *VideoUpdateOne) AddDurationSec(v int) *VideoUpdateOne {
	_u.mutation.AddDurationSec(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *VideoUpdateOne) SetSource(v video.Source) *VideoUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableSource(v *video.Source) *VideoUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VideoUpdateOne) SetStatus(v video.Status) *VideoUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableStatus(v *video.Status) *VideoUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSummaryDocRef sets the "summary_doc_ref" field.
func (_u *VideoUpdateOne) SetSummaryDocRef(v string) *VideoUpdateOne {
	_u.mutation.SetSummaryDocRef(v)
	return _u
}

// SetNillableSummaryDocRef sets the "summary_doc_ref" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableSummaryDocRef(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetSummaryDocRef(*v)
	}
	return _u
}

// ClearSummaryDocRef clears the value of the "summary_doc_ref" field.
func (_u *VideoUpdateOne) ClearSummaryDocRef() *VideoUpdateOne {
	_u.mutation.ClearSummaryDocRef()
	return _u
}

// SetZepDocID sets the "zep_doc_id" field.
func (_u *VideoUpdateOne) SetZepDocID(v string) *VideoUpdateOne {
	_u.mutation.SetZepDocID(v)
	return _u
}

// SetNillableZepDocID sets the "zep_doc_id" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableZepDocID(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetZepDocID(*v)
	}
	return _u
}

// ClearZepDocID clears the value of the "zep_doc_id" field.
func (_u *VideoUpdateOne) ClearZepDocID() *VideoUpdateOne {
	_u.mutation.ClearZepDocID()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *VideoUpdateOne) SetRejectionReason(v string) *VideoUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *VideoUpdateOne) SetNillableRejectionReason(v *string) *VideoUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *VideoUpdateOne) ClearRejectionReason() *VideoUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VideoUpdateOne) SetUpdatedAt(v time.Time) *VideoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VideoMutation object of the builder.
func (_u *VideoUpdateOne) Mutation() *VideoMutation {
	return _u.mutation
}

// Where appends a list predicates to the VideoUpdate builder.
func (_u *VideoUpdateOne) Where(ps ...predicate.Video) *VideoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VideoUpdateOne) Select(field string, fields ...string) *VideoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Video entity.
func (_u *VideoUpdateOne) Save(ctx context.Context) (*Video, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VideoUpdateOne) SaveX(ctx context.Context) *Video {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VideoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VideoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VideoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := video.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VideoUpdateOne) check() error {
	if v, ok := _u.mutation.DurationSec(); ok {
		if err := video.DurationSecValidator(v); err != nil {
			return &ValidationError{Name: "duration_sec", err: fmt.Errorf(`ent: validator failed for field "Video.duration_sec": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := video.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Video.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := video.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Video.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VideoUpdateOne) sqlSave(ctx context.Context) (_node *Video, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(video.Table, video.Columns, sqlgraph.NewFieldSpec(video.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Video.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, video.FieldID)
		for _, f := range fields {
			if !video.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != video.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(video.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(video.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(video.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(video.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(video.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(video.FieldDurationSec, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(video.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(video.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SummaryDocRef(); ok {
		_spec.SetField(video.FieldSummaryDocRef, field.TypeString, value)
	}
	if _u.mutation.SummaryDocRefCleared() {
		_spec.ClearField(video.FieldSummaryDocRef, field.TypeString)
	}
	if value, ok := _u.mutation.ZepDocID(); ok {
		_spec.SetField(video.FieldZepDocID, field.TypeString, value)
	}
	if _u.mutation.ZepDocIDCleared() {
		_spec.ClearField(video.FieldZepDocID, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(video.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(video.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(video.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Video{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{video.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
