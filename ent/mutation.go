// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autopiloot/autopiloot/ent/auditlog"
	"github.com/autopiloot/autopiloot/ent/checkpoint"
	"github.com/autopiloot/autopiloot/ent/dailycost"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/ent/predicate"
	"github.com/autopiloot/autopiloot/ent/schema"
	"github.com/autopiloot/autopiloot/ent/summary"
	"github.com/autopiloot/autopiloot/ent/transcript"
	"github.com/autopiloot/autopiloot/ent/video"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog   = "AuditLog"
	TypeCheckpoint = "Checkpoint"
	TypeDLQEntry   = "DLQEntry"
	TypeDailyCost  = "DailyCost"
	TypeJob        = "Job"
	TypeSummary    = "Summary"
	TypeTranscript = "Transcript"
	TypeVideo      = "Video"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	actor         *string
	action        *string
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldDetails:
		return m.Details()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                Op
	typ               string
	id                *string
	last_published_at *time.Time
	last_processed_id *string
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Checkpoint, error)
	predicates        []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLastPublishedAt sets the "last_published_at" field.
func (m *CheckpointMutation) SetLastPublishedAt(t time.Time) {
	m.last_published_at = &t
}

// LastPublishedAt returns the value of the "last_published_at" field in the mutation.
func (m *CheckpointMutation) LastPublishedAt() (r time.Time, exists bool) {
	v := m.last_published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPublishedAt returns the old "last_published_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldLastPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPublishedAt: %w", err)
	}
	return oldValue.LastPublishedAt, nil
}

// ResetLastPublishedAt resets all changes to the "last_published_at" field.
func (m *CheckpointMutation) ResetLastPublishedAt() {
	m.last_published_at = nil
}

// SetLastProcessedID sets the "last_processed_id" field.
func (m *CheckpointMutation) SetLastProcessedID(s string) {
	m.last_processed_id = &s
}

// LastProcessedID returns the value of the "last_processed_id" field in the mutation.
func (m *CheckpointMutation) LastProcessedID() (r string, exists bool) {
	v := m.last_processed_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedID returns the old "last_processed_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldLastProcessedID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedID: %w", err)
	}
	return oldValue.LastProcessedID, nil
}

// ResetLastProcessedID resets all changes to the "last_processed_id" field.
func (m *CheckpointMutation) ResetLastProcessedID() {
	m.last_processed_id = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.last_published_at != nil {
		fields = append(fields, checkpoint.FieldLastPublishedAt)
	}
	if m.last_processed_id != nil {
		fields = append(fields, checkpoint.FieldLastProcessedID)
	}
	if m.updated_at != nil {
		fields = append(fields, checkpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldLastPublishedAt:
		return m.LastPublishedAt()
	case checkpoint.FieldLastProcessedID:
		return m.LastProcessedID()
	case checkpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldLastPublishedAt:
		return m.OldLastPublishedAt(ctx)
	case checkpoint.FieldLastProcessedID:
		return m.OldLastProcessedID(ctx)
	case checkpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldLastPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPublishedAt(v)
		return nil
	case checkpoint.FieldLastProcessedID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedID(v)
		return nil
	case checkpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldLastPublishedAt:
		m.ResetLastPublishedAt()
		return nil
	case checkpoint.FieldLastProcessedID:
		m.ResetLastProcessedID()
		return nil
	case checkpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// DLQEntryMutation represents an operation that mutates the DLQEntry nodes in the graph.
type DLQEntryMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	original_job_id              *string
	job_type                     *dlqentry.JobType
	error_type                   *string
	error_message                *string
	retry_count                  *int
	addretry_count               *int
	last_attempt_at              *time.Time
	original_inputs              *map[string]interface{}
	severity                     *dlqentry.Severity
	recovery_priority            *dlqentry.RecoveryPriority
	processing_attempts          *int
	addprocessing_attempts       *int
	recovery_hints               *[]string
	appendrecovery_hints         []string
	video_id                     *string
	video_ids                    *[]string
	appendvideo_ids              []string
	estimated_cost_impact_usd    *float64
	addestimated_cost_impact_usd *float64
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*DLQEntry, error)
	predicates                   []predicate.DLQEntry
}

var _ ent.Mutation = (*DLQEntryMutation)(nil)

// dlqentryOption allows management of the mutation configuration using functional options.
type dlqentryOption func(*DLQEntryMutation)

// newDLQEntryMutation creates new mutation for the DLQEntry entity.
func newDLQEntryMutation(c config, op Op, opts ...dlqentryOption) *DLQEntryMutation {
	m := &DLQEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDLQEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDLQEntryID sets the ID field of the mutation.
func withDLQEntryID(id string) dlqentryOption {
	return func(m *DLQEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DLQEntry
		)
		m.oldValue = func(ctx context.Context) (*DLQEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DLQEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDLQEntry sets the old DLQEntry of the mutation.
func withDLQEntry(node *DLQEntry) dlqentryOption {
	return func(m *DLQEntryMutation) {
		m.oldValue = func(context.Context) (*DLQEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DLQEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DLQEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DLQEntry entities.
func (m *DLQEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DLQEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DLQEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DLQEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOriginalJobID sets the "original_job_id" field.
func (m *DLQEntryMutation) SetOriginalJobID(s string) {
	m.original_job_id = &s
}

// OriginalJobID returns the value of the "original_job_id" field in the mutation.
func (m *DLQEntryMutation) OriginalJobID() (r string, exists bool) {
	v := m.original_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalJobID returns the old "original_job_id" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldOriginalJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalJobID: %w", err)
	}
	return oldValue.OriginalJobID, nil
}

// ResetOriginalJobID resets all changes to the "original_job_id" field.
func (m *DLQEntryMutation) ResetOriginalJobID() {
	m.original_job_id = nil
}

// SetJobType sets the "job_type" field.
func (m *DLQEntryMutation) SetJobType(dt dlqentry.JobType) {
	m.job_type = &dt
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *DLQEntryMutation) JobType() (r dlqentry.JobType, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldJobType(ctx context.Context) (v dlqentry.JobType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *DLQEntryMutation) ResetJobType() {
	m.job_type = nil
}

// SetErrorType sets the "error_type" field.
func (m *DLQEntryMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *DLQEntryMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *DLQEntryMutation) ResetErrorType() {
	m.error_type = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DLQEntryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DLQEntryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DLQEntryMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *DLQEntryMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DLQEntryMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DLQEntryMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DLQEntryMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DLQEntryMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *DLQEntryMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *DLQEntryMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *DLQEntryMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[dlqentry.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *DLQEntryMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *DLQEntryMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, dlqentry.FieldLastAttemptAt)
}

// SetOriginalInputs sets the "original_inputs" field.
func (m *DLQEntryMutation) SetOriginalInputs(value map[string]interface{}) {
	m.original_inputs = &value
}

// OriginalInputs returns the value of the "original_inputs" field in the mutation.
func (m *DLQEntryMutation) OriginalInputs() (r map[string]interface{}, exists bool) {
	v := m.original_inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalInputs returns the old "original_inputs" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldOriginalInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalInputs: %w", err)
	}
	return oldValue.OriginalInputs, nil
}

// ResetOriginalInputs resets all changes to the "original_inputs" field.
func (m *DLQEntryMutation) ResetOriginalInputs() {
	m.original_inputs = nil
}

// SetSeverity sets the "severity" field.
func (m *DLQEntryMutation) SetSeverity(d dlqentry.Severity) {
	m.severity = &d
}

// Severity returns the value of the "severity" field in the mutation.
func (m *DLQEntryMutation) Severity() (r dlqentry.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldSeverity(ctx context.Context) (v dlqentry.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *DLQEntryMutation) ResetSeverity() {
	m.severity = nil
}

// SetRecoveryPriority sets the "recovery_priority" field.
func (m *DLQEntryMutation) SetRecoveryPriority(dp dlqentry.RecoveryPriority) {
	m.recovery_priority = &dp
}

// RecoveryPriority returns the value of the "recovery_priority" field in the mutation.
func (m *DLQEntryMutation) RecoveryPriority() (r dlqentry.RecoveryPriority, exists bool) {
	v := m.recovery_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryPriority returns the old "recovery_priority" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldRecoveryPriority(ctx context.Context) (v dlqentry.RecoveryPriority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryPriority: %w", err)
	}
	return oldValue.RecoveryPriority, nil
}

// ResetRecoveryPriority resets all changes to the "recovery_priority" field.
func (m *DLQEntryMutation) ResetRecoveryPriority() {
	m.recovery_priority = nil
}

// SetProcessingAttempts sets the "processing_attempts" field.
func (m *DLQEntryMutation) SetProcessingAttempts(i int) {
	m.processing_attempts = &i
	m.addprocessing_attempts = nil
}

// ProcessingAttempts returns the value of the "processing_attempts" field in the mutation.
func (m *DLQEntryMutation) ProcessingAttempts() (r int, exists bool) {
	v := m.processing_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingAttempts returns the old "processing_attempts" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldProcessingAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingAttempts: %w", err)
	}
	return oldValue.ProcessingAttempts, nil
}

// AddProcessingAttempts adds i to the "processing_attempts" field.
func (m *DLQEntryMutation) AddProcessingAttempts(i int) {
	if m.addprocessing_attempts != nil {
		*m.addprocessing_attempts += i
	} else {
		m.addprocessing_attempts = &i
	}
}

// AddedProcessingAttempts returns the value that was added to the "processing_attempts" field in this mutation.
func (m *DLQEntryMutation) AddedProcessingAttempts() (r int, exists bool) {
	v := m.addprocessing_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingAttempts resets all changes to the "processing_attempts" field.
func (m *DLQEntryMutation) ResetProcessingAttempts() {
	m.processing_attempts = nil
	m.addprocessing_attempts = nil
}

// SetRecoveryHints sets the "recovery_hints" field.
func (m *DLQEntryMutation) SetRecoveryHints(s []string) {
	m.recovery_hints = &s
	m.appendrecovery_hints = nil
}

// RecoveryHints returns the value of the "recovery_hints" field in the mutation.
func (m *DLQEntryMutation) RecoveryHints() (r []string, exists bool) {
	v := m.recovery_hints
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryHints returns the old "recovery_hints" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldRecoveryHints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryHints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryHints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryHints: %w", err)
	}
	return oldValue.RecoveryHints, nil
}

// AppendRecoveryHints adds s to the "recovery_hints" field.
func (m *DLQEntryMutation) AppendRecoveryHints(s []string) {
	m.appendrecovery_hints = append(m.appendrecovery_hints, s...)
}

// AppendedRecoveryHints returns the list of values that were appended to the "recovery_hints" field in this mutation.
func (m *DLQEntryMutation) AppendedRecoveryHints() ([]string, bool) {
	if len(m.appendrecovery_hints) == 0 {
		return nil, false
	}
	return m.appendrecovery_hints, true
}

// ClearRecoveryHints clears the value of the "recovery_hints" field.
func (m *DLQEntryMutation) ClearRecoveryHints() {
	m.recovery_hints = nil
	m.appendrecovery_hints = nil
	m.clearedFields[dlqentry.FieldRecoveryHints] = struct{}{}
}

// RecoveryHintsCleared returns if the "recovery_hints" field was cleared in this mutation.
func (m *DLQEntryMutation) RecoveryHintsCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldRecoveryHints]
	return ok
}

// ResetRecoveryHints resets all changes to the "recovery_hints" field.
func (m *DLQEntryMutation) ResetRecoveryHints() {
	m.recovery_hints = nil
	m.appendrecovery_hints = nil
	delete(m.clearedFields, dlqentry.FieldRecoveryHints)
}

// SetVideoID sets the "video_id" field.
func (m *DLQEntryMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *DLQEntryMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldVideoID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ClearVideoID clears the value of the "video_id" field.
func (m *DLQEntryMutation) ClearVideoID() {
	m.video_id = nil
	m.clearedFields[dlqentry.FieldVideoID] = struct{}{}
}

// VideoIDCleared returns if the "video_id" field was cleared in this mutation.
func (m *DLQEntryMutation) VideoIDCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldVideoID]
	return ok
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *DLQEntryMutation) ResetVideoID() {
	m.video_id = nil
	delete(m.clearedFields, dlqentry.FieldVideoID)
}

// SetVideoIds sets the "video_ids" field.
func (m *DLQEntryMutation) SetVideoIds(s []string) {
	m.video_ids = &s
	m.appendvideo_ids = nil
}

// VideoIds returns the value of the "video_ids" field in the mutation.
func (m *DLQEntryMutation) VideoIds() (r []string, exists bool) {
	v := m.video_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoIds returns the old "video_ids" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldVideoIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoIds: %w", err)
	}
	return oldValue.VideoIds, nil
}

// AppendVideoIds adds s to the "video_ids" field.
func (m *DLQEntryMutation) AppendVideoIds(s []string) {
	m.appendvideo_ids = append(m.appendvideo_ids, s...)
}

// AppendedVideoIds returns the list of values that were appended to the "video_ids" field in this mutation.
func (m *DLQEntryMutation) AppendedVideoIds() ([]string, bool) {
	if len(m.appendvideo_ids) == 0 {
		return nil, false
	}
	return m.appendvideo_ids, true
}

// ClearVideoIds clears the value of the "video_ids" field.
func (m *DLQEntryMutation) ClearVideoIds() {
	m.video_ids = nil
	m.appendvideo_ids = nil
	m.clearedFields[dlqentry.FieldVideoIds] = struct{}{}
}

// VideoIdsCleared returns if the "video_ids" field was cleared in this mutation.
func (m *DLQEntryMutation) VideoIdsCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldVideoIds]
	return ok
}

// ResetVideoIds resets all changes to the "video_ids" field.
func (m *DLQEntryMutation) ResetVideoIds() {
	m.video_ids = nil
	m.appendvideo_ids = nil
	delete(m.clearedFields, dlqentry.FieldVideoIds)
}

// SetEstimatedCostImpactUsd sets the "estimated_cost_impact_usd" field.
func (m *DLQEntryMutation) SetEstimatedCostImpactUsd(f float64) {
	m.estimated_cost_impact_usd = &f
	m.addestimated_cost_impact_usd = nil
}

// EstimatedCostImpactUsd returns the value of the "estimated_cost_impact_usd" field in the mutation.
func (m *DLQEntryMutation) EstimatedCostImpactUsd() (r float64, exists bool) {
	v := m.estimated_cost_impact_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostImpactUsd returns the old "estimated_cost_impact_usd" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldEstimatedCostImpactUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostImpactUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostImpactUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostImpactUsd: %w", err)
	}
	return oldValue.EstimatedCostImpactUsd, nil
}

// AddEstimatedCostImpactUsd adds f to the "estimated_cost_impact_usd" field.
func (m *DLQEntryMutation) AddEstimatedCostImpactUsd(f float64) {
	if m.addestimated_cost_impact_usd != nil {
		*m.addestimated_cost_impact_usd += f
	} else {
		m.addestimated_cost_impact_usd = &f
	}
}

// AddedEstimatedCostImpactUsd returns the value that was added to the "estimated_cost_impact_usd" field in this mutation.
func (m *DLQEntryMutation) AddedEstimatedCostImpactUsd() (r float64, exists bool) {
	v := m.addestimated_cost_impact_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCostImpactUsd clears the value of the "estimated_cost_impact_usd" field.
func (m *DLQEntryMutation) ClearEstimatedCostImpactUsd() {
	m.estimated_cost_impact_usd = nil
	m.addestimated_cost_impact_usd = nil
	m.clearedFields[dlqentry.FieldEstimatedCostImpactUsd] = struct{}{}
}

// EstimatedCostImpactUsdCleared returns if the "estimated_cost_impact_usd" field was cleared in this mutation.
func (m *DLQEntryMutation) EstimatedCostImpactUsdCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldEstimatedCostImpactUsd]
	return ok
}

// ResetEstimatedCostImpactUsd resets all changes to the "estimated_cost_impact_usd" field.
func (m *DLQEntryMutation) ResetEstimatedCostImpactUsd() {
	m.estimated_cost_impact_usd = nil
	m.addestimated_cost_impact_usd = nil
	delete(m.clearedFields, dlqentry.FieldEstimatedCostImpactUsd)
}

// SetCreatedAt sets the "created_at" field.
func (m *DLQEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DLQEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DLQEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DLQEntryMutation builder.
func (m *DLQEntryMutation) Where(ps ...predicate.DLQEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DLQEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DLQEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DLQEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DLQEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DLQEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DLQEntry).
func (m *DLQEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DLQEntryMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.original_job_id != nil {
		fields = append(fields, dlqentry.FieldOriginalJobID)
	}
	if m.job_type != nil {
		fields = append(fields, dlqentry.FieldJobType)
	}
	if m.error_type != nil {
		fields = append(fields, dlqentry.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, dlqentry.FieldErrorMessage)
	}
	if m.retry_count != nil {
		fields = append(fields, dlqentry.FieldRetryCount)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, dlqentry.FieldLastAttemptAt)
	}
	if m.original_inputs != nil {
		fields = append(fields, dlqentry.FieldOriginalInputs)
	}
	if m.severity != nil {
		fields = append(fields, dlqentry.FieldSeverity)
	}
	if m.recovery_priority != nil {
		fields = append(fields, dlqentry.FieldRecoveryPriority)
	}
	if m.processing_attempts != nil {
		fields = append(fields, dlqentry.FieldProcessingAttempts)
	}
	if m.recovery_hints != nil {
		fields = append(fields, dlqentry.FieldRecoveryHints)
	}
	if m.video_id != nil {
		fields = append(fields, dlqentry.FieldVideoID)
	}
	if m.video_ids != nil {
		fields = append(fields, dlqentry.FieldVideoIds)
	}
	if m.estimated_cost_impact_usd != nil {
		fields = append(fields, dlqentry.FieldEstimatedCostImpactUsd)
	}
	if m.created_at != nil {
		fields = append(fields, dlqentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DLQEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dlqentry.FieldOriginalJobID:
		return m.OriginalJobID()
	case dlqentry.FieldJobType:
		return m.JobType()
	case dlqentry.FieldErrorType:
		return m.ErrorType()
	case dlqentry.FieldErrorMessage:
		return m.ErrorMessage()
	case dlqentry.FieldRetryCount:
		return m.RetryCount()
	case dlqentry.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case dlqentry.FieldOriginalInputs:
		return m.OriginalInputs()
	case dlqentry.FieldSeverity:
		return m.Severity()
	case dlqentry.FieldRecoveryPriority:
		return m.RecoveryPriority()
	case dlqentry.FieldProcessingAttempts:
		return m.ProcessingAttempts()
	case dlqentry.FieldRecoveryHints:
		return m.RecoveryHints()
	case dlqentry.FieldVideoID:
		return m.VideoID()
	case dlqentry.FieldVideoIds:
		return m.VideoIds()
	case dlqentry.FieldEstimatedCostImpactUsd:
		return m.EstimatedCostImpactUsd()
	case dlqentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DLQEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dlqentry.FieldOriginalJobID:
		return m.OldOriginalJobID(ctx)
	case dlqentry.FieldJobType:
		return m.OldJobType(ctx)
	case dlqentry.FieldErrorType:
		return m.OldErrorType(ctx)
	case dlqentry.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case dlqentry.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case dlqentry.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case dlqentry.FieldOriginalInputs:
		return m.OldOriginalInputs(ctx)
	case dlqentry.FieldSeverity:
		return m.OldSeverity(ctx)
	case dlqentry.FieldRecoveryPriority:
		return m.OldRecoveryPriority(ctx)
	case dlqentry.FieldProcessingAttempts:
		return m.OldProcessingAttempts(ctx)
	case dlqentry.FieldRecoveryHints:
		return m.OldRecoveryHints(ctx)
	case dlqentry.FieldVideoID:
		return m.OldVideoID(ctx)
	case dlqentry.FieldVideoIds:
		return m.OldVideoIds(ctx)
	case dlqentry.FieldEstimatedCostImpactUsd:
		return m.OldEstimatedCostImpactUsd(ctx)
	case dlqentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DLQEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLQEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dlqentry.FieldOriginalJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalJobID(v)
		return nil
	case dlqentry.FieldJobType:
		v, ok := value.(dlqentry.JobType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case dlqentry.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case dlqentry.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case dlqentry.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case dlqentry.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case dlqentry.FieldOriginalInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalInputs(v)
		return nil
	case dlqentry.FieldSeverity:
		v, ok := value.(dlqentry.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case dlqentry.FieldRecoveryPriority:
		v, ok := value.(dlqentry.RecoveryPriority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryPriority(v)
		return nil
	case dlqentry.FieldProcessingAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingAttempts(v)
		return nil
	case dlqentry.FieldRecoveryHints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryHints(v)
		return nil
	case dlqentry.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case dlqentry.FieldVideoIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoIds(v)
		return nil
	case dlqentry.FieldEstimatedCostImpactUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostImpactUsd(v)
		return nil
	case dlqentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DLQEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DLQEntryMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, dlqentry.FieldRetryCount)
	}
	if m.addprocessing_attempts != nil {
		fields = append(fields, dlqentry.FieldProcessingAttempts)
	}
	if m.addestimated_cost_impact_usd != nil {
		fields = append(fields, dlqentry.FieldEstimatedCostImpactUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DLQEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dlqentry.FieldRetryCount:
		return m.AddedRetryCount()
	case dlqentry.FieldProcessingAttempts:
		return m.AddedProcessingAttempts()
	case dlqentry.FieldEstimatedCostImpactUsd:
		return m.AddedEstimatedCostImpactUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLQEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dlqentry.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case dlqentry.FieldProcessingAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingAttempts(v)
		return nil
	case dlqentry.FieldEstimatedCostImpactUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostImpactUsd(v)
		return nil
	}
	return fmt.Errorf("unknown DLQEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DLQEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dlqentry.FieldLastAttemptAt) {
		fields = append(fields, dlqentry.FieldLastAttemptAt)
	}
	if m.FieldCleared(dlqentry.FieldRecoveryHints) {
		fields = append(fields, dlqentry.FieldRecoveryHints)
	}
	if m.FieldCleared(dlqentry.FieldVideoID) {
		fields = append(fields, dlqentry.FieldVideoID)
	}
	if m.FieldCleared(dlqentry.FieldVideoIds) {
		fields = append(fields, dlqentry.FieldVideoIds)
	}
	if m.FieldCleared(dlqentry.FieldEstimatedCostImpactUsd) {
		fields = append(fields, dlqentry.FieldEstimatedCostImpactUsd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DLQEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DLQEntryMutation) ClearField(name string) error {
	switch name {
	case dlqentry.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	case dlqentry.FieldRecoveryHints:
		m.ClearRecoveryHints()
		return nil
	case dlqentry.FieldVideoID:
		m.ClearVideoID()
		return nil
	case dlqentry.FieldVideoIds:
		m.ClearVideoIds()
		return nil
	case dlqentry.FieldEstimatedCostImpactUsd:
		m.ClearEstimatedCostImpactUsd()
		return nil
	}
	return fmt.Errorf("unknown DLQEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DLQEntryMutation) ResetField(name string) error {
	switch name {
	case dlqentry.FieldOriginalJobID:
		m.ResetOriginalJobID()
		return nil
	case dlqentry.FieldJobType:
		m.ResetJobType()
		return nil
	case dlqentry.FieldErrorType:
		m.ResetErrorType()
		return nil
	case dlqentry.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case dlqentry.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case dlqentry.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case dlqentry.FieldOriginalInputs:
		m.ResetOriginalInputs()
		return nil
	case dlqentry.FieldSeverity:
		m.ResetSeverity()
		return nil
	case dlqentry.FieldRecoveryPriority:
		m.ResetRecoveryPriority()
		return nil
	case dlqentry.FieldProcessingAttempts:
		m.ResetProcessingAttempts()
		return nil
	case dlqentry.FieldRecoveryHints:
		m.ResetRecoveryHints()
		return nil
	case dlqentry.FieldVideoID:
		m.ResetVideoID()
		return nil
	case dlqentry.FieldVideoIds:
		m.ResetVideoIds()
		return nil
	case dlqentry.FieldEstimatedCostImpactUsd:
		m.ResetEstimatedCostImpactUsd()
		return nil
	case dlqentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DLQEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DLQEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DLQEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DLQEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DLQEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DLQEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DLQEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DLQEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DLQEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DLQEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DLQEntry edge %s", name)
}

// DailyCostMutation represents an operation that mutates the DailyCost nodes in the graph.
type DailyCostMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	total_usd            *float64
	addtotal_usd         *float64
	transcription_usd    *float64
	addtranscription_usd *float64
	llm_usd              *float64
	addllm_usd           *float64
	other_usd            *float64
	addother_usd         *float64
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*DailyCost, error)
	predicates           []predicate.DailyCost
}

var _ ent.Mutation = (*DailyCostMutation)(nil)

// dailycostOption allows management of the mutation configuration using functional options.
type dailycostOption func(*DailyCostMutation)

// newDailyCostMutation creates new mutation for the DailyCost entity.
func newDailyCostMutation(c config, op Op, opts ...dailycostOption) *DailyCostMutation {
	m := &DailyCostMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyCost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyCostID sets the ID field of the mutation.
func withDailyCostID(id string) dailycostOption {
	return func(m *DailyCostMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyCost
		)
		m.oldValue = func(ctx context.Context) (*DailyCost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyCost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyCost sets the old DailyCost of the mutation.
func withDailyCost(node *DailyCost) dailycostOption {
	return func(m *DailyCostMutation) {
		m.oldValue = func(context.Context) (*DailyCost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyCostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyCostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DailyCost entities.
func (m *DailyCostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyCostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyCostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyCost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTotalUsd sets the "total_usd" field.
func (m *DailyCostMutation) SetTotalUsd(f float64) {
	m.total_usd = &f
	m.addtotal_usd = nil
}

// TotalUsd returns the value of the "total_usd" field in the mutation.
func (m *DailyCostMutation) TotalUsd() (r float64, exists bool) {
	v := m.total_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalUsd returns the old "total_usd" field's value of the DailyCost entity.
// If the DailyCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyCostMutation) OldTotalUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalUsd: %w", err)
	}
	return oldValue.TotalUsd, nil
}

// AddTotalUsd adds f to the "total_usd" field.
func (m *DailyCostMutation) AddTotalUsd(f float64) {
	if m.addtotal_usd != nil {
		*m.addtotal_usd += f
	} else {
		m.addtotal_usd = &f
	}
}

// AddedTotalUsd returns the value that was added to the "total_usd" field in this mutation.
func (m *DailyCostMutation) AddedTotalUsd() (r float64, exists bool) {
	v := m.addtotal_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalUsd resets all changes to the "total_usd" field.
func (m *DailyCostMutation) ResetTotalUsd() {
	m.total_usd = nil
	m.addtotal_usd = nil
}

// SetTranscriptionUsd sets the "transcription_usd" field.
func (m *DailyCostMutation) SetTranscriptionUsd(f float64) {
	m.transcription_usd = &f
	m.addtranscription_usd = nil
}

// TranscriptionUsd returns the value of the "transcription_usd" field in the mutation.
func (m *DailyCostMutation) TranscriptionUsd() (r float64, exists bool) {
	v := m.transcription_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptionUsd returns the old "transcription_usd" field's value of the DailyCost entity.
// If the DailyCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyCostMutation) OldTranscriptionUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptionUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptionUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptionUsd: %w", err)
	}
	return oldValue.TranscriptionUsd, nil
}

// AddTranscriptionUsd adds f to the "transcription_usd" field.
func (m *DailyCostMutation) AddTranscriptionUsd(f float64) {
	if m.addtranscription_usd != nil {
		*m.addtranscription_usd += f
	} else {
		m.addtranscription_usd = &f
	}
}

// AddedTranscriptionUsd returns the value that was added to the "transcription_usd" field in this mutation.
func (m *DailyCostMutation) AddedTranscriptionUsd() (r float64, exists bool) {
	v := m.addtranscription_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetTranscriptionUsd resets all changes to the "transcription_usd" field.
func (m *DailyCostMutation) ResetTranscriptionUsd() {
	m.transcription_usd = nil
	m.addtranscription_usd = nil
}

// SetLlmUsd sets the "llm_usd" field.
func (m *DailyCostMutation) SetLlmUsd(f float64) {
	m.llm_usd = &f
	m.addllm_usd = nil
}

// LlmUsd returns the value of the "llm_usd" field in the mutation.
func (m *DailyCostMutation) LlmUsd() (r float64, exists bool) {
	v := m.llm_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmUsd returns the old "llm_usd" field's value of the DailyCost entity.
// If the DailyCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyCostMutation) OldLlmUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmUsd: %w", err)
	}
	return oldValue.LlmUsd, nil
}

// AddLlmUsd adds f to the "llm_usd" field.
func (m *DailyCostMutation) AddLlmUsd(f float64) {
	if m.addllm_usd != nil {
		*m.addllm_usd += f
	} else {
		m.addllm_usd = &f
	}
}

// AddedLlmUsd returns the value that was added to the "llm_usd" field in this mutation.
func (m *DailyCostMutation) AddedLlmUsd() (r float64, exists bool) {
	v := m.addllm_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetLlmUsd resets all changes to the "llm_usd" field.
func (m *DailyCostMutation) ResetLlmUsd() {
	m.llm_usd = nil
	m.addllm_usd = nil
}

// SetOtherUsd sets the "other_usd" field.
func (m *DailyCostMutation) SetOtherUsd(f float64) {
	m.other_usd = &f
	m.addother_usd = nil
}

// OtherUsd returns the value of the "other_usd" field in the mutation.
func (m *DailyCostMutation) OtherUsd() (r float64, exists bool) {
	v := m.other_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldOtherUsd returns the old "other_usd" field's value of the DailyCost entity.
// If the DailyCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyCostMutation) OldOtherUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOtherUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOtherUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOtherUsd: %w", err)
	}
	return oldValue.OtherUsd, nil
}

// AddOtherUsd adds f to the "other_usd" field.
func (m *DailyCostMutation) AddOtherUsd(f float64) {
	if m.addother_usd != nil {
		*m.addother_usd += f
	} else {
		m.addother_usd = &f
	}
}

// AddedOtherUsd returns the value that was added to the "other_usd" field in this mutation.
func (m *DailyCostMutation) AddedOtherUsd() (r float64, exists bool) {
	v := m.addother_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetOtherUsd resets all changes to the "other_usd" field.
func (m *DailyCostMutation) ResetOtherUsd() {
	m.other_usd = nil
	m.addother_usd = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DailyCostMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DailyCostMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DailyCost entity.
// If the DailyCost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyCostMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DailyCostMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DailyCostMutation builder.
func (m *DailyCostMutation) Where(ps ...predicate.DailyCost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyCostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyCostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyCost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyCostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyCostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyCost).
func (m *DailyCostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyCostMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.total_usd != nil {
		fields = append(fields, dailycost.FieldTotalUsd)
	}
	if m.transcription_usd != nil {
		fields = append(fields, dailycost.FieldTranscriptionUsd)
	}
	if m.llm_usd != nil {
		fields = append(fields, dailycost.FieldLlmUsd)
	}
	if m.other_usd != nil {
		fields = append(fields, dailycost.FieldOtherUsd)
	}
	if m.updated_at != nil {
		fields = append(fields, dailycost.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyCostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailycost.FieldTotalUsd:
		return m.TotalUsd()
	case dailycost.FieldTranscriptionUsd:
		return m.TranscriptionUsd()
	case dailycost.FieldLlmUsd:
		return m.LlmUsd()
	case dailycost.FieldOtherUsd:
		return m.OtherUsd()
	case dailycost.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyCostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailycost.FieldTotalUsd:
		return m.OldTotalUsd(ctx)
	case dailycost.FieldTranscriptionUsd:
		return m.OldTranscriptionUsd(ctx)
	case dailycost.FieldLlmUsd:
		return m.OldLlmUsd(ctx)
	case dailycost.FieldOtherUsd:
		return m.OldOtherUsd(ctx)
	case dailycost.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DailyCost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyCostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailycost.FieldTotalUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalUsd(v)
		return nil
	case dailycost.FieldTranscriptionUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptionUsd(v)
		return nil
	case dailycost.FieldLlmUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmUsd(v)
		return nil
	case dailycost.FieldOtherUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOtherUsd(v)
		return nil
	case dailycost.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DailyCost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyCostMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_usd != nil {
		fields = append(fields, dailycost.FieldTotalUsd)
	}
	if m.addtranscription_usd != nil {
		fields = append(fields, dailycost.FieldTranscriptionUsd)
	}
	if m.addllm_usd != nil {
		fields = append(fields, dailycost.FieldLlmUsd)
	}
	if m.addother_usd != nil {
		fields = append(fields, dailycost.FieldOtherUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyCostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailycost.FieldTotalUsd:
		return m.AddedTotalUsd()
	case dailycost.FieldTranscriptionUsd:
		return m.AddedTranscriptionUsd()
	case dailycost.FieldLlmUsd:
		return m.AddedLlmUsd()
	case dailycost.FieldOtherUsd:
		return m.AddedOtherUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyCostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailycost.FieldTotalUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalUsd(v)
		return nil
	case dailycost.FieldTranscriptionUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTranscriptionUsd(v)
		return nil
	case dailycost.FieldLlmUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLlmUsd(v)
		return nil
	case dailycost.FieldOtherUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOtherUsd(v)
		return nil
	}
	return fmt.Errorf("unknown DailyCost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyCostMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyCostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyCostMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyCost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyCostMutation) ResetField(name string) error {
	switch name {
	case dailycost.FieldTotalUsd:
		m.ResetTotalUsd()
		return nil
	case dailycost.FieldTranscriptionUsd:
		m.ResetTranscriptionUsd()
		return nil
	case dailycost.FieldLlmUsd:
		m.ResetLlmUsd()
		return nil
	case dailycost.FieldOtherUsd:
		m.ResetOtherUsd()
		return nil
	case dailycost.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DailyCost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyCostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyCostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyCostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyCostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyCostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyCostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyCostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DailyCost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyCostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DailyCost edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	agent                    *job.Agent
	job_type                 *job.JobType
	inputs                   *map[string]interface{}
	policy_overrides         *map[string]interface{}
	status                   *job.Status
	retry_count              *int
	addretry_count           *int
	priority                 *job.Priority
	created_by               *string
	video_id                 *string
	video_ids                *[]string
	appendvideo_ids          []string
	last_error_type          *string
	last_error_message       *string
	last_attempt_at          *time.Time
	estimated_quota_usage    *int
	addestimated_quota_usage *int
	estimated_cost_usd       *float64
	addestimated_cost_usd    *float64
	pod_id                   *string
	last_heartbeat_at        *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Job, error)
	predicates               []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgent sets the "agent" field.
func (m *JobMutation) SetAgent(j job.Agent) {
	m.agent = &j
}

// Agent returns the value of the "agent" field in the mutation.
func (m *JobMutation) Agent() (r job.Agent, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAgent(ctx context.Context) (v job.Agent, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *JobMutation) ResetAgent() {
	m.agent = nil
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(jt job.JobType) {
	m.job_type = &jt
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r job.JobType, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v job.JobType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetInputs sets the "inputs" field.
func (m *JobMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *JobMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ResetInputs resets all changes to the "inputs" field.
func (m *JobMutation) ResetInputs() {
	m.inputs = nil
}

// SetPolicyOverrides sets the "policy_overrides" field.
func (m *JobMutation) SetPolicyOverrides(value map[string]interface{}) {
	m.policy_overrides = &value
}

// PolicyOverrides returns the value of the "policy_overrides" field in the mutation.
func (m *JobMutation) PolicyOverrides() (r map[string]interface{}, exists bool) {
	v := m.policy_overrides
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyOverrides returns the old "policy_overrides" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPolicyOverrides(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyOverrides is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyOverrides requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyOverrides: %w", err)
	}
	return oldValue.PolicyOverrides, nil
}

// ClearPolicyOverrides clears the value of the "policy_overrides" field.
func (m *JobMutation) ClearPolicyOverrides() {
	m.policy_overrides = nil
	m.clearedFields[job.FieldPolicyOverrides] = struct{}{}
}

// PolicyOverridesCleared returns if the "policy_overrides" field was cleared in this mutation.
func (m *JobMutation) PolicyOverridesCleared() bool {
	_, ok := m.clearedFields[job.FieldPolicyOverrides]
	return ok
}

// ResetPolicyOverrides resets all changes to the "policy_overrides" field.
func (m *JobMutation) ResetPolicyOverrides() {
	m.policy_overrides = nil
	delete(m.clearedFields, job.FieldPolicyOverrides)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *JobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *JobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *JobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *JobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *JobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(j job.Priority) {
	m.priority = &j
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r job.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v job.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *JobMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *JobMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *JobMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetVideoID sets the "video_id" field.
func (m *JobMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *JobMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldVideoID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ClearVideoID clears the value of the "video_id" field.
func (m *JobMutation) ClearVideoID() {
	m.video_id = nil
	m.clearedFields[job.FieldVideoID] = struct{}{}
}

// VideoIDCleared returns if the "video_id" field was cleared in this mutation.
func (m *JobMutation) VideoIDCleared() bool {
	_, ok := m.clearedFields[job.FieldVideoID]
	return ok
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *JobMutation) ResetVideoID() {
	m.video_id = nil
	delete(m.clearedFields, job.FieldVideoID)
}

// SetVideoIds sets the "video_ids" field.
func (m *JobMutation) SetVideoIds(s []string) {
	m.video_ids = &s
	m.appendvideo_ids = nil
}

// VideoIds returns the value of the "video_ids" field in the mutation.
func (m *JobMutation) VideoIds() (r []string, exists bool) {
	v := m.video_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoIds returns the old "video_ids" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldVideoIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoIds: %w", err)
	}
	return oldValue.VideoIds, nil
}

// AppendVideoIds adds s to the "video_ids" field.
func (m *JobMutation) AppendVideoIds(s []string) {
	m.appendvideo_ids = append(m.appendvideo_ids, s...)
}

// AppendedVideoIds returns the list of values that were appended to the "video_ids" field in this mutation.
func (m *JobMutation) AppendedVideoIds() ([]string, bool) {
	if len(m.appendvideo_ids) == 0 {
		return nil, false
	}
	return m.appendvideo_ids, true
}

// ClearVideoIds clears the value of the "video_ids" field.
func (m *JobMutation) ClearVideoIds() {
	m.video_ids = nil
	m.appendvideo_ids = nil
	m.clearedFields[job.FieldVideoIds] = struct{}{}
}

// VideoIdsCleared returns if the "video_ids" field was cleared in this mutation.
func (m *JobMutation) VideoIdsCleared() bool {
	_, ok := m.clearedFields[job.FieldVideoIds]
	return ok
}

// ResetVideoIds resets all changes to the "video_ids" field.
func (m *JobMutation) ResetVideoIds() {
	m.video_ids = nil
	m.appendvideo_ids = nil
	delete(m.clearedFields, job.FieldVideoIds)
}

// SetLastErrorType sets the "last_error_type" field.
func (m *JobMutation) SetLastErrorType(s string) {
	m.last_error_type = &s
}

// LastErrorType returns the value of the "last_error_type" field in the mutation.
func (m *JobMutation) LastErrorType() (r string, exists bool) {
	v := m.last_error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorType returns the old "last_error_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastErrorType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorType: %w", err)
	}
	return oldValue.LastErrorType, nil
}

// ClearLastErrorType clears the value of the "last_error_type" field.
func (m *JobMutation) ClearLastErrorType() {
	m.last_error_type = nil
	m.clearedFields[job.FieldLastErrorType] = struct{}{}
}

// LastErrorTypeCleared returns if the "last_error_type" field was cleared in this mutation.
func (m *JobMutation) LastErrorTypeCleared() bool {
	_, ok := m.clearedFields[job.FieldLastErrorType]
	return ok
}

// ResetLastErrorType resets all changes to the "last_error_type" field.
func (m *JobMutation) ResetLastErrorType() {
	m.last_error_type = nil
	delete(m.clearedFields, job.FieldLastErrorType)
}

// SetLastErrorMessage sets the "last_error_message" field.
func (m *JobMutation) SetLastErrorMessage(s string) {
	m.last_error_message = &s
}

// LastErrorMessage returns the value of the "last_error_message" field in the mutation.
func (m *JobMutation) LastErrorMessage() (r string, exists bool) {
	v := m.last_error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldLastErrorMessage returns the old "last_error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastErrorMessage: %w", err)
	}
	return oldValue.LastErrorMessage, nil
}

// ClearLastErrorMessage clears the value of the "last_error_message" field.
func (m *JobMutation) ClearLastErrorMessage() {
	m.last_error_message = nil
	m.clearedFields[job.FieldLastErrorMessage] = struct{}{}
}

// LastErrorMessageCleared returns if the "last_error_message" field was cleared in this mutation.
func (m *JobMutation) LastErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldLastErrorMessage]
	return ok
}

// ResetLastErrorMessage resets all changes to the "last_error_message" field.
func (m *JobMutation) ResetLastErrorMessage() {
	m.last_error_message = nil
	delete(m.clearedFields, job.FieldLastErrorMessage)
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *JobMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *JobMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (m *JobMutation) ClearLastAttemptAt() {
	m.last_attempt_at = nil
	m.clearedFields[job.FieldLastAttemptAt] = struct{}{}
}

// LastAttemptAtCleared returns if the "last_attempt_at" field was cleared in this mutation.
func (m *JobMutation) LastAttemptAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastAttemptAt]
	return ok
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *JobMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
	delete(m.clearedFields, job.FieldLastAttemptAt)
}

// SetEstimatedQuotaUsage sets the "estimated_quota_usage" field.
func (m *JobMutation) SetEstimatedQuotaUsage(i int) {
	m.estimated_quota_usage = &i
	m.addestimated_quota_usage = nil
}

// EstimatedQuotaUsage returns the value of the "estimated_quota_usage" field in the mutation.
func (m *JobMutation) EstimatedQuotaUsage() (r int, exists bool) {
	v := m.estimated_quota_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedQuotaUsage returns the old "estimated_quota_usage" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEstimatedQuotaUsage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedQuotaUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedQuotaUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedQuotaUsage: %w", err)
	}
	return oldValue.EstimatedQuotaUsage, nil
}

// AddEstimatedQuotaUsage adds i to the "estimated_quota_usage" field.
func (m *JobMutation) AddEstimatedQuotaUsage(i int) {
	if m.addestimated_quota_usage != nil {
		*m.addestimated_quota_usage += i
	} else {
		m.addestimated_quota_usage = &i
	}
}

// AddedEstimatedQuotaUsage returns the value that was added to the "estimated_quota_usage" field in this mutation.
func (m *JobMutation) AddedEstimatedQuotaUsage() (r int, exists bool) {
	v := m.addestimated_quota_usage
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedQuotaUsage clears the value of the "estimated_quota_usage" field.
func (m *JobMutation) ClearEstimatedQuotaUsage() {
	m.estimated_quota_usage = nil
	m.addestimated_quota_usage = nil
	m.clearedFields[job.FieldEstimatedQuotaUsage] = struct{}{}
}

// EstimatedQuotaUsageCleared returns if the "estimated_quota_usage" field was cleared in this mutation.
func (m *JobMutation) EstimatedQuotaUsageCleared() bool {
	_, ok := m.clearedFields[job.FieldEstimatedQuotaUsage]
	return ok
}

// ResetEstimatedQuotaUsage resets all changes to the "estimated_quota_usage" field.
func (m *JobMutation) ResetEstimatedQuotaUsage() {
	m.estimated_quota_usage = nil
	m.addestimated_quota_usage = nil
	delete(m.clearedFields, job.FieldEstimatedQuotaUsage)
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (m *JobMutation) SetEstimatedCostUsd(f float64) {
	m.estimated_cost_usd = &f
	m.addestimated_cost_usd = nil
}

// EstimatedCostUsd returns the value of the "estimated_cost_usd" field in the mutation.
func (m *JobMutation) EstimatedCostUsd() (r float64, exists bool) {
	v := m.estimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCostUsd returns the old "estimated_cost_usd" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEstimatedCostUsd(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCostUsd: %w", err)
	}
	return oldValue.EstimatedCostUsd, nil
}

// AddEstimatedCostUsd adds f to the "estimated_cost_usd" field.
func (m *JobMutation) AddEstimatedCostUsd(f float64) {
	if m.addestimated_cost_usd != nil {
		*m.addestimated_cost_usd += f
	} else {
		m.addestimated_cost_usd = &f
	}
}

// AddedEstimatedCostUsd returns the value that was added to the "estimated_cost_usd" field in this mutation.
func (m *JobMutation) AddedEstimatedCostUsd() (r float64, exists bool) {
	v := m.addestimated_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ClearEstimatedCostUsd clears the value of the "estimated_cost_usd" field.
func (m *JobMutation) ClearEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
	m.clearedFields[job.FieldEstimatedCostUsd] = struct{}{}
}

// EstimatedCostUsdCleared returns if the "estimated_cost_usd" field was cleared in this mutation.
func (m *JobMutation) EstimatedCostUsdCleared() bool {
	_, ok := m.clearedFields[job.FieldEstimatedCostUsd]
	return ok
}

// ResetEstimatedCostUsd resets all changes to the "estimated_cost_usd" field.
func (m *JobMutation) ResetEstimatedCostUsd() {
	m.estimated_cost_usd = nil
	m.addestimated_cost_usd = nil
	delete(m.clearedFields, job.FieldEstimatedCostUsd)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *JobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *JobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *JobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[job.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *JobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, job.FieldLastHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.agent != nil {
		fields = append(fields, job.FieldAgent)
	}
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.inputs != nil {
		fields = append(fields, job.FieldInputs)
	}
	if m.policy_overrides != nil {
		fields = append(fields, job.FieldPolicyOverrides)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.created_by != nil {
		fields = append(fields, job.FieldCreatedBy)
	}
	if m.video_id != nil {
		fields = append(fields, job.FieldVideoID)
	}
	if m.video_ids != nil {
		fields = append(fields, job.FieldVideoIds)
	}
	if m.last_error_type != nil {
		fields = append(fields, job.FieldLastErrorType)
	}
	if m.last_error_message != nil {
		fields = append(fields, job.FieldLastErrorMessage)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, job.FieldLastAttemptAt)
	}
	if m.estimated_quota_usage != nil {
		fields = append(fields, job.FieldEstimatedQuotaUsage)
	}
	if m.estimated_cost_usd != nil {
		fields = append(fields, job.FieldEstimatedCostUsd)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAgent:
		return m.Agent()
	case job.FieldJobType:
		return m.JobType()
	case job.FieldInputs:
		return m.Inputs()
	case job.FieldPolicyOverrides:
		return m.PolicyOverrides()
	case job.FieldStatus:
		return m.Status()
	case job.FieldRetryCount:
		return m.RetryCount()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldCreatedBy:
		return m.CreatedBy()
	case job.FieldVideoID:
		return m.VideoID()
	case job.FieldVideoIds:
		return m.VideoIds()
	case job.FieldLastErrorType:
		return m.LastErrorType()
	case job.FieldLastErrorMessage:
		return m.LastErrorMessage()
	case job.FieldLastAttemptAt:
		return m.LastAttemptAt()
	case job.FieldEstimatedQuotaUsage:
		return m.EstimatedQuotaUsage()
	case job.FieldEstimatedCostUsd:
		return m.EstimatedCostUsd()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldAgent:
		return m.OldAgent(ctx)
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldInputs:
		return m.OldInputs(ctx)
	case job.FieldPolicyOverrides:
		return m.OldPolicyOverrides(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case job.FieldVideoID:
		return m.OldVideoID(ctx)
	case job.FieldVideoIds:
		return m.OldVideoIds(ctx)
	case job.FieldLastErrorType:
		return m.OldLastErrorType(ctx)
	case job.FieldLastErrorMessage:
		return m.OldLastErrorMessage(ctx)
	case job.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	case job.FieldEstimatedQuotaUsage:
		return m.OldEstimatedQuotaUsage(ctx)
	case job.FieldEstimatedCostUsd:
		return m.OldEstimatedCostUsd(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldAgent:
		v, ok := value.(job.Agent)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case job.FieldJobType:
		v, ok := value.(job.JobType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case job.FieldPolicyOverrides:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyOverrides(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(job.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case job.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case job.FieldVideoIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoIds(v)
		return nil
	case job.FieldLastErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorType(v)
		return nil
	case job.FieldLastErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastErrorMessage(v)
		return nil
	case job.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	case job.FieldEstimatedQuotaUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedQuotaUsage(v)
		return nil
	case job.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCostUsd(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.addestimated_quota_usage != nil {
		fields = append(fields, job.FieldEstimatedQuotaUsage)
	}
	if m.addestimated_cost_usd != nil {
		fields = append(fields, job.FieldEstimatedCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldRetryCount:
		return m.AddedRetryCount()
	case job.FieldEstimatedQuotaUsage:
		return m.AddedEstimatedQuotaUsage()
	case job.FieldEstimatedCostUsd:
		return m.AddedEstimatedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case job.FieldEstimatedQuotaUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedQuotaUsage(v)
		return nil
	case job.FieldEstimatedCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldPolicyOverrides) {
		fields = append(fields, job.FieldPolicyOverrides)
	}
	if m.FieldCleared(job.FieldVideoID) {
		fields = append(fields, job.FieldVideoID)
	}
	if m.FieldCleared(job.FieldVideoIds) {
		fields = append(fields, job.FieldVideoIds)
	}
	if m.FieldCleared(job.FieldLastErrorType) {
		fields = append(fields, job.FieldLastErrorType)
	}
	if m.FieldCleared(job.FieldLastErrorMessage) {
		fields = append(fields, job.FieldLastErrorMessage)
	}
	if m.FieldCleared(job.FieldLastAttemptAt) {
		fields = append(fields, job.FieldLastAttemptAt)
	}
	if m.FieldCleared(job.FieldEstimatedQuotaUsage) {
		fields = append(fields, job.FieldEstimatedQuotaUsage)
	}
	if m.FieldCleared(job.FieldEstimatedCostUsd) {
		fields = append(fields, job.FieldEstimatedCostUsd)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	if m.FieldCleared(job.FieldLastHeartbeatAt) {
		fields = append(fields, job.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldPolicyOverrides:
		m.ClearPolicyOverrides()
		return nil
	case job.FieldVideoID:
		m.ClearVideoID()
		return nil
	case job.FieldVideoIds:
		m.ClearVideoIds()
		return nil
	case job.FieldLastErrorType:
		m.ClearLastErrorType()
		return nil
	case job.FieldLastErrorMessage:
		m.ClearLastErrorMessage()
		return nil
	case job.FieldLastAttemptAt:
		m.ClearLastAttemptAt()
		return nil
	case job.FieldEstimatedQuotaUsage:
		m.ClearEstimatedQuotaUsage()
		return nil
	case job.FieldEstimatedCostUsd:
		m.ClearEstimatedCostUsd()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldAgent:
		m.ResetAgent()
		return nil
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldInputs:
		m.ResetInputs()
		return nil
	case job.FieldPolicyOverrides:
		m.ResetPolicyOverrides()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case job.FieldVideoID:
		m.ResetVideoID()
		return nil
	case job.FieldVideoIds:
		m.ResetVideoIds()
		return nil
	case job.FieldLastErrorType:
		m.ResetLastErrorType()
		return nil
	case job.FieldLastErrorMessage:
		m.ResetLastErrorMessage()
		return nil
	case job.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	case job.FieldEstimatedQuotaUsage:
		m.ResetEstimatedQuotaUsage()
		return nil
	case job.FieldEstimatedCostUsd:
		m.ResetEstimatedCostUsd()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// SummaryMutation represents an operation that mutates the Summary nodes in the graph.
type SummaryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	bullets            *[]string
	appendbullets      []string
	key_concepts       *[]string
	appendkey_concepts []string
	prompt_id          *string
	prompt_version     *string
	input_tokens       *int
	addinput_tokens    *int
	output_tokens      *int
	addoutput_tokens   *int
	transcript_doc_ref *string
	zep_doc_id         *string
	rag_refs           *[]schema.RAGRef
	appendrag_refs     []schema.RAGRef
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Summary, error)
	predicates         []predicate.Summary
}

var _ ent.Mutation = (*SummaryMutation)(nil)

// summaryOption allows management of the mutation configuration using functional options.
type summaryOption func(*SummaryMutation)

// newSummaryMutation creates new mutation for the Summary entity.
func newSummaryMutation(c config, op Op, opts ...summaryOption) *SummaryMutation {
	m := &SummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryID sets the ID field of the mutation.
func withSummaryID(id string) summaryOption {
	return func(m *SummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *Summary
		)
		m.oldValue = func(ctx context.Context) (*Summary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Summary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummary sets the old Summary of the mutation.
func withSummary(node *Summary) summaryOption {
	return func(m *SummaryMutation) {
		m.oldValue = func(context.Context) (*Summary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Summary entities.
func (m *SummaryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Summary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBullets sets the "bullets" field.
func (m *SummaryMutation) SetBullets(s []string) {
	m.bullets = &s
	m.appendbullets = nil
}

// Bullets returns the value of the "bullets" field in the mutation.
func (m *SummaryMutation) Bullets() (r []string, exists bool) {
	v := m.bullets
	if v == nil {
		return
	}
	return *v, true
}

// OldBullets returns the old "bullets" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldBullets(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBullets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBullets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBullets: %w", err)
	}
	return oldValue.Bullets, nil
}

// AppendBullets adds s to the "bullets" field.
func (m *SummaryMutation) AppendBullets(s []string) {
	m.appendbullets = append(m.appendbullets, s...)
}

// AppendedBullets returns the list of values that were appended to the "bullets" field in this mutation.
func (m *SummaryMutation) AppendedBullets() ([]string, bool) {
	if len(m.appendbullets) == 0 {
		return nil, false
	}
	return m.appendbullets, true
}

// ResetBullets resets all changes to the "bullets" field.
func (m *SummaryMutation) ResetBullets() {
	m.bullets = nil
	m.appendbullets = nil
}

// SetKeyConcepts sets the "key_concepts" field.
func (m *SummaryMutation) SetKeyConcepts(s []string) {
	m.key_concepts = &s
	m.appendkey_concepts = nil
}

// KeyConcepts returns the value of the "key_concepts" field in the mutation.
func (m *SummaryMutation) KeyConcepts() (r []string, exists bool) {
	v := m.key_concepts
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyConcepts returns the old "key_concepts" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldKeyConcepts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyConcepts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyConcepts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyConcepts: %w", err)
	}
	return oldValue.KeyConcepts, nil
}

// AppendKeyConcepts adds s to the "key_concepts" field.
func (m *SummaryMutation) AppendKeyConcepts(s []string) {
	m.appendkey_concepts = append(m.appendkey_concepts, s...)
}

// AppendedKeyConcepts returns the list of values that were appended to the "key_concepts" field in this mutation.
func (m *SummaryMutation) AppendedKeyConcepts() ([]string, bool) {
	if len(m.appendkey_concepts) == 0 {
		return nil, false
	}
	return m.appendkey_concepts, true
}

// ResetKeyConcepts resets all changes to the "key_concepts" field.
func (m *SummaryMutation) ResetKeyConcepts() {
	m.key_concepts = nil
	m.appendkey_concepts = nil
}

// SetPromptID sets the "prompt_id" field.
func (m *SummaryMutation) SetPromptID(s string) {
	m.prompt_id = &s
}

// PromptID returns the value of the "prompt_id" field in the mutation.
func (m *SummaryMutation) PromptID() (r string, exists bool) {
	v := m.prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptID returns the old "prompt_id" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldPromptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptID: %w", err)
	}
	return oldValue.PromptID, nil
}

// ResetPromptID resets all changes to the "prompt_id" field.
func (m *SummaryMutation) ResetPromptID() {
	m.prompt_id = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *SummaryMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *SummaryMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *SummaryMutation) ResetPromptVersion() {
	m.prompt_version = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *SummaryMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *SummaryMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *SummaryMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *SummaryMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *SummaryMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *SummaryMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *SummaryMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *SummaryMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *SummaryMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *SummaryMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTranscriptDocRef sets the "transcript_doc_ref" field.
func (m *SummaryMutation) SetTranscriptDocRef(s string) {
	m.transcript_doc_ref = &s
}

// TranscriptDocRef returns the value of the "transcript_doc_ref" field in the mutation.
func (m *SummaryMutation) TranscriptDocRef() (r string, exists bool) {
	v := m.transcript_doc_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptDocRef returns the old "transcript_doc_ref" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldTranscriptDocRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptDocRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptDocRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptDocRef: %w", err)
	}
	return oldValue.TranscriptDocRef, nil
}

// ResetTranscriptDocRef resets all changes to the "transcript_doc_ref" field.
func (m *SummaryMutation) ResetTranscriptDocRef() {
	m.transcript_doc_ref = nil
}

// SetZepDocID sets the "zep_doc_id" field.
func (m *SummaryMutation) SetZepDocID(s string) {
	m.zep_doc_id = &s
}

// ZepDocID returns the value of the "zep_doc_id" field in the mutation.
func (m *SummaryMutation) ZepDocID() (r string, exists bool) {
	v := m.zep_doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldZepDocID returns the old "zep_doc_id" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldZepDocID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZepDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZepDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZepDocID: %w", err)
	}
	return oldValue.ZepDocID, nil
}

// ClearZepDocID clears the value of the "zep_doc_id" field.
func (m *SummaryMutation) ClearZepDocID() {
	m.zep_doc_id = nil
	m.clearedFields[summary.FieldZepDocID] = struct{}{}
}

// ZepDocIDCleared returns if the "zep_doc_id" field was cleared in this mutation.
func (m *SummaryMutation) ZepDocIDCleared() bool {
	_, ok := m.clearedFields[summary.FieldZepDocID]
	return ok
}

// ResetZepDocID resets all changes to the "zep_doc_id" field.
func (m *SummaryMutation) ResetZepDocID() {
	m.zep_doc_id = nil
	delete(m.clearedFields, summary.FieldZepDocID)
}

// SetRagRefs sets the "rag_refs" field.
func (m *SummaryMutation) SetRagRefs(sr []schema.RAGRef) {
	m.rag_refs = &sr
	m.appendrag_refs = nil
}

// RagRefs returns the value of the "rag_refs" field in the mutation.
func (m *SummaryMutation) RagRefs() (r []schema.RAGRef, exists bool) {
	v := m.rag_refs
	if v == nil {
		return
	}
	return *v, true
}

// OldRagRefs returns the old "rag_refs" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldRagRefs(ctx context.Context) (v []schema.RAGRef, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRagRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRagRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRagRefs: %w", err)
	}
	return oldValue.RagRefs, nil
}

// AppendRagRefs adds sr to the "rag_refs" field.
func (m *SummaryMutation) AppendRagRefs(sr []schema.RAGRef) {
	m.appendrag_refs = append(m.appendrag_refs, sr...)
}

// AppendedRagRefs returns the list of values that were appended to the "rag_refs" field in this mutation.
func (m *SummaryMutation) AppendedRagRefs() ([]schema.RAGRef, bool) {
	if len(m.appendrag_refs) == 0 {
		return nil, false
	}
	return m.appendrag_refs, true
}

// ClearRagRefs clears the value of the "rag_refs" field.
func (m *SummaryMutation) ClearRagRefs() {
	m.rag_refs = nil
	m.appendrag_refs = nil
	m.clearedFields[summary.FieldRagRefs] = struct{}{}
}

// RagRefsCleared returns if the "rag_refs" field was cleared in this mutation.
func (m *SummaryMutation) RagRefsCleared() bool {
	_, ok := m.clearedFields[summary.FieldRagRefs]
	return ok
}

// ResetRagRefs resets all changes to the "rag_refs" field.
func (m *SummaryMutation) ResetRagRefs() {
	m.rag_refs = nil
	m.appendrag_refs = nil
	delete(m.clearedFields, summary.FieldRagRefs)
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SummaryMutation builder.
func (m *SummaryMutation) Where(ps ...predicate.Summary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Summary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Summary).
func (m *SummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.bullets != nil {
		fields = append(fields, summary.FieldBullets)
	}
	if m.key_concepts != nil {
		fields = append(fields, summary.FieldKeyConcepts)
	}
	if m.prompt_id != nil {
		fields = append(fields, summary.FieldPromptID)
	}
	if m.prompt_version != nil {
		fields = append(fields, summary.FieldPromptVersion)
	}
	if m.input_tokens != nil {
		fields = append(fields, summary.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, summary.FieldOutputTokens)
	}
	if m.transcript_doc_ref != nil {
		fields = append(fields, summary.FieldTranscriptDocRef)
	}
	if m.zep_doc_id != nil {
		fields = append(fields, summary.FieldZepDocID)
	}
	if m.rag_refs != nil {
		fields = append(fields, summary.FieldRagRefs)
	}
	if m.created_at != nil {
		fields = append(fields, summary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldBullets:
		return m.Bullets()
	case summary.FieldKeyConcepts:
		return m.KeyConcepts()
	case summary.FieldPromptID:
		return m.PromptID()
	case summary.FieldPromptVersion:
		return m.PromptVersion()
	case summary.FieldInputTokens:
		return m.InputTokens()
	case summary.FieldOutputTokens:
		return m.OutputTokens()
	case summary.FieldTranscriptDocRef:
		return m.TranscriptDocRef()
	case summary.FieldZepDocID:
		return m.ZepDocID()
	case summary.FieldRagRefs:
		return m.RagRefs()
	case summary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summary.FieldBullets:
		return m.OldBullets(ctx)
	case summary.FieldKeyConcepts:
		return m.OldKeyConcepts(ctx)
	case summary.FieldPromptID:
		return m.OldPromptID(ctx)
	case summary.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case summary.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case summary.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case summary.FieldTranscriptDocRef:
		return m.OldTranscriptDocRef(ctx)
	case summary.FieldZepDocID:
		return m.OldZepDocID(ctx)
	case summary.FieldRagRefs:
		return m.OldRagRefs(ctx)
	case summary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Summary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summary.FieldBullets:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBullets(v)
		return nil
	case summary.FieldKeyConcepts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyConcepts(v)
		return nil
	case summary.FieldPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptID(v)
		return nil
	case summary.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case summary.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case summary.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case summary.FieldTranscriptDocRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptDocRef(v)
		return nil
	case summary.FieldZepDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZepDocID(v)
		return nil
	case summary.FieldRagRefs:
		v, ok := value.([]schema.RAGRef)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRagRefs(v)
		return nil
	case summary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, summary.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, summary.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldInputTokens:
		return m.AddedInputTokens()
	case summary.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case summary.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case summary.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Summary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summary.FieldZepDocID) {
		fields = append(fields, summary.FieldZepDocID)
	}
	if m.FieldCleared(summary.FieldRagRefs) {
		fields = append(fields, summary.FieldRagRefs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryMutation) ClearField(name string) error {
	switch name {
	case summary.FieldZepDocID:
		m.ClearZepDocID()
		return nil
	case summary.FieldRagRefs:
		m.ClearRagRefs()
		return nil
	}
	return fmt.Errorf("unknown Summary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryMutation) ResetField(name string) error {
	switch name {
	case summary.FieldBullets:
		m.ResetBullets()
		return nil
	case summary.FieldKeyConcepts:
		m.ResetKeyConcepts()
		return nil
	case summary.FieldPromptID:
		m.ResetPromptID()
		return nil
	case summary.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case summary.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case summary.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case summary.FieldTranscriptDocRef:
		m.ResetTranscriptDocRef()
		return nil
	case summary.FieldZepDocID:
		m.ResetZepDocID()
		return nil
	case summary.FieldRagRefs:
		m.ResetRagRefs()
		return nil
	case summary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Summary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Summary edge %s", name)
}

// TranscriptMutation represents an operation that mutates the Transcript nodes in the graph.
type TranscriptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	transcript_doc_ref  *string
	transcript_json_ref *string
	digest              *string
	cost_usd            *float64
	addcost_usd         *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Transcript, error)
	predicates          []predicate.Transcript
}

var _ ent.Mutation = (*TranscriptMutation)(nil)

// transcriptOption allows management of the mutation configuration using functional options.
type transcriptOption func(*TranscriptMutation)

// newTranscriptMutation creates new mutation for the Transcript entity.
func newTranscriptMutation(c config, op Op, opts ...transcriptOption) *TranscriptMutation {
	m := &TranscriptMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscript,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptID sets the ID field of the mutation.
func withTranscriptID(id string) transcriptOption {
	return func(m *TranscriptMutation) {
		var (
			err   error
			once  sync.Once
			value *Transcript
		)
		m.oldValue = func(ctx context.Context) (*Transcript, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transcript.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscript sets the old Transcript of the mutation.
func withTranscript(node *Transcript) transcriptOption {
	return func(m *TranscriptMutation) {
		m.oldValue = func(context.Context) (*Transcript, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transcript entities.
func (m *TranscriptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transcript.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTranscriptDocRef sets the "transcript_doc_ref" field.
func (m *TranscriptMutation) SetTranscriptDocRef(s string) {
	m.transcript_doc_ref = &s
}

// TranscriptDocRef returns the value of the "transcript_doc_ref" field in the mutation.
func (m *TranscriptMutation) TranscriptDocRef() (r string, exists bool) {
	v := m.transcript_doc_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptDocRef returns the old "transcript_doc_ref" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTranscriptDocRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptDocRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptDocRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptDocRef: %w", err)
	}
	return oldValue.TranscriptDocRef, nil
}

// ResetTranscriptDocRef resets all changes to the "transcript_doc_ref" field.
func (m *TranscriptMutation) ResetTranscriptDocRef() {
	m.transcript_doc_ref = nil
}

// SetTranscriptJSONRef sets the "transcript_json_ref" field.
func (m *TranscriptMutation) SetTranscriptJSONRef(s string) {
	m.transcript_json_ref = &s
}

// TranscriptJSONRef returns the value of the "transcript_json_ref" field in the mutation.
func (m *TranscriptMutation) TranscriptJSONRef() (r string, exists bool) {
	v := m.transcript_json_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptJSONRef returns the old "transcript_json_ref" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldTranscriptJSONRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptJSONRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptJSONRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptJSONRef: %w", err)
	}
	return oldValue.TranscriptJSONRef, nil
}

// ResetTranscriptJSONRef resets all changes to the "transcript_json_ref" field.
func (m *TranscriptMutation) ResetTranscriptJSONRef() {
	m.transcript_json_ref = nil
}

// SetDigest sets the "digest" field.
func (m *TranscriptMutation) SetDigest(s string) {
	m.digest = &s
}

// Digest returns the value of the "digest" field in the mutation.
func (m *TranscriptMutation) Digest() (r string, exists bool) {
	v := m.digest
	if v == nil {
		return
	}
	return *v, true
}

// OldDigest returns the old "digest" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigest: %w", err)
	}
	return oldValue.Digest, nil
}

// ResetDigest resets all changes to the "digest" field.
func (m *TranscriptMutation) ResetDigest() {
	m.digest = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *TranscriptMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *TranscriptMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *TranscriptMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *TranscriptMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *TranscriptMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transcript entity.
// If the Transcript object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TranscriptMutation builder.
func (m *TranscriptMutation) Where(ps ...predicate.Transcript) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transcript, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transcript).
func (m *TranscriptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.transcript_doc_ref != nil {
		fields = append(fields, transcript.FieldTranscriptDocRef)
	}
	if m.transcript_json_ref != nil {
		fields = append(fields, transcript.FieldTranscriptJSONRef)
	}
	if m.digest != nil {
		fields = append(fields, transcript.FieldDigest)
	}
	if m.cost_usd != nil {
		fields = append(fields, transcript.FieldCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, transcript.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldTranscriptDocRef:
		return m.TranscriptDocRef()
	case transcript.FieldTranscriptJSONRef:
		return m.TranscriptJSONRef()
	case transcript.FieldDigest:
		return m.Digest()
	case transcript.FieldCostUsd:
		return m.CostUsd()
	case transcript.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcript.FieldTranscriptDocRef:
		return m.OldTranscriptDocRef(ctx)
	case transcript.FieldTranscriptJSONRef:
		return m.OldTranscriptJSONRef(ctx)
	case transcript.FieldDigest:
		return m.OldDigest(ctx)
	case transcript.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case transcript.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transcript field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldTranscriptDocRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptDocRef(v)
		return nil
	case transcript.FieldTranscriptJSONRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptJSONRef(v)
		return nil
	case transcript.FieldDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigest(v)
		return nil
	case transcript.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case transcript.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptMutation) AddedFields() []string {
	var fields []string
	if m.addcost_usd != nil {
		fields = append(fields, transcript.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcript.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcript.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown Transcript numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Transcript nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptMutation) ResetField(name string) error {
	switch name {
	case transcript.FieldTranscriptDocRef:
		m.ResetTranscriptDocRef()
		return nil
	case transcript.FieldTranscriptJSONRef:
		m.ResetTranscriptJSONRef()
		return nil
	case transcript.FieldDigest:
		m.ResetDigest()
		return nil
	case transcript.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case transcript.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transcript field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Transcript unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Transcript edge %s", name)
}

// VideoMutation represents an operation that mutates the Video nodes in the graph.
type VideoMutation struct {
	config
	op               Op
	typ              string
	id               *string
	url              *string
	title            *string
	published_at     *time.Time
	channel_id       *string
	duration_sec     *int
	addduration_sec  *int
	source           *video.Source
	status           *video.Status
	summary_doc_ref  *string
	zep_doc_id       *string
	rejection_reason *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Video, error)
	predicates       []predicate.Video
}

var _ ent.Mutation = (*VideoMutation)(nil)

// videoOption allows management of the mutation configuration using functional options.
type videoOption func(*VideoMutation)

// newVideoMutation creates new mutation for the Video entity.
func newVideoMutation(c config, op Op, opts ...videoOption) *VideoMutation {
	m := &VideoMutation{
		config:        c,
		op:            op,
		typ:           TypeVideo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVideoID sets the ID field of the mutation.
func withVideoID(id string) videoOption {
	return func(m *VideoMutation) {
		var (
			err   error
			once  sync.Once
			value *Video
		)
		m.oldValue = func(ctx context.Context) (*Video, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Video.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVideo sets the old Video of the mutation.
func withVideo(node *Video) videoOption {
	return func(m *VideoMutation) {
		m.oldValue = func(context.Context) (*Video, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VideoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VideoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Video entities.
func (m *VideoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VideoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VideoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Video.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *VideoMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *VideoMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *VideoMutation) ResetURL() {
	m.url = nil
}

// SetTitle sets the "title" field.
func (m *VideoMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *VideoMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *VideoMutation) ResetTitle() {
	m.title = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *VideoMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *VideoMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *VideoMutation) ResetPublishedAt() {
	m.published_at = nil
}

// SetChannelID sets the "channel_id" field.
func (m *VideoMutation) SetChannelID(s string) {
	m.channel_id = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *VideoMutation) ChannelID() (r string, exists bool) {
	v := m.channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *VideoMutation) ResetChannelID() {
	m.channel_id = nil
}

// SetDurationSec sets the "duration_sec" field.
func (m *VideoMutation) SetDurationSec(i int) {
	m.duration_sec = &i
	m.addduration_sec = nil
}

// DurationSec returns the value of the "duration_sec" field in the mutation.
func (m *VideoMutation) DurationSec() (r int, exists bool) {
	v := m.duration_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSec returns the old "duration_sec" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldDurationSec(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSec: %w", err)
	}
	return oldValue.DurationSec, nil
}

// AddDurationSec adds i to the "duration_sec" field.
func (m *VideoMutation) AddDurationSec(i int) {
	if m.addduration_sec != nil {
		*m.addduration_sec += i
	} else {
		m.addduration_sec = &i
	}
}

// AddedDurationSec returns the value that was added to the "duration_sec" field in this mutation.
func (m *VideoMutation) AddedDurationSec() (r int, exists bool) {
	v := m.addduration_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSec resets all changes to the "duration_sec" field.
func (m *VideoMutation) ResetDurationSec() {
	m.duration_sec = nil
	m.addduration_sec = nil
}

// SetSource sets the "source" field.
func (m *VideoMutation) SetSource(v video.Source) {
	m.source = &v
}

// Source returns the value of the "source" field in the mutation.
func (m *VideoMutation) Source() (r video.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldSource(ctx context.Context) (v video.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *VideoMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *VideoMutation) SetStatus(v video.Status) {
	m.status = &v
}

// Status returns the value of the "status" field in the mutation.
func (m *VideoMutation) Status() (r video.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldStatus(ctx context.Context) (v video.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VideoMutation) ResetStatus() {
	m.status = nil
}

// SetSummaryDocRef sets the "summary_doc_ref" field.
func (m *VideoMutation) SetSummaryDocRef(s string) {
	m.summary_doc_ref = &s
}

// SummaryDocRef returns the value of the "summary_doc_ref" field in the mutation.
func (m *VideoMutation) SummaryDocRef() (r string, exists bool) {
	v := m.summary_doc_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryDocRef returns the old "summary_doc_ref" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldSummaryDocRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryDocRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryDocRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryDocRef: %w", err)
	}
	return oldValue.SummaryDocRef, nil
}

// ClearSummaryDocRef clears the value of the "summary_doc_ref" field.
func (m *VideoMutation) ClearSummaryDocRef() {
	m.summary_doc_ref = nil
	m.clearedFields[video.FieldSummaryDocRef] = struct{}{}
}

// SummaryDocRefCleared returns if the "summary_doc_ref" field was cleared in this mutation.
func (m *VideoMutation) SummaryDocRefCleared() bool {
	_, ok := m.clearedFields[video.FieldSummaryDocRef]
	return ok
}

// ResetSummaryDocRef resets all changes to the "summary_doc_ref" field.
func (m *VideoMutation) ResetSummaryDocRef() {
	m.summary_doc_ref = nil
	delete(m.clearedFields, video.FieldSummaryDocRef)
}

// SetZepDocID sets the "zep_doc_id" field.
func (m *VideoMutation) SetZepDocID(s string) {
	m.zep_doc_id = &s
}

// ZepDocID returns the value of the "zep_doc_id" field in the mutation.
func (m *VideoMutation) ZepDocID() (r string, exists bool) {
	v := m.zep_doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldZepDocID returns the old "zep_doc_id" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldZepDocID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZepDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZepDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZepDocID: %w", err)
	}
	return oldValue.ZepDocID, nil
}

// ClearZepDocID clears the value of the "zep_doc_id" field.
func (m *VideoMutation) ClearZepDocID() {
	m.zep_doc_id = nil
	m.clearedFields[video.FieldZepDocID] = struct{}{}
}

// ZepDocIDCleared returns if the "zep_doc_id" field was cleared in this mutation.
func (m *VideoMutation) ZepDocIDCleared() bool {
	_, ok := m.clearedFields[video.FieldZepDocID]
	return ok
}

// ResetZepDocID resets all changes to the "zep_doc_id" field.
func (m *VideoMutation) ResetZepDocID() {
	m.zep_doc_id = nil
	delete(m.clearedFields, video.FieldZepDocID)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *VideoMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *VideoMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *VideoMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[video.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *VideoMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[video.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *VideoMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, video.FieldRejectionReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *VideoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VideoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VideoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VideoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VideoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Video entity.
// If the Video object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VideoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VideoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the VideoMutation builder.
func (m *VideoMutation) Where(ps ...predicate.Video) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VideoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VideoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Video, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VideoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VideoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Video).
func (m *VideoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VideoMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.url != nil {
		fields = append(fields, video.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, video.FieldTitle)
	}
	if m.published_at != nil {
		fields = append(fields, video.FieldPublishedAt)
	}
	if m.channel_id != nil {
		fields = append(fields, video.FieldChannelID)
	}
	if m.duration_sec != nil {
		fields = append(fields, video.FieldDurationSec)
	}
	if m.source != nil {
		fields = append(fields, video.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, video.FieldStatus)
	}
	if m.summary_doc_ref != nil {
		fields = append(fields, video.FieldSummaryDocRef)
	}
	if m.zep_doc_id != nil {
		fields = append(fields, video.FieldZepDocID)
	}
	if m.rejection_reason != nil {
		fields = append(fields, video.FieldRejectionReason)
	}
	if m.created_at != nil {
		fields = append(fields, video.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, video.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VideoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case video.FieldURL:
		return m.URL()
	case video.FieldTitle:
		return m.Title()
	case video.FieldPublishedAt:
		return m.PublishedAt()
	case video.FieldChannelID:
		return m.ChannelID()
	case video.FieldDurationSec:
		return m.DurationSec()
	case video.FieldSource:
		return m.Source()
	case video.FieldStatus:
		return m.Status()
	case video.FieldSummaryDocRef:
		return m.SummaryDocRef()
	case video.FieldZepDocID:
		return m.ZepDocID()
	case video.FieldRejectionReason:
		return m.RejectionReason()
	case video.FieldCreatedAt:
		return m.CreatedAt()
	case video.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VideoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case video.FieldURL:
		return m.OldURL(ctx)
	case video.FieldTitle:
		return m.OldTitle(ctx)
	case video.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case video.FieldChannelID:
		return m.OldChannelID(ctx)
	case video.FieldDurationSec:
		return m.OldDurationSec(ctx)
	case video.FieldSource:
		return m.OldSource(ctx)
	case video.FieldStatus:
		return m.OldStatus(ctx)
	case video.FieldSummaryDocRef:
		return m.OldSummaryDocRef(ctx)
	case video.FieldZepDocID:
		return m.OldZepDocID(ctx)
	case video.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case video.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case video.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Video field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VideoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case video.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case video.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case video.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case video.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case video.FieldDurationSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSec(v)
		return nil
	case video.FieldSource:
		v, ok := value.(video.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case video.FieldStatus:
		v, ok := value.(video.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case video.FieldSummaryDocRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryDocRef(v)
		return nil
	case video.FieldZepDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZepDocID(v)
		return nil
	case video.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case video.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case video.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Video field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VideoMutation) AddedFields() []string {
	var fields []string
	if m.addduration_sec != nil {
		fields = append(fields, video.FieldDurationSec)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VideoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case video.FieldDurationSec:
		return m.AddedDurationSec()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VideoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case video.FieldDurationSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSec(v)
		return nil
	}
	return fmt.Errorf("unknown Video numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VideoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(video.FieldSummaryDocRef) {
		fields = append(fields, video.FieldSummaryDocRef)
	}
	if m.FieldCleared(video.FieldZepDocID) {
		fields = append(fields, video.FieldZepDocID)
	}
	if m.FieldCleared(video.FieldRejectionReason) {
		fields = append(fields, video.FieldRejectionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VideoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VideoMutation) ClearField(name string) error {
	switch name {
	case video.FieldSummaryDocRef:
		m.ClearSummaryDocRef()
		return nil
	case video.FieldZepDocID:
		m.ClearZepDocID()
		return nil
	case video.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown Video nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VideoMutation) ResetField(name string) error {
	switch name {
	case video.FieldURL:
		m.ResetURL()
		return nil
	case video.FieldTitle:
		m.ResetTitle()
		return nil
	case video.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case video.FieldChannelID:
		m.ResetChannelID()
		return nil
	case video.FieldDurationSec:
		m.ResetDurationSec()
		return nil
	case video.FieldSource:
		m.ResetSource()
		return nil
	case video.FieldStatus:
		m.ResetStatus()
		return nil
	case video.FieldSummaryDocRef:
		m.ResetSummaryDocRef()
		return nil
	case video.FieldZepDocID:
		m.ResetZepDocID()
		return nil
	case video.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case video.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case video.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Video field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VideoMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VideoMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VideoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VideoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VideoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VideoMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VideoMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Video unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VideoMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Video edge %s", name)
}
