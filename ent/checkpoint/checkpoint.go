// Code generated by ent, DO NOT EDIT.

package checkpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the checkpoint type in the database.
	Label = "checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "service_scope"
	// FieldLastPublishedAt holds the string denoting the last_published_at field in the database.
	FieldLastPublishedAt = "last_published_at"
	// FieldLastProcessedID holds the string denoting the last_processed_id field in the database.
	FieldLastProcessedID = "last_processed_id"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the checkpoint in the database.
	Table = "checkpoints"
)

// Columns holds all SQL columns for checkpoint fields.
var Columns = []string{
	FieldID,
	FieldLastPublishedAt,
	FieldLastProcessedID,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Checkpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLastPublishedAt orders the results by the last_published_at field.
func ByLastPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPublishedAt, opts...).ToFunc()
}

// ByLastProcessedID orders the results by the last_processed_id field.
func ByLastProcessedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessedID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
