// Code generated by ent, DO NOT EDIT.

package dailycost

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailycost type in the database.
	Label = "daily_cost"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cost_date"
	// FieldTotalUsd holds the string denoting the total_usd field in the database.
	FieldTotalUsd = "total_usd"
	// FieldTranscriptionUsd holds the string denoting the transcription_usd field in the database.
	FieldTranscriptionUsd = "transcription_usd"
	// FieldLlmUsd holds the string denoting the llm_usd field in the database.
	FieldLlmUsd = "llm_usd"
	// FieldOtherUsd holds the string denoting the other_usd field in the database.
	FieldOtherUsd = "other_usd"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the dailycost in the database.
	Table = "daily_costs"
)

// Columns holds all SQL columns for dailycost fields.
var Columns = []string{
	FieldID,
	FieldTotalUsd,
	FieldTranscriptionUsd,
	FieldLlmUsd,
	FieldOtherUsd,
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
	// DefaultTotalUsd holds the default value on creation for the "total_usd" field.
	DefaultTotalUsd float64
	// DefaultTranscriptionUsd holds the default value on creation for the "transcription_usd" field.
	DefaultTranscriptionUsd float64
	// DefaultLlmUsd holds the default value on creation for the "llm_usd" field.
	DefaultLlmUsd float64
	// DefaultOtherUsd holds the default value on creation for the "other_usd" field.
	DefaultOtherUsd float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DailyCost queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTotalUsd orders the results by the total_usd field.
func ByTotalUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUsd, opts...).ToFunc()
}

// ByTranscriptionUsd orders the results by the transcription_usd field.
func ByTranscriptionUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptionUsd, opts...).ToFunc()
}

// ByLlmUsd orders the results by the llm_usd field.
func ByLlmUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmUsd, opts...).ToFunc()
}

// ByOtherUsd orders the results by the other_usd field.
func ByOtherUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOtherUsd, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
