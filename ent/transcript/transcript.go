// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the transcript type in the database.
	Label = "transcript"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "video_id"
	// FieldTranscriptDocRef holds the string denoting the transcript_doc_ref field in the database.
	FieldTranscriptDocRef = "transcript_doc_ref"
	// FieldTranscriptJSONRef holds the string denoting the transcript_json_ref field in the database.
	FieldTranscriptJSONRef = "transcript_json_ref"
	// FieldDigest holds the string denoting the digest field in the database.
	FieldDigest = "digest"
	// FieldCostUsd holds the string denoting the cost_usd field in the database.
	FieldCostUsd = "cost_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the transcript in the database.
	Table = "transcripts"
)

// Columns holds all SQL columns for transcript fields.
var Columns = []string{
	FieldID,
	FieldTranscriptDocRef,
	FieldTranscriptJSONRef,
	FieldDigest,
	FieldCostUsd,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Transcript queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTranscriptDocRef orders the results by the transcript_doc_ref field.
func ByTranscriptDocRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptDocRef, opts...).ToFunc()
}

// ByTranscriptJSONRef orders the results by the transcript_json_ref field.
func ByTranscriptJSONRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptJSONRef, opts...).ToFunc()
}

// ByDigest orders the results by the digest field.
func ByDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigest, opts...).ToFunc()
}

// ByCostUsd orders the results by the cost_usd field.
func ByCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostUsd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
