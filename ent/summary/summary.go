// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the summary type in the database.
	Label = "summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "video_id"
	// FieldBullets holds the string denoting the bullets field in the database.
	FieldBullets = "bullets"
	// FieldKeyConcepts holds the string denoting the key_concepts field in the database.
	FieldKeyConcepts = "key_concepts"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldTranscriptDocRef holds the string denoting the transcript_doc_ref field in the database.
	FieldTranscriptDocRef = "transcript_doc_ref"
	// FieldZepDocID holds the string denoting the zep_doc_id field in the database.
	FieldZepDocID = "zep_doc_id"
	// FieldRagRefs holds the string denoting the rag_refs field in the database.
	FieldRagRefs = "rag_refs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the summary in the database.
	Table = "summaries"
)

// Columns holds all SQL columns for summary fields.
var Columns = []string{
	FieldID,
	FieldBullets,
	FieldKeyConcepts,
	FieldPromptID,
	FieldPromptVersion,
	FieldInputTokens,
	FieldOutputTokens,
	FieldTranscriptDocRef,
	FieldZepDocID,
	FieldRagRefs,
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

// OrderOption defines the ordering options for the Summary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByTranscriptDocRef orders the results by the transcript_doc_ref field.
func ByTranscriptDocRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptDocRef, opts...).ToFunc()
}

// ByZepDocID orders the results by the zep_doc_id field.
func ByZepDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZepDocID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
