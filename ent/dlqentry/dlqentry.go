// Code generated by ent, DO NOT EDIT.

package dlqentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dlqentry type in the database.
	Label = "dlq_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dlq_id"
	// FieldOriginalJobID holds the string denoting the original_job_id field in the database.
	FieldOriginalJobID = "original_job_id"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// FieldOriginalInputs holds the string denoting the original_inputs field in the database.
	FieldOriginalInputs = "original_inputs"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldRecoveryPriority holds the string denoting the recovery_priority field in the database.
	FieldRecoveryPriority = "recovery_priority"
	// FieldProcessingAttempts holds the string denoting the processing_attempts field in the database.
	FieldProcessingAttempts = "processing_attempts"
	// FieldRecoveryHints holds the string denoting the recovery_hints field in the database.
	FieldRecoveryHints = "recovery_hints"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldVideoIds holds the string denoting the video_ids field in the database.
	FieldVideoIds = "video_ids"
	// FieldEstimatedCostImpactUsd holds the string denoting the estimated_cost_impact_usd field in the database.
	FieldEstimatedCostImpactUsd = "estimated_cost_impact_usd"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "dlq_created_at"
	// Table holds the table name of the dlqentry in the database.
	Table = "dlq_entries"
)

// Columns holds all SQL columns for dlqentry fields.
var Columns = []string{
	FieldID,
	FieldOriginalJobID,
	FieldJobType,
	FieldErrorType,
	FieldErrorMessage,
	FieldRetryCount,
	FieldLastAttemptAt,
	FieldOriginalInputs,
	FieldSeverity,
	FieldRecoveryPriority,
	FieldProcessingAttempts,
	FieldRecoveryHints,
	FieldVideoID,
	FieldVideoIds,
	FieldEstimatedCostImpactUsd,
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
	// DefaultProcessingAttempts holds the default value on creation for the "processing_attempts" field.
	DefaultProcessingAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// JobType defines the type for the "job_type" enum field.
type JobType string

// JobType values.
const (
	JobTypeChannelScrape   JobType = "channel_scrape"
	JobTypeSheetBackfill   JobType = "sheet_backfill"
	JobTypeSingleVideo     JobType = "single_video"
	JobTypeBatchTranscribe JobType = "batch_transcribe"
	JobTypeSingleSummary   JobType = "single_summary"
	JobTypeBatchSummarize  JobType = "batch_summarize"
)

func (jt JobType) String() string {
	return string(jt)
}

// JobTypeValidator is a validator for the "job_type" field enum values. It is called by the builders before save.
func JobTypeValidator(jt JobType) error {
	switch jt {
	case JobTypeChannelScrape, JobTypeSheetBackfill, JobTypeSingleVideo, JobTypeBatchTranscribe, JobTypeSingleSummary, JobTypeBatchSummarize:
		return nil
	default:
		return fmt.Errorf("dlqentry: invalid enum value for job_type field: %q", jt)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	default:
		return fmt.Errorf("dlqentry: invalid enum value for severity field: %q", s)
	}
}

// RecoveryPriority defines the type for the "recovery_priority" enum field.
type RecoveryPriority string

// RecoveryPriority values.
const (
	RecoveryPriorityLow    RecoveryPriority = "low"
	RecoveryPriorityMedium RecoveryPriority = "medium"
	RecoveryPriorityHigh   RecoveryPriority = "high"
	RecoveryPriorityUrgent RecoveryPriority = "urgent"
)

func (rp RecoveryPriority) String() string {
	return string(rp)
}

// RecoveryPriorityValidator is a validator for the "recovery_priority" field enum values. It is called by the builders before save.
func RecoveryPriorityValidator(rp RecoveryPriority) error {
	switch rp {
	case RecoveryPriorityLow, RecoveryPriorityMedium, RecoveryPriorityHigh, RecoveryPriorityUrgent:
		return nil
	default:
		return fmt.Errorf("dlqentry: invalid enum value for recovery_priority field: %q", rp)
	}
}

// OrderOption defines the ordering options for the DLQEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOriginalJobID orders the results by the original_job_id field.
func ByOriginalJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalJobID, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByRecoveryPriority orders the results by the recovery_priority field.
func ByRecoveryPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryPriority, opts...).ToFunc()
}

// ByProcessingAttempts orders the results by the processing_attempts field.
func ByProcessingAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingAttempts, opts...).ToFunc()
}

// ByVideoID orders the results by the video_id field.
func ByVideoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoID, opts...).ToFunc()
}

// ByEstimatedCostImpactUsd orders the results by the estimated_cost_impact_usd field.
func ByEstimatedCostImpactUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostImpactUsd, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
