// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldAgent holds the string denoting the agent field in the database.
	FieldAgent = "agent"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldInputs holds the string denoting the inputs field in the database.
	FieldInputs = "inputs"
	// FieldPolicyOverrides holds the string denoting the policy_overrides field in the database.
	FieldPolicyOverrides = "policy_overrides"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldVideoID holds the string denoting the video_id field in the database.
	FieldVideoID = "video_id"
	// FieldVideoIds holds the string denoting the video_ids field in the database.
	FieldVideoIds = "video_ids"
	// FieldLastErrorType holds the string denoting the last_error_type field in the database.
	FieldLastErrorType = "last_error_type"
	// FieldLastErrorMessage holds the string denoting the last_error_message field in the database.
	FieldLastErrorMessage = "last_error_message"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// FieldEstimatedQuotaUsage holds the string denoting the estimated_quota_usage field in the database.
	FieldEstimatedQuotaUsage = "estimated_quota_usage"
	// FieldEstimatedCostUsd holds the string denoting the estimated_cost_usd field in the database.
	FieldEstimatedCostUsd = "estimated_cost_usd"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the job in the database.
	Table = "jobs"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldAgent,
	FieldJobType,
	FieldInputs,
	FieldPolicyOverrides,
	FieldStatus,
	FieldRetryCount,
	FieldPriority,
	FieldCreatedBy,
	FieldVideoID,
	FieldVideoIds,
	FieldLastErrorType,
	FieldLastErrorMessage,
	FieldLastAttemptAt,
	FieldEstimatedQuotaUsage,
	FieldEstimatedCostUsd,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
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
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Agent defines the type for the "agent" enum field.
type Agent string

// Agent values.
const (
	AgentScraper     Agent = "scraper"
	AgentTranscriber Agent = "transcriber"
	AgentSummarizer  Agent = "summarizer"
)

func (a Agent) String() string {
	return string(a)
}

// AgentValidator is a validator for the "agent" field enum values. It is called by the builders before save.
func AgentValidator(a Agent) error {
	switch a {
	case AgentScraper, AgentTranscriber, AgentSummarizer:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for agent field: %q", a)
	}
}

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
		return fmt.Errorf("job: invalid enum value for job_type field: %q", jt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for status field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgent orders the results by the agent field.
func ByAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgent, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByVideoID orders the results by the video_id field.
func ByVideoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoID, opts...).ToFunc()
}

// ByLastErrorType orders the results by the last_error_type field.
func ByLastErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorType, opts...).ToFunc()
}

// ByLastErrorMessage orders the results by the last_error_message field.
func ByLastErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorMessage, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// ByEstimatedQuotaUsage orders the results by the estimated_quota_usage field.
func ByEstimatedQuotaUsage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedQuotaUsage, opts...).ToFunc()
}

// ByEstimatedCostUsd orders the results by the estimated_cost_usd field.
func ByEstimatedCostUsd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCostUsd, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
