// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_action_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "service_scope", Type: field.TypeString, Unique: true},
		{Name: "last_published_at", Type: field.TypeTime},
		{Name: "last_processed_id", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
	}
	// DlqEntriesColumns holds the columns for the "dlq_entries" table.
	DlqEntriesColumns = []*schema.Column{
		{Name: "dlq_id", Type: field.TypeString, Unique: true},
		{Name: "original_job_id", Type: field.TypeString},
		{Name: "job_type", Type: field.TypeEnum, Enums: []string{"channel_scrape", "sheet_backfill", "single_video", "batch_transcribe", "single_summary", "batch_summarize"}},
		{Name: "error_type", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647},
		{Name: "retry_count", Type: field.TypeInt},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "original_inputs", Type: field.TypeJSON},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "recovery_priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "urgent"}},
		{Name: "processing_attempts", Type: field.TypeInt, Default: 0},
		{Name: "recovery_hints", Type: field.TypeJSON, Nullable: true},
		{Name: "video_id", Type: field.TypeString, Nullable: true},
		{Name: "video_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "estimated_cost_impact_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "dlq_created_at", Type: field.TypeTime},
	}
	// DlqEntriesTable holds the schema information for the "dlq_entries" table.
	DlqEntriesTable = &schema.Table{
		Name:       "dlq_entries",
		Columns:    DlqEntriesColumns,
		PrimaryKey: []*schema.Column{DlqEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dlqentry_dlq_created_at",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[15]},
			},
			{
				Name:    "dlqentry_job_type",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[2]},
			},
			{
				Name:    "dlqentry_severity",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[8]},
			},
			{
				Name:    "dlqentry_original_job_id",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[1]},
			},
		},
	}
	// DailyCostsColumns holds the columns for the "daily_costs" table.
	DailyCostsColumns = []*schema.Column{
		{Name: "cost_date", Type: field.TypeString, Unique: true},
		{Name: "total_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "transcription_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "llm_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "other_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DailyCostsTable holds the schema information for the "daily_costs" table.
	DailyCostsTable = &schema.Table{
		Name:       "daily_costs",
		Columns:    DailyCostsColumns,
		PrimaryKey: []*schema.Column{DailyCostsColumns[0]},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "agent", Type: field.TypeEnum, Enums: []string{"scraper", "transcriber", "summarizer"}},
		{Name: "job_type", Type: field.TypeEnum, Enums: []string{"channel_scrape", "sheet_backfill", "single_video", "batch_transcribe", "single_summary", "batch_summarize"}},
		{Name: "inputs", Type: field.TypeJSON},
		{Name: "policy_overrides", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}, Default: "medium"},
		{Name: "created_by", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString, Nullable: true},
		{Name: "video_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error_type", Type: field.TypeString, Nullable: true},
		{Name: "last_error_message", Type: field.TypeString, Nullable: true},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "estimated_quota_usage", Type: field.TypeInt, Nullable: true},
		{Name: "estimated_cost_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_agent_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[5], JobsColumns[18]},
			},
			{
				Name:    "job_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
			{
				Name:    "job_job_type",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[17]},
			},
			{
				Name:    "job_video_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[9]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "video_id", Type: field.TypeString, Unique: true},
		{Name: "bullets", Type: field.TypeJSON},
		{Name: "key_concepts", Type: field.TypeJSON},
		{Name: "prompt_id", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "transcript_doc_ref", Type: field.TypeString},
		{Name: "zep_doc_id", Type: field.TypeString, Nullable: true},
		{Name: "rag_refs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "video_id", Type: field.TypeString, Unique: true},
		{Name: "transcript_doc_ref", Type: field.TypeString},
		{Name: "transcript_json_ref", Type: field.TypeString},
		{Name: "digest", Type: field.TypeString},
		{Name: "cost_usd", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
	}
	// VideosColumns holds the columns for the "videos" table.
	VideosColumns = []*schema.Column{
		{Name: "video_id", Type: field.TypeString, Unique: true, Size: 11},
		{Name: "url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "channel_id", Type: field.TypeString},
		{Name: "duration_sec", Type: field.TypeInt},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"scrape", "sheet"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"discovered", "transcription_queued", "transcribed", "summarized", "rejected_non_business"}, Default: "discovered"},
		{Name: "summary_doc_ref", Type: field.TypeString, Nullable: true},
		{Name: "zep_doc_id", Type: field.TypeString, Nullable: true},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VideosTable holds the schema information for the "videos" table.
	VideosTable = &schema.Table{
		Name:       "videos",
		Columns:    VideosColumns,
		PrimaryKey: []*schema.Column{VideosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "video_status",
				Unique:  false,
				Columns: []*schema.Column{VideosColumns[7]},
			},
			{
				Name:    "video_channel_id",
				Unique:  false,
				Columns: []*schema.Column{VideosColumns[4]},
			},
			{
				Name:    "video_source",
				Unique:  false,
				Columns: []*schema.Column{VideosColumns[6]},
			},
			{
				Name:    "video_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{VideosColumns[7], VideosColumns[11]},
			},
			{
				Name:    "video_created_at",
				Unique:  false,
				Columns: []*schema.Column{VideosColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CheckpointsTable,
		DlqEntriesTable,
		DailyCostsTable,
		JobsTable,
		SummariesTable,
		TranscriptsTable,
		VideosTable,
	}
)

func init() {
}
