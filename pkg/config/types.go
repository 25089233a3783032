package config

import "time"

// Settings is the typed configuration tree loaded from settings.yaml.
// The loose dot-path lookup (lookup.go) exists for debug/telemetry only;
// all runtime reads go through these structs.
type Settings struct {
	Scraper       ScraperConfig       `yaml:"scraper"`
	Reliability   ReliabilityConfig   `yaml:"reliability"`
	Budgets       BudgetsConfig       `yaml:"budgets"`
	Idempotency   IdempotencyConfig   `yaml:"idempotency"`
	LLM           LLMConfig           `yaml:"llm"`
	Notifications NotificationsConfig `yaml:"notifications"`
	RAG           RAGConfig           `yaml:"rag"`
	Queue         QueueConfig         `yaml:"queue"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"`

	// raw holds the parsed document for dot-path debug lookups.
	raw map[string]interface{}
}

// ScraperConfig controls channel discovery.
type ScraperConfig struct {
	// Handles is the default set of channel handles to resolve (e.g. "@AlexHormozi").
	Handles []string `yaml:"handles"`

	// DailyLimitPerChannel bounds per-channel discovery per run.
	DailyLimitPerChannel int `yaml:"daily_limit_per_channel"`

	// SheetID is the optional link-bearing spreadsheet for backfill.
	SheetID string `yaml:"sheet_id"`

	// SheetRange is the default backfill range.
	SheetRange string `yaml:"sheet_range"`
}

// ReliabilityConfig groups quota ceilings and the retry policy.
type ReliabilityConfig struct {
	Quotas QuotasConfig `yaml:"quotas"`
	Retry  RetryConfig  `yaml:"retry"`
}

// QuotasConfig holds hard daily quota ceilings per external service.
type QuotasConfig struct {
	YouTubeDailyLimit    int `yaml:"youtube_daily_limit"`
	AssemblyAIDailyLimit int `yaml:"assemblyai_daily_limit"`
}

// RetryConfig holds the centralized retry/backoff policy.
type RetryConfig struct {
	// MaxAttempts is the retry budget before DLQ routing.
	MaxAttempts int `yaml:"max_attempts"`

	// BaseDelaySec is the exponential backoff base.
	BaseDelaySec int `yaml:"base_delay_sec"`

	// QuotaThreshold is the utilization at which dispatch throttles (default 0.9).
	QuotaThreshold float64 `yaml:"quota_threshold"`
}

// BudgetsConfig holds daily spend ceilings.
type BudgetsConfig struct {
	TranscriptionDailyUSD float64 `yaml:"transcription_daily_usd"`
}

// IdempotencyConfig holds business-rule gates on repeat/oversized work.
type IdempotencyConfig struct {
	// MaxVideoDurationSec is the hard skip threshold for transcription.
	MaxVideoDurationSec int `yaml:"max_video_duration_sec"`
}

// LLMConfig holds model defaults plus per-task overrides.
type LLMConfig struct {
	Default LLMTaskConfig            `yaml:"default"`
	Tasks   map[string]LLMTaskConfig `yaml:"tasks"`
}

// LLMTaskConfig configures a single LLM task.
type LLMTaskConfig struct {
	Model           string  `yaml:"model"`
	Temperature     float64 `yaml:"temperature"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	PromptID        string  `yaml:"prompt_id"`
	PromptVersion   string  `yaml:"prompt_version"`
}

// Task returns the effective config for a task name, falling back to the
// default for any unset field.
func (c LLMConfig) Task(name string) LLMTaskConfig {
	task, ok := c.Tasks[name]
	if !ok {
		return c.Default
	}
	if task.Model == "" {
		task.Model = c.Default.Model
	}
	if task.Temperature == 0 {
		task.Temperature = c.Default.Temperature
	}
	if task.MaxOutputTokens == 0 {
		task.MaxOutputTokens = c.Default.MaxOutputTokens
	}
	if task.PromptID == "" {
		task.PromptID = c.Default.PromptID
	}
	if task.PromptVersion == "" {
		task.PromptVersion = c.Default.PromptVersion
	}
	return task
}

// NotificationsConfig holds operational report delivery settings.
type NotificationsConfig struct {
	Slack SlackConfig `yaml:"slack"`
}

// SlackConfig holds the notification sink settings. The bot token is
// resolved from the environment (SLACK_BOT_TOKEN), never from YAML.
type SlackConfig struct {
	Enabled bool   `yaml:"enabled"`
	Channel string `yaml:"channel"`
}

// RAGConfig holds hybrid retrieval parameters.
type RAGConfig struct {
	OpenSearch OpenSearchConfig `yaml:"opensearch"`
}

// OpenSearchConfig holds the hybrid retrieval knobs the core carries through
// to indexing metadata.
type OpenSearchConfig struct {
	Index        string  `yaml:"index"`
	HybridWeight float64 `yaml:"hybrid_weight"`
	TopK         int     `yaml:"top_k"`
}

// QueueConfig contains worker pool configuration per agent.
type QueueConfig struct {
	// WorkersPerAgent is the number of worker goroutines per agent queue.
	WorkersPerAgent int `yaml:"workers_per_agent"`

	// MaxConcurrentPerAgent bounds concurrent in_progress jobs per agent
	// across all replicas. Enforced by database COUNT(*) check.
	MaxConcurrentPerAgent int `yaml:"max_concurrent_per_agent"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// APITimeout is the per-call deadline for data-API collaborators.
	APITimeout time.Duration `yaml:"api_timeout"`

	// TranscribeTimeout is the per-call deadline for transcription polling.
	TranscribeTimeout time.Duration `yaml:"transcribe_timeout"`

	// JobTimeout bounds one job execution end to end.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanThreshold is how long a job may go without a heartbeat before
	// it is re-queued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// OrphanScanInterval is how often to scan for orphaned jobs.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`
}

// SchedulerConfig controls the in-process daily run trigger.
type SchedulerConfig struct {
	// Enabled toggles the daily trigger loop.
	Enabled bool `yaml:"enabled"`

	// DailyRunTime is the trigger time of day as "HH:MM", always UTC.
	DailyRunTime string `yaml:"daily_run_time"`

	// BacklogLimit caps how many backlog videos one trigger advances into
	// transcription or summarization.
	BacklogLimit int `yaml:"backlog_limit"`
}
