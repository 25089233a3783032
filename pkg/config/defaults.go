package config

import "time"

// Default returns a fresh copy of the built-in defaults, with no YAML merged
// on top. Callers that need settings without a document (tests, ad hoc
// tooling) start here and override fields directly.
func Default() *Settings {
	return defaultSettings()
}

// defaultSettings returns the built-in defaults. User-provided YAML is merged
// on top; anything left unset falls back to these values.
func defaultSettings() *Settings {
	return &Settings{
		Scraper: ScraperConfig{
			DailyLimitPerChannel: 10,
			SheetRange:           "Sheet1!A:D",
		},
		Reliability: ReliabilityConfig{
			Quotas: QuotasConfig{
				YouTubeDailyLimit:    10000,
				AssemblyAIDailyLimit: 100,
			},
			Retry: RetryConfig{
				MaxAttempts:    3,
				BaseDelaySec:   60,
				QuotaThreshold: 0.9,
			},
		},
		Budgets: BudgetsConfig{
			TranscriptionDailyUSD: 5.0,
		},
		Idempotency: IdempotencyConfig{
			MaxVideoDurationSec: 4200,
		},
		LLM: LLMConfig{
			Default: LLMTaskConfig{
				Model:           "gpt-4.1",
				Temperature:     0.2,
				MaxOutputTokens: 1500,
			},
		},
		RAG: RAGConfig{
			OpenSearch: OpenSearchConfig{
				Index:        "autopiloot_summaries",
				HybridWeight: 0.5,
				TopK:         8,
			},
		},
		Queue: QueueConfig{
			WorkersPerAgent:       2,
			MaxConcurrentPerAgent: 2,
			PollInterval:          1 * time.Second,
			PollIntervalJitter:    500 * time.Millisecond,
			APITimeout:            30 * time.Second,
			TranscribeTimeout:     5 * time.Minute,
			JobTimeout:            15 * time.Minute,
			HeartbeatInterval:     30 * time.Second,
			OrphanThreshold:       5 * time.Minute,
			OrphanScanInterval:    2 * time.Minute,
		},
		Scheduler: SchedulerConfig{
			Enabled:      true,
			DailyRunTime: "01:00",
			BacklogLimit: 50,
		},
	}
}
