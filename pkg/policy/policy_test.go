package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testEngine() *Engine {
	return NewEngine(Config{MaxAttempts: 3, BaseDelaySec: 60})
}

func baseState(now time.Time) SystemState {
	return SystemState{
		Now:            now,
		QuotaUsed:      map[string]int{ServiceYouTube: 0, ServiceAssemblyAI: 0},
		QuotaLimit:     map[string]int{ServiceYouTube: 10000, ServiceAssemblyAI: 100},
		DailyBudgetUSD: 5.0,
	}
}

func TestEvaluateRetryBudget(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("retry_count at max routes to DLQ", func(t *testing.T) {
		d := e.Evaluate(JobContext{JobType: "channel_scrape", RetryCount: 3}, baseState(now), Overrides{})
		assert.Equal(t, ActionDLQ, d.Action)
		assert.Equal(t, "max attempts exceeded", d.Reason)
	})

	t.Run("retry_count at max-1 proceeds when other checks pass", func(t *testing.T) {
		d := e.Evaluate(JobContext{JobType: "channel_scrape", RetryCount: 2, LastAttemptAt: now.Add(-time.Hour)}, baseState(now), Overrides{})
		assert.Equal(t, ActionProceed, d.Action)
	})

	t.Run("terminal error routes to DLQ regardless of retry count", func(t *testing.T) {
		d := e.Evaluate(JobContext{JobType: "single_video", RetryCount: 0, ErrorType: "authorization_failed"}, baseState(now), Overrides{})
		assert.Equal(t, ActionDLQ, d.Action)
		assert.Contains(t, d.Reason, "terminal error")
	})

	t.Run("max attempts override is honored", func(t *testing.T) {
		one := 1
		d := e.Evaluate(JobContext{JobType: "channel_scrape", RetryCount: 1}, baseState(now), Overrides{MaxAttempts: &one})
		assert.Equal(t, ActionDLQ, d.Action)
	})
}

func TestEvaluateQuota(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	t.Run("discovery throttles on youtube quota", func(t *testing.T) {
		state := baseState(now)
		state.QuotaUsed[ServiceYouTube] = 9500 // 0.95 ≥ 0.9

		d := e.Evaluate(JobContext{JobType: "channel_scrape"}, state, Overrides{})
		assert.Equal(t, ActionRetryIn, d.Action)
		assert.Equal(t, "quota threshold exceeded", d.Reason)
		assert.Equal(t, 6*3600, d.DelaySec, "delay is seconds until next UTC midnight")
	})

	t.Run("exactly at threshold throttles", func(t *testing.T) {
		state := baseState(now)
		state.QuotaUsed[ServiceYouTube] = 9000 // 0.90 ≥ 0.9

		d := e.Evaluate(JobContext{JobType: "sheet_backfill"}, state, Overrides{})
		assert.Equal(t, ActionRetryIn, d.Action)
	})

	t.Run("just under threshold proceeds", func(t *testing.T) {
		state := baseState(now)
		state.QuotaUsed[ServiceYouTube] = 8999

		d := e.Evaluate(JobContext{JobType: "channel_scrape"}, state, Overrides{})
		assert.Equal(t, ActionProceed, d.Action)
	})

	t.Run("transcription gates on assemblyai quota", func(t *testing.T) {
		state := baseState(now)
		state.QuotaUsed[ServiceAssemblyAI] = 95

		d := e.Evaluate(JobContext{JobType: "batch_transcribe", VideoCount: 1}, state, Overrides{})
		assert.Equal(t, ActionRetryIn, d.Action)
	})

	t.Run("summarizer jobs carry no quota gate", func(t *testing.T) {
		state := baseState(now)
		state.QuotaUsed[ServiceYouTube] = 10000
		state.QuotaUsed[ServiceAssemblyAI] = 100

		d := e.Evaluate(JobContext{JobType: "single_summary"}, state, Overrides{})
		assert.Equal(t, ActionProceed, d.Action)
	})
}

func TestEvaluateBudget(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("insufficient budget routes to DLQ", func(t *testing.T) {
		state := baseState(now)
		state.SpentTodayUSD = 4.80

		// Two videos at the default 0.5 USD estimate = 1.00 > 0.20 remaining.
		d := e.Evaluate(JobContext{JobType: "batch_transcribe", VideoCount: 2}, state, Overrides{})
		assert.Equal(t, ActionDLQ, d.Action)
		assert.Equal(t, "budget_limit_usd exceeded", d.Reason)
	})

	t.Run("sufficient budget proceeds", func(t *testing.T) {
		state := baseState(now)
		state.SpentTodayUSD = 3.0

		d := e.Evaluate(JobContext{JobType: "batch_transcribe", VideoCount: 2}, state, Overrides{})
		assert.Equal(t, ActionProceed, d.Action)
	})

	t.Run("budget override tightens the limit", func(t *testing.T) {
		state := baseState(now)
		state.SpentTodayUSD = 1.0
		limit := 1.25

		d := e.Evaluate(JobContext{JobType: "single_video"}, state, Overrides{BudgetLimitUSD: &limit})
		assert.Equal(t, ActionDLQ, d.Action)
	})

	t.Run("explicit estimate wins over the per-video default", func(t *testing.T) {
		state := baseState(now)
		state.SpentTodayUSD = 4.9

		d := e.Evaluate(JobContext{JobType: "single_video", EstimatedCostUSD: 0.05}, state, Overrides{})
		assert.Equal(t, ActionProceed, d.Action)
	})

	t.Run("discovery jobs skip the budget gate", func(t *testing.T) {
		state := baseState(now)
		state.SpentTodayUSD = 5.0

		d := e.Evaluate(JobContext{JobType: "channel_scrape"}, state, Overrides{})
		assert.Equal(t, ActionProceed, d.Action)
	})
}

func TestEvaluateBackoff(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("backoff unsatisfied yields remaining delay", func(t *testing.T) {
		job := JobContext{
			JobType:       "channel_scrape",
			RetryCount:    2,
			LastAttemptAt: now.Add(-30 * time.Second),
		}
		// base 60 · 2^2 = 240s required; 30s elapsed → 210s remaining.
		d := e.Evaluate(job, baseState(now), Overrides{})
		assert.Equal(t, ActionRetryIn, d.Action)
		assert.Equal(t, "backoff unsatisfied", d.Reason)
		assert.Equal(t, 210, d.DelaySec)
	})

	t.Run("backoff satisfied proceeds", func(t *testing.T) {
		job := JobContext{
			JobType:       "channel_scrape",
			RetryCount:    2,
			LastAttemptAt: now.Add(-300 * time.Second),
		}
		d := e.Evaluate(job, baseState(now), Overrides{})
		assert.Equal(t, ActionProceed, d.Action)
	})

	t.Run("base delay override applies", func(t *testing.T) {
		five := 5
		job := JobContext{
			JobType:       "channel_scrape",
			RetryCount:    1,
			LastAttemptAt: now.Add(-11 * time.Second),
		}
		d := e.Evaluate(job, baseState(now), Overrides{BaseDelaySec: &five})
		assert.Equal(t, ActionProceed, d.Action, "5·2^1=10s elapsed 11s")
	})
}

func TestEvaluateCheckpoint(t *testing.T) {
	e := testEngine()
	state := baseState(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	state.CheckpointDone = true

	d := e.Evaluate(JobContext{JobType: "channel_scrape"}, state, Overrides{})
	assert.Equal(t, ActionSkip, d.Action)
	assert.Contains(t, d.Reason, "checkpoint")
}

func TestDecisionOrdering(t *testing.T) {
	e := testEngine()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("terminal error beats quota", func(t *testing.T) {
		state := baseState(now)
		state.QuotaUsed[ServiceYouTube] = 10000

		d := e.Evaluate(JobContext{JobType: "channel_scrape", ErrorType: "authorization_failed"}, state, Overrides{})
		assert.Equal(t, ActionDLQ, d.Action)
	})

	t.Run("quota beats budget", func(t *testing.T) {
		state := baseState(now)
		state.QuotaUsed[ServiceAssemblyAI] = 100
		state.SpentTodayUSD = 5.0

		d := e.Evaluate(JobContext{JobType: "batch_transcribe", VideoCount: 4}, state, Overrides{})
		assert.Equal(t, ActionRetryIn, d.Action)
		assert.Equal(t, "quota threshold exceeded", d.Reason)
	})

	t.Run("budget beats backoff", func(t *testing.T) {
		state := baseState(now)
		state.SpentTodayUSD = 5.0

		job := JobContext{JobType: "single_video", RetryCount: 1, LastAttemptAt: now.Add(-time.Second)}
		d := e.Evaluate(job, state, Overrides{})
		assert.Equal(t, ActionDLQ, d.Action)
		assert.Equal(t, ReasonBudgetExceeded, d.Reason)
	})
}

func TestEstimatedCostUSD(t *testing.T) {
	assert.Equal(t, 0.5, EstimatedCostUSD(JobContext{JobType: "single_video"}))
	assert.Equal(t, 1.5, EstimatedCostUSD(JobContext{JobType: "batch_transcribe", VideoCount: 3}))
	assert.Equal(t, 0.75, EstimatedCostUSD(JobContext{JobType: "single_video", EstimatedCostUSD: 0.75}))
}
