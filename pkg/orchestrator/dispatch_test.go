package orchestrator

import (
	"testing"

	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/autopiloot/autopiloot/pkg/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobInputsValidate(t *testing.T) {
	tests := []struct {
		name    string
		inputs  JobInputs
		wantErr string
	}{
		{"channel scrape ok", ChannelScrape{Channels: []string{"@AlexHormozi"}}, ""},
		{"channel scrape empty list", ChannelScrape{}, "non-empty list"},
		{"channel scrape empty handle", ChannelScrape{Channels: []string{""}}, "non-empty"},
		{"sheet backfill ok", SheetBackfill{SheetID: "1abc"}, ""},
		{"sheet backfill missing id", SheetBackfill{}, "sheet_id"},
		{"single video ok", SingleVideo{VideoID: "dQw4w9WgXcQ"}, ""},
		{"single video bad id", SingleVideo{VideoID: "nope"}, "video ID"},
		{"single video bad priority", SingleVideo{VideoID: "dQw4w9WgXcQ", Priority: "urgent"}, "priority"},
		{"batch transcribe ok", BatchTranscribe{VideoIDs: []string{"dQw4w9WgXcQ"}}, ""},
		{"batch transcribe empty", BatchTranscribe{}, "non-empty list"},
		{"batch transcribe negative batch", BatchTranscribe{VideoIDs: []string{"dQw4w9WgXcQ"}, BatchSize: -1}, "non-negative"},
		{"single summary ok", SingleSummary{VideoID: "dQw4w9WgXcQ", Platforms: []string{"drive", "zep"}}, ""},
		{"single summary bad platform", SingleSummary{VideoID: "dQw4w9WgXcQ", Platforms: []string{"email"}}, "platform"},
		{"batch summarize empty", BatchSummarize{}, "non-empty list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inputs.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			var invalid *InvalidInputsError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestJobInputsAgents(t *testing.T) {
	assert.Equal(t, job.AgentScraper, ChannelScrape{}.Agent())
	assert.Equal(t, job.AgentScraper, SheetBackfill{}.Agent())
	assert.Equal(t, job.AgentTranscriber, SingleVideo{}.Agent())
	assert.Equal(t, job.AgentTranscriber, BatchTranscribe{}.Agent())
	assert.Equal(t, job.AgentSummarizer, SingleSummary{}.Agent())
	assert.Equal(t, job.AgentSummarizer, BatchSummarize{}.Agent())
}

func TestRequestedPriority(t *testing.T) {
	assert.Equal(t, job.PriorityHigh, requestedPriority("high"))
	assert.Equal(t, job.PriorityLow, requestedPriority("low"))
	assert.Equal(t, job.PriorityMedium, requestedPriority("medium"))
	assert.Equal(t, job.PriorityMedium, requestedPriority(""), "unset priority defaults to medium")
}

func TestOverridesPayloadRoundTrip(t *testing.T) {
	maxAttempts := 5
	baseDelay := 30
	threshold := 0.8
	budget := 2.5
	ov := policy.Overrides{
		MaxAttempts:    &maxAttempts,
		BaseDelaySec:   &baseDelay,
		QuotaThreshold: &threshold,
		BudgetLimitUSD: &budget,
	}

	payload := overridesPayload(ov)
	require.NotNil(t, payload)

	// The store round-trips payload numbers through JSON as float64.
	jsonPayload := map[string]interface{}{
		"max_attempts":     float64(maxAttempts),
		"base_delay_sec":   float64(baseDelay),
		"quota_threshold":  threshold,
		"budget_limit_usd": budget,
	}
	got := OverridesFromPayload(jsonPayload)
	require.NotNil(t, got.MaxAttempts)
	assert.Equal(t, maxAttempts, *got.MaxAttempts)
	require.NotNil(t, got.BaseDelaySec)
	assert.Equal(t, baseDelay, *got.BaseDelaySec)
	require.NotNil(t, got.QuotaThreshold)
	assert.Equal(t, threshold, *got.QuotaThreshold)
	require.NotNil(t, got.BudgetLimitUSD)
	assert.Equal(t, budget, *got.BudgetLimitUSD)
}

func TestOverridesPayloadEmpty(t *testing.T) {
	assert.Nil(t, overridesPayload(policy.Overrides{}))

	got := OverridesFromPayload(nil)
	assert.Nil(t, got.MaxAttempts)
	assert.Nil(t, got.BudgetLimitUSD)
}
