package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLLMMetrics(t *testing.T) {
	requests := []LLMRequest{
		{Model: "gpt-4.1", Task: "summarizer_generate_short", PromptID: "coach_v1", LatencyMS: 1200, InputTokens: 4000, OutputTokens: 800, CostUSD: 0.04, Success: true},
		{Model: "gpt-4.1", Task: "summarizer_generate_short", PromptID: "coach_v1", LatencyMS: 1500, InputTokens: 5000, OutputTokens: 900, CostUSD: 0.05, Success: true},
		{Model: "gpt-4.1-mini", Task: "classifier", PromptID: "gate_v2", LatencyMS: 300, InputTokens: 1000, OutputTokens: 50, CostUSD: 0.001, Success: false},
	}

	report := ComputeLLMMetrics(requests, 24)
	assert.Equal(t, 3, report.TotalRequests)
	assert.Equal(t, 2, report.ByModel["gpt-4.1"])
	assert.Equal(t, 1, report.ByModel["gpt-4.1-mini"])
	assert.Equal(t, 2, report.ByTask["summarizer_generate_short"])
	assert.Equal(t, 10000, report.TotalInputTokens)
	assert.Equal(t, 1750, report.TotalOutputTokens)
	assert.InDelta(t, 0.091, report.TotalCostUSD, 1e-9)
	assert.InDelta(t, 0.09, report.CostByModel["gpt-4.1"], 1e-9)
	assert.InDelta(t, 1500, report.P95LatencyMS, 1e-9)

	require.Len(t, report.PromptPerformance, 2)
	top := report.PromptPerformance[0]
	assert.Equal(t, "coach_v1", top.PromptID)
	assert.Equal(t, 2, top.Uses)
	assert.InDelta(t, 1.0, top.SuccessRate, 1e-9)
	assert.InDelta(t, 850, top.AvgOutputTokens, 1e-9)
	// 0.7·1.0 + 0.3·0.85
	assert.InDelta(t, 0.955, top.EffectivenessScore, 1e-9)

	gate := report.PromptPerformance[1]
	assert.InDelta(t, 0.0, gate.SuccessRate, 1e-9)
	// 0.7·0 + 0.3·0.05
	assert.InDelta(t, 0.015, gate.EffectivenessScore, 1e-9)
}

func TestComputeLLMMetrics_Empty(t *testing.T) {
	report := ComputeLLMMetrics(nil, 24)
	assert.Equal(t, 0, report.TotalRequests)
	assert.Zero(t, report.P95LatencyMS)
	assert.Empty(t, report.PromptPerformance)
	assert.Empty(t, report.Insights)
}

func TestPercentile95(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i + 1)
	}
	assert.InDelta(t, 95, percentile95(values), 1e-9)
	assert.InDelta(t, 7, percentile95([]float64{7}), 1e-9)
	assert.InDelta(t, 9, percentile95([]float64{9, 3, 5}), 1e-9)
}

func TestLLMInsights(t *testing.T) {
	t.Run("high monthly cost projection", func(t *testing.T) {
		report := ComputeLLMMetrics([]LLMRequest{
			{Model: "gpt-4.1", CostUSD: 5.0, Success: true},
		}, 24)
		// $5/day projects to $150/month.
		require.NotEmpty(t, report.Insights)
		assert.Contains(t, report.Insights[0], "monthly")
	})

	t.Run("slow p95", func(t *testing.T) {
		report := ComputeLLMMetrics([]LLMRequest{
			{Model: "gpt-4.1", LatencyMS: 15000, Success: true},
		}, 24)
		require.NotEmpty(t, report.Insights)
		assert.Contains(t, report.Insights[0], "p95")
	})

	t.Run("heavy tokens", func(t *testing.T) {
		report := ComputeLLMMetrics([]LLMRequest{
			{Model: "gpt-4.1", InputTokens: 8000, OutputTokens: 2000, Success: true},
		}, 24)
		require.NotEmpty(t, report.Insights)
		assert.Contains(t, report.Insights[0], "tokens")
	})

	t.Run("single model overuse", func(t *testing.T) {
		var requests []LLMRequest
		for i := 0; i < 10; i++ {
			requests = append(requests, LLMRequest{Model: "gpt-4.1", Success: true})
		}
		report := ComputeLLMMetrics(requests, 24)
		require.NotEmpty(t, report.Insights)
		assert.Contains(t, report.Insights[0], "gpt-4.1")
	})

	t.Run("healthy usage has no insights", func(t *testing.T) {
		report := ComputeLLMMetrics([]LLMRequest{
			{Model: "gpt-4.1", LatencyMS: 900, InputTokens: 1000, OutputTokens: 300, CostUSD: 0.01, Success: true},
			{Model: "gpt-4.1-mini", LatencyMS: 200, InputTokens: 500, OutputTokens: 50, CostUSD: 0.001, Success: true},
		}, 24)
		assert.Empty(t, report.Insights)
	})
}
