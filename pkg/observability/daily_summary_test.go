package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePerformance(t *testing.T) {
	videos := VideoMetrics{Discovered: 10, Processed: 9, ProcessingRate: 0.9}
	jobs := JobMetrics{Dispatched: 20, Failed: 2}
	costs := CostMetrics{BudgetUtilization: 0.6}
	quotas := map[string]float64{"youtube": 0.75, "assemblyai": 0.75}

	perf := computePerformance(videos, jobs, ErrorMetrics{}, costs, quotas)
	assert.InDelta(t, 0.9, perf.ProcessingEfficiency, 1e-9)
	assert.InDelta(t, 0.4, perf.CostEfficiency, 1e-9)
	assert.InDelta(t, 0.9, perf.ReliabilityScore, 1e-9)
	// 0.70·0.9 + 0.15·0.9 + 0.15·1.0 = 0.915
	assert.InDelta(t, 91.5, perf.HealthScore, 1e-9)
	assert.Equal(t, "excellent", perf.HealthStatus)
}

func TestComputePerformance_OverBudget(t *testing.T) {
	perf := computePerformance(VideoMetrics{}, JobMetrics{}, ErrorMetrics{}, CostMetrics{BudgetUtilization: 1.4}, nil)
	assert.Zero(t, perf.CostEfficiency, "cost efficiency clamps at zero")
	assert.InDelta(t, 1.0, perf.ReliabilityScore, 1e-9, "no dispatches means nothing failed")
}

func TestDeriveInsights(t *testing.T) {
	t.Run("quiet day has no insights", func(t *testing.T) {
		insights := deriveInsights(
			VideoMetrics{Discovered: 10, Processed: 9, ProcessingRate: 0.9},
			ErrorMetrics{Total: 2, ByType: map[string]int{"api_timeout": 1, "quota_exceeded": 1}},
			CostMetrics{BudgetUtilization: 0.5},
		)
		assert.Empty(t, insights)
	})

	t.Run("low processing rate", func(t *testing.T) {
		insights := deriveInsights(
			VideoMetrics{Discovered: 10, Processed: 5, ProcessingRate: 0.5},
			ErrorMetrics{},
			CostMetrics{},
		)
		require.Len(t, insights, 1)
		assert.Contains(t, insights[0], "processing rate")
	})

	t.Run("high budget utilization", func(t *testing.T) {
		insights := deriveInsights(VideoMetrics{}, ErrorMetrics{}, CostMetrics{BudgetUtilization: 0.85})
		require.Len(t, insights, 1)
		assert.Contains(t, insights[0], "budget")
	})

	t.Run("error count and dominant cluster", func(t *testing.T) {
		insights := deriveInsights(
			VideoMetrics{},
			ErrorMetrics{Total: 12, ByType: map[string]int{"api_timeout": 8, "quota_exceeded": 4}},
			CostMetrics{},
		)
		require.Len(t, insights, 2)
		assert.Contains(t, insights[0], "12 failures")
		assert.Contains(t, insights[1], "api_timeout dominates")
	})

	t.Run("no discovery means no rate insight", func(t *testing.T) {
		insights := deriveInsights(VideoMetrics{}, ErrorMetrics{}, CostMetrics{})
		assert.Empty(t, insights)
	})
}
