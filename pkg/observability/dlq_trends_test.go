package observability

import (
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dlqAt(t time.Time, errType string, jobType dlqentry.JobType) *ent.DLQEntry {
	return &ent.DLQEntry{
		ErrorType:    errType,
		ErrorMessage: errType + " while calling collaborator",
		JobType:      jobType,
		CreatedAt:    t,
	}
}

func TestComputeTrendReport_Basics(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	current := []*ent.DLQEntry{
		dlqAt(now.Add(-30*time.Minute), "api_timeout", dlqentry.JobTypeSingleVideo),
		dlqAt(now.Add(-40*time.Minute), "api_timeout", dlqentry.JobTypeSingleVideo),
		dlqAt(now.Add(-2*time.Hour), "quota_exceeded", dlqentry.JobTypeChannelScrape),
	}
	prior := []*ent.DLQEntry{
		dlqAt(now.Add(-30*time.Hour), "api_timeout", dlqentry.JobTypeSingleVideo),
	}

	report := ComputeTrendReport(current, prior, now, TrendConfig{WindowHours: 24})
	assert.Equal(t, 3, report.TotalEntries)
	assert.Equal(t, 1, report.PriorEntries)
	assert.InDelta(t, 3.0/24, report.EntriesPerHour, 1e-9)
	assert.Equal(t, "rising", report.Trend)

	require.NotEmpty(t, report.Patterns.TopErrors)
	top := report.Patterns.TopErrors[0]
	assert.Equal(t, "api_timeout", top.ErrorType)
	assert.Equal(t, 2, top.Count)
	assert.InDelta(t, 66.7, top.Percentage, 0.1)
	assert.NotEmpty(t, top.Examples)

	assert.Equal(t, 2, report.Patterns.ByAgent["transcriber"])
	assert.Equal(t, 1, report.Patterns.ByAgent["scraper"])
	assert.Equal(t, 2, report.Patterns.ByJobType["single_video"])
	assert.Equal(t, 3, report.Patterns.RetryHistogram[0])
}

func TestComputeTrendReport_TrendDirection(t *testing.T) {
	assert.Equal(t, "rising", trendDirection(5, 2))
	assert.Equal(t, "falling", trendDirection(2, 5))
	assert.Equal(t, "stable", trendDirection(5, 5))
	assert.Equal(t, "stable", trendDirection(0, 0))
	assert.Equal(t, "rising", trendDirection(3, 0))
}

func TestComputeTrendReport_SpikeAlert(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	var current []*ent.DLQEntry
	for i := 0; i < 12; i++ {
		current = append(current, dlqAt(now.Add(-time.Duration(i)*time.Hour), "api_timeout", dlqentry.JobTypeSingleVideo))
	}
	prior := []*ent.DLQEntry{
		dlqAt(now.Add(-30*time.Hour), "api_timeout", dlqentry.JobTypeSingleVideo),
		dlqAt(now.Add(-40*time.Hour), "api_timeout", dlqentry.JobTypeSingleVideo),
	}

	t.Run("6x baseline raises a high alert", func(t *testing.T) {
		report := ComputeTrendReport(current, prior, now, TrendConfig{WindowHours: 24, SpikeThreshold: 2})
		require.Len(t, report.Alerts, 1)
		assert.Equal(t, "high", report.Alerts[0].Severity)
		assert.InDelta(t, 0.5, report.Alerts[0].CurrentRate, 1e-9)
	})

	t.Run("no baseline no alert", func(t *testing.T) {
		report := ComputeTrendReport(current, nil, now, TrendConfig{WindowHours: 24, SpikeThreshold: 2})
		assert.Empty(t, report.Alerts)
	})

	t.Run("below threshold no alert", func(t *testing.T) {
		report := ComputeTrendReport(prior, prior, now, TrendConfig{WindowHours: 24, SpikeThreshold: 2})
		assert.Empty(t, report.Alerts)
	})
}

func TestComputeTrendReport_Bursts(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	// Five failures inside one 10-minute bucket against a quiet baseline.
	burstStart := now.Add(-1 * time.Hour)
	var current []*ent.DLQEntry
	for i := 0; i < 5; i++ {
		current = append(current, dlqAt(burstStart.Add(time.Duration(i)*time.Minute), "connection_error", dlqentry.JobTypeBatchTranscribe))
	}
	prior := []*ent.DLQEntry{dlqAt(now.Add(-36*time.Hour), "connection_error", dlqentry.JobTypeBatchTranscribe)}

	report := ComputeTrendReport(current, prior, now, TrendConfig{WindowHours: 24, SpikeThreshold: 2})
	require.NotEmpty(t, report.Temporal.Bursts)
	burst := report.Temporal.Bursts[0]
	assert.Equal(t, 5, burst.Count)
	assert.False(t, burst.Start.After(burstStart))
	assert.True(t, burst.End.After(burstStart))
}

func TestComputeTrendReport_Temporal(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	current := []*ent.DLQEntry{
		dlqAt(now.Add(-10*time.Minute), "api_timeout", dlqentry.JobTypeSingleVideo),
		dlqAt(now.Add(-20*time.Minute), "api_timeout", dlqentry.JobTypeSingleVideo),
		dlqAt(now.Add(-5*time.Hour), "api_timeout", dlqentry.JobTypeSingleVideo),
	}

	report := ComputeTrendReport(current, nil, now, TrendConfig{WindowHours: 24})
	assert.Len(t, report.Temporal.HourlyHistogram, 24)
	assert.InDelta(t, 2.0/60, report.Temporal.VelocityPerMinute, 1e-9)

	// The last hour holds the peak.
	require.NotEmpty(t, report.Temporal.PeakHours)
	assert.Equal(t, now.Add(-1*time.Hour), report.Temporal.PeakHours[0])
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		errorType string
		share     float64
		action    string
		priority  string
	}{
		{"timeout", "api_timeout", 60, "increase_client_timeout", "high"},
		{"timeout minority", "api_timeout", 30, "increase_client_timeout", "medium"},
		{"quota", "quota_exceeded", 80, "raise_quota_or_throttle", "high"},
		{"connection", "connection_error", 40, "investigate_dependency", "high"},
		{"validation", "validation_error", 55, "harden_input_filters", "high"},
		{"unknown", "weird_error", 90, "investigate_dominant_error", "low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := recommend(ErrorTypePattern{ErrorType: tt.errorType, Percentage: tt.share})
			require.Len(t, recs, 1)
			assert.Equal(t, tt.action, recs[0].Action)
			assert.Equal(t, tt.priority, recs[0].Priority)
			assert.NotEmpty(t, recs[0].Category)
			assert.NotEmpty(t, recs[0].Description)
		})
	}
}

func TestComputeTrendReport_RecommendationsFlag(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	current := []*ent.DLQEntry{dlqAt(now.Add(-time.Hour), "api_timeout", dlqentry.JobTypeSingleVideo)}

	withRecs := ComputeTrendReport(current, nil, now, TrendConfig{IncludeRecommendations: true})
	assert.NotEmpty(t, withRecs.Recommendations)

	withoutRecs := ComputeTrendReport(current, nil, now, TrendConfig{})
	assert.Empty(t, withoutRecs.Recommendations)
}
