package slack

import (
	"strings"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		name        string
		alertLevel  string
		successRate float64
		want        string
	}{
		{"critical wins over success", "critical", 1.0, ":rotating_light:"},
		{"error wins over success", "error", 1.0, ":x:"},
		{"warning wins over success", "warning", 1.0, ":warning:"},
		{"info with high success", "info", 0.97, ":white_check_mark:"},
		{"info with mid success", "info", 0.85, ":warning:"},
		{"info with low success", "info", 0.5, ":x:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusIcon(tt.alertLevel, tt.successRate))
		})
	}
}

func TestBuildRunReportMessage(t *testing.T) {
	started := time.Date(2025, 1, 15, 1, 0, 0, 0, time.UTC)
	blocks := BuildRunReportMessage(RunReport{
		RunID:        "run_20250115_010000",
		RunType:      "daily",
		Trigger:      "scheduled",
		StartedAt:    started,
		CompletedAt:  started.Add(42 * time.Minute),
		Planned:      10,
		Succeeded:    9,
		Failed:       1,
		DLQCount:     1,
		SuccessRate:  0.9,
		HealthScore:  78,
		TotalCostUSD: 3.50,
		QuotaState:   map[string]float64{"youtube": 0.45, "assemblyai": 0.30},
		AlertLevel:   "info",
	})
	require.Len(t, blocks, 2)

	header := blocks[0].(*goslack.SectionBlock).Text.Text
	assert.Contains(t, header, "run_20250115_010000")
	assert.Contains(t, header, ":warning:")

	body := blocks[1].(*goslack.SectionBlock).Text.Text
	assert.Contains(t, body, "*Planned:* 10")
	assert.Contains(t, body, "$3.50")
	assert.Contains(t, body, "assemblyai 30%, youtube 45%", "quota services sorted by name")
}

func TestBuildDailyReportMessage(t *testing.T) {
	t.Run("with insights", func(t *testing.T) {
		blocks := BuildDailyReportMessage(DailyReport{
			Date:              "2025-01-15",
			HealthScore:       92,
			HealthStatus:      "excellent",
			Discovered:        20,
			Processed:         18,
			ProcessingRate:    0.9,
			TotalCostUSD:      4.20,
			BudgetUtilization: 0.84,
			CostPerVideo:      0.23,
			ErrorCount:        2,
			Insights:          []string{"budget utilization above 80%"},
		})
		require.Len(t, blocks, 3)
		assert.Contains(t, blocks[0].(*goslack.SectionBlock).Text.Text, "excellent")
		assert.Contains(t, blocks[2].(*goslack.SectionBlock).Text.Text, "budget utilization")
	})

	t.Run("without insights", func(t *testing.T) {
		blocks := BuildDailyReportMessage(DailyReport{Date: "2025-01-15", HealthStatus: "good"})
		assert.Len(t, blocks, 2)
	})
}

func TestBuildDLQAlertMessage(t *testing.T) {
	t.Run("high severity uses siren", func(t *testing.T) {
		blocks := BuildDLQAlertMessage(DLQAlert{
			Severity:     "high",
			Message:      "failure rate 3.2x baseline",
			WindowHours:  6,
			CurrentRate:  4.5,
			BaselineRate: 1.4,
		})
		require.Len(t, blocks, 1)
		text := blocks[0].(*goslack.SectionBlock).Text.Text
		assert.Contains(t, text, ":rotating_light:")
		assert.Contains(t, text, "4.5/h")
	})

	t.Run("medium severity uses warning", func(t *testing.T) {
		blocks := BuildDLQAlertMessage(DLQAlert{Severity: "medium", Message: "elevated"})
		text := blocks[0].(*goslack.SectionBlock).Text.Text
		assert.Contains(t, text, ":warning:")
	})
}

func TestTruncateForSlack(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+100)
	out := truncateForSlack(long)
	assert.Less(t, len(out), len(long)+50)
	assert.Contains(t, out, "truncated")

	short := "short message"
	assert.Equal(t, short, truncateForSlack(short))
}
