package scheduler

import (
	"testing"
	"time"

	"github.com/autopiloot/autopiloot/pkg/orchestrator"
	"github.com/stretchr/testify/assert"
)

func TestNextTrigger(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		timeOfDay string
		want      time.Time
	}{
		{
			"before trigger fires same day",
			time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC),
			"01:00",
			time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC),
		},
		{
			"after trigger rolls to next day",
			time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
			"01:00",
			time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
		},
		{
			"exactly at trigger rolls to next day",
			time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC),
			"01:00",
			time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
		},
		{
			"seconds past trigger roll to next day",
			time.Date(2025, 3, 10, 1, 0, 30, 0, time.UTC),
			"01:00",
			time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
		},
		{
			"non-default time of day",
			time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			"23:30",
			time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC),
		},
		{
			"malformed time falls back to 01:00",
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			"not-a-time",
			time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC),
		},
		{
			"month rollover",
			time.Date(2025, 3, 31, 2, 0, 0, 0, time.UTC),
			"01:00",
			time.Date(2025, 4, 1, 1, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextTrigger(tt.now, tt.timeOfDay))
		})
	}
}

func TestNextTriggerNormalizesZone(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	// 03:00 UTC+5 is 22:00 UTC the previous day, so the 01:00 UTC trigger is
	// still ahead on the 10th.
	now := time.Date(2025, 3, 10, 3, 0, 0, 0, zone)
	got := NextTrigger(now, "01:00")
	assert.Equal(t, time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), got)
}

func TestAlertLevel(t *testing.T) {
	tests := []struct {
		name    string
		summary orchestrator.RunSummary
		want    orchestrator.AlertLevel
	}{
		{"clean run", orchestrator.RunSummary{Planned: 5, Succeeded: 5}, orchestrator.AlertInfo},
		{"empty run", orchestrator.RunSummary{}, orchestrator.AlertInfo},
		{"dlq routing warns", orchestrator.RunSummary{Planned: 5, Succeeded: 3, DLQCount: 2}, orchestrator.AlertWarning},
		{"nothing succeeded", orchestrator.RunSummary{Planned: 5, Failed: 5}, orchestrator.AlertError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alertLevel(tt.summary))
		})
	}
}
