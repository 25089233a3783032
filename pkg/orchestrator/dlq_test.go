package orchestrator

import (
	"testing"

	"github.com/autopiloot/autopiloot/ent"
	"github.com/autopiloot/autopiloot/ent/dlqentry"
	"github.com/autopiloot/autopiloot/ent/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		name       string
		errorType  string
		retryCount int
		want       dlqentry.Severity
	}{
		{"authorization failure is high", "authorization_failed", 0, dlqentry.SeverityHigh},
		{"data corruption is high", "data_corruption", 0, dlqentry.SeverityHigh},
		{"security violation is high", "security_violation", 1, dlqentry.SeverityHigh},
		{"system critical is high", "system_critical", 0, dlqentry.SeverityHigh},
		{"quota exceeded is medium", "quota_exceeded", 0, dlqentry.SeverityMedium},
		{"budget exceeded is medium", "budget_exceeded", 0, dlqentry.SeverityMedium},
		{"invalid configuration is medium", "invalid_configuration", 0, dlqentry.SeverityMedium},
		{"dependency failure is medium", "dependency_failure", 0, dlqentry.SeverityMedium},
		{"timeout below retry threshold is low", "api_timeout", 4, dlqentry.SeverityLow},
		{"timeout at retry threshold escalates", "api_timeout", 5, dlqentry.SeverityMedium},
		{"unknown error is low", "weird_error", 0, dlqentry.SeverityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Severity(tt.errorType, tt.retryCount))
		})
	}
}

func TestRecoveryPriority(t *testing.T) {
	tests := []struct {
		name     string
		severity dlqentry.Severity
		jobType  job.JobType
		want     dlqentry.RecoveryPriority
	}{
		{"high severity is urgent", dlqentry.SeverityHigh, job.JobTypeBatchTranscribe, dlqentry.RecoveryPriorityUrgent},
		{"medium realtime is high", dlqentry.SeverityMedium, job.JobTypeSingleVideo, dlqentry.RecoveryPriorityHigh},
		{"medium batch is low", dlqentry.SeverityMedium, job.JobTypeBatchSummarize, dlqentry.RecoveryPriorityLow},
		{"low realtime is medium", dlqentry.SeverityLow, job.JobTypeChannelScrape, dlqentry.RecoveryPriorityMedium},
		{"low realtime summary is medium", dlqentry.SeverityLow, job.JobTypeSingleSummary, dlqentry.RecoveryPriorityMedium},
		{"low batch is low", dlqentry.SeverityLow, job.JobTypeSheetBackfill, dlqentry.RecoveryPriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecoveryPriority(tt.severity, tt.jobType))
		})
	}
}

func TestDLQEntryMatchesVideo(t *testing.T) {
	id := "dQw4w9WgXcQ"
	other := "aaaaaaaaaaa"

	t.Run("denormalized video_id", func(t *testing.T) {
		e := &ent.DLQEntry{VideoID: &id}
		assert.True(t, dlqEntryMatchesVideo(e, id))
		assert.False(t, dlqEntryMatchesVideo(e, other))
	})

	t.Run("denormalized video_ids", func(t *testing.T) {
		e := &ent.DLQEntry{VideoIds: []string{other, id}}
		assert.True(t, dlqEntryMatchesVideo(e, id))
	})

	t.Run("original inputs video_id", func(t *testing.T) {
		e := &ent.DLQEntry{OriginalInputs: map[string]interface{}{"video_id": id}}
		assert.True(t, dlqEntryMatchesVideo(e, id))
	})

	t.Run("original inputs video_ids", func(t *testing.T) {
		e := &ent.DLQEntry{OriginalInputs: map[string]interface{}{"video_ids": []interface{}{id}}}
		assert.True(t, dlqEntryMatchesVideo(e, id))
		assert.False(t, dlqEntryMatchesVideo(e, other))
	})
}

func TestComputeDLQStats(t *testing.T) {
	entries := []*ent.DLQEntry{
		{JobType: dlqentry.JobTypeSingleVideo, Severity: dlqentry.SeverityMedium, RecoveryPriority: dlqentry.RecoveryPriorityHigh, ErrorType: "api_timeout", ProcessingAttempts: 3},
		{JobType: dlqentry.JobTypeSingleVideo, Severity: dlqentry.SeverityLow, RecoveryPriority: dlqentry.RecoveryPriorityMedium, ErrorType: "api_timeout", ProcessingAttempts: 1},
		{JobType: dlqentry.JobTypeChannelScrape, Severity: dlqentry.SeverityMedium, RecoveryPriority: dlqentry.RecoveryPriorityHigh, ErrorType: "quota_exceeded", ProcessingAttempts: 2},
	}

	stats := computeDLQStats(entries)
	assert.Equal(t, 2, stats.ByJobType["single_video"])
	assert.Equal(t, 2, stats.BySeverity["medium"])
	assert.Equal(t, 2, stats.ByErrorType["api_timeout"])
	assert.Equal(t, 2, stats.ByRecoveryPriority["high"])
	assert.InDelta(t, 2.0, stats.MeanProcessingAttempts, 1e-9)

	require.Len(t, stats.TopErrorPatterns, 2)
	assert.Equal(t, "api_timeout", stats.TopErrorPatterns[0].ErrorType)
	assert.Equal(t, 2, stats.TopErrorPatterns[0].Count)
}

func TestTopErrorPatterns(t *testing.T) {
	counts := map[string]int{
		"a": 5, "b": 5, "c": 3, "d": 2, "e": 1, "f": 1, "g": 1,
	}
	patterns := topErrorPatterns(counts, 5)
	require.Len(t, patterns, 5)
	assert.Equal(t, "a", patterns[0].ErrorType, "ties break alphabetically")
	assert.Equal(t, "b", patterns[1].ErrorType)
	assert.Equal(t, "c", patterns[2].ErrorType)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 24, clamp(0, 1, 720, 24), "zero takes the default")
	assert.Equal(t, 1, clamp(-5, 1, 720, 24))
	assert.Equal(t, 720, clamp(9999, 1, 720, 24))
	assert.Equal(t, 48, clamp(48, 1, 720, 24))
}
